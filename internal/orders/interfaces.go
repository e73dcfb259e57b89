package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wickandhive/storefront-backend/pkg/db/models"
	"github.com/wickandhive/storefront-backend/pkg/enums"
)

// Repository defines persistence operations for orders and their child tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateItems(ctx context.Context, items []models.OrderItem) error
	CreateShippingAddress(ctx context.Context, address *models.ShippingAddress) error
	AppendStatusHistory(ctx context.Context, entry *models.OrderStatusHistory) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]Summary, error)
	ListByEmail(ctx context.Context, email string) ([]Summary, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enums.PaymentStatus) error
	NextOrderNumber(ctx context.Context) string
}
