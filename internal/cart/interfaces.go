package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wickandhive/storefront-backend/pkg/db/models"
)

// Repository defines persistence operations for session carts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListBySession(ctx context.Context, sessionID string) ([]models.CartItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	Add(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	ClearSession(ctx context.Context, sessionID string) error
}
