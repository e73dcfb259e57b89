package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wickandhive/storefront-backend/pkg/db/models"
	"github.com/wickandhive/storefront-backend/pkg/enums"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) CreateItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) CreateShippingAddress(ctx context.Context, address *models.ShippingAddress) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *repository) AppendStatusHistory(ctx context.Context, entry *models.OrderStatusHistory) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		Preload("ShippingAddress").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_status_history.created_at ASC")
		}).
		First(&order, "order_number = ?", orderNumber).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) ListBySession(ctx context.Context, sessionID string) ([]Summary, error) {
	return r.listWhere(ctx, "session_id = ?", sessionID)
}

func (r *repository) ListByEmail(ctx context.Context, email string) ([]Summary, error) {
	return r.listWhere(ctx, "customer_email = ?", email)
}

func (r *repository) listWhere(ctx context.Context, cond string, arg any) ([]Summary, error) {
	var out []Summary
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("id, order_number, customer_name, customer_email, total, status, payment_status, created_at, updated_at").
		Where(cond, arg).
		Order("created_at DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Summary{}
	}
	return out, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()}).Error
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enums.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"payment_status": status, "updated_at": time.Now().UTC()}).Error
}

// NextOrderNumber pulls the next value off the database sequence. When the
// sequence is unavailable the timestamp fallback still yields a unique,
// roughly sortable number.
func (r *repository) NextOrderNumber(ctx context.Context) string {
	var seq int64
	err := r.db.WithContext(ctx).Raw("SELECT nextval('order_number_seq')").Scan(&seq).Error
	if err != nil || seq <= 0 {
		// Millisecond timestamps can collide under load, so salt the tail.
		return fmt.Sprintf("ORD-%d%s", time.Now().UnixMilli(), uuid.NewString()[:4])
	}
	return fmt.Sprintf("ORD-%s-%06d", time.Now().UTC().Format("20060102"), seq%1000000)
}
