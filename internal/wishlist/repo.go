package wishlist

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wickandhive/storefront-backend/pkg/db/models"
)

// Repository defines persistence operations for session wishlists.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListProductIDs(ctx context.Context, sessionID string) ([]uuid.UUID, error)
	Contains(ctx context.Context, sessionID string, productID uuid.UUID) (bool, error)
	Add(ctx context.Context, item *models.WishlistItem) error
	Remove(ctx context.Context, sessionID string, productID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a wishlist repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListProductIDs(ctx context.Context, sessionID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) Contains(ctx context.Context, sessionID string, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add is idempotent: re-adding a wished product is a no-op on the unique index.
func (r *repository) Add(ctx context.Context, item *models.WishlistItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(item).Error
}

func (r *repository) Remove(ctx context.Context, sessionID string, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.WishlistItem{}, "session_id = ? AND product_id = ?", sessionID, productID).Error
}
