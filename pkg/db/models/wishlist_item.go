package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem links a session to a liked product.
type WishlistItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID string    `gorm:"column:session_id;not null;index:wishlist_items_session_id_idx;uniqueIndex:wishlist_items_session_product_key"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:wishlist_items_session_product_key"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
