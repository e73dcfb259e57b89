package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one (session, product) line. The unique index is what turns a
// repeated add into a quantity bump instead of a second row.
type CartItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID string    `gorm:"column:session_id;not null;index:cart_items_session_id_idx;uniqueIndex:cart_items_session_product_key"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:cart_items_session_product_key"`
	Quantity  int       `gorm:"column:quantity;not null"`
	GiftWrap  bool      `gorm:"column:gift_wrap;not null;default:false"`
	Product   *Product  `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
