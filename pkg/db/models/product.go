package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog listing. Checkout treats it as read-only except
// for the stock_quantity decrement.
type Product struct {
	ID             uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug           string           `gorm:"column:slug;not null;uniqueIndex:products_slug_key"`
	Name           string           `gorm:"column:name;not null"`
	Description    *string          `gorm:"column:description"`
	Price          decimal.Decimal  `gorm:"column:price;type:numeric(10,2);not null"`
	OfferPrice     *decimal.Decimal `gorm:"column:offer_price;type:numeric(10,2)"`
	StockQuantity  *int             `gorm:"column:stock_quantity"`
	TrackInventory bool             `gorm:"column:track_inventory;not null;default:false"`
	CollectionID   *uuid.UUID       `gorm:"column:collection_id;type:uuid"`
	IsActive       bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// EffectivePrice returns the offer price when one is set, else the list price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.OfferPrice != nil {
		return *p.OfferPrice
	}
	return p.Price
}

// TracksStock reports whether stock_quantity is authoritative for this product.
// A null stock_quantity means unlimited stock even when tracking is on.
func (p Product) TracksStock() bool {
	return p.TrackInventory && p.StockQuantity != nil
}
