package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListFilters describe the inputs supported by the catalog list.
type ListFilters struct {
	CollectionSlug string
	Query          string
	InStockOnly    bool
}

// ProductSummary exposes the fields returned by the catalog list.
type ProductSummary struct {
	ID            uuid.UUID        `json:"id"`
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OfferPrice    *decimal.Decimal `json:"offer_price,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ProductList wraps the paginated products plus the next page cursor.
type ProductList struct {
	Products   []ProductSummary `json:"products"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

// CollectionSummary exposes the fields the shop navigation needs.
type CollectionSummary struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}
