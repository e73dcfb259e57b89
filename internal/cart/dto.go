package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemProduct carries the product fields the storefront renders in the cart.
type ItemProduct struct {
	Name       string           `json:"name"`
	Slug       string           `json:"slug"`
	Price      decimal.Decimal  `json:"price"`
	OfferPrice *decimal.Decimal `json:"offer_price,omitempty"`
}

// ItemView is a single cart line joined with its product.
type ItemView struct {
	ID        uuid.UUID   `json:"id"`
	ProductID uuid.UUID   `json:"product_id"`
	Quantity  int         `json:"quantity"`
	GiftWrap  bool        `json:"gift_wrap"`
	Product   ItemProduct `json:"product"`
}

// View is the whole cart for a session plus its running subtotal.
type View struct {
	Items    []ItemView      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// AddInput captures a request to put a product in the cart.
type AddInput struct {
	SessionID string
	ProductID uuid.UUID
	Quantity  int
	GiftWrap  bool
}

// UpdateInput captures a quantity or gift wrap change on an existing line.
type UpdateInput struct {
	SessionID string
	ItemID    uuid.UUID
	Quantity  int
	GiftWrap  *bool
}
