package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wickandhive/storefront-backend/pkg/config"
	"github.com/wickandhive/storefront-backend/pkg/enums"
)

// CustomerInfo identifies the buyer on a guest checkout.
type CustomerInfo struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// ShippingAddress is the destination captured at checkout.
type ShippingAddress struct {
	FullName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	Phone        string
}

// Input is everything needed to convert a session cart into an order.
type Input struct {
	SessionID       string
	Customer        CustomerInfo
	ShippingAddress ShippingAddress
	PaymentMethod   string
}

// Result summarises the created order for the confirmation response.
type Result struct {
	OrderID     uuid.UUID
	OrderNumber string
	Total       decimal.Decimal
	Status      enums.OrderStatus
	CreatedAt   time.Time
}

// Pricing holds the checkout policy constants as exact decimals.
type Pricing struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
}

// PricingFromConfig lifts the validated config strings into decimals.
func PricingFromConfig(cfg config.CheckoutConfig) Pricing {
	return Pricing{
		TaxRate:               cfg.TaxRateDecimal(),
		FreeShippingThreshold: cfg.FreeShippingThresholdDecimal(),
		FlatShippingFee:       cfg.FlatShippingFeeDecimal(),
	}
}

// Totals is the money breakdown computed from the cart.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}
