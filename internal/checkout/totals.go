package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/wickandhive/storefront-backend/pkg/db/models"
)

// lineSubtotal is the effective unit price times quantity, exact.
func lineSubtotal(product models.Product, quantity int) decimal.Decimal {
	return product.EffectivePrice().Mul(decimal.NewFromInt(int64(quantity)))
}

// computeTotals derives the money breakdown from cart lines. Tax is applied to
// the merchandise subtotal only, rounded half-up to cents. Shipping is free at
// or above the threshold, else the flat fee.
func computeTotals(items []models.CartItem, pricing Pricing) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		subtotal = subtotal.Add(lineSubtotal(*item.Product, item.Quantity))
	}

	tax := subtotal.Mul(pricing.TaxRate).Round(2)

	shipping := pricing.FlatShippingFee
	if subtotal.GreaterThanOrEqual(pricing.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}
