package enums

// PaymentMethod identifies how an order is paid. The storefront only takes
// cash on delivery today; the column exists so new methods slot in without a
// schema change.
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// String implements fmt.Stringer.
func (p PaymentMethod) String() string {
	return string(p)
}

// NormalizePaymentMethod maps raw input onto a known method, defaulting to
// cash on delivery when empty.
func NormalizePaymentMethod(value string) PaymentMethod {
	if value == "" {
		return PaymentMethodCashOnDelivery
	}
	return PaymentMethod(value)
}
