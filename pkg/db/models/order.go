package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wickandhive/storefront-backend/pkg/enums"
)

// Order is the persisted result of a checkout. Totals are computed once at
// creation and never recomputed; total = subtotal + tax + shipping_cost.
type Order struct {
	ID              uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber     string               `gorm:"column:order_number;not null;uniqueIndex:orders_order_number_key"`
	SessionID       string               `gorm:"column:session_id;not null;index:orders_session_id_idx"`
	CustomerName    string               `gorm:"column:customer_name;not null"`
	CustomerEmail   string               `gorm:"column:customer_email;not null;index:orders_customer_email_idx"`
	CustomerPhone   *string              `gorm:"column:customer_phone"`
	Subtotal        decimal.Decimal      `gorm:"column:subtotal;type:numeric(10,2);not null"`
	Tax             decimal.Decimal      `gorm:"column:tax;type:numeric(10,2);not null"`
	ShippingCost    decimal.Decimal      `gorm:"column:shipping_cost;type:numeric(10,2);not null"`
	Total           decimal.Decimal      `gorm:"column:total;type:numeric(10,2);not null"`
	Status          enums.OrderStatus    `gorm:"column:status;not null;default:'pending'"`
	PaymentStatus   enums.PaymentStatus  `gorm:"column:payment_status;not null;default:'pending'"`
	PaymentMethod   enums.PaymentMethod  `gorm:"column:payment_method;not null;default:'cash_on_delivery'"`
	Notes           string               `gorm:"column:notes;not null;default:''"`
	Items           []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress *ShippingAddress     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory   []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
