package models

import (
	"time"

	"github.com/google/uuid"
)

type ShippingAddress struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID      uuid.UUID  `gorm:"column:order_id;type:uuid;not null;uniqueIndex:shipping_addresses_order_id_key"`
	FullName     string     `gorm:"column:full_name;not null"`
	AddressLine1 string     `gorm:"column:address_line1;not null"`
	AddressLine2 *string    `gorm:"column:address_line2"`
	City         string     `gorm:"column:city;not null"`
	State        string     `gorm:"column:state;not null"`
	PostalCode   string     `gorm:"column:postal_code;not null"`
	Country      string     `gorm:"column:country;not null"`
	Phone        *string    `gorm:"column:phone"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}
