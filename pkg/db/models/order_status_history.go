package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/wickandhive/storefront-backend/pkg/enums"
)

// OrderStatusHistory is an append-only audit trail of status transitions.
type OrderStatusHistory struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID   uuid.UUID         `gorm:"column:order_id;type:uuid;not null;index:order_status_history_order_id_idx"`
	Status    enums.OrderStatus `gorm:"column:status;not null"`
	Notes     string            `gorm:"column:notes;not null;default:''"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
}

func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}
