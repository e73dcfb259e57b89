package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wickandhive/storefront-backend/pkg/db/models"
	"github.com/wickandhive/storefront-backend/pkg/enums"
	pkgerrors "github.com/wickandhive/storefront-backend/pkg/errors"
)

// decodeFunctionBody reads a legacy /functions request body. Unlike the v1
// decoder it tolerates unknown fields; the storefront UI has shipped payloads
// with extras for years and they must keep working.
func decodeFunctionBody(r *http.Request, dest any) error {
	if r.Body == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid request body")
	}
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid request body")
	}
	return nil
}

// functionOrderRow is a flat order in the legacy wire format.
type functionOrderRow struct {
	ID            uuid.UUID           `json:"id"`
	OrderNumber   string              `json:"order_number"`
	SessionID     string              `json:"session_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	CustomerPhone *string             `json:"customer_phone"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Tax           decimal.Decimal     `json:"tax"`
	ShippingCost  decimal.Decimal     `json:"shipping_cost"`
	Total         decimal.Decimal     `json:"total"`
	Status        enums.OrderStatus   `json:"status"`
	PaymentStatus enums.PaymentStatus `json:"payment_status"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	Notes         string              `json:"notes"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type functionOrderItem struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	GiftWrap     bool            `json:"gift_wrap"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type functionShippingAddress struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"order_id"`
	FullName     string    `json:"full_name"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 *string   `json:"address_line2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country"`
	Phone        *string   `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
}

type functionStatusHistory struct {
	ID        uuid.UUID         `json:"id"`
	Status    enums.OrderStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedAt time.Time         `json:"created_at"`
}

// functionOrderDetail is the full order in the legacy wire format. The
// shipping address rides in an array because the original schema allowed
// many rows per order even though checkout only ever wrote one.
type functionOrderDetail struct {
	functionOrderRow
	OrderItems         []functionOrderItem       `json:"order_items"`
	ShippingAddresses  []functionShippingAddress `json:"shipping_addresses"`
	OrderStatusHistory []functionStatusHistory   `json:"order_status_history"`
}

func newFunctionOrderRow(order *models.Order) functionOrderRow {
	return functionOrderRow{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		SessionID:     order.SessionID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		ShippingCost:  order.ShippingCost,
		Total:         order.Total,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		PaymentMethod: order.PaymentMethod,
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func newFunctionOrderDetail(order *models.Order) functionOrderDetail {
	detail := functionOrderDetail{
		functionOrderRow:   newFunctionOrderRow(order),
		OrderItems:         make([]functionOrderItem, 0, len(order.Items)),
		ShippingAddresses:  []functionShippingAddress{},
		OrderStatusHistory: make([]functionStatusHistory, 0, len(order.StatusHistory)),
	}
	for _, item := range order.Items {
		detail.OrderItems = append(detail.OrderItems, functionOrderItem{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
			GiftWrap:     item.GiftWrap,
			Subtotal:     item.Subtotal,
		})
	}
	if addr := order.ShippingAddress; addr != nil {
		detail.ShippingAddresses = append(detail.ShippingAddresses, functionShippingAddress{
			ID:           addr.ID,
			OrderID:      addr.OrderID,
			FullName:     addr.FullName,
			AddressLine1: addr.AddressLine1,
			AddressLine2: addr.AddressLine2,
			City:         addr.City,
			State:        addr.State,
			PostalCode:   addr.PostalCode,
			Country:      addr.Country,
			Phone:        addr.Phone,
			CreatedAt:    addr.CreatedAt,
		})
	}
	for _, entry := range order.StatusHistory {
		detail.OrderStatusHistory = append(detail.OrderStatusHistory, functionStatusHistory{
			ID:        entry.ID,
			Status:    entry.Status,
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		})
	}
	return detail
}
