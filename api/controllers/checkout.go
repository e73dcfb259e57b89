package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wickandhive/storefront-backend/api/middleware"
	"github.com/wickandhive/storefront-backend/api/responses"
	"github.com/wickandhive/storefront-backend/api/validators"
	checkoutsvc "github.com/wickandhive/storefront-backend/internal/checkout"
	"github.com/wickandhive/storefront-backend/pkg/enums"
	pkgerrors "github.com/wickandhive/storefront-backend/pkg/errors"
	"github.com/wickandhive/storefront-backend/pkg/logger"
	"github.com/wickandhive/storefront-backend/pkg/metrics"
)

type checkoutCustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type checkoutShippingAddress struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

type checkoutFunctionRequest struct {
	SessionID       string                  `json:"sessionId"`
	CustomerInfo    checkoutCustomerInfo    `json:"customerInfo"`
	ShippingAddress checkoutShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod"`
}

type checkoutFunctionOrder struct {
	ID          uuid.UUID         `json:"id"`
	OrderNumber string            `json:"orderNumber"`
	Total       decimal.Decimal   `json:"total"`
	Status      enums.OrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type checkoutFunctionResponse struct {
	Success bool                  `json:"success"`
	Order   checkoutFunctionOrder `json:"order"`
}

const (
	checkoutFieldMaxLen = 255
	checkoutNotesMaxLen = 1000
)

// toInput trims and bounds the free-text fields before they reach the
// order tables.
func (p checkoutFunctionRequest) toInput() checkoutsvc.Input {
	field := func(v string) string { return validators.SanitizeString(v, checkoutFieldMaxLen) }
	return checkoutsvc.Input{
		SessionID: strings.TrimSpace(p.SessionID),
		Customer: checkoutsvc.CustomerInfo{
			Name:  field(p.CustomerInfo.Name),
			Email: field(p.CustomerInfo.Email),
			Phone: field(p.CustomerInfo.Phone),
			Notes: validators.SanitizeString(p.CustomerInfo.Notes, checkoutNotesMaxLen),
		},
		ShippingAddress: checkoutsvc.ShippingAddress{
			FullName:     field(p.ShippingAddress.FullName),
			AddressLine1: field(p.ShippingAddress.AddressLine1),
			AddressLine2: field(p.ShippingAddress.AddressLine2),
			City:         field(p.ShippingAddress.City),
			State:        field(p.ShippingAddress.State),
			PostalCode:   field(p.ShippingAddress.PostalCode),
			Country:      field(p.ShippingAddress.Country),
			Phone:        field(p.ShippingAddress.Phone),
		},
		PaymentMethod: field(p.PaymentMethod),
	}
}

func checkoutOutcome(err error) string {
	if err == nil {
		return "success"
	}
	if typed := pkgerrors.As(err); typed != nil {
		switch typed.Code() {
		case pkgerrors.CodeValidation, pkgerrors.CodeConflict, pkgerrors.CodeIdempotency:
			return "rejected"
		}
	}
	return "failed"
}

// CheckoutFunction handles POST /functions/checkout in the original
// storefront wire format: session in the body, loose camelCase JSON,
// 200 on success.
func CheckoutFunction(svc checkoutsvc.Service, m *metrics.HTTPMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteFunctionError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload checkoutFunctionRequest
		if err := decodeFunctionBody(r, &payload); err != nil {
			responses.WriteFunctionError(r.Context(), logg, w, err)
			return
		}
		if payload.SessionID == "" {
			payload.SessionID = middleware.SessionIDFromContext(r.Context())
		}

		result, err := svc.Process(r.Context(), payload.toInput())
		m.IncCheckout(checkoutOutcome(err))
		if err != nil {
			responses.WriteFunctionError(r.Context(), logg, w, err)
			return
		}

		responses.WriteFunctionSuccess(w, http.StatusOK, checkoutFunctionResponse{
			Success: true,
			Order: checkoutFunctionOrder{
				ID:          result.OrderID,
				OrderNumber: result.OrderNumber,
				Total:       result.Total,
				Status:      result.Status,
				CreatedAt:   result.CreatedAt,
			},
		})
	}
}

type checkoutResponse struct {
	OrderID     uuid.UUID         `json:"order_id"`
	OrderNumber string            `json:"order_number"`
	Total       decimal.Decimal   `json:"total"`
	Status      enums.OrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Checkout handles POST /api/v1/checkout: same conversion, enveloped
// response, session taken from the X-Session-Id header.
func Checkout(svc checkoutsvc.Service, m *metrics.HTTPMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session id required"))
			return
		}

		var payload checkoutFunctionRequest
		if err := decodeFunctionBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input := payload.toInput()
		input.SessionID = sessionID

		result, err := svc.Process(r.Context(), input)
		m.IncCheckout(checkoutOutcome(err))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, checkoutResponse{
			OrderID:     result.OrderID,
			OrderNumber: result.OrderNumber,
			Total:       result.Total,
			Status:      result.Status,
			CreatedAt:   result.CreatedAt,
		})
	}
}
