package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wickandhive/storefront-backend/api/responses"
	ordersvc "github.com/wickandhive/storefront-backend/internal/orders"
	"github.com/wickandhive/storefront-backend/pkg/enums"
	pkgerrors "github.com/wickandhive/storefront-backend/pkg/errors"
	"github.com/wickandhive/storefront-backend/pkg/logger"
)

type ordersListResponse struct {
	Orders []ordersvc.Summary `json:"orders"`
}

type orderDetailResponse struct {
	Order functionOrderDetail `json:"order"`
}

type orderUpdateResponse struct {
	Success bool             `json:"success"`
	Order   functionOrderRow `json:"order"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type updatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// ListOrdersFunction handles GET /functions/orders. The selector is either
// sessionId or email; with neither present the request is rejected the way
// the original function rejected it.
func ListOrdersFunction(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteFunctionError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var (
			list []ordersvc.Summary
			err  error
		)
		switch {
		case r.URL.Query().Get("sessionId") != "":
			list, err = svc.ListBySession(r.Context(), r.URL.Query().Get("sessionId"))
		case r.URL.Query().Get("email") != "":
			list, err = svc.ListByEmail(r.Context(), r.URL.Query().Get("email"))
		default:
			err = pkgerrors.New(pkgerrors.CodeValidation, "Missing query parameter: sessionId, email, or order number")
		}
		if err != nil {
			responses.WriteFunctionError(r.Context(), logg, w, err)
			return
		}

		responses.WriteFunctionSuccess(w, http.StatusOK, ordersListResponse{Orders: list})
	}
}

// GetOrderFunction handles GET /functions/orders/{orderNumber}, returning the
// order with its items, shipping address, and status history.
func GetOrderFunction(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteFunctionError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		order, err := svc.GetByOrderNumber(r.Context(), chi.URLParam(r, "orderNumber"))
		if err != nil {
			responses.WriteFunctionError(r.Context(), logg, w, err)
			return
		}

		responses.WriteFunctionSuccess(w, http.StatusOK, orderDetailResponse{Order: newFunctionOrderDetail(order)})
	}
}

// UpdateOrderStatusFunction handles PUT /functions/orders/{orderId}/status.
func UpdateOrderStatusFunction(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteFunctionError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			responses.WriteFunctionError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Missing orderId or status"))
			return
		}

		var payload updateStatusRequest
		if err := decodeFunctionBody(r, &payload); err != nil {
			responses.WriteFunctionError(r.Context(), logg, w, err)
			return
		}
		if payload.Status == "" {
			responses.WriteFunctionError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Missing orderId or status"))
			return
		}

		order, err := svc.UpdateStatus(r.Context(), ordersvc.UpdateStatusInput{
			OrderID: orderID,
			Status:  enums.OrderStatus(payload.Status),
			Notes:   payload.Notes,
		})
		if err != nil {
			responses.WriteFunctionError(r.Context(), logg, w, err)
			return
		}

		responses.WriteFunctionSuccess(w, http.StatusOK, orderUpdateResponse{Success: true, Order: newFunctionOrderRow(order)})
	}
}

// UpdateOrderPaymentFunction handles PUT /functions/orders/{orderId}/payment.
func UpdateOrderPaymentFunction(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteFunctionError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			responses.WriteFunctionError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Missing orderId or paymentStatus"))
			return
		}

		var payload updatePaymentRequest
		if err := decodeFunctionBody(r, &payload); err != nil {
			responses.WriteFunctionError(r.Context(), logg, w, err)
			return
		}
		if payload.PaymentStatus == "" {
			responses.WriteFunctionError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Missing orderId or paymentStatus"))
			return
		}

		order, err := svc.UpdatePayment(r.Context(), ordersvc.UpdatePaymentInput{
			OrderID:       orderID,
			PaymentStatus: enums.PaymentStatus(payload.PaymentStatus),
		})
		if err != nil {
			responses.WriteFunctionError(r.Context(), logg, w, err)
			return
		}

		responses.WriteFunctionSuccess(w, http.StatusOK, orderUpdateResponse{Success: true, Order: newFunctionOrderRow(order)})
	}
}

// GetOrder handles GET /api/v1/orders/{orderNumber} with the enveloped shape.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		order, err := svc.GetByOrderNumber(r.Context(), chi.URLParam(r, "orderNumber"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newFunctionOrderDetail(order))
	}
}

// ListOrders handles GET /api/v1/orders with the enveloped shape.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var (
			list []ordersvc.Summary
			err  error
		)
		switch {
		case r.URL.Query().Get("sessionId") != "":
			list, err = svc.ListBySession(r.Context(), r.URL.Query().Get("sessionId"))
		case r.URL.Query().Get("email") != "":
			list, err = svc.ListByEmail(r.Context(), r.URL.Query().Get("email"))
		default:
			err = pkgerrors.New(pkgerrors.CodeValidation, "sessionId or email query parameter required")
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, ordersListResponse{Orders: list})
	}
}
