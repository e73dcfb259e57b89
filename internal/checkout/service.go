package checkout

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/wickandhive/storefront-backend/internal/cart"
	"github.com/wickandhive/storefront-backend/internal/orders"
	"github.com/wickandhive/storefront-backend/internal/products"
	"github.com/wickandhive/storefront-backend/pkg/db/models"
	"github.com/wickandhive/storefront-backend/pkg/enums"
	pkgerrors "github.com/wickandhive/storefront-backend/pkg/errors"
	"github.com/wickandhive/storefront-backend/pkg/logger"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service converts a session cart into a persisted order.
type Service interface {
	Process(ctx context.Context, input Input) (*Result, error)
}

type service struct {
	carts   cart.Repository
	catalog products.Repository
	orders  orders.Repository
	tx      txRunner
	pricing Pricing
	logg    *logger.Logger
}

// NewService builds a checkout service with the required dependencies.
func NewService(carts cart.Repository, catalog products.Repository, ordersRepo orders.Repository, tx txRunner, pricing Pricing, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		carts:   carts,
		catalog: catalog,
		orders:  ordersRepo,
		tx:      tx,
		pricing: pricing,
		logg:    logg,
	}, nil
}

// Process runs the whole cart-to-order conversion inside one transaction:
// load cart, verify stock, compute totals, create the order and its items,
// decrement inventory, clear the cart. Any failure
// rolls the entire conversion back. The shipping address is written after
// commit so an address hiccup cannot undo a placed order.
func (s *service) Process(ctx context.Context, input Input) (*Result, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// The sequence call stays outside the transaction. On postgres a failed
	// nextval poisons the whole tx, which would break the timestamp fallback;
	// a number burned on a later rollback is harmless.
	orderNumber := s.orders.NextOrderNumber(ctx)

	var created *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		carts := s.carts.WithTx(tx)
		catalog := s.catalog.WithTx(tx)
		ordersRepo := s.orders.WithTx(tx)

		items, err := carts.ListBySession(ctx, input.SessionID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
		}
		if len(items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "Cart is empty or not found")
		}

		if err := checkStock(items); err != nil {
			return err
		}

		totals := computeTotals(items, s.pricing)

		order := &models.Order{
			OrderNumber:   orderNumber,
			SessionID:     input.SessionID,
			CustomerName:  input.Customer.Name,
			CustomerEmail: input.Customer.Email,
			Subtotal:      totals.Subtotal,
			Tax:           totals.Tax,
			ShippingCost:  totals.Shipping,
			Total:         totals.Total,
			Status:        enums.OrderStatusPending,
			PaymentStatus: enums.PaymentStatusPending,
			PaymentMethod: enums.NormalizePaymentMethod(input.PaymentMethod),
			Notes:         input.Customer.Notes,
		}
		if input.Customer.Phone != "" {
			phone := input.Customer.Phone
			order.CustomerPhone = &phone
		}
		created, err = ordersRepo.Create(ctx, order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:      created.ID,
				ProductID:    item.ProductID,
				ProductName:  item.Product.Name,
				ProductPrice: item.Product.EffectivePrice(),
				Quantity:     item.Quantity,
				GiftWrap:     item.GiftWrap,
				Subtotal:     lineSubtotal(*item.Product, item.Quantity),
			})
		}
		if err := ordersRepo.CreateItems(ctx, orderItems); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}

		for _, item := range items {
			if !item.Product.TracksStock() {
				continue
			}
			ok, err := catalog.DecrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
			}
			if !ok {
				return pkgerrors.New(pkgerrors.CodeConflict,
					fmt.Sprintf("Insufficient stock for %s", item.Product.Name))
			}
		}

		if err := carts.ClearSession(ctx, input.SessionID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.saveShippingAddress(ctx, created, input.ShippingAddress)

	return &Result{
		OrderID:     created.ID,
		OrderNumber: created.OrderNumber,
		Total:       created.Total,
		Status:      created.Status,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// saveShippingAddress runs outside the order transaction. The order stands
// even when the address insert fails; support can re-capture an address, but
// nobody can re-capture a rolled-back order.
func (s *service) saveShippingAddress(ctx context.Context, order *models.Order, addr ShippingAddress) {
	record := &models.ShippingAddress{
		OrderID:      order.ID,
		FullName:     addr.FullName,
		AddressLine1: addr.AddressLine1,
		City:         addr.City,
		State:        addr.State,
		PostalCode:   addr.PostalCode,
		Country:      addr.Country,
	}
	if addr.AddressLine2 != "" {
		line2 := addr.AddressLine2
		record.AddressLine2 = &line2
	}
	if addr.Phone != "" {
		phone := addr.Phone
		record.Phone = &phone
	}
	if err := s.orders.CreateShippingAddress(ctx, record); err != nil {
		fields := s.logg.WithFields(ctx, map[string]any{
			"order_number": order.OrderNumber,
			"order_id":     order.ID.String(),
		})
		s.logg.Error(fields, "checkout.shipping_address_failed", err)
	}
}

// checkStock is a readable pre-flight pass over the cart. The conditional
// UPDATE during the decrement loop remains the real authority under
// concurrency; this pass exists to fail fast with the product name and the
// quantity actually available.
func checkStock(items []models.CartItem) error {
	for _, item := range items {
		if item.Product == nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "Cart is empty or not found")
		}
		if !item.Product.TracksStock() {
			continue
		}
		available := *item.Product.StockQuantity
		if item.Quantity > available {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("Insufficient stock for %s. Available: %d", item.Product.Name, available))
		}
	}
	return nil
}

func validateInput(input Input) error {
	if input.SessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if input.Customer.Name == "" || input.Customer.Email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer name and email required")
	}
	if input.ShippingAddress.FullName == "" || input.ShippingAddress.AddressLine1 == "" ||
		input.ShippingAddress.City == "" || input.ShippingAddress.PostalCode == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipping address incomplete")
	}
	return nil
}
