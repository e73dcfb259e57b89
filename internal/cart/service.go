package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/wickandhive/storefront-backend/internal/products"
	"github.com/wickandhive/storefront-backend/pkg/db/models"
	pkgerrors "github.com/wickandhive/storefront-backend/pkg/errors"
)

// Service exposes the session cart operations.
type Service interface {
	List(ctx context.Context, sessionID string) (*View, error)
	Add(ctx context.Context, input AddInput) error
	Update(ctx context.Context, input UpdateInput) error
	Remove(ctx context.Context, sessionID string, itemID uuid.UUID) error
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	repo    Repository
	catalog products.Repository
}

// NewService builds a cart service with the required dependencies.
func NewService(repo Repository, catalog products.Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo, catalog: catalog}, nil
}

func (s *service) List(ctx context.Context, sessionID string) (*View, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session_id required")
	}
	items, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	view := &View{Items: make([]ItemView, 0, len(items)), Subtotal: decimal.Zero}
	for _, item := range items {
		line := ItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			GiftWrap:  item.GiftWrap,
		}
		if item.Product != nil {
			line.Product = ItemProduct{
				Name:       item.Product.Name,
				Slug:       item.Product.Slug,
				Price:      item.Product.Price,
				OfferPrice: item.Product.OfferPrice,
			}
			view.Subtotal = view.Subtotal.Add(item.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		view.Items = append(view.Items, line)
	}
	return view, nil
}

func (s *service) Add(ctx context.Context, input AddInput) error {
	if input.SessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session_id required")
	}
	if input.ProductID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product_id required")
	}
	if input.Quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	product, err := s.catalog.FindByID(ctx, input.ProductID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return pkgerrors.New(pkgerrors.CodeConflict, "product is no longer available")
	}

	item := &models.CartItem{
		SessionID: input.SessionID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		GiftWrap:  input.GiftWrap,
	}
	if err := s.repo.Add(ctx, item); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add cart item")
	}
	return nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) error {
	if input.SessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session_id required")
	}
	if input.ItemID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}

	item, err := s.loadOwnedItem(ctx, input.SessionID, input.ItemID)
	if err != nil {
		return err
	}

	// Updating down to zero is a removal, matching how the storefront UI
	// treats the quantity stepper.
	if input.Quantity <= 0 {
		if err := s.repo.Delete(ctx, item.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart item")
		}
		return nil
	}

	updates := map[string]any{"quantity": input.Quantity}
	if input.GiftWrap != nil {
		updates["gift_wrap"] = *input.GiftWrap
	}
	if err := s.repo.Update(ctx, item.ID, updates); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart item")
	}
	return nil
}

func (s *service) Remove(ctx context.Context, sessionID string, itemID uuid.UUID) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session_id required")
	}
	if itemID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	item, err := s.loadOwnedItem(ctx, sessionID, itemID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, item.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart item")
	}
	return nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session_id required")
	}
	if err := s.repo.ClearSession(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) loadOwnedItem(ctx context.Context, sessionID string, itemID uuid.UUID) (*models.CartItem, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart item")
	}
	if item.SessionID != sessionID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return item, nil
}
