package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wickandhive/storefront-backend/internal/products"
	"github.com/wickandhive/storefront-backend/pkg/db/models"
	pkgerrors "github.com/wickandhive/storefront-backend/pkg/errors"
)

type stubCartRepo struct {
	Repository
	listBySession func(ctx context.Context, sessionID string) ([]models.CartItem, error)
	findByID      func(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	add           func(ctx context.Context, item *models.CartItem) error
	update        func(ctx context.Context, id uuid.UUID, updates map[string]any) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (s *stubCartRepo) ListBySession(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	return s.listBySession(ctx, sessionID)
}

func (s *stubCartRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	return s.findByID(ctx, id)
}

func (s *stubCartRepo) Add(ctx context.Context, item *models.CartItem) error {
	return s.add(ctx, item)
}

func (s *stubCartRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return s.update(ctx, id, updates)
}

func (s *stubCartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

type stubCatalog struct {
	products.Repository
	findByID func(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

func (s *stubCatalog) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.findByID(ctx, id)
}

func offerPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestServiceListComputesSubtotalWithOfferPrice(t *testing.T) {
	productID := uuid.New()
	repo := &stubCartRepo{
		listBySession: func(_ context.Context, sessionID string) ([]models.CartItem, error) {
			assert.Equal(t, "session_abc", sessionID)
			return []models.CartItem{
				{
					ID:        uuid.New(),
					SessionID: sessionID,
					ProductID: productID,
					Quantity:  2,
					Product: &models.Product{
						ID:         productID,
						Name:       "Candle",
						Price:      decimal.RequireFromString("25.00"),
						OfferPrice: offerPtr("20.00"),
					},
				},
			}, nil
		},
	}
	svc, err := NewService(repo, &stubCatalog{})
	require.NoError(t, err)

	view, err := svc.List(context.Background(), "session_abc")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.True(t, view.Subtotal.Equal(decimal.RequireFromString("40.00")), "offer price wins over list price, got %s", view.Subtotal)
}

func TestServiceAddValidatesProduct(t *testing.T) {
	catalog := &stubCatalog{
		findByID: func(context.Context, uuid.UUID) (*models.Product, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, err := NewService(&stubCartRepo{}, catalog)
	require.NoError(t, err)

	err = svc.Add(context.Background(), AddInput{SessionID: "s", ProductID: uuid.New(), Quantity: 1})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceAddRejectsInactiveProduct(t *testing.T) {
	catalog := &stubCatalog{
		findByID: func(_ context.Context, id uuid.UUID) (*models.Product, error) {
			return &models.Product{ID: id, IsActive: false}, nil
		},
	}
	svc, err := NewService(&stubCartRepo{}, catalog)
	require.NoError(t, err)

	err = svc.Add(context.Background(), AddInput{SessionID: "s", ProductID: uuid.New(), Quantity: 1})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestServiceAddRejectsNonPositiveQuantity(t *testing.T) {
	svc, err := NewService(&stubCartRepo{}, &stubCatalog{})
	require.NoError(t, err)

	err = svc.Add(context.Background(), AddInput{SessionID: "s", ProductID: uuid.New(), Quantity: 0})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestServiceUpdateZeroQuantityRemovesLine(t *testing.T) {
	itemID := uuid.New()
	deleted := false
	repo := &stubCartRepo{
		findByID: func(_ context.Context, id uuid.UUID) (*models.CartItem, error) {
			return &models.CartItem{ID: id, SessionID: "s"}, nil
		},
		deleteFn: func(_ context.Context, id uuid.UUID) error {
			deleted = true
			assert.Equal(t, itemID, id)
			return nil
		},
	}
	svc, err := NewService(repo, &stubCatalog{})
	require.NoError(t, err)

	require.NoError(t, svc.Update(context.Background(), UpdateInput{SessionID: "s", ItemID: itemID, Quantity: 0}))
	assert.True(t, deleted)
}

func TestServiceUpdateRejectsForeignSession(t *testing.T) {
	repo := &stubCartRepo{
		findByID: func(_ context.Context, id uuid.UUID) (*models.CartItem, error) {
			return &models.CartItem{ID: id, SessionID: "owner"}, nil
		},
	}
	svc, err := NewService(repo, &stubCatalog{})
	require.NoError(t, err)

	err = svc.Update(context.Background(), UpdateInput{SessionID: "intruder", ItemID: uuid.New(), Quantity: 2})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code(), "foreign items must look like missing items")
}
