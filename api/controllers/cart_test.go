package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wickandhive/storefront-backend/api/middleware"
	cartsvc "github.com/wickandhive/storefront-backend/internal/cart"
	pkgerrors "github.com/wickandhive/storefront-backend/pkg/errors"
)

type stubCartService struct {
	view      *cartsvc.View
	err       error
	gotAdd    *cartsvc.AddInput
	gotUpdate *cartsvc.UpdateInput
	cleared   bool
}

func (s *stubCartService) List(ctx context.Context, sessionID string) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s *stubCartService) Add(ctx context.Context, input cartsvc.AddInput) error {
	s.gotAdd = &input
	return s.err
}

func (s *stubCartService) Update(ctx context.Context, input cartsvc.UpdateInput) error {
	s.gotUpdate = &input
	return s.err
}

func (s *stubCartService) Remove(ctx context.Context, sessionID string, itemID uuid.UUID) error {
	return s.err
}

func (s *stubCartService) Clear(ctx context.Context, sessionID string) error {
	s.cleared = true
	return s.err
}

func withSession(req *http.Request, sessionID string) *http.Request {
	return req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
}

func TestGetCartRequiresSession(t *testing.T) {
	handler := GetCart(&stubCartService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetCartReturnsView(t *testing.T) {
	view := &cartsvc.View{
		Items: []cartsvc.ItemView{{
			ID:        uuid.New(),
			ProductID: uuid.New(),
			Quantity:  2,
			Product: cartsvc.ItemProduct{
				Name:  "Candle",
				Slug:  "candle",
				Price: decimal.RequireFromString("20.00"),
			},
		}},
		Subtotal: decimal.RequireFromString("40.00"),
	}
	handler := GetCart(&stubCartService{view: view}, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), "session_abc")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data cartsvc.View `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].Product.Name != "Candle" {
		t.Fatalf("unexpected view: %+v", envelope.Data)
	}
}

func TestAddCartItemForwardsInput(t *testing.T) {
	productID := uuid.New()
	svc := &stubCartService{view: &cartsvc.View{Items: []cartsvc.ItemView{}, Subtotal: decimal.Zero}}
	handler := AddCartItem(svc, nil)

	body := `{"product_id":"` + productID.String() + `","quantity":3,"gift_wrap":true}`
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart", strings.NewReader(body)), "session_abc")
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotAdd == nil || svc.gotAdd.ProductID != productID || svc.gotAdd.Quantity != 3 || !svc.gotAdd.GiftWrap {
		t.Fatalf("input not forwarded: %+v", svc.gotAdd)
	}
	if svc.gotAdd.SessionID != "session_abc" {
		t.Fatalf("session not forwarded: %q", svc.gotAdd.SessionID)
	}
}

func TestAddCartItemRejectsZeroQuantity(t *testing.T) {
	handler := AddCartItem(&stubCartService{}, nil)

	body := `{"product_id":"` + uuid.NewString() + `","quantity":0}`
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart", strings.NewReader(body)), "session_abc")
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUpdateCartItemForeignItemLooksMissing(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")}
	handler := UpdateCartItem(svc, nil)

	itemID := uuid.NewString()
	req := withSession(httptest.NewRequest(http.MethodPut, "/api/v1/cart/"+itemID,
		strings.NewReader(`{"quantity":2}`)), "other_session")
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "itemID", itemID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestClearCartNoContent(t *testing.T) {
	svc := &stubCartService{}
	handler := ClearCart(svc, nil)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil), "session_abc")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", resp.Code)
	}
	if !svc.cleared {
		t.Fatal("clear not invoked")
	}
}
