package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wickandhive/storefront-backend/api/responses"
	"github.com/wickandhive/storefront-backend/api/validators"
	productsvc "github.com/wickandhive/storefront-backend/internal/products"
	"github.com/wickandhive/storefront-backend/pkg/db/models"
	pkgerrors "github.com/wickandhive/storefront-backend/pkg/errors"
	"github.com/wickandhive/storefront-backend/pkg/logger"
	"github.com/wickandhive/storefront-backend/pkg/pagination"
)

type productResponse struct {
	ID             uuid.UUID        `json:"id"`
	Slug           string           `json:"slug"`
	Name           string           `json:"name"`
	Description    *string          `json:"description,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	OfferPrice     *decimal.Decimal `json:"offer_price,omitempty"`
	StockQuantity  *int             `json:"stock_quantity,omitempty"`
	TrackInventory bool             `json:"track_inventory"`
	CollectionID   *uuid.UUID       `json:"collection_id,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

func newProductResponse(product *models.Product) productResponse {
	return productResponse{
		ID:             product.ID,
		Slug:           product.Slug,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		OfferPrice:     product.OfferPrice,
		StockQuantity:  product.StockQuantity,
		TrackInventory: product.TrackInventory,
		CollectionID:   product.CollectionID,
		CreatedAt:      product.CreatedAt,
	}
}

// ListProducts handles GET /api/v1/products with cursor pagination and
// optional collection, text, and stock filters.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "products service unavailable"))
			return
		}

		query := r.URL.Query()
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.List(r.Context(), pagination.Params{
			Limit:  limit,
			Cursor: query.Get("cursor"),
		}, productsvc.ListFilters{
			CollectionSlug: query.Get("collection"),
			Query:          query.Get("q"),
			InStockOnly:    query.Get("in_stock") == "true",
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

type collectionsResponse struct {
	Collections []productsvc.CollectionSummary `json:"collections"`
}

// ListCollections handles GET /api/v1/collections.
func ListCollections(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "products service unavailable"))
			return
		}

		collections, err := svc.Collections(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if collections == nil {
			collections = []productsvc.CollectionSummary{}
		}

		responses.WriteSuccess(w, collectionsResponse{Collections: collections})
	}
}

// GetProduct handles GET /api/v1/products/{slug}.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "products service unavailable"))
			return
		}

		product, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newProductResponse(product))
	}
}
