package products

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wickandhive/storefront-backend/pkg/db/models"
	"github.com/wickandhive/storefront-backend/pkg/pagination"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	collections := `
CREATE TABLE IF NOT EXISTS collections (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  created_at DATETIME
);`
	productsDDL := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL,
  offer_price NUMERIC,
  stock_quantity INTEGER,
  track_inventory INTEGER NOT NULL DEFAULT 1,
  collection_id TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(collections).Error)
	require.NoError(t, db.Exec(productsDDL).Error)
	return db
}

func newProduct(t *testing.T, db *gorm.DB, name string, price string, stock *int, created time.Time) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:             uuid.New(),
		Slug:           fmt.Sprintf("%s-%s", name, uuid.NewString()[:8]),
		Name:           name,
		Price:          decimal.RequireFromString(price),
		StockQuantity:  stock,
		TrackInventory: stock != nil,
		IsActive:       true,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func intPtr(v int) *int {
	return &v
}

func TestRepositoryDecrementStock(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := newProduct(t, db, "candle", "20.00", intPtr(10), time.Now().UTC())

	ok, err := repo.DecrementStock(ctx, product.ID, 4)
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.StockQuantity)
	assert.Equal(t, 6, *reloaded.StockQuantity)

	ok, err = repo.DecrementStock(ctx, product.ID, 7)
	require.NoError(t, err)
	assert.False(t, ok, "over-decrement must be refused")

	reloaded, err = repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, *reloaded.StockQuantity, "refused decrement must not change stock")
}

func TestRepositoryDecrementStockExactBalance(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := newProduct(t, db, "soap", "8.50", intPtr(3), time.Now().UTC())

	ok, err := repo.DecrementStock(ctx, product.ID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, *reloaded.StockQuantity)

	ok, err = repo.DecrementStock(ctx, product.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepositoryDecrementStockIgnoresUntracked(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := newProduct(t, db, "gift-card", "25.00", nil, time.Now().UTC())

	ok, err := repo.DecrementStock(ctx, product.ID, 2)
	require.NoError(t, err)
	assert.False(t, ok, "untracked products have no stock rows to take")
}

func TestRepositoryListPagination(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	older := newProduct(t, db, "pag-older", "5.00", intPtr(1), now.Add(-time.Hour))
	newer := newProduct(t, db, "pag-newer", "6.00", intPtr(1), now)

	list, err := repo.List(ctx, pagination.Params{Limit: 1}, ListFilters{Query: "pag-"})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, newer.ID, list.Products[0].ID)
	assert.NotEmpty(t, list.NextCursor)

	second, err := repo.List(ctx, pagination.Params{Limit: 1, Cursor: list.NextCursor}, ListFilters{Query: "pag-"})
	require.NoError(t, err)
	require.Len(t, second.Products, 1)
	assert.Equal(t, older.ID, second.Products[0].ID)
	assert.Empty(t, second.NextCursor)
}

func TestRepositoryListFilters(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	collection := &models.Collection{ID: uuid.New(), Slug: fmt.Sprintf("gifts-%s", uuid.NewString()[:8]), Name: "Gifts"}
	require.NoError(t, db.Create(collection).Error)

	now := time.Now().UTC()
	inCollection := newProduct(t, db, "boxed-set", "30.00", intPtr(5), now)
	require.NoError(t, db.Model(inCollection).Update("collection_id", collection.ID).Error)
	newProduct(t, db, "loose-item", "3.00", intPtr(5), now)
	soldOut := newProduct(t, db, "sold-out-set", "12.00", intPtr(0), now)
	require.NoError(t, db.Model(soldOut).Update("collection_id", collection.ID).Error)

	list, err := repo.List(ctx, pagination.Params{Limit: 10}, ListFilters{CollectionSlug: collection.Slug})
	require.NoError(t, err)
	require.Len(t, list.Products, 2)

	stocked, err := repo.List(ctx, pagination.Params{Limit: 10}, ListFilters{CollectionSlug: collection.Slug, InStockOnly: true})
	require.NoError(t, err)
	require.Len(t, stocked.Products, 1)
	assert.Equal(t, inCollection.ID, stocked.Products[0].ID)
}

func TestRepositoryListRejectsBadCursor(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	_, err := repo.List(context.Background(), pagination.Params{Cursor: "not-base64!!"}, ListFilters{})
	require.Error(t, err)
}

func TestRepositoryListCollections(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	aromas := &models.Collection{ID: uuid.New(), Slug: fmt.Sprintf("aromas-%s", uuid.NewString()[:8]), Name: "Aromas"}
	zen := &models.Collection{ID: uuid.New(), Slug: fmt.Sprintf("zen-%s", uuid.NewString()[:8]), Name: "Zen"}
	require.NoError(t, db.Create(zen).Error)
	require.NoError(t, db.Create(aromas).Error)

	list, err := repo.ListCollections(ctx)
	require.NoError(t, err)

	byID := map[uuid.UUID]int{}
	for i, c := range list {
		byID[c.ID] = i
	}
	require.Contains(t, byID, aromas.ID)
	require.Contains(t, byID, zen.ID)
	assert.Less(t, byID[aromas.ID], byID[zen.ID], "collections sort by name")
}
