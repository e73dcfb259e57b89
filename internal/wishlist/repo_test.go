package wishlist

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wickandhive/storefront-backend/pkg/db/models"
)

func setupWishlistTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS wishlist_items (
  id TEXT PRIMARY KEY,
  session_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  created_at DATETIME,
  UNIQUE (session_id, product_id)
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func TestRepositoryAddIsIdempotent(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	session := fmt.Sprintf("session_%s", uuid.NewString())
	productID := uuid.New()

	require.NoError(t, repo.Add(ctx, &models.WishlistItem{SessionID: session, ProductID: productID}))
	require.NoError(t, repo.Add(ctx, &models.WishlistItem{SessionID: session, ProductID: productID}))

	ids, err := repo.ListProductIDs(ctx, session)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, productID, ids[0])
}

func TestRepositoryContainsAndRemove(t *testing.T) {
	db := setupWishlistTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	session := fmt.Sprintf("session_%s", uuid.NewString())
	productID := uuid.New()

	found, err := repo.Contains(ctx, session, productID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Add(ctx, &models.WishlistItem{SessionID: session, ProductID: productID}))

	found, err = repo.Contains(ctx, session, productID)
	require.NoError(t, err)
	assert.True(t, found)

	require.NoError(t, repo.Remove(ctx, session, productID))

	found, err = repo.Contains(ctx, session, productID)
	require.NoError(t, err)
	assert.False(t, found)
}
