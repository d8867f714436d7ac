package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalil-js/VETANIMALIA/internal/domain"
	catalogRepo "github.com/khalil-js/VETANIMALIA/internal/repository/catalog"
	memoryRepo "github.com/khalil-js/VETANIMALIA/internal/repository/memory"
	"github.com/khalil-js/VETANIMALIA/internal/usecase"
	"github.com/khalil-js/VETANIMALIA/pkg/e"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
)

func newCartUC(store usecase.SessionStore) *usecase.CartUseCase {
	return usecase.NewCartUC(catalogRepo.NewCatalogRepo(), store, logger.NewNopLogger())
}

func TestGetCartEmptySession(t *testing.T) {
	uc := newCartUC(memoryRepo.NewStoreRepo())

	res, err := uc.GetCart(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Empty(t, res.Lines)
	assert.True(t, res.Subtotal.IsZero())
	assert.Equal(t, domain.Currency, res.Currency)
}

func TestAddToCartIncrementsExistingLine(t *testing.T) {
	uc := newCartUC(memoryRepo.NewStoreRepo())
	ctx := context.Background()

	res, err := uc.AddToCart(ctx, usecase.NewAddToCartReq("sess-1", "1", nil))
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 1, res.Lines[0].Qty)

	res, err = uc.AddToCart(ctx, usecase.NewAddToCartReq("sess-1", "1", nil))
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 2, res.Lines[0].Qty)
	assert.True(t, res.Subtotal.Equal(decimal.RequireFromString("270.00")),
		"subtotal = %s", res.Subtotal)
}

func TestAddToCartDistinctProducts(t *testing.T) {
	uc := newCartUC(memoryRepo.NewStoreRepo())
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, usecase.NewAddToCartReq("sess-1", "1", nil))
	require.NoError(t, err)

	res, err := uc.AddToCart(ctx, usecase.NewAddToCartReq("sess-1", "2", nil))
	require.NoError(t, err)

	require.Len(t, res.Lines, 2)
	assert.Equal(t, "1", res.Lines[0].Key)
	assert.Equal(t, "2", res.Lines[1].Key)
	// 135.00 + 48.00, доставка бесплатная
	assert.True(t, res.Subtotal.Equal(decimal.RequireFromString("183.00")))
	assert.True(t, res.Total.Equal(res.Subtotal))
}

func TestAddToCartUnknownProduct(t *testing.T) {
	uc := newCartUC(memoryRepo.NewStoreRepo())

	_, err := uc.AddToCart(context.Background(), usecase.NewAddToCartReq("sess-1", "999", nil))

	require.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrProductNotFound))
}

func TestAddToCartOverridePrice(t *testing.T) {
	uc := newCartUC(memoryRepo.NewStoreRepo())
	price := "40.00 GEL"

	res, err := uc.AddToCart(context.Background(),
		usecase.NewAddToCartReq("sess-1", "2", &domain.ProductOverride{Price: &price}))
	require.NoError(t, err)

	require.Len(t, res.Lines, 1)
	assert.True(t, res.Lines[0].Price.Equal(decimal.RequireFromString("40.00")))
}

func TestCartSessionsAreIsolated(t *testing.T) {
	uc := newCartUC(memoryRepo.NewStoreRepo())
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, usecase.NewAddToCartReq("sess-1", "1", nil))
	require.NoError(t, err)

	res, err := uc.GetCart(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
}

func TestGetCartToleratesMalformedStorage(t *testing.T) {
	store := memoryRepo.NewStoreRepo()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess:sess-1:cart", []byte("{not json")))

	uc := newCartUC(store)
	res, err := uc.GetCart(ctx, "sess-1")

	// Нечитаемые данные дают пустую корзину, а не ошибку
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
}

func TestGetCartMergesDuplicatePersistedKeys(t *testing.T) {
	store := memoryRepo.NewStoreRepo()
	ctx := context.Background()

	raw := `[{"key":"1","id":1,"name":"a","price":135,"currency":"GEL","image":"/a.png","qty":1},
	         {"key":"1","id":1,"name":"a","price":135,"currency":"GEL","image":"/a.png","qty":2},
	         {"key":"2","id":2,"name":"b","price":48,"currency":"","image":"/b.png","qty":0}]`
	require.NoError(t, store.Set(ctx, "sess:sess-1:cart", []byte(raw)))

	uc := newCartUC(store)
	res, err := uc.GetCart(ctx, "sess-1")
	require.NoError(t, err)

	require.Len(t, res.Lines, 2)
	assert.Equal(t, 3, res.Lines[0].Qty)
	assert.Equal(t, 1, res.Lines[1].Qty)
	assert.Equal(t, domain.Currency, res.Lines[1].Currency)
}
