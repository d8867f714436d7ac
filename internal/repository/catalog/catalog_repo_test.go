package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalil-js/VETANIMALIA/internal/domain"
)

func TestFindByID(t *testing.T) {
	repo := NewCatalogRepo()
	ctx := context.Background()

	product, ok := repo.FindByID(ctx, "2")
	require.True(t, ok)
	assert.Equal(t, int64(2), product.ID)

	_, ok = repo.FindByID(ctx, "999")
	assert.False(t, ok)

	// Идентификаторы сверяются как строки, без нормализации
	_, ok = repo.FindByID(ctx, "02")
	assert.False(t, ok)
}

func TestCatalogReturnsCopies(t *testing.T) {
	repo := NewCatalogRepo()
	ctx := context.Background()

	categories := repo.Categories(ctx)
	require.NotEmpty(t, categories)
	categories[0] = "mutated"
	assert.Equal(t, domain.CategoryAll, repo.Categories(ctx)[0])

	products := repo.Products(ctx)
	require.NotEmpty(t, products)
	products[0].Name = "mutated"
	assert.NotEqual(t, "mutated", repo.Products(ctx)[0].Name)

	found, ok := repo.FindByID(ctx, "1")
	require.True(t, ok)
	found.Name = "mutated"
	again, _ := repo.FindByID(ctx, "1")
	assert.NotEqual(t, "mutated", again.Name)
}

func TestCategoriesOrder(t *testing.T) {
	repo := NewCatalogRepo()

	categories := repo.Categories(context.Background())
	require.NotEmpty(t, categories)
	assert.Equal(t, domain.CategoryAll, categories[0])

	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
}
