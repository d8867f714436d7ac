package catalog

import (
	"context"
	"strconv"

	"github.com/khalil-js/VETANIMALIA/internal/domain"
)

// CatalogRepo — неизменяемый каталог в памяти процесса. Заполняется один раз
// при создании и дальше только читается, поэтому синхронизация не нужна.
type CatalogRepo struct {
	categories []string
	products   []domain.Product
	byID       map[string]int // строковый ID -> индекс в products
}

// NewCatalogRepo строит каталог из статических данных витрины.
func NewCatalogRepo() *CatalogRepo {
	return newCatalogRepo(seedCategories, seedProducts)
}

func newCatalogRepo(categories []string, products []domain.Product) *CatalogRepo {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[strconv.FormatInt(p.ID, 10)] = i
	}

	return &CatalogRepo{
		categories: categories,
		products:   products,
		byID:       byID,
	}
}

// Categories возвращает упорядоченный список меток категорий.
func (r *CatalogRepo) Categories(_ context.Context) []string {
	result := make([]string, len(r.categories))
	copy(result, r.categories)

	return result
}

// Products возвращает товары в исходном порядке каталога.
func (r *CatalogRepo) Products(_ context.Context) []domain.Product {
	result := make([]domain.Product, len(r.products))
	copy(result, r.products)

	return result
}

// FindByID ищет товар, сравнивая идентификаторы как строки.
func (r *CatalogRepo) FindByID(_ context.Context, id string) (*domain.Product, bool) {
	i, ok := r.byID[id]
	if !ok {
		return nil, false
	}

	product := r.products[i]
	return &product, true
}
