package usecase

import (
	"context"

	"github.com/khalil-js/VETANIMALIA/internal/domain"
)

// CatalogRepository — доступ к неизменяемому каталогу товаров.
type CatalogRepository interface {
	Categories(ctx context.Context) []string
	Products(ctx context.Context) []domain.Product
	// FindByID ищет товар, сравнивая идентификаторы как строки.
	FindByID(ctx context.Context, id string) (*domain.Product, bool)
}

// SessionStore — долговременное key-value хранилище, скоупленное на сессию
// покупателя. Get возвращает nil, nil для отсутствующего ключа.
// Set полностью перезаписывает прежнее содержимое ключа.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}
