package usecase

import (
	"context"
	"encoding/json"

	"github.com/khalil-js/VETANIMALIA/internal/domain"
	"github.com/khalil-js/VETANIMALIA/pkg/e"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
	"github.com/shopspring/decimal"
)

// cartLineModel — формат одной позиции корзины в хранилище сессии:
// JSON-массив таких объектов под ключом "sess:<id>:cart".
type cartLineModel struct {
	Key      string  `json:"key"`
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Image    string  `json:"image"`
	Qty      int     `json:"qty"`
}

// cartKey возвращает ключ корзины в хранилище сессии.
func cartKey(sessionID string) string {
	return "sess:" + sessionID + ":cart"
}

// CartUseCase реализует корзину поверх хранилища сессии.
type CartUseCase struct {
	catalogRepo CatalogRepository
	store       SessionStore
	logger      logger.Logger
}

func NewCartUC(catalogRepo CatalogRepository, store SessionStore, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		catalogRepo: catalogRepo,
		store:       store,
		logger:      logger,
	}
}

// GetCart возвращает текущее содержимое корзины с итогами.
func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*CartRes, error) {
	return NewCartRes(c.loadCart(ctx, sessionID)), nil
}

// AddToCart добавляет товар в корзину: существующая позиция получает +1
// к количеству, новая создаётся с количеством 1. Обновлённая корзина
// сразу сохраняется в хранилище.
func (c *CartUseCase) AddToCart(ctx context.Context, req *AddToCartReq) (*CartRes, error) {
	const op = "CartUseCase.AddToCart"

	product, err := resolveProduct(ctx, c.catalogRepo, req.ProductID, req.Override)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart := c.loadCart(ctx, req.SessionID)
	cart.AddOrIncrement(product, ParseDisplayPrice(product.Price))

	if err := c.saveCart(ctx, req.SessionID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(cart), nil
}

// loadCart читает корзину из хранилища. Отсутствующие или нечитаемые данные
// дают пустую корзину: промах логируется, но никогда не отдаётся вызывающему.
// Дубликаты ключей в битой записи сливаются, количества меньше 1 трактуются как 1.
func (c *CartUseCase) loadCart(ctx context.Context, sessionID string) *domain.Cart {
	cart := domain.NewCart()

	data, err := c.store.Get(ctx, cartKey(sessionID))
	if err != nil {
		c.logger.Warnf("Cart read failed, falling back to empty cart: %v", err)
		return cart
	}
	if data == nil {
		return cart
	}

	var models []cartLineModel
	if err := json.Unmarshal(data, &models); err != nil {
		c.logger.Warnf("Cart unmarshal failed, falling back to empty cart: %v", err)
		return cart
	}

	for _, m := range models {
		cart.Append(domain.CartLine{
			Key:      m.Key,
			ID:       m.ID,
			Name:     m.Name,
			Price:    decimal.NewFromFloat(m.Price),
			Currency: m.Currency,
			Image:    m.Image,
			Qty:      m.Qty,
		})
	}

	return cart
}

// saveCart сериализует корзину и полностью перезаписывает ключ в хранилище.
func (c *CartUseCase) saveCart(ctx context.Context, sessionID string, cart *domain.Cart) error {
	lines := cart.Lines()
	models := make([]cartLineModel, 0, len(lines))
	for _, line := range lines {
		models = append(models, cartLineModel{
			Key:      line.Key,
			ID:       line.ID,
			Name:     line.Name,
			Price:    line.Price.InexactFloat64(),
			Currency: line.Currency,
			Image:    line.Image,
			Qty:      line.Qty,
		})
	}

	data, err := json.Marshal(models)
	if err != nil {
		return err
	}

	return c.store.Set(ctx, cartKey(sessionID), data)
}

// clearCart опустошает корзину и сохраняет пустое состояние.
func (c *CartUseCase) clearCart(ctx context.Context, sessionID string) error {
	cart := domain.NewCart()
	return c.saveCart(ctx, sessionID, cart)
}
