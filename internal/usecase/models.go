package usecase

import (
	"github.com/khalil-js/VETANIMALIA/internal/domain"
	"github.com/shopspring/decimal"
)

// CATALOG USECASE

// BrowseReq — запрос каталога с фильтром по категории и поисковой строке.
type BrowseReq struct {
	Category string
	Search   string
}

// BrowseRes — отфильтрованный список товаров в порядке каталога.
type BrowseRes struct {
	Products []domain.Product
}

// ProductDetailsReq — запрос страницы товара. Override — необязательная
// частичная запись, переданная через навигацию.
type ProductDetailsReq struct {
	ID       string
	Override *domain.ProductOverride
}

// ProductDetailsRes — данные страницы товара.
type ProductDetailsRes struct {
	Product   domain.Product
	UnitPrice decimal.Decimal
	Gallery   []domain.GalleryImage
	Related   []domain.Product
}

// CART USECASE

// AddToCartReq — запрос на добавление товара в корзину сессии.
type AddToCartReq struct {
	SessionID string
	ProductID string
	Override  *domain.ProductOverride
}

// CartRes — текущее состояние корзины с итогами.
type CartRes struct {
	Lines    []domain.CartLine
	Subtotal decimal.Decimal
	Total    decimal.Decimal
	Currency string
}

// CHECKOUT USECASE

// SaveContactReq — сохранение контактных данных при каждом изменении полей.
type SaveContactReq struct {
	SessionID string
	Contact   domain.Contact
}

// CheckoutSummaryRes — данные страницы чекаута: корзина, контакт, итоги.
type CheckoutSummaryRes struct {
	Lines    []domain.CartLine
	Contact  domain.Contact
	Subtotal decimal.Decimal
	Total    decimal.Decimal
	Currency string
}

// SubmitState — состояние конечного автомата оформления заказа.
type SubmitState string

const (
	// SubmitStatePlaced — заказ размещён, корзина очищена.
	SubmitStatePlaced SubmitState = "placed"
	// SubmitStateSubmitting — сабмит уже выполняется, повторный запрос проигнорирован.
	SubmitStateSubmitting SubmitState = "submitting"
	// SubmitStateRejected — валидация не прошла, автомат остался в Idle.
	SubmitStateRejected SubmitState = "rejected"
)

// PlaceOrderRes — результат сабмита чекаута.
// Errors непустой только в состоянии rejected; Order — только в placed.
type PlaceOrderRes struct {
	State           SubmitState
	Errors          map[string]string
	FirstErrorField string
	Order           *domain.Order
}

// MAPPERS

func NewBrowseReq(category, search string) *BrowseReq {
	return &BrowseReq{
		Category: category,
		Search:   search,
	}
}

func NewBrowseRes(products []domain.Product) *BrowseRes {
	return &BrowseRes{Products: products}
}

func NewProductDetailsReq(id string, override *domain.ProductOverride) *ProductDetailsReq {
	return &ProductDetailsReq{
		ID:       id,
		Override: override,
	}
}

func NewAddToCartReq(sessionID, productID string, override *domain.ProductOverride) *AddToCartReq {
	return &AddToCartReq{
		SessionID: sessionID,
		ProductID: productID,
		Override:  override,
	}
}

func NewCartRes(cart *domain.Cart) *CartRes {
	subtotal := cart.Subtotal()

	return &CartRes{
		Lines:    cart.Lines(),
		Subtotal: subtotal,
		Total:    subtotal, // доставка бесплатная, итог равен подытогу
		Currency: domain.Currency,
	}
}

func NewSaveContactReq(sessionID string, contact domain.Contact) *SaveContactReq {
	return &SaveContactReq{
		SessionID: sessionID,
		Contact:   contact,
	}
}

func NewCheckoutSummaryRes(cart *domain.Cart, contact *domain.Contact) *CheckoutSummaryRes {
	subtotal := cart.Subtotal()

	return &CheckoutSummaryRes{
		Lines:    cart.Lines(),
		Contact:  *contact,
		Subtotal: subtotal,
		Total:    subtotal,
		Currency: domain.Currency,
	}
}
