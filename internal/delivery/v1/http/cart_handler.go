package http

import (
	"net/http"

	"github.com/khalil-js/VETANIMALIA/internal/usecase"
	"github.com/khalil-js/VETANIMALIA/pkg/e"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
)

type CartHandler struct {
	cartUsecase     usecase.CartUC
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CartHandler {
	return &CartHandler{
		cartUsecase:     cartUsecase,
		checkoutUsecase: checkoutUsecase,
		logger:          logger,
	}
}

// AddCartItemRequest — тело запроса на добавление товара в корзину.
// Override — необязательная частичная запись товара (аналог navigation state
// исходной витрины); BuyNow добавляет товар и сразу возвращает сводку чекаута.
type AddCartItemRequest struct {
	ProductID string               `json:"product_id"`
	Override  *ProductOverrideJSON `json:"override,omitempty"`
	BuyNow    bool                 `json:"buy_now,omitempty"`
}

// getCart
//
//	@Summary		Корзина сессии
//	@Description	Возвращает позиции корзины с подытогом и итогом
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	CartJSON
//	@Router			/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.cartUsecase.GetCart(r.Context(), SessionIDFromCtx(r.Context()))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartJSON(res))
}

// addCartItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Существующая позиция получает +1 к количеству, новая создаётся с количеством 1
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddCartItemRequest	true	"Товар и необязательный override"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Некорректное тело запроса"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (h *CartHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if req.ProductID == "" {
		h.logger.Warnf("%d %s: empty product_id", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	sessionID := SessionIDFromCtx(r.Context())
	res, err := h.cartUsecase.AddToCart(r.Context(),
		usecase.NewAddToCartReq(sessionID, req.ProductID, toDomainOverride(req.Override)))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	response := map[string]interface{}{
		"cart": toCartJSON(res),
	}

	// buy_now: «купить сейчас» — добавление плюс переход на чекаут одним вызовом
	if req.BuyNow {
		summary, err := h.checkoutUsecase.Summary(r.Context(), sessionID)
		if err != nil {
			h.logger.Warnf("%s", err.Error())
			WriteError(w, err)
			return
		}
		response["checkout"] = toCheckoutJSON(summary)
	}

	WriteSuccess(w, http.StatusCreated, response)
}
