package http

import (
	"net/http"

	"github.com/khalil-js/VETANIMALIA/internal/domain"
	"github.com/khalil-js/VETANIMALIA/internal/usecase"
	"github.com/khalil-js/VETANIMALIA/pkg/e"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

// CheckoutJSON — сводка чекаута: корзина, контакт, итоги.
type CheckoutJSON struct {
	Lines    []CartLineJSON `json:"lines"`
	Contact  ContactJSON    `json:"contact"`
	Subtotal float64        `json:"subtotal"`
	Total    float64        `json:"total"`
	Currency string         `json:"currency"`
}

func toCheckoutJSON(res *usecase.CheckoutSummaryRes) CheckoutJSON {
	lines := make([]CartLineJSON, 0, len(res.Lines))
	for _, line := range res.Lines {
		lines = append(lines, toCartLineJSON(line))
	}

	return CheckoutJSON{
		Lines:    lines,
		Contact:  toContactJSON(res.Contact),
		Subtotal: res.Subtotal.InexactFloat64(),
		Total:    res.Total.InexactFloat64(),
		Currency: res.Currency,
	}
}

// getCheckout
//
//	@Summary		Страница чекаута
//	@Description	Возвращает корзину, сохранённый контакт и итоги
//	@Tags			checkout
//	@Produce		json
//	@Success		200	{object}	CheckoutJSON
//	@Router			/checkout [get]
func (h *CheckoutHandler) getCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := h.checkoutUsecase.Summary(r.Context(), SessionIDFromCtx(r.Context()))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCheckoutJSON(res))
}

// putContact
//
//	@Summary		Сохранение контакта
//	@Description	Перезаписывает контактные данные; вызывается на каждое изменение полей формы
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ContactJSON	true	"Контактные данные"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Некорректное тело запроса"
//	@Router			/checkout/contact [put]
func (h *CheckoutHandler) putContact(w http.ResponseWriter, r *http.Request) {
	var req ContactJSON
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	contact := domain.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	err := h.checkoutUsecase.SaveContact(r.Context(),
		usecase.NewSaveContactReq(SessionIDFromCtx(r.Context()), contact))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"saved": true,
	})
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Валидирует контакт и корзину, имитирует размещение заказа и очищает корзину
//	@Tags			checkout
//	@Produce		json
//	@Success		201	{object}	map[string]interface{}	"Заказ размещён"
//	@Success		202	{object}	map[string]interface{}	"Сабмит уже выполняется"
//	@Failure		400	{object}	map[string]interface{}	"Ошибки валидации по полям"
//	@Router			/checkout/order [post]
func (h *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	res, err := h.checkoutUsecase.PlaceOrder(r.Context(), SessionIDFromCtx(r.Context()))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	switch res.State {
	case usecase.SubmitStateRejected:
		WriteSuccess(w, http.StatusBadRequest, map[string]interface{}{
			"status":            string(res.State),
			"errors":            res.Errors,
			"first_error_field": res.FirstErrorField,
		})
	case usecase.SubmitStateSubmitting:
		// Повторный сабмит во время Submitting — no-op, без новой имитации
		WriteSuccess(w, http.StatusAccepted, map[string]interface{}{
			"status": string(res.State),
		})
	default:
		WriteSuccess(w, http.StatusCreated, map[string]interface{}{
			"status":   string(res.State),
			"order_id": res.Order.ID,
			"total":    res.Order.Total.InexactFloat64(),
			"currency": res.Order.Currency,
		})
	}
}
