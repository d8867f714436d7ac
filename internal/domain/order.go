package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Order — эфемерный результат оформления. Никуда не сохраняется:
// живёт только в ответе на сабмит чекаута.
type Order struct {
	ID       string
	Total    decimal.Decimal
	Currency string
	PlacedAt time.Time
}

// NewOrder синтезирует заказ: идентификатор — последние 8 цифр
// миллисекундного таймстемпа с префиксом "ORD-".
func NewOrder(now time.Time, total decimal.Decimal) *Order {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}

	return &Order{
		ID:       "ORD-" + ms,
		Total:    total,
		Currency: Currency,
		PlacedAt: now,
	}
}
