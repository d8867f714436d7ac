package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddOrIncrement(t *testing.T) {
	cart := NewCart()
	product := &Product{ID: 7, Name: "Dog Food", Image: "/dogfood.png"}
	price := decimal.RequireFromString("48.00")

	line := cart.AddOrIncrement(product, price)
	require.Equal(t, 1, line.Qty)
	require.Equal(t, "7", line.Key)
	require.Equal(t, Currency, line.Currency)

	// Повторное добавление того же товара не создаёт вторую позицию
	line = cart.AddOrIncrement(product, price)
	assert.Equal(t, 2, line.Qty)
	assert.Equal(t, 1, cart.Len())

	other := &Product{ID: 8, Name: "Cat Food"}
	cart.AddOrIncrement(other, price)
	assert.Equal(t, 2, cart.Len())

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "7", lines[0].Key)
	assert.Equal(t, "8", lines[1].Key)
}

func TestCartAppendMergesDuplicateKeys(t *testing.T) {
	cart := NewCart()
	price := decimal.RequireFromString("10.50")

	cart.Append(CartLine{Key: "1", ID: 1, Price: price, Qty: 2})
	cart.Append(CartLine{Key: "1", ID: 1, Price: price, Qty: 3})

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 5, cart.Lines()[0].Qty)
}

func TestCartAppendDefaults(t *testing.T) {
	cart := NewCart()

	cart.Append(CartLine{Key: "1", Qty: 0})
	cart.Append(CartLine{Key: "2", Qty: -3, Currency: "USD"})

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Qty)
	assert.Equal(t, Currency, lines[0].Currency)
	assert.Equal(t, 1, lines[1].Qty)
	assert.Equal(t, "USD", lines[1].Currency)
}

func TestCartSubtotal(t *testing.T) {
	cart := NewCart()
	assert.True(t, cart.Subtotal().IsZero())

	cart.Append(CartLine{Key: "1", Price: decimal.RequireFromString("135.00"), Qty: 2})
	cart.Append(CartLine{Key: "2", Price: decimal.RequireFromString("48.00"), Qty: 1})

	assert.True(t, cart.Subtotal().Equal(decimal.RequireFromString("318.00")),
		"subtotal = %s", cart.Subtotal())
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Append(CartLine{Key: "1", Price: decimal.NewFromInt(5), Qty: 1})

	cart.Clear()

	assert.Equal(t, 0, cart.Len())
	assert.Empty(t, cart.Lines())
	assert.True(t, cart.Subtotal().IsZero())
}
