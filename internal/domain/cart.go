package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Currency — единственная поддерживаемая валюта витрины.
const Currency = "GEL"

// CartLine описывает одну позицию корзины: снимок товара на момент добавления
// плюс количество. Key — идентификатор товара в виде строки, по нему позиции
// сливаются при повторном добавлении.
type CartLine struct {
	Key      string
	ID       int64
	Name     string
	Price    decimal.Decimal // цена за единицу, без валюты
	Currency string
	Image    string
	Qty      int
}

func NewCartLine(product *Product, unitPrice decimal.Decimal) *CartLine {
	return &CartLine{
		Key:      strconv.FormatInt(product.ID, 10),
		ID:       product.ID,
		Name:     product.Name,
		Price:    unitPrice,
		Currency: Currency,
		Image:    product.Image,
		Qty:      1,
	}
}

// Cart — упорядоченная коллекция позиций. Уникальность ключа обеспечена
// структурно: map по ключу плюс список ключей в порядке добавления.
type Cart struct {
	order []string
	lines map[string]*CartLine
}

func NewCart() *Cart {
	return &Cart{
		lines: make(map[string]*CartLine),
	}
}

// Append добавляет позицию в конец корзины. Позиция с уже существующим ключом
// не дублируется: количества складываются. Дефолты для битых записей:
// Qty < 1 трактуется как 1 (отрицательная цена невозможна после парсинга).
func (c *Cart) Append(line CartLine) {
	if line.Qty < 1 {
		line.Qty = 1
	}
	if line.Currency == "" {
		line.Currency = Currency
	}

	if existing, ok := c.lines[line.Key]; ok {
		existing.Qty += line.Qty
		return
	}

	c.order = append(c.order, line.Key)
	c.lines[line.Key] = &line
}

// AddOrIncrement реализует добавление товара в корзину: существующая позиция
// получает Qty+1, новая создаётся с Qty = 1.
func (c *Cart) AddOrIncrement(product *Product, unitPrice decimal.Decimal) *CartLine {
	key := strconv.FormatInt(product.ID, 10)
	if existing, ok := c.lines[key]; ok {
		existing.Qty++
		return existing
	}

	line := NewCartLine(product, unitPrice)
	c.order = append(c.order, key)
	c.lines[key] = line

	return line
}

// Lines возвращает позиции в порядке добавления.
func (c *Cart) Lines() []CartLine {
	result := make([]CartLine, 0, len(c.order))
	for _, key := range c.order {
		result = append(result, *c.lines[key])
	}

	return result
}

// Subtotal — сумма price*qty по всем позициям. Пустая корзина даёт 0.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, key := range c.order {
		line := c.lines[key]
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}

	return total
}

// Len возвращает количество позиций (не суммарное количество единиц).
func (c *Cart) Len() int {
	return len(c.order)
}

// Clear опустошает корзину.
func (c *Cart) Clear() {
	c.order = nil
	c.lines = make(map[string]*CartLine)
}
