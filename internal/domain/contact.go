package domain

// Contact — контактные данные покупателя на чекауте.
// Email необязателен, Phone обязателен. Запись переживает оформленный заказ.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// DefaultContact возвращает контакт с пустыми полями — состояние
// до первого ввода или после нечитаемых данных в хранилище.
func DefaultContact() *Contact {
	return &Contact{}
}
