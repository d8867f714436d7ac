package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/khalil-js/VETANIMALIA/internal/domain"
	"github.com/khalil-js/VETANIMALIA/pkg/e"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
)

// Тексты ошибок валидации — в точности как на форме чекаута.
const (
	msgFirstNameRequired = "First name is required"
	msgLastNameRequired  = "Last name is required"
	msgPhoneRequired     = "Phone is required"
	msgPhoneInvalid      = "Enter a valid phone"
	msgEmailInvalid      = "Invalid email"
	msgCartEmpty         = "Your cart is empty"
)

var (
	// phonePattern: цифры, необязательный ведущий «+», пробелы, скобки,
	// дефисы; не короче 6 символов после трима.
	phonePattern = regexp.MustCompile(`^\+?[0-9\s()-]{6,}$`)
	// emailPattern: минимальная форма nonspace@nonspace.nonspace.
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// fieldOrder — порядок полей формы; по нему выбирается поле для фокуса
// при нескольких ошибках.
var fieldOrder = []string{"firstName", "lastName", "email", "phone"}

// contactModel — формат контакта в хранилище сессии
// под ключом "sess:<id>:checkout:contact".
type contactModel struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// contactKey возвращает ключ контакта в хранилище сессии.
func contactKey(sessionID string) string {
	return "sess:" + sessionID + ":checkout:contact"
}

// CheckoutUseCase реализует чекаут: контакт, валидацию и конечный автомат
// оформления заказа Idle -> Submitting -> (Success | Idle-with-errors).
type CheckoutUseCase struct {
	cartUC      *CartUseCase
	store       SessionStore
	submitDelay time.Duration
	logger      logger.Logger

	// inFlight — по-сессионный затвор сабмита: повторный запрос во время
	// Submitting молча игнорируется, очередь не заводится.
	inFlight sync.Map
}

func NewCheckoutUC(cartUC *CartUseCase, store SessionStore, submitDelay time.Duration, logger logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartUC:      cartUC,
		store:       store,
		submitDelay: submitDelay,
		logger:      logger,
	}
}

// Summary возвращает данные страницы чекаута: корзину, контакт и итоги.
func (c *CheckoutUseCase) Summary(ctx context.Context, sessionID string) (*CheckoutSummaryRes, error) {
	cart := c.cartUC.loadCart(ctx, sessionID)
	contact := c.loadContact(ctx, sessionID)

	return NewCheckoutSummaryRes(cart, contact), nil
}

// SaveContact перезаписывает сохранённый контакт. Вызывается на каждое
// изменение полей формы.
func (c *CheckoutUseCase) SaveContact(ctx context.Context, req *SaveContactReq) error {
	const op = "CheckoutUseCase.SaveContact"

	data, err := json.Marshal(contactModel{
		FirstName: req.Contact.FirstName,
		LastName:  req.Contact.LastName,
		Email:     req.Contact.Email,
		Phone:     req.Contact.Phone,
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := c.store.Set(ctx, contactKey(req.SessionID), data); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// PlaceOrder выполняет сабмит чекаута. Ошибки валидации возвращают автомат
// в Idle с заполненной картой ошибок; успешный сабмит после имитируемой
// задержки синтезирует заказ и очищает корзину. Контакт не очищается.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, sessionID string) (*PlaceOrderRes, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	cart := c.cartUC.loadCart(ctx, sessionID)
	contact := c.loadContact(ctx, sessionID)

	if errs := ValidateContact(contact, cart.Len()); len(errs) > 0 {
		return &PlaceOrderRes{
			State:           SubmitStateRejected,
			Errors:          errs,
			FirstErrorField: firstErrorField(errs),
		}, nil
	}

	if _, busy := c.inFlight.LoadOrStore(sessionID, struct{}{}); busy {
		return &PlaceOrderRes{State: SubmitStateSubmitting}, nil
	}
	defer c.inFlight.Delete(sessionID)

	// Имитация обращения к бэкенду размещения заказа. Единственная точка
	// ожидания в системе; отмена не поддерживается, сбой не моделируется.
	time.Sleep(c.submitDelay)

	order := domain.NewOrder(time.Now(), cart.Subtotal())

	if err := c.cartUC.clearCart(ctx, sessionID); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Infof("Order %s placed, total %s %s", order.ID, order.Total.StringFixed(2), order.Currency)

	return &PlaceOrderRes{
		State: SubmitStatePlaced,
		Order: order,
	}, nil
}

// loadContact читает контакт из хранилища. Отсутствующие или нечитаемые
// данные дают контакт с пустыми полями, промах логируется.
func (c *CheckoutUseCase) loadContact(ctx context.Context, sessionID string) *domain.Contact {
	data, err := c.store.Get(ctx, contactKey(sessionID))
	if err != nil {
		c.logger.Warnf("Contact read failed, falling back to defaults: %v", err)
		return domain.DefaultContact()
	}
	if data == nil {
		return domain.DefaultContact()
	}

	var m contactModel
	if err := json.Unmarshal(data, &m); err != nil {
		c.logger.Warnf("Contact unmarshal failed, falling back to defaults: %v", err)
		return domain.DefaultContact()
	}

	return &domain.Contact{
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
	}
}

// ValidateContact проверяет поля контакта и корзину. Правила независимы:
// собираются все нарушения, без короткого замыкания. Пустая карта — валидно.
func ValidateContact(contact *domain.Contact, cartLen int) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(contact.FirstName) == "" {
		errs["firstName"] = msgFirstNameRequired
	}

	if strings.TrimSpace(contact.LastName) == "" {
		errs["lastName"] = msgLastNameRequired
	}

	phone := strings.TrimSpace(contact.Phone)
	switch {
	case phone == "":
		errs["phone"] = msgPhoneRequired
	case !isValidPhone(phone):
		errs["phone"] = msgPhoneInvalid
	}

	if email := strings.TrimSpace(contact.Email); email != "" && !isValidEmail(email) {
		errs["email"] = msgEmailInvalid
	}

	if cartLen == 0 {
		errs["cart"] = msgCartEmpty
	}

	return errs
}

// isValidPhone проверяет телефон на международно-подобный формат.
func isValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// isValidEmail проверяет минимальную форму адреса.
func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// firstErrorField возвращает первое ошибочное поле в порядке объявления
// полей формы; ошибка корзины полем формы не является.
func firstErrorField(errs map[string]string) string {
	for _, field := range fieldOrder {
		if _, ok := errs[field]; ok {
			return field
		}
	}

	return ""
}
