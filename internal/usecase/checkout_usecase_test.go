package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalil-js/VETANIMALIA/internal/domain"
	memoryRepo "github.com/khalil-js/VETANIMALIA/internal/repository/memory"
	"github.com/khalil-js/VETANIMALIA/internal/usecase"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
)

func newCheckoutUC(store usecase.SessionStore) (*usecase.CheckoutUseCase, *usecase.CartUseCase) {
	cartUC := newCartUC(store)
	return usecase.NewCheckoutUC(cartUC, store, time.Millisecond, logger.NewNopLogger()), cartUC
}

func validContact() domain.Contact {
	return domain.Contact{
		FirstName: "Nino",
		LastName:  "Beridze",
		Email:     "nino@example.com",
		Phone:     "+995 555 123 456",
	}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name    string
		contact domain.Contact
		cartLen int
		want    map[string]string
	}{
		{
			name:    "all empty with empty cart",
			contact: domain.Contact{},
			cartLen: 0,
			want: map[string]string{
				"firstName": "First name is required",
				"lastName":  "Last name is required",
				"phone":     "Phone is required",
				"cart":      "Your cart is empty",
			},
		},
		{
			name:    "valid contact with items",
			contact: validContact(),
			cartLen: 2,
			want:    map[string]string{},
		},
		{
			name: "whitespace-only names count as empty",
			contact: domain.Contact{
				FirstName: "   ",
				LastName:  "\t",
				Phone:     "+995 555 123 456",
			},
			cartLen: 1,
			want: map[string]string{
				"firstName": "First name is required",
				"lastName":  "Last name is required",
			},
		},
		{
			name: "short phone",
			contact: domain.Contact{
				FirstName: "Nino",
				LastName:  "Beridze",
				Phone:     "12345",
			},
			cartLen: 1,
			want: map[string]string{
				"phone": "Enter a valid phone",
			},
		},
		{
			name: "phone with letters",
			contact: domain.Contact{
				FirstName: "Nino",
				LastName:  "Beridze",
				Phone:     "call me maybe",
			},
			cartLen: 1,
			want: map[string]string{
				"phone": "Enter a valid phone",
			},
		},
		{
			name: "malformed email",
			contact: domain.Contact{
				FirstName: "Nino",
				LastName:  "Beridze",
				Email:     "nino@example",
				Phone:     "+995 555 123 456",
			},
			cartLen: 1,
			want: map[string]string{
				"email": "Invalid email",
			},
		},
		{
			name: "empty email is allowed",
			contact: domain.Contact{
				FirstName: "Nino",
				LastName:  "Beridze",
				Phone:     "(995) 555-123",
			},
			cartLen: 1,
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.ValidateContact(&tt.contact, tt.cartLen)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveContactRoundTrip(t *testing.T) {
	store := memoryRepo.NewStoreRepo()
	uc, _ := newCheckoutUC(store)
	ctx := context.Background()

	contact := validContact()
	require.NoError(t, uc.SaveContact(ctx, usecase.NewSaveContactReq("sess-1", contact)))

	res, err := uc.Summary(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, contact, res.Contact)
}

func TestSaveContactLastWriteWins(t *testing.T) {
	store := memoryRepo.NewStoreRepo()
	uc, _ := newCheckoutUC(store)
	ctx := context.Background()

	first := validContact()
	require.NoError(t, uc.SaveContact(ctx, usecase.NewSaveContactReq("sess-1", first)))

	second := first
	second.Phone = "555 000 111"
	require.NoError(t, uc.SaveContact(ctx, usecase.NewSaveContactReq("sess-1", second)))

	res, err := uc.Summary(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, second, res.Contact)
}

func TestSummaryDefaults(t *testing.T) {
	uc, _ := newCheckoutUC(memoryRepo.NewStoreRepo())

	res, err := uc.Summary(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Empty(t, res.Lines)
	assert.Equal(t, domain.Contact{}, res.Contact)
	assert.True(t, res.Subtotal.IsZero())
	assert.Equal(t, domain.Currency, res.Currency)
}

func TestSummaryToleratesMalformedContact(t *testing.T) {
	store := memoryRepo.NewStoreRepo()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "sess:sess-1:checkout:contact", []byte("not json")))

	uc, _ := newCheckoutUC(store)
	res, err := uc.Summary(ctx, "sess-1")

	require.NoError(t, err)
	assert.Equal(t, domain.Contact{}, res.Contact)
}

func TestPlaceOrderRejectedOnValidation(t *testing.T) {
	uc, _ := newCheckoutUC(memoryRepo.NewStoreRepo())

	res, err := uc.PlaceOrder(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, usecase.SubmitStateRejected, res.State)
	assert.Nil(t, res.Order)
	assert.Contains(t, res.Errors, "firstName")
	assert.Contains(t, res.Errors, "cart")
	// Фокус получает первое поле формы в порядке объявления
	assert.Equal(t, "firstName", res.FirstErrorField)
}

func TestPlaceOrderFirstErrorFieldSkipsCart(t *testing.T) {
	store := memoryRepo.NewStoreRepo()
	uc, cartUC := newCheckoutUC(store)
	ctx := context.Background()

	_, err := cartUC.AddToCart(ctx, usecase.NewAddToCartReq("sess-1", "1", nil))
	require.NoError(t, err)

	contact := validContact()
	contact.Phone = "bad"
	require.NoError(t, uc.SaveContact(ctx, usecase.NewSaveContactReq("sess-1", contact)))

	res, err := uc.PlaceOrder(ctx, "sess-1")
	require.NoError(t, err)

	assert.Equal(t, usecase.SubmitStateRejected, res.State)
	assert.Equal(t, "phone", res.FirstErrorField)
}

func TestPlaceOrderSuccess(t *testing.T) {
	store := memoryRepo.NewStoreRepo()
	uc, cartUC := newCheckoutUC(store)
	ctx := context.Background()

	_, err := cartUC.AddToCart(ctx, usecase.NewAddToCartReq("sess-1", "1", nil))
	require.NoError(t, err)
	_, err = cartUC.AddToCart(ctx, usecase.NewAddToCartReq("sess-1", "1", nil))
	require.NoError(t, err)

	require.NoError(t, uc.SaveContact(ctx, usecase.NewSaveContactReq("sess-1", validContact())))

	res, err := uc.PlaceOrder(ctx, "sess-1")
	require.NoError(t, err)

	require.Equal(t, usecase.SubmitStatePlaced, res.State)
	require.NotNil(t, res.Order)
	assert.True(t, strings.HasPrefix(res.Order.ID, "ORD-"), "order id = %s", res.Order.ID)
	assert.True(t, res.Order.Total.Equal(decimal.RequireFromString("270.00")),
		"total = %s", res.Order.Total)
	assert.Empty(t, res.Errors)

	// Корзина очищается, контакт переживает заказ
	cartRes, err := cartUC.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, cartRes.Lines)

	summary, err := uc.Summary(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, validContact(), summary.Contact)
}

func TestPlaceOrderConcurrentSubmitIsIgnored(t *testing.T) {
	store := memoryRepo.NewStoreRepo()
	uc, cartUC := newCheckoutUC(store)
	ctx := context.Background()

	_, err := cartUC.AddToCart(ctx, usecase.NewAddToCartReq("sess-1", "1", nil))
	require.NoError(t, err)
	require.NoError(t, uc.SaveContact(ctx, usecase.NewSaveContactReq("sess-1", validContact())))

	slow := usecase.NewCheckoutUC(cartUC, store, 200*time.Millisecond, logger.NewNopLogger())

	type result struct {
		res *usecase.PlaceOrderRes
		err error
	}
	firstCh := make(chan result, 1)
	go func() {
		res, err := slow.PlaceOrder(ctx, "sess-1")
		firstCh <- result{res, err}
	}()

	// Ждём входа первого сабмита в Submitting
	time.Sleep(50 * time.Millisecond)

	second, err := slow.PlaceOrder(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.SubmitStateSubmitting, second.State)
	assert.Nil(t, second.Order)

	first := <-firstCh
	require.NoError(t, first.err)
	assert.Equal(t, usecase.SubmitStatePlaced, first.res.State)
}
