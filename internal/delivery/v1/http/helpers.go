package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/khalil-js/VETANIMALIA/internal/domain"
	"github.com/khalil-js/VETANIMALIA/internal/usecase"
	"github.com/khalil-js/VETANIMALIA/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSONBody разбирает JSON-тело запроса, отклоняя неизвестные поля.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// JSON-представления доменных записей в ответах API.

type GalleryImageJSON struct {
	ID  string `json:"id"`
	Src string `json:"src"`
}

type ProductJSON struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Price       string             `json:"price"`
	Category    string             `json:"category"`
	Image       string             `json:"image"`
	Brand       string             `json:"brand,omitempty"`
	Size        string             `json:"size,omitempty"`
	Description string             `json:"description,omitempty"`
	Features    []string           `json:"features,omitempty"`
	Gallery     []GalleryImageJSON `json:"gallery,omitempty"`
}

type CartLineJSON struct {
	Key       string  `json:"key"`
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Image     string  `json:"image"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"line_total"`
}

type CartJSON struct {
	Lines    []CartLineJSON `json:"lines"`
	Subtotal float64        `json:"subtotal"`
	Total    float64        `json:"total"`
	Currency string         `json:"currency"`
}

type ContactJSON struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ProductOverrideJSON struct {
	ID          *int64             `json:"id,omitempty"`
	Name        *string            `json:"name,omitempty"`
	Price       *string            `json:"price,omitempty"`
	Category    *string            `json:"category,omitempty"`
	Image       *string            `json:"image,omitempty"`
	Brand       *string            `json:"brand,omitempty"`
	Size        *string            `json:"size,omitempty"`
	Description *string            `json:"description,omitempty"`
	Features    []string           `json:"features,omitempty"`
	Gallery     []GalleryImageJSON `json:"gallery,omitempty"`
}

func toProductJSON(p domain.Product) ProductJSON {
	return ProductJSON{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Brand:       p.Brand,
		Size:        p.Size,
		Description: p.Description,
		Features:    p.Features,
		Gallery:     toGalleryJSON(p.Gallery),
	}
}

func toArrProductJSON(products []domain.Product) []ProductJSON {
	result := make([]ProductJSON, 0, len(products))
	for _, p := range products {
		result = append(result, toProductJSON(p))
	}

	return result
}

func toGalleryJSON(gallery []domain.GalleryImage) []GalleryImageJSON {
	if gallery == nil {
		return nil
	}

	result := make([]GalleryImageJSON, 0, len(gallery))
	for _, img := range gallery {
		result = append(result, GalleryImageJSON{ID: img.ID, Src: img.Src})
	}

	return result
}

func toCartLineJSON(line domain.CartLine) CartLineJSON {
	return CartLineJSON{
		Key:       line.Key,
		ID:        line.ID,
		Name:      line.Name,
		Price:     line.Price.InexactFloat64(),
		Currency:  line.Currency,
		Image:     line.Image,
		Qty:       line.Qty,
		LineTotal: line.Price.Mul(decimalFromInt(line.Qty)).InexactFloat64(),
	}
}

func toCartJSON(res *usecase.CartRes) CartJSON {
	lines := make([]CartLineJSON, 0, len(res.Lines))
	for _, line := range res.Lines {
		lines = append(lines, toCartLineJSON(line))
	}

	return CartJSON{
		Lines:    lines,
		Subtotal: res.Subtotal.InexactFloat64(),
		Total:    res.Total.InexactFloat64(),
		Currency: res.Currency,
	}
}

func toContactJSON(contact domain.Contact) ContactJSON {
	return ContactJSON{
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func toDomainOverride(ov *ProductOverrideJSON) *domain.ProductOverride {
	if ov == nil {
		return nil
	}

	var gallery []domain.GalleryImage
	if ov.Gallery != nil {
		gallery = make([]domain.GalleryImage, 0, len(ov.Gallery))
		for _, img := range ov.Gallery {
			gallery = append(gallery, domain.GalleryImage{ID: img.ID, Src: img.Src})
		}
	}

	return &domain.ProductOverride{
		ID:          ov.ID,
		Name:        ov.Name,
		Price:       ov.Price,
		Category:    ov.Category,
		Image:       ov.Image,
		Brand:       ov.Brand,
		Size:        ov.Size,
		Description: ov.Description,
		Features:    ov.Features,
		Gallery:     gallery,
	}
}
