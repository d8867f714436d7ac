package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/khalil-js/VETANIMALIA/internal/domain"
	"github.com/khalil-js/VETANIMALIA/internal/usecase"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Возвращает упорядоченные метки категорий, включая сентинел "All"
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalogUsecase.Categories(r.Context()),
	})
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Фильтрует каталог по категории и поисковой подстроке (без учёта регистра)
//	@Tags			catalog
//	@Produce		json
//	@Param			category	query		string	false	"Категория; по умолчанию All"
//	@Param			search		query		string	false	"Подстрока имени товара"
//	@Success		200			{object}	map[string]interface{}
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategoryAll
	}
	search := r.URL.Query().Get("search")

	res := h.catalogUsecase.Browse(r.Context(), usecase.NewBrowseReq(category, search))

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products": toArrProductJSON(res.Products),
	})
}

// getProduct
//
//	@Summary		Страница товара
//	@Description	Возвращает товар по идентификатору с галереей и похожими товарами
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.catalogUsecase.ResolveDetails(r.Context(), usecase.NewProductDetailsReq(id, nil))
	if err != nil {
		h.logger.Warnf("product %s not resolved: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product":    toProductJSON(res.Product),
		"unit_price": res.UnitPrice.InexactFloat64(),
		"currency":   domain.Currency,
		"gallery":    toGalleryJSON(res.Gallery),
		"related":    toArrProductJSON(res.Related),
	})
}
