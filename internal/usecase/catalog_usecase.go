package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/khalil-js/VETANIMALIA/internal/domain"
	"github.com/khalil-js/VETANIMALIA/pkg/e"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
	"github.com/shopspring/decimal"
)

// relatedLimit — сколько товаров показывать в блоке «ещё из наших товаров».
const relatedLimit = 4

// nonPricePattern вычищает из отображаемой цены всё, кроме цифр и точки.
var nonPricePattern = regexp.MustCompile(`[^\d.]`)

// CatalogUseCase реализует просмотр каталога и страницу товара.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
	logger      logger.Logger
}

func NewCatalogUC(catalogRepo CatalogRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Categories возвращает упорядоченный список меток категорий, включая "All".
func (c *CatalogUseCase) Categories(ctx context.Context) []string {
	return c.catalogRepo.Categories(ctx)
}

// Browse фильтрует каталог по категории и поисковой подстроке.
// Оба предиката объединяются по AND, порядок каталога сохраняется.
func (c *CatalogUseCase) Browse(ctx context.Context, req *BrowseReq) *BrowseRes {
	products := c.catalogRepo.Products(ctx)
	term := strings.ToLower(req.Search)

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		// Категория сверяется с точным совпадением, "All" пропускает всё
		matchCategory := req.Category == domain.CategoryAll || p.Category == req.Category
		matchSearch := strings.Contains(strings.ToLower(p.Name), term)
		if matchCategory && matchSearch {
			result = append(result, p)
		}
	}

	return NewBrowseRes(result)
}

// ResolveDetails собирает данные страницы товара: запись каталога со слитым
// override, галерею и блок похожих товаров. Если товара нет ни в каталоге,
// ни в override, возвращает e.ErrProductNotFound.
func (c *CatalogUseCase) ResolveDetails(ctx context.Context, req *ProductDetailsReq) (*ProductDetailsRes, error) {
	const op = "CatalogUseCase.ResolveDetails"

	product, err := resolveProduct(ctx, c.catalogRepo, req.ID, req.Override)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ProductDetailsRes{
		Product:   *product,
		UnitPrice: ParseDisplayPrice(product.Price),
		Gallery:   galleryFor(product),
		Related:   c.related(ctx, product),
	}, nil
}

// resolveProduct находит товар по строковому идентификатору. Запись из
// каталога имеет низший приоритет: поля override выигрывают. При промахе
// каталога используется один override, если он задан.
func resolveProduct(ctx context.Context, repo CatalogRepository, id string, override *domain.ProductOverride) (*domain.Product, error) {
	if fromCatalog, ok := repo.FindByID(ctx, id); ok {
		merged := fromCatalog.Merge(override)
		return &merged, nil
	}

	if override != nil {
		product := domain.FromOverride(override)
		return &product, nil
	}

	return nil, e.ErrProductNotFound
}

// related подбирает товары той же категории, исключая сам товар.
func (c *CatalogUseCase) related(ctx context.Context, product *domain.Product) []domain.Product {
	result := make([]domain.Product, 0, relatedLimit)
	for _, p := range c.catalogRepo.Products(ctx) {
		if p.ID == product.ID || p.Category != product.Category {
			continue
		}

		result = append(result, p)
		if len(result) == relatedLimit {
			break
		}
	}

	return result
}

// galleryFor возвращает галерею товара. Если своей галереи нет,
// главное изображение дублируется в три кадра.
func galleryFor(product *domain.Product) []domain.GalleryImage {
	if len(product.Gallery) > 0 {
		return product.Gallery
	}

	return []domain.GalleryImage{
		{ID: "a", Src: product.Image},
		{ID: "b", Src: product.Image},
		{ID: "c", Src: product.Image},
	}
}

// ParseDisplayPrice извлекает числовую цену из отображаемой строки
// вида "135.00 GEL". Строка без цифр даёт 0 — ошибка не возникает.
func ParseDisplayPrice(display string) decimal.Decimal {
	cleaned := nonPricePattern.ReplaceAllString(display, "")
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	return d
}
