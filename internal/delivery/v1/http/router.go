package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/khalil-js/VETANIMALIA/docs" // Импорт сгенерированных файлов
	"github.com/khalil-js/VETANIMALIA/internal/cfg"
	"github.com/khalil-js/VETANIMALIA/internal/usecase"
	"github.com/khalil-js/VETANIMALIA/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	catalogUC usecase.CatalogUC,
	cartUC usecase.CartUC,
	checkoutUC usecase.CheckoutUC,
	sessionCfg *cfg.SessionCfg,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	session := NewSessionMiddleware(sessionCfg)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(session.Handler)

		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(cartUC, checkoutUC, r.logger))
		registerCheckoutRoutes(v1, NewCheckoutHandler(checkoutUC, r.logger))
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Get("/categories", h.listCategories)
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", h.getCart)
		cr.Post("/items", h.addCartItem)
	})
}

func registerCheckoutRoutes(router chi.Router, h *CheckoutHandler) {
	router.Route("/checkout", func(ch chi.Router) {
		ch.Get("/", h.getCheckout)
		ch.Put("/contact", h.putContact)
		ch.Post("/order", h.placeOrder)
	})
}
