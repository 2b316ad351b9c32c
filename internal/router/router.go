package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/config"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/handler"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/middleware"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
	analyticsHandler *handler.AnalyticsHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Session endpoints. Refresh authenticates itself via the refresh-class
	// token in the authorization header, so only verify sits behind the
	// access-token middleware.
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.With(authMiddleware.RequireAuth).Get("/verify", authHandler.Verify)
	r.Post("/refresh", authHandler.Refresh)

	// Business records: every endpoint requires a valid access token.
	r.Group(func(api chi.Router) {
		api.Use(authMiddleware.RequireAuth)

		api.Get("/customers", customerHandler.List)
		api.Post("/customer", customerHandler.Create)
		api.Get("/customer/{id}", customerHandler.Get)
		api.Put("/customer/{id}", customerHandler.Update)
		api.Delete("/customer/{id}", customerHandler.Delete)

		api.Get("/products", productHandler.List)
		api.Post("/product", productHandler.Create)
		api.Get("/product/{id}", productHandler.Get)
		api.Put("/product/{id}", productHandler.Update)
		api.Delete("/product/{id}", productHandler.Delete)

		api.Get("/categories", categoryHandler.List)
		api.Post("/category", categoryHandler.Create)
		api.Get("/category/{id}", categoryHandler.Get)
		api.Put("/category/{id}", categoryHandler.Update)
		api.Delete("/category/{id}", categoryHandler.Delete)

		api.Get("/analytics/products_by_category", analyticsHandler.ProductsByCategory)
		api.Get("/analytics/products_by_price_range", analyticsHandler.ProductsByPriceRange)
		api.Get("/analytics/customers_by_location", analyticsHandler.CustomersByLocation)
		api.Get("/analytics/top_selled_products", analyticsHandler.TopSelledProducts)
		api.Get("/analytics/trend", analyticsHandler.Trend)
	})

	return r
}
