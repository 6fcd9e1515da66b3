package wire

import (
	"net/http"

	"product-catalog/internal/adaptor"
	"product-catalog/internal/data/repository"
	"product-catalog/internal/usecase"
	"product-catalog/pkg/cache"
	"product-catalog/pkg/middleware"
	"product-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App bundles the router with the pieces that need shutdown handling.
type App struct {
	Router      *chi.Mux
	Service     *usecase.Service
	RateLimiter *middleware.RateLimiter
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, config *utils.Config, c *cache.Cache, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, c, logger)
	handler := adaptor.NewHandler(service, config, logger)
	limiter := middleware.NewRateLimiter(config.RateLimit.Requests, config.RateLimit.Window, logger)

	router := setupRouter(handler, service, limiter, logger)

	return &App{
		Router:      router,
		Service:     service,
		RateLimiter: limiter,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	limiter *middleware.RateLimiter,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())

	// Rate limiting covers the API surface only, not the health probe
	r.Group(func(api chi.Router) {
		api.Use(limiter.Middleware())

		wireAuth(api, handler.Auth)
		wireUser(api, handler.User, service)
		wireProduct(api, handler.Product)
		wireCategory(api, handler.Category)
		wireSearch(api, handler.Search)
		wireInventory(api, handler.Inventory, service)
		wireReport(api, handler.Report, service)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
