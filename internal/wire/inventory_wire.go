package wire

import (
	"product-catalog/internal/adaptor"
	"product-catalog/internal/usecase"
	"product-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireInventory(r chi.Router, inventoryHandler *adaptor.InventoryHandler, service *usecase.Service) {
	r.Route("/api/inventory", func(r chi.Router) {
		r.Use(middleware.Authenticated(service.Auth))
		r.Use(middleware.RequireAdmin())

		r.Get("/", inventoryHandler.GetInventory)                      // GET /api/inventory
		r.Get("/low-stock/{threshold}", inventoryHandler.GetLowStock)  // GET /api/inventory/low-stock/{threshold}
	})
}
