package wire

import (
	"product-catalog/internal/adaptor"
	"product-catalog/internal/usecase"
	"product-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler, service *usecase.Service) {
	r.Route("/api/reports", func(r chi.Router) {
		r.Use(middleware.Authenticated(service.Auth))
		r.Use(middleware.RequireAdmin())

		r.Get("/stock-levels", reportHandler.GetStockLevels)       // GET /api/reports/stock-levels
		r.Get("/inventory-value", reportHandler.GetInventoryValue) // GET /api/reports/inventory-value
		r.Get("/low-stock", reportHandler.GetLowStock)             // GET /api/reports/low-stock
	})
}
