package adaptor

import (
	"net/http"

	"product-catalog/internal/usecase"
	"product-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	service usecase.InventoryService
	log     *zap.Logger
}

func NewInventoryHandler(service usecase.InventoryService, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "inventory")),
	}
}

// GetInventory handles GET /api/inventory (admin only)
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list inventory")
		return
	}

	utils.ResponseSuccess(w, "Inventory retrieved successfully", items)
}

// GetLowStock handles GET /api/inventory/low-stock/{threshold} (admin only)
func (h *InventoryHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	threshold := utils.ParseInt(chi.URLParam(r, "threshold"), usecase.DefaultInventoryThreshold)

	items, err := h.service.LowStock(r.Context(), threshold)
	if err != nil {
		handleServiceError(w, h.log, err, "list low stock inventory")
		return
	}

	utils.ResponseSuccess(w, "Low stock items retrieved successfully", items)
}
