package adaptor

import (
	"net/http"

	"product-catalog/internal/usecase"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GetStockLevels handles GET /api/reports/stock-levels (admin only)
func (h *ReportHandler) GetStockLevels(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.StockLevelReport(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "build stock level report")
		return
	}

	utils.ResponseSuccess(w, "Stock level report generated successfully", report)
}

// GetInventoryValue handles GET /api/reports/inventory-value (admin only)
func (h *ReportHandler) GetInventoryValue(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.InventoryValueReport(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "build inventory value report")
		return
	}

	utils.ResponseSuccess(w, "Inventory value report generated successfully", report)
}

// GetLowStock handles GET /api/reports/low-stock?threshold=5 (admin only)
func (h *ReportHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	threshold := utils.ParseInt(r.URL.Query().Get("threshold"), usecase.DefaultLowStockThreshold)

	report, err := h.service.LowStockReport(r.Context(), threshold)
	if err != nil {
		handleServiceError(w, h.log, err, "build low stock report")
		return
	}

	utils.ResponseSuccess(w, "Low stock report generated successfully", report)
}
