package adaptor

import (
	"net/http"

	"product-catalog/internal/dto/request"
	"product-catalog/internal/usecase"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

type SearchHandler struct {
	service usecase.SearchService
	log     *zap.Logger
}

func NewSearchHandler(service usecase.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log.With(zap.String("handler", "search")),
	}
}

// Search handles GET /api/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := request.ParseSearchQuery(r.URL.Query())

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "search products")
		return
	}

	utils.ResponseSuccess(w, "Search completed successfully", result)
}

// Suggestions handles GET /api/search/suggestions?term=...&limit=5
func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	term := query.Get("term")
	limit := utils.ParseInt(query.Get("limit"), usecase.DefaultSuggestLimit)

	suggestions, err := h.service.Suggest(r.Context(), term, limit)
	if err != nil {
		handleServiceError(w, h.log, err, "load suggestions")
		return
	}

	utils.ResponseSuccess(w, "Suggestions retrieved successfully", suggestions)
}

// Variants handles GET /api/search/variants
func (h *SearchHandler) Variants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	size := query.Get("size")
	color := query.Get("color")
	inStock := query.Get("inStock") == "true"

	matches, err := h.service.SearchVariants(r.Context(), size, color, inStock)
	if err != nil {
		handleServiceError(w, h.log, err, "search variants")
		return
	}

	utils.ResponseSuccess(w, "Variants retrieved successfully", matches)
}
