package wire

import (
	"product-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSearch(r chi.Router, searchHandler *adaptor.SearchHandler) {
	// All search endpoints are public
	r.Get("/api/search", searchHandler.Search)
	r.Get("/api/search/suggestions", searchHandler.Suggestions)
	r.Get("/api/search/variants", searchHandler.Variants)
}
