package wire

import (
	"product-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Category CRUD is public, matching the product routes.
func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler) {
	r.Get("/api/categories", categoryHandler.GetCategories)
	r.Get("/api/categories/{id}", categoryHandler.GetCategoryByID)

	r.Post("/api/categories", categoryHandler.CreateCategory)
	r.Put("/api/categories/{id}", categoryHandler.UpdateCategory)
	r.Delete("/api/categories/{id}", categoryHandler.DeleteCategory)
}
