package wire

import (
	"product-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Product CRUD is public, guarded by validation only; the original exposes it
// the same way.
func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler) {
	r.Get("/api/products", productHandler.GetProducts)
	r.Get("/api/products/{id}", productHandler.GetProductByID)
	r.Get("/api/products/category/{categoryId}", productHandler.GetProductsByCategory)

	r.Post("/api/products", productHandler.CreateProduct)
	r.Put("/api/products/{id}", productHandler.UpdateProduct)
	r.Delete("/api/products/{id}", productHandler.DeleteProduct)
}
