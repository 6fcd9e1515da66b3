package response

import (
	"time"

	"product-catalog/internal/data/entity"
)

// CategoryRef is the populated category reference carried on product
// responses: just the id and display name.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID          string           `json:"id"`
	Image       string           `json:"image"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Category    *CategoryRef     `json:"category"`
	Stock       int              `json:"stock"`
	Variants    []entity.Variant `json:"variants"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
