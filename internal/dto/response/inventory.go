package response

import "product-catalog/internal/data/entity"

type InventoryItem struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Stock    int              `json:"stock"`
	Variants []entity.Variant `json:"variants"`
	Category *CategoryRef     `json:"category"`
	Price    float64          `json:"price"`
}
