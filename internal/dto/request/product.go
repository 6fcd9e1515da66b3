package request

type VariantRequest struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	Stock int    `json:"stock" validate:"gte=0"`
}

type ProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Price       *float64         `json:"price" validate:"required,gte=0"`
	Stock       *int             `json:"stock" validate:"required,gte=0"`
	Image       string           `json:"image"`
	Category    string           `json:"category" validate:"omitempty,uuid"`
	Variants    []VariantRequest `json:"variants" validate:"omitempty,dive"`
}
