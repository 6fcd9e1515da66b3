package entity

// Variant is a size/color stock record embedded in its product. It has no
// identity of its own and shares the parent product's price.
type Variant struct {
	Size  string `bson:"size,omitempty" json:"size,omitempty"`
	Color string `bson:"color,omitempty" json:"color,omitempty"`
	Stock int    `bson:"stock" json:"stock"`
}

type Product struct {
	Base        `bson:",inline"`
	Image       string    `bson:"image" json:"image"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Category    *string   `bson:"category" json:"category"`
	Stock       int       `bson:"stock" json:"stock"`
	Variants    []Variant `bson:"variants" json:"variants"`
}
