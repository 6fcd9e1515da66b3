package response

type SearchResponse struct {
	Products []ProductResponse `json:"products"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
	Total    int64             `json:"total"`
	HasMore  bool              `json:"hasMore"`
}

type Suggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VariantMatch is a flattened variant row returned by the variant search:
// one entry per matching variant, carrying its parent product's details.
type VariantMatch struct {
	ProductID    string       `json:"productId"`
	ProductName  string       `json:"productName"`
	ProductImage string       `json:"productImage"`
	ProductPrice float64      `json:"productPrice"`
	Category     *CategoryRef `json:"category"`
	Size         string       `json:"size,omitempty"`
	Color        string       `json:"color,omitempty"`
	Stock        int          `json:"stock"`
}
