package response

// ---- stock level report ----

type StockSample struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type StockLevelBucket struct {
	Level    string        `json:"level"`
	Count    int           `json:"count"`
	Products []StockSample `json:"products"`
}

type StockStats struct {
	TotalProducts      int     `json:"totalProducts"`
	TotalStockItems    int     `json:"totalStockItems"`
	AvgStockPerProduct float64 `json:"avgStockPerProduct"`
	MaxStock           int     `json:"maxStock"`
	MinStock           int     `json:"minStock"`
}

type StockLevelReport struct {
	StockLevels []StockLevelBucket `json:"stockLevels"`
	Stats       StockStats         `json:"stats"`
}

// ---- inventory value report ----

type CategoryValue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

type InventoryValueReport struct {
	TotalValue   float64         `json:"totalValue"`
	Categories   []CategoryValue `json:"categories"`
	ProductCount int             `json:"productCount"`
}

// ---- low stock report ----

type MainStock struct {
	Quantity int  `json:"quantity"`
	IsLow    bool `json:"isLow"`
}

type LowVariant struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
	Stock int    `json:"stock"`
}

type LowStockProduct struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	MainStock   MainStock    `json:"mainStock"`
	LowVariants []LowVariant `json:"lowVariants"`
	Category    *CategoryRef `json:"category"`
	Price       float64      `json:"price"`
	Image       string       `json:"image"`
}

type LowStockReport struct {
	Products  []LowStockProduct `json:"products"`
	Count     int               `json:"count"`
	Threshold int               `json:"threshold"`
}
