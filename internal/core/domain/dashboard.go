package domain

// DefaultLowStockThreshold is the stock level under which a product counts
// as running low.
const DefaultLowStockThreshold = 100

// CategoryValue is the stock valuation of one category.
type CategoryValue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// Summary aggregates the catalog for the dashboard.
type Summary struct {
	TotalProducts int             `json:"total_products"`
	TotalStock    int             `json:"total_stock"`
	TotalValue    float64         `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
	Categories    []CategoryValue `json:"categories"`
}
