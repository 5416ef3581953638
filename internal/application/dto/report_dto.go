package dto

// StockAddedItem producto con su total de entradas y stock actual.
type StockAddedItem struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	TotalAdded   int64  `json:"total_added"`
	CurrentStock int64  `json:"current_stock"`
}

// SalesItem producto con su total vendido.
type SalesItem struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	TotalSold int64  `json:"total_sold"`
}

// CategoryRollupItem consolidado de stock/entradas/ventas por categoría.
type CategoryRollupItem struct {
	Category   string `json:"category"`
	TotalStock int64  `json:"total_stock"`
	TotalAdded int64  `json:"total_added"`
	TotalSold  int64  `json:"total_sold"`
}

// StockAddedSummaryResponse resumen de entradas, ordenado por total descendente.
type StockAddedSummaryResponse struct {
	Items []StockAddedItem `json:"items"`
}

// SalesSummaryResponse resumen de ventas, ordenado por total descendente.
type SalesSummaryResponse struct {
	Items []SalesItem `json:"items"`
}

// CategoryRollupResponse consolidado por categoría.
type CategoryRollupResponse struct {
	Items []CategoryRollupItem `json:"items"`
}
