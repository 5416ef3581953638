package repository

// StockAddedRow fila del resumen de stock agregado por producto.
type StockAddedRow struct {
	Code         string
	Name         string
	Category     string
	TotalAdded   int64
	CurrentStock int64
}

// SalesRow fila del resumen de ventas por producto.
type SalesRow struct {
	Code      string
	Name      string
	Category  string
	TotalSold int64
}

// CategoryRow fila del consolidado por categoría.
type CategoryRow struct {
	Category   string
	TotalStock int64
	TotalAdded int64
	TotalSold  int64
}

// ReportRepository consultas de solo lectura sobre catálogo + libro.
// No muta estado; la aritmética de agregación vive en SQL.
type ReportRepository interface {
	StockAddedSummary() ([]StockAddedRow, error)
	SalesSummary() ([]SalesRow, error)
	CategoryRollup() ([]CategoryRow, error)
}
