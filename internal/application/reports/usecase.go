package reports

import (
	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// ReportUseCase vistas de solo lectura derivadas de catálogo + libro.
// Sin invariantes propios más allá de la aritmética de agregación, que
// vive en SQL (ReportRepository).
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// StockAddedSummary total de entradas por producto (solo productos con
// alguna entrada), junto al stock actual, orden descendente por total.
func (uc *ReportUseCase) StockAddedSummary() (*dto.StockAddedSummaryResponse, error) {
	rows, err := uc.repo.StockAddedSummary()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockAddedItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockAddedItem{
			Code:         r.Code,
			Name:         r.Name,
			Category:     r.Category,
			TotalAdded:   r.TotalAdded,
			CurrentStock: r.CurrentStock,
		})
	}
	return &dto.StockAddedSummaryResponse{Items: items}, nil
}

// SalesSummary total vendido por producto (solo productos con alguna
// venta), orden descendente por total.
func (uc *ReportUseCase) SalesSummary() (*dto.SalesSummaryResponse, error) {
	rows, err := uc.repo.SalesSummary()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.SalesItem{
			Code:      r.Code,
			Name:      r.Name,
			Category:  r.Category,
			TotalSold: r.TotalSold,
		})
	}
	return &dto.SalesSummaryResponse{Items: items}, nil
}

// CategoryRollup consolidado de stock/entradas/ventas por categoría.
func (uc *ReportUseCase) CategoryRollup() (*dto.CategoryRollupResponse, error) {
	rows, err := uc.repo.CategoryRollup()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryRollupItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.CategoryRollupItem{
			Category:   r.Category,
			TotalStock: r.TotalStock,
			TotalAdded: r.TotalAdded,
			TotalSold:  r.TotalSold,
		})
	}
	return &dto.CategoryRollupResponse{Items: items}, nil
}
