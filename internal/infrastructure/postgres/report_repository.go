package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre catálogo + libro.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// StockAddedSummary total de entradas por producto junto al stock actual.
// Solo productos con alguna entrada (added > 0); orden descendente por
// total agregado.
func (r *ReportRepo) StockAddedSummary() ([]repository.StockAddedRow, error) {
	const query = `
		SELECT p.code, p.name, p.category,
		       COALESCE(SUM(m.added), 0) AS total_added,
		       p.stock
		FROM products p
		INNER JOIN movements m ON m.product_id = p.id
		WHERE m.added > 0
		GROUP BY p.code, p.name, p.category, p.stock
		ORDER BY total_added DESC`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("reports.StockAddedSummary: %w", err)
	}
	defer rows.Close()

	var results []repository.StockAddedRow
	for rows.Next() {
		var row repository.StockAddedRow
		if err := rows.Scan(&row.Code, &row.Name, &row.Category, &row.TotalAdded, &row.CurrentStock); err != nil {
			return nil, fmt.Errorf("reports.StockAddedSummary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesSummary total vendido por producto. Solo productos con alguna
// venta (sold > 0); orden descendente por total vendido.
func (r *ReportRepo) SalesSummary() ([]repository.SalesRow, error) {
	const query = `
		SELECT p.code, p.name, p.category,
		       COALESCE(SUM(m.sold), 0) AS total_sold
		FROM products p
		INNER JOIN movements m ON m.product_id = p.id
		WHERE m.sold > 0
		GROUP BY p.code, p.name, p.category
		ORDER BY total_sold DESC`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesSummary: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesRow
	for rows.Next() {
		var row repository.SalesRow
		if err := rows.Scan(&row.Code, &row.Name, &row.Category, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("reports.SalesSummary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CategoryRollup consolidado de stock/entradas/ventas por categoría.
// La subconsulta agrega primero por producto para no multiplicar el
// stock por el número de movimientos en el join.
func (r *ReportRepo) CategoryRollup() ([]repository.CategoryRow, error) {
	const query = `
		SELECT p.category,
		       SUM(p.stock)                 AS total_stock,
		       COALESCE(SUM(t.added), 0)    AS total_added,
		       COALESCE(SUM(t.sold), 0)     AS total_sold
		FROM products p
		LEFT JOIN (
			SELECT product_id, SUM(added) AS added, SUM(sold) AS sold
			FROM movements GROUP BY product_id
		) t ON t.product_id = p.id
		GROUP BY p.category
		ORDER BY p.category`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("reports.CategoryRollup: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryRow
	for rows.Next() {
		var row repository.CategoryRow
		if err := rows.Scan(&row.Category, &row.TotalStock, &row.TotalAdded, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("reports.CategoryRollup scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
