package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, date, product_code, product_name, added, sold, remarks, created_at`

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un asiento del libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, date, product_code, product_name, added, sold, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Date,
		movement.ProductCode, movement.ProductName,
		movement.Added, movement.Sold, movement.Remarks, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List historial completo, fecha descendente.
func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

// ListByProduct historial de un producto, fecha descendente.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE product_id = $1
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	return r.queryList(query, productID, limit, offset)
}

// UpdateCodeSnapshot reescribe el snapshot de código en todos los
// asientos del producto (cascada de renombre).
func (r *MovementRepo) UpdateCodeSnapshot(productID, code string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE movements SET product_code = $2 WHERE product_id = $1`,
		productID, code,
	)
	if err != nil {
		return fmt.Errorf("update code snapshot: %w", err)
	}
	return nil
}

// UpdateNameSnapshot reescribe el snapshot de nombre en todos los
// asientos del producto.
func (r *MovementRepo) UpdateNameSnapshot(productID, name string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE movements SET product_name = $2 WHERE product_id = $1`,
		productID, name,
	)
	if err != nil {
		return fmt.Errorf("update name snapshot: %w", err)
	}
	return nil
}

func (r *MovementRepo) queryList(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Date, &m.ProductCode, &m.ProductName,
			&m.Added, &m.Sold, &m.Remarks, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
