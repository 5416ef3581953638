package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// MovementRepository define el puerto de persistencia para los asientos del libro.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List(limit, offset int) ([]*entity.Movement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
	// UpdateCodeSnapshot / UpdateNameSnapshot reescriben las columnas
	// snapshot de todos los movimientos del producto (cascada de renombre).
	UpdateCodeSnapshot(productID, code string) error
	UpdateNameSnapshot(productID, name string) error
}
