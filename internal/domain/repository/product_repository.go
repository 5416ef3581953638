package repository

import "github.com/jhoicas/Inventario-ledger/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE);
	// usar solo dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	ExistsByCode(code string) (bool, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int64) error
	// List devuelve todos los productos ordenados por código ascendente.
	List() ([]*entity.Product, error)
	// ListWithEntries devuelve solo productos con al menos un movimiento
	// con added > 0 (los únicos elegibles para vender).
	ListWithEntries() ([]*entity.Product, error)
	Delete(id string) error
}
