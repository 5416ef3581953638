package entity

import "time"

// Product representa un artículo del inventario. Code es el identificador
// visible para el usuario (único, texto libre); ID es la clave interna generada.
// Stock se mantiene exclusivamente desde el libro de movimientos: siempre
// equivale a sum(added) - sum(sold) de sus movimientos.
type Product struct {
	ID        string
	Code      string
	Name      string // normalizado a minúsculas; no se permiten mayúsculas
	Category  string
	Stock     int64 // nunca negativo
	CreatedAt time.Time
	UpdatedAt time.Time
}
