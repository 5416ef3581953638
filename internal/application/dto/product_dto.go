package dto

import "time"

// CreateProductRequest entrada para crear un producto. El stock siempre
// inicia en 0: solo el libro de movimientos lo modifica después.
type CreateProductRequest struct {
	Code     string `json:"code" validate:"required,min=1,max=100"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Category string `json:"category"`
}

// UpdateProductRequest entrada para actualizar un producto. Todos los
// campos son opcionales; sin ninguno la operación es un no-op (NO_CHANGE).
// Stock es la corrección administrativa: se materializa como un movimiento
// sintético de ajuste para no romper el invariante del libro.
type UpdateProductRequest struct {
	Code     *string `json:"code" validate:"omitempty,min=1,max=100"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string `json:"category"`
	Stock    *int64  `json:"stock" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Stock     int64     `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse listado de productos (ordenados por código).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
