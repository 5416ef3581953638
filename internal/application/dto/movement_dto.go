package dto

import "time"

// ApplyMovementRequest body para POST /api/ledger/movements.
// Date en formato YYYY-MM-DD; vacío usa la fecha actual.
type ApplyMovementRequest struct {
	ProductID string `json:"product_id"`
	Date      string `json:"date,omitempty"`
	Added     int64  `json:"added"`
	Sold      int64  `json:"sold"`
	Remarks   string `json:"remarks,omitempty"`
}

// MovementResponse salida de un asiento del libro.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Date        string    `json:"date"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	Added       int64     `json:"added"`
	Sold        int64     `json:"sold"`
	Remarks     string    `json:"remarks,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplyMovementResponse asiento registrado más el stock resultante.
type ApplyMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	Stock    int64            `json:"stock"`
}

// MovementListResponse historial de movimientos (fecha descendente).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
