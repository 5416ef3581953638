package entity

import "time"

// Movement es un asiento del libro de inventario: una entrada (Added),
// una salida (Sold) o ambas contra un producto. Inmutable después de
// creado, salvo las columnas snapshot ProductCode/ProductName, que se
// reescriben en bloque cuando el producto se renombra para que el
// historial muestre la etiqueta vigente.
type Movement struct {
	ID          string
	ProductID   string
	Date        time.Time // solo fecha, sin hora
	ProductCode string    // snapshot del código del producto
	ProductName string    // snapshot del nombre del producto
	Added       int64     // nunca negativo
	Sold        int64     // nunca negativo
	Remarks     string
	CreatedAt   time.Time
}
