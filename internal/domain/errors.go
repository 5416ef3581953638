package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidName       = errors.New("el nombre del producto debe estar en minúsculas")
	ErrDuplicateCode     = errors.New("el código de producto ya existe")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNoChange          = errors.New("sin cambios que aplicar")
	ErrSchema            = errors.New("el archivo no tiene las columnas requeridas")
	ErrUnauthorized      = errors.New("no autorizado")
)
