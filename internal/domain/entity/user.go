package entity

import "time"

// User usuario de la API (login con email + password bcrypt).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
