package entity

import "time"

// Usuario cuenta de acceso ligada a un negocio.
type Usuario struct {
	ID           string
	NegocioID    string
	Email        string
	PasswordHash string
	Nombre       string
	Estado       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
