package entity

import "time"

// Proveedor contraparte de una compra.
type Proveedor struct {
	ID        string
	NegocioID string
	Nombre    string
	Email     string
	Telefono  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
