package entity

import "time"

// Cliente contraparte de una venta.
type Cliente struct {
	ID        string
	NegocioID string
	Nombre    string
	Email     string
	Telefono  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
