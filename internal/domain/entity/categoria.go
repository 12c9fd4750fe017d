package entity

import "time"

// Tipos de categoría.
const (
	CategoriaIngreso = "ingreso"
	CategoriaEgreso  = "egreso"
)

// Categoria clasifica ingresos y egresos.
type Categoria struct {
	ID        string
	NegocioID string
	Nombre    string
	Tipo      string // "ingreso" | "egreso"
	CreatedAt time.Time
}
