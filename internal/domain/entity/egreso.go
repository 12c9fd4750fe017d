package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Egreso salida de dinero registrada manualmente (no asociada a una compra).
// CategoriaGeneral es un texto libre que se usa como categoría cuando el
// egreso no tiene una Categoria específica asignada.
type Egreso struct {
	ID               string
	NegocioID        string
	Monto            decimal.Decimal // siempre >= 0
	Fecha            time.Time
	Descripcion      string
	CategoriaID      *string
	Categoria        *Categoria
	CategoriaGeneral string
	CreatedAt        time.Time
}
