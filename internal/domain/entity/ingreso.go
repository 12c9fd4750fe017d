package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingreso entrada de dinero registrada manualmente (no asociada a una venta).
type Ingreso struct {
	ID          string
	NegocioID   string
	Monto       decimal.Decimal // siempre >= 0
	Fecha       time.Time
	Descripcion string
	CategoriaID *string
	Categoria   *Categoria
	CreatedAt   time.Time
}
