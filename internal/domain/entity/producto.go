package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto artículo del inventario. Cantidad es el stock actual; el estado de
// stock (sin stock, bajo, alto, normal) se deriva en el reporte de inventario.
type Producto struct {
	ID           string
	NegocioID    string
	Nombre       string
	Descripcion  string
	Cantidad     int             // stock actual
	PrecioCompra decimal.Decimal // costo unitario de reposición
	PrecioVenta  decimal.Decimal
	CategoriaID  *string
	Categoria    *Categoria
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValorInmovilizado costo de reposición del stock actual (PrecioCompra × Cantidad).
func (p Producto) ValorInmovilizado() decimal.Decimal {
	return p.PrecioCompra.Mul(decimal.NewFromInt(int64(p.Cantidad)))
}
