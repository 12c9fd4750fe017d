package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra operación de compra a un proveedor con sus líneas de detalle.
type Compra struct {
	ID          string
	NegocioID   string
	ProveedorID *string
	Proveedor   *Proveedor
	Total       decimal.Decimal
	Fecha       time.Time
	Descripcion string
	Detalles    []CompraDetalle
	CreatedAt   time.Time
}

// CompraDetalle línea de una compra.
type CompraDetalle struct {
	ID             string
	CompraID       string
	ProductoID     *string
	Producto       *Producto
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}
