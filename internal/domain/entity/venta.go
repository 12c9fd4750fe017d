package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta.
const (
	VentaProducto = "producto"
	VentaServicio = "servicio"
)

// Venta operación de venta con sus líneas de detalle.
// Total debe ser la suma de los subtotales de Detalles.
type Venta struct {
	ID          string
	NegocioID   string
	ClienteID   *string
	Cliente     *Cliente
	Tipo        string // "producto" | "servicio"
	Total       decimal.Decimal
	Fecha       time.Time
	Descripcion string
	Detalles    []VentaDetalle
	CreatedAt   time.Time
}

// VentaDetalle línea de una venta.
type VentaDetalle struct {
	ID             string
	VentaID        string
	ProductoID     *string
	Producto       *Producto
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal // Cantidad × PrecioUnitario
}
