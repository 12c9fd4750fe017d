package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DTOs de las cuatro entidades transaccionales que alimentan la vista de
// movimientos y los reportes.

// CreateIngresoRequest registro manual de una entrada de dinero.
type CreateIngresoRequest struct {
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"` // YYYY-MM-DD
	Descripcion string          `json:"descripcion"`
	CategoriaID *string         `json:"categoria_id"`
}

// IngresoResponse ingreso persistido.
type IngresoResponse struct {
	ID          string          `json:"id"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`
	Descripcion string          `json:"descripcion,omitempty"`
	CategoriaID *string         `json:"categoria_id,omitempty"`
	Categoria   string          `json:"categoria,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateEgresoRequest registro manual de una salida de dinero.
// CategoriaGeneral es el texto libre usado cuando no hay categoría específica.
type CreateEgresoRequest struct {
	Monto            decimal.Decimal `json:"monto"`
	Fecha            string          `json:"fecha"`
	Descripcion      string          `json:"descripcion"`
	CategoriaID      *string         `json:"categoria_id"`
	CategoriaGeneral string          `json:"categoria_general"`
}

// EgresoResponse egreso persistido.
type EgresoResponse struct {
	ID               string          `json:"id"`
	Monto            decimal.Decimal `json:"monto"`
	Fecha            string          `json:"fecha"`
	Descripcion      string          `json:"descripcion,omitempty"`
	CategoriaID      *string         `json:"categoria_id,omitempty"`
	Categoria        string          `json:"categoria,omitempty"`
	CategoriaGeneral string          `json:"categoria_general,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// VentaDetalleRequest línea de una venta nueva. Si PrecioUnitario es cero se
// usa el precio de venta actual del producto.
type VentaDetalleRequest struct {
	ProductoID     string          `json:"producto_id"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CreateVentaRequest registro de una venta con sus líneas.
type CreateVentaRequest struct {
	ClienteID   *string               `json:"cliente_id"`
	Tipo        string                `json:"tipo"` // "producto" | "servicio"
	Fecha       string                `json:"fecha"`
	Descripcion string                `json:"descripcion"`
	Detalles    []VentaDetalleRequest `json:"detalles"`
}

// VentaDetalleResponse línea persistida.
type VentaDetalleResponse struct {
	ProductoID     *string         `json:"producto_id,omitempty"`
	Producto       string          `json:"producto,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse venta persistida con total calculado.
type VentaResponse struct {
	ID          string                 `json:"id"`
	ClienteID   *string                `json:"cliente_id,omitempty"`
	Cliente     string                 `json:"cliente,omitempty"`
	Tipo        string                 `json:"tipo"`
	Total       decimal.Decimal        `json:"total"`
	Fecha       string                 `json:"fecha"`
	Descripcion string                 `json:"descripcion,omitempty"`
	Detalles    []VentaDetalleResponse `json:"detalles"`
	CreatedAt   time.Time              `json:"created_at"`
}

// CompraDetalleRequest línea de una compra nueva.
type CompraDetalleRequest struct {
	ProductoID     string          `json:"producto_id"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CreateCompraRequest registro de una compra con sus líneas.
type CreateCompraRequest struct {
	ProveedorID *string                `json:"proveedor_id"`
	Fecha       string                 `json:"fecha"`
	Descripcion string                 `json:"descripcion"`
	Detalles    []CompraDetalleRequest `json:"detalles"`
}

// CompraDetalleResponse línea persistida.
type CompraDetalleResponse struct {
	ProductoID     *string         `json:"producto_id,omitempty"`
	Producto       string          `json:"producto,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// CompraResponse compra persistida con total calculado.
type CompraResponse struct {
	ID          string                  `json:"id"`
	ProveedorID *string                 `json:"proveedor_id,omitempty"`
	Proveedor   string                  `json:"proveedor,omitempty"`
	Total       decimal.Decimal         `json:"total"`
	Fecha       string                  `json:"fecha"`
	Descripcion string                  `json:"descripcion,omitempty"`
	Detalles    []CompraDetalleResponse `json:"detalles"`
	CreatedAt   time.Time               `json:"created_at"`
}
