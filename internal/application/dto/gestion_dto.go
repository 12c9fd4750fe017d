package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DTOs de los catálogos del negocio: categorías, clientes, proveedores y
// productos. Solo campos planos; las relaciones viajan como IDs.

// CreateCategoriaRequest alta de categoría de ingreso o egreso.
type CreateCategoriaRequest struct {
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"` // "ingreso" | "egreso"
}

// CategoriaResponse categoría persistida.
type CategoriaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Tipo      string    `json:"tipo"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateClienteRequest alta de cliente.
type CreateClienteRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ClienteResponse cliente persistido.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProveedorRequest alta de proveedor.
type CreateProveedorRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ProveedorResponse proveedor persistido.
type ProveedorResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProductoRequest alta de producto de inventario.
type CreateProductoRequest struct {
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	Cantidad     int             `json:"cantidad"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	CategoriaID  *string         `json:"categoria_id"`
}

// UpdateProductoRequest actualización parcial de producto.
type UpdateProductoRequest struct {
	Nombre       *string          `json:"nombre"`
	Descripcion  *string          `json:"descripcion"`
	Cantidad     *int             `json:"cantidad"`
	PrecioCompra *decimal.Decimal `json:"precio_compra"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"`
}

// ProductoResponse producto persistido.
type ProductoResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	Cantidad     int             `json:"cantidad"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	CategoriaID  *string         `json:"categoria_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
