package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoMovimiento discriminante del movimiento unificado.
type TipoMovimiento string

// Variantes del movimiento. Agregar una quinta obliga a actualizar los
// switch exhaustivos de EtiquetaOrigen y Detalle.
const (
	MovIngreso TipoMovimiento = "Ingreso"
	MovEgreso  TipoMovimiento = "Egreso"
	MovVenta   TipoMovimiento = "Venta"
	MovCompra  TipoMovimiento = "Compra"
)

// Etiquetas de origen por defecto cuando falta la relación.
const (
	SinCategoria            = "Sin categoría"
	ClienteNoEspecificado   = "Cliente no especificado"
	ProveedorNoEspecificado = "Proveedor no especificado"
)

// Movimiento proyección de solo lectura de un Ingreso, Egreso, Venta o Compra
// sobre una forma común para la vista de historial. No se persiste: se
// reconstruye en cada consulta desde las cuatro tablas origen.
//
// Invariante: exactamente uno de los punteros origen es no-nil y coincide con
// Tipo. La identidad del movimiento es (Tipo, ID del registro origen).
type Movimiento struct {
	ID          string
	Tipo        TipoMovimiento
	Fecha       time.Time
	Monto       decimal.Decimal // siempre no negativo; el signo se infiere de Tipo
	Descripcion string

	Ingreso *Ingreso
	Egreso  *Egreso
	Venta   *Venta
	Compra  *Compra
}

// EsEntrada indica si el movimiento suma al balance (Ingreso o Venta).
func (m Movimiento) EsEntrada() bool {
	return m.Tipo == MovIngreso || m.Tipo == MovVenta
}

// EtiquetaOrigen devuelve el nombre legible de la contraparte o categoría
// según la variante:
//
//	Ingreso → nombre de categoría, o "Sin categoría"
//	Egreso  → categoría específica, o categoría general libre, o "Sin categoría"
//	Venta   → nombre del cliente, o "Cliente no especificado"
//	Compra  → nombre del proveedor, o "Proveedor no especificado"
func (m Movimiento) EtiquetaOrigen() string {
	switch m.Tipo {
	case MovIngreso:
		if m.Ingreso != nil && m.Ingreso.Categoria != nil && m.Ingreso.Categoria.Nombre != "" {
			return m.Ingreso.Categoria.Nombre
		}
		return SinCategoria
	case MovEgreso:
		if m.Egreso != nil {
			if m.Egreso.Categoria != nil && m.Egreso.Categoria.Nombre != "" {
				return m.Egreso.Categoria.Nombre
			}
			if m.Egreso.CategoriaGeneral != "" {
				return m.Egreso.CategoriaGeneral
			}
		}
		return SinCategoria
	case MovVenta:
		if m.Venta != nil && m.Venta.Cliente != nil && m.Venta.Cliente.Nombre != "" {
			return m.Venta.Cliente.Nombre
		}
		return ClienteNoEspecificado
	case MovCompra:
		if m.Compra != nil && m.Compra.Proveedor != nil && m.Compra.Proveedor.Nombre != "" {
			return m.Compra.Proveedor.Nombre
		}
		return ProveedorNoEspecificado
	}
	return ""
}

// Detalle texto secundario del movimiento: para ventas es el tipo
// (producto/servicio); para el resto, la descripción propia del registro.
// Se usa como objetivo de búsqueda y para display.
func (m Movimiento) Detalle() string {
	if m.Tipo == MovVenta && m.Venta != nil && m.Venta.Tipo != "" {
		return m.Venta.Tipo
	}
	return m.Descripcion
}
