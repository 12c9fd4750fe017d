package dto

import "github.com/shopspring/decimal"

// Formatos de exportación soportados.
const (
	FormatoPDF   = "pdf"
	FormatoExcel = "excel"
)

// ReporteRequest cuerpo de POST /api/reportes/:kind.
// Los tres campos son obligatorios; se validan antes de tocar la base.
type ReporteRequest struct {
	FechaInicio string `json:"fechaInicio"` // YYYY-MM-DD, inclusivo
	FechaFin    string `json:"fechaFin"`    // YYYY-MM-DD, inclusivo
	Formato     string `json:"formato"`     // "pdf" | "excel"
}

// PeriodoDTO rango de fechas del reporte.
type PeriodoDTO struct {
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
}

// EtiquetaTotalDTO par etiqueta/total para desgloses por categoría o tipo.
// El orden de la colección es el de primera aparición (estable).
type EtiquetaTotalDTO struct {
	Etiqueta string          `json:"etiqueta"`
	Total    decimal.Decimal `json:"total"`
}

// DiaTotalDTO total agregado de un día.
type DiaTotalDTO struct {
	Fecha    string          `json:"fecha"` // YYYY-MM-DD
	Total    decimal.Decimal `json:"total"`
	Cantidad int             `json:"cantidad"`
}

// ── Reporte de ventas ─────────────────────────────────────────────────────────

// ResumenVentasDTO escalares del reporte de ventas.
// PromedioVenta es 0 cuando CantidadVentas es 0.
type ResumenVentasDTO struct {
	TotalVentas      decimal.Decimal `json:"totalVentas"`
	CantidadVentas   int             `json:"cantidadVentas"`
	PromedioVenta    decimal.Decimal `json:"promedioVenta"`
	TotalUnidades    decimal.Decimal `json:"totalUnidades"`
	VentasAltas      int             `json:"ventasAltas"`      // ventas sobre el umbral configurado
	MetaMensual      decimal.Decimal `json:"metaMensual"`      // desde configuración
	CumplimientoMeta decimal.Decimal `json:"cumplimientoMeta"` // TotalVentas / MetaMensual * 100, 0 si la meta es 0
}

// ProductoVendidoDTO entrada del ranking de productos vendidos.
type ProductoVendidoDTO struct {
	Nombre   string          `json:"nombre"`
	Unidades decimal.Decimal `json:"unidades"`
	Total    decimal.Decimal `json:"total"`
	Clientes []string        `json:"clientes"` // clientes distintos que lo compraron, en orden de aparición
}

// ClienteRankingDTO entrada del ranking de clientes.
type ClienteRankingDTO struct {
	Nombre  string          `json:"nombre"`
	Compras int             `json:"compras"`
	Total   decimal.Decimal `json:"total"`
}

// ReporteVentasDTO payload completo del reporte de ventas, agnóstico del formato.
type ReporteVentasDTO struct {
	Periodo       PeriodoDTO           `json:"periodo"`
	Resumen       ResumenVentasDTO     `json:"resumen"`
	TopProductos  []ProductoVendidoDTO `json:"topProductos"`
	TopClientes   []ClienteRankingDTO  `json:"topClientes"`
	VentasPorDia  []DiaTotalDTO        `json:"ventasPorDia"`
	VentasPorTipo []EtiquetaTotalDTO   `json:"ventasPorTipo"` // producto vs servicio
}

// ── Reporte de compras ────────────────────────────────────────────────────────

// ResumenComprasDTO escalares del reporte de compras.
type ResumenComprasDTO struct {
	TotalCompras    decimal.Decimal `json:"totalCompras"`
	CantidadCompras int             `json:"cantidadCompras"`
	PromedioCompra  decimal.Decimal `json:"promedioCompra"`
}

// ProveedorRankingDTO entrada del ranking de proveedores.
type ProveedorRankingDTO struct {
	Nombre  string          `json:"nombre"`
	Compras int             `json:"compras"`
	Total   decimal.Decimal `json:"total"`
}

// ProductoCompradoDTO entrada del ranking de productos comprados.
type ProductoCompradoDTO struct {
	Nombre      string          `json:"nombre"`
	Unidades    decimal.Decimal `json:"unidades"`
	Total       decimal.Decimal `json:"total"`
	Proveedores []string        `json:"proveedores"` // proveedores distintos que lo surtieron
}

// ReporteComprasDTO payload completo del reporte de compras.
type ReporteComprasDTO struct {
	Periodo        PeriodoDTO            `json:"periodo"`
	Resumen        ResumenComprasDTO     `json:"resumen"`
	TopProveedores []ProveedorRankingDTO `json:"topProveedores"`
	TopProductos   []ProductoCompradoDTO `json:"topProductos"`
	ComprasPorDia  []DiaTotalDTO         `json:"comprasPorDia"`
}

// ── Reporte ingresos vs egresos ───────────────────────────────────────────────

// ResumenIngresosEgresosDTO escalares del estado de resultados simple.
// Balance es siempre TotalIngresos - TotalEgresos.
type ResumenIngresosEgresosDTO struct {
	TotalIngresos    decimal.Decimal `json:"totalIngresos"`
	TotalEgresos     decimal.Decimal `json:"totalEgresos"`
	Balance          decimal.Decimal `json:"balance"`
	CantidadIngresos int             `json:"cantidadIngresos"`
	CantidadEgresos  int             `json:"cantidadEgresos"`
	PromedioIngreso  decimal.Decimal `json:"promedioIngreso"`
	PromedioEgreso   decimal.Decimal `json:"promedioEgreso"`
}

// BalanceDiaDTO fila del detalle diario con balance acumulado.
type BalanceDiaDTO struct {
	Fecha     string          `json:"fecha"`
	Ingresos  decimal.Decimal `json:"ingresos"`
	Egresos   decimal.Decimal `json:"egresos"`
	Acumulado decimal.Decimal `json:"acumulado"`
}

// ReporteIngresosEgresosDTO payload completo del reporte ingresos vs egresos.
type ReporteIngresosEgresosDTO struct {
	Periodo              PeriodoDTO                `json:"periodo"`
	Resumen              ResumenIngresosEgresosDTO `json:"resumen"`
	IngresosPorCategoria []EtiquetaTotalDTO        `json:"ingresosPorCategoria"`
	EgresosPorCategoria  []EtiquetaTotalDTO        `json:"egresosPorCategoria"`
	DetallePorDia        []BalanceDiaDTO           `json:"detallePorDia"`
}

// ── Reporte de inventario ─────────────────────────────────────────────────────

// Estados de stock mutuamente excluyentes.
const (
	StockSinStock = "Sin Stock"  // cantidad = 0
	StockBajo     = "Stock Bajo" // 0 < cantidad <= 10
	StockAlto     = "Stock Alto" // cantidad > 100
	StockNormal   = "Normal"     // resto
)

// ResumenInventarioDTO escalares del reporte de inventario.
type ResumenInventarioDTO struct {
	TotalProductos  int             `json:"totalProductos"`
	ValorInventario decimal.Decimal `json:"valorInventario"` // suma de PrecioCompra × Cantidad
	SinStock        int             `json:"sinStock"`
	StockBajo       int             `json:"stockBajo"`
	StockAlto       int             `json:"stockAlto"`
	Normal          int             `json:"normal"`
}

// ProductoInventarioDTO fila por producto con estado y rotación del período.
// Rotacion = unidades vendidas en el período / stock actual; 0 si el stock es 0.
type ProductoInventarioDTO struct {
	Nombre           string          `json:"nombre"`
	Cantidad         int             `json:"cantidad"`
	Estado           string          `json:"estado"`
	UnidadesVendidas decimal.Decimal `json:"unidadesVendidas"`
	Rotacion         decimal.Decimal `json:"rotacion"`
	ValorInventario  decimal.Decimal `json:"valorInventario"`
}

// ProductoInmovilizadoDTO producto sin ventas en el período, con el valor de
// inventario parado que representa.
type ProductoInmovilizadoDTO struct {
	Nombre            string          `json:"nombre"`
	Cantidad          int             `json:"cantidad"`
	ValorInmovilizado decimal.Decimal `json:"valorInmovilizado"`
}

// ReporteInventarioDTO payload completo del reporte de inventario.
type ReporteInventarioDTO struct {
	Periodo       PeriodoDTO                `json:"periodo"`
	Resumen       ResumenInventarioDTO      `json:"resumen"`
	Productos     []ProductoInventarioDTO   `json:"productos"`
	SinMovimiento []ProductoInmovilizadoDTO `json:"sinMovimiento"`
}

// ReporteGeneradoDTO documento binario listo para responder.
type ReporteGeneradoDTO struct {
	Contenido []byte
	MimeType  string
	Filename  string
}
