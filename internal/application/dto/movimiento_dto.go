package dto

import "github.com/shopspring/decimal"

// MovimientoFiltroRequest filtros de GET /api/movimientos.
// Todos opcionales: tipo vacío significa todos, fechas vacías significan sin
// cota por ese lado, texto vacío no filtra.
type MovimientoFiltroRequest struct {
	Tipo       string `query:"tipo"`        // Ingreso | Egreso | Venta | Compra
	FechaDesde string `query:"fecha_desde"` // YYYY-MM-DD, inclusivo
	FechaHasta string `query:"fecha_hasta"` // YYYY-MM-DD, inclusivo
	Texto      string `query:"texto"`       // búsqueda por substring, case-insensitive
}

// MovimientoDTO fila del historial unificado.
type MovimientoDTO struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Fecha       string          `json:"fecha"` // YYYY-MM-DD
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion,omitempty"`
	Origen      string          `json:"origen"`  // categoría / cliente / proveedor
	Detalle     string          `json:"detalle"` // texto secundario por tipo
}

// ResumenMovimientosDTO tarjetas de resumen sobre el conjunto filtrado.
// Neto es siempre Ingresos - Egresos.
type ResumenMovimientosDTO struct {
	Ingresos decimal.Decimal `json:"ingresos"` // suma de Ingreso + Venta
	Egresos  decimal.Decimal `json:"egresos"`  // suma de Egreso + Compra
	Neto     decimal.Decimal `json:"neto"`
	Total    int             `json:"total"` // cantidad de movimientos filtrados
}

// MovimientosResponse respuesta de GET /api/movimientos.
type MovimientosResponse struct {
	Movimientos []MovimientoDTO       `json:"movimientos"`
	Resumen     ResumenMovimientosDTO `json:"resumen"`
}
