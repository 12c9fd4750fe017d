// Package pdf implementa la exportación de reportes a PDF con Maroto v2.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO centrado + período del reporte                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: líneas etiqueta/valor con código de color          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIONES: rankings y desgloses (máx. filas por sección)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación + "Página N de M"               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/reporte"
)

// maxFilasSeccion corte de filas por sección en el PDF; el Excel lleva el
// detalle completo.
const maxFilasSeccion = 8

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimario = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorVerde    = &props.Color{Red: 22, Green: 120, Blue: 60}
	colorRojo     = &props.Color{Red: 170, Green: 40, Blue: 40}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporte.ReporteRenderer = (*MarotoRenderer)(nil)

// MarotoRenderer implementa reporte.ReporteRenderer usando Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer construye el renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// RenderVentas genera el PDF del reporte de ventas.
func (r *MarotoRenderer) RenderVentas(_ context.Context, p *dto.ReporteVentasDTO) ([]byte, error) {
	m := nuevoDocumento("Reporte de Ventas", p.Periodo)

	m.AddRows(filaResumen("Total de ventas", dinero(p.Resumen.TotalVentas), colorVerde))
	m.AddRows(filaResumen("Cantidad de ventas", fmt.Sprintf("%d", p.Resumen.CantidadVentas), colorPrimario))
	m.AddRows(filaResumen("Promedio por venta", dinero(p.Resumen.PromedioVenta), colorPrimario))
	m.AddRows(filaResumen("Ventas altas", fmt.Sprintf("%d", p.Resumen.VentasAltas), colorPrimario))
	m.AddRows(filaResumen("Cumplimiento de meta", p.Resumen.CumplimientoMeta.StringFixed(1)+"%", colorVerde))

	m.AddRows(tituloSeccion("Productos más vendidos")...)
	for i, prod := range recortar(p.TopProductos) {
		m.AddRows(filaRanking(i+1, prod.Nombre,
			fmt.Sprintf("%s und.", prod.Unidades.StringFixed(0)), dinero(prod.Total)))
	}

	m.AddRows(tituloSeccion("Mejores clientes")...)
	for i, cli := range recortar(p.TopClientes) {
		m.AddRows(filaRanking(i+1, cli.Nombre,
			fmt.Sprintf("%d compras", cli.Compras), dinero(cli.Total)))
	}

	m.AddRows(tituloSeccion("Ventas por tipo")...)
	for _, et := range p.VentasPorTipo {
		m.AddRows(filaEtiqueta(et.Etiqueta, dinero(et.Total)))
	}

	return generar(m)
}

// RenderCompras genera el PDF del reporte de compras.
func (r *MarotoRenderer) RenderCompras(_ context.Context, p *dto.ReporteComprasDTO) ([]byte, error) {
	m := nuevoDocumento("Reporte de Compras", p.Periodo)

	m.AddRows(filaResumen("Total de compras", dinero(p.Resumen.TotalCompras), colorRojo))
	m.AddRows(filaResumen("Cantidad de compras", fmt.Sprintf("%d", p.Resumen.CantidadCompras), colorPrimario))
	m.AddRows(filaResumen("Promedio por compra", dinero(p.Resumen.PromedioCompra), colorPrimario))

	m.AddRows(tituloSeccion("Principales proveedores")...)
	for i, prov := range recortar(p.TopProveedores) {
		m.AddRows(filaRanking(i+1, prov.Nombre,
			fmt.Sprintf("%d compras", prov.Compras), dinero(prov.Total)))
	}

	m.AddRows(tituloSeccion("Productos más comprados")...)
	for i, prod := range recortar(p.TopProductos) {
		m.AddRows(filaRanking(i+1, prod.Nombre,
			fmt.Sprintf("%s und.", prod.Unidades.StringFixed(0)), dinero(prod.Total)))
	}

	return generar(m)
}

// RenderIngresosEgresos genera el PDF del estado ingresos vs egresos.
func (r *MarotoRenderer) RenderIngresosEgresos(_ context.Context, p *dto.ReporteIngresosEgresosDTO) ([]byte, error) {
	m := nuevoDocumento("Reporte de Ingresos y Egresos", p.Periodo)

	m.AddRows(filaResumen("Total ingresos", dinero(p.Resumen.TotalIngresos), colorVerde))
	m.AddRows(filaResumen("Total egresos", dinero(p.Resumen.TotalEgresos), colorRojo))
	colorBalance := colorVerde
	if p.Resumen.Balance.IsNegative() {
		colorBalance = colorRojo
	}
	m.AddRows(filaResumen("Balance", dinero(p.Resumen.Balance), colorBalance))

	m.AddRows(tituloSeccion("Ingresos por categoría")...)
	for _, et := range recortar(p.IngresosPorCategoria) {
		m.AddRows(filaEtiqueta(et.Etiqueta, dinero(et.Total)))
	}

	m.AddRows(tituloSeccion("Egresos por categoría")...)
	for _, et := range recortar(p.EgresosPorCategoria) {
		m.AddRows(filaEtiqueta(et.Etiqueta, dinero(et.Total)))
	}

	m.AddRows(tituloSeccion("Detalle por día")...)
	m.AddRows(cabeceraDias())
	for _, d := range recortar(p.DetallePorDia) {
		m.AddRows(filaDia(d))
	}

	return generar(m)
}

// RenderInventario genera el PDF del reporte de inventario.
func (r *MarotoRenderer) RenderInventario(_ context.Context, p *dto.ReporteInventarioDTO) ([]byte, error) {
	m := nuevoDocumento("Reporte de Inventario", p.Periodo)

	m.AddRows(filaResumen("Total de productos", fmt.Sprintf("%d", p.Resumen.TotalProductos), colorPrimario))
	m.AddRows(filaResumen("Valor del inventario", dinero(p.Resumen.ValorInventario), colorVerde))
	m.AddRows(filaResumen("Sin stock", fmt.Sprintf("%d", p.Resumen.SinStock), colorRojo))
	m.AddRows(filaResumen("Stock bajo", fmt.Sprintf("%d", p.Resumen.StockBajo), colorRojo))
	m.AddRows(filaResumen("Stock alto", fmt.Sprintf("%d", p.Resumen.StockAlto), colorPrimario))

	m.AddRows(tituloSeccion("Estado por producto")...)
	for _, prod := range recortar(p.Productos) {
		m.AddRows(row.New(6).Add(
			col.New(5).Add(text.New(prod.Nombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d und.", prod.Cantidad),
				props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(prod.Estado,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorEstado(prod.Estado)})),
			col.New(3).Add(text.New(dinero(prod.ValorInventario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}

	m.AddRows(tituloSeccion("Productos sin movimiento")...)
	for _, prod := range recortar(p.SinMovimiento) {
		m.AddRows(row.New(6).Add(
			col.New(6).Add(text.New(prod.Nombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("%d und.", prod.Cantidad),
				props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(dinero(prod.ValorInmovilizado),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorRojo})),
		))
	}

	return generar(m)
}

// ── Construcción del documento ────────────────────────────────────────────────

// nuevoDocumento crea el documento A4 con título, período y footer comunes.
func nuevoDocumento(titulo string, periodo dto.PeriodoDTO) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.Bottom,
			Size:    8,
			Color:   colorGris,
		}).
		WithTitle(titulo, true).
		Build()

	m := maroto.New(cfg)

	m.RegisterFooter(
		row.New(4).Add(col.New(12).Add(line.New(props.Line{Color: colorGris, Thickness: 0.3}))),
		row.New(5).Add(
			text.NewCol(12, "Generado el "+time.Now().Format("02/01/2006 15:04"),
				props.Text{Size: 7, Align: align.Center, Color: colorGris}),
		),
	)

	m.AddRows(row.New(14).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 15, Align: align.Center, Color: colorPrimario, Top: 1,
			}),
			text.New(fmt.Sprintf("Período: %s a %s", periodo.FechaInicio, periodo.FechaFin), props.Text{
				Size: 9, Align: align.Center, Color: colorGris, Top: 9,
			}),
		),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimario, Thickness: 0.5}))

	return m
}

func generar(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Filas ─────────────────────────────────────────────────────────────────────

// filaResumen: línea etiqueta/valor del panel de resumen.
func filaResumen(etiqueta, valor string, color *props.Color) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(etiqueta, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Left: 2,
		})),
		col.New(6).Add(text.New(valor, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Right: 2, Color: color,
		})),
	)
}

// tituloSeccion: cabecera de una sección con línea separadora.
func tituloSeccion(titulo string) []core.Row {
	return []core.Row{
		row.New(4),
		row.New(7).Add(col.New(12).Add(text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimario, Top: 1,
		}))),
		line.NewRow(1, props.Line{Color: colorGris, Thickness: 0.3}),
	}
}

// filaRanking: posición + nombre + métrica secundaria + total.
func filaRanking(pos int, nombre, secundario, total string) core.Row {
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d.", pos),
			props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGris})),
		col.New(5).Add(text.New(nombre, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(secundario,
			props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorGris})),
		col.New(3).Add(text.New(total,
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// filaEtiqueta: par etiqueta/total de un desglose.
func filaEtiqueta(etiqueta, total string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(etiqueta, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(total,
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func cabeceraDias() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Color: colorPrimario,
		}))
	}
	return row.New(6).Add(
		h("Fecha", 3, align.Left),
		h("Ingresos", 3, align.Right),
		h("Egresos", 3, align.Right),
		h("Acumulado", 3, align.Right),
	)
}

func filaDia(d dto.BalanceDiaDTO) core.Row {
	colorAcum := colorVerde
	if d.Acumulado.IsNegative() {
		colorAcum = colorRojo
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(d.Fecha, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(dinero(d.Ingresos),
			props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorVerde})),
		col.New(3).Add(text.New(dinero(d.Egresos),
			props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorRojo})),
		col.New(3).Add(text.New(dinero(d.Acumulado),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAcum})),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func colorEstado(estado string) *props.Color {
	switch estado {
	case dto.StockSinStock, dto.StockBajo:
		return colorRojo
	case dto.StockAlto:
		return colorPrimario
	default:
		return colorVerde
	}
}

// recortar limita una sección al máximo de filas del PDF.
func recortar[T any](filas []T) []T {
	if len(filas) > maxFilasSeccion {
		return filas[:maxFilasSeccion]
	}
	return filas
}

// dinero formatea un monto con signo peso y puntos de miles.
// Ej: 25000 → "$25.000"
func dinero(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, s[i])
		}
		s = string(buf)
	}
	if neg {
		return "-$" + s
	}
	return "$" + s
}
