// Package excel implementa la exportación de reportes a XLSX con excelize.
// Cada documento lleva una hoja "Resumen" y hojas de detalle solo cuando hay
// filas que mostrar; a diferencia del PDF, el detalle no se recorta.
package excel

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/reporte"
)

var _ reporte.ReporteRenderer = (*ExcelizeRenderer)(nil)

// impresora formatea montos con separadores de miles es-CO.
var impresora = message.NewPrinter(language.MustParse("es-CO"))

// ExcelizeRenderer implementa reporte.ReporteRenderer usando excelize.
type ExcelizeRenderer struct{}

// NewExcelizeRenderer construye el renderer.
func NewExcelizeRenderer() *ExcelizeRenderer { return &ExcelizeRenderer{} }

// RenderVentas genera el XLSX del reporte de ventas.
func (r *ExcelizeRenderer) RenderVentas(_ context.Context, p *dto.ReporteVentasDTO) ([]byte, error) {
	f, esc, err := nuevoLibro("Reporte de Ventas", p.Periodo)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	esc.par("Total de ventas", moneda(p.Resumen.TotalVentas))
	esc.par("Cantidad de ventas", p.Resumen.CantidadVentas)
	esc.par("Promedio por venta", moneda(p.Resumen.PromedioVenta))
	esc.par("Unidades vendidas", p.Resumen.TotalUnidades.StringFixed(0))
	esc.par("Ventas altas", p.Resumen.VentasAltas)
	esc.par("Meta mensual", moneda(p.Resumen.MetaMensual))
	esc.par("Cumplimiento de meta", p.Resumen.CumplimientoMeta.StringFixed(1)+"%")

	if len(p.TopProductos) > 0 {
		h, err := nuevaHoja(f, "Productos", "Producto", "Unidades", "Total", "Clientes")
		if err != nil {
			return nil, err
		}
		for _, prod := range p.TopProductos {
			h.fila(prod.Nombre, prod.Unidades.StringFixed(0), moneda(prod.Total), len(prod.Clientes))
		}
	}
	if len(p.TopClientes) > 0 {
		h, err := nuevaHoja(f, "Clientes", "Cliente", "Compras", "Total")
		if err != nil {
			return nil, err
		}
		for _, cli := range p.TopClientes {
			h.fila(cli.Nombre, cli.Compras, moneda(cli.Total))
		}
	}
	if len(p.VentasPorDia) > 0 {
		h, err := nuevaHoja(f, "Ventas por día", "Fecha", "Ventas", "Total")
		if err != nil {
			return nil, err
		}
		for _, d := range p.VentasPorDia {
			h.fila(d.Fecha, d.Cantidad, moneda(d.Total))
		}
	}
	if len(p.VentasPorTipo) > 0 {
		h, err := nuevaHoja(f, "Por tipo", "Tipo", "Total")
		if err != nil {
			return nil, err
		}
		for _, et := range p.VentasPorTipo {
			h.fila(et.Etiqueta, moneda(et.Total))
		}
	}

	return bytesDe(f)
}

// RenderCompras genera el XLSX del reporte de compras.
func (r *ExcelizeRenderer) RenderCompras(_ context.Context, p *dto.ReporteComprasDTO) ([]byte, error) {
	f, esc, err := nuevoLibro("Reporte de Compras", p.Periodo)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	esc.par("Total de compras", moneda(p.Resumen.TotalCompras))
	esc.par("Cantidad de compras", p.Resumen.CantidadCompras)
	esc.par("Promedio por compra", moneda(p.Resumen.PromedioCompra))

	if len(p.TopProveedores) > 0 {
		h, err := nuevaHoja(f, "Proveedores", "Proveedor", "Compras", "Total")
		if err != nil {
			return nil, err
		}
		for _, prov := range p.TopProveedores {
			h.fila(prov.Nombre, prov.Compras, moneda(prov.Total))
		}
	}
	if len(p.TopProductos) > 0 {
		h, err := nuevaHoja(f, "Productos", "Producto", "Unidades", "Total", "Proveedores")
		if err != nil {
			return nil, err
		}
		for _, prod := range p.TopProductos {
			h.fila(prod.Nombre, prod.Unidades.StringFixed(0), moneda(prod.Total), len(prod.Proveedores))
		}
	}
	if len(p.ComprasPorDia) > 0 {
		h, err := nuevaHoja(f, "Compras por día", "Fecha", "Compras", "Total")
		if err != nil {
			return nil, err
		}
		for _, d := range p.ComprasPorDia {
			h.fila(d.Fecha, d.Cantidad, moneda(d.Total))
		}
	}

	return bytesDe(f)
}

// RenderIngresosEgresos genera el XLSX del estado ingresos vs egresos.
func (r *ExcelizeRenderer) RenderIngresosEgresos(_ context.Context, p *dto.ReporteIngresosEgresosDTO) ([]byte, error) {
	f, esc, err := nuevoLibro("Reporte de Ingresos y Egresos", p.Periodo)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	esc.par("Total ingresos", moneda(p.Resumen.TotalIngresos))
	esc.par("Total egresos", moneda(p.Resumen.TotalEgresos))
	esc.par("Balance", moneda(p.Resumen.Balance))
	esc.par("Cantidad de ingresos", p.Resumen.CantidadIngresos)
	esc.par("Cantidad de egresos", p.Resumen.CantidadEgresos)
	esc.par("Promedio por ingreso", moneda(p.Resumen.PromedioIngreso))
	esc.par("Promedio por egreso", moneda(p.Resumen.PromedioEgreso))

	if len(p.IngresosPorCategoria) > 0 || len(p.EgresosPorCategoria) > 0 {
		h, err := nuevaHoja(f, "Categorías", "Tipo", "Categoría", "Total")
		if err != nil {
			return nil, err
		}
		for _, et := range p.IngresosPorCategoria {
			h.fila("Ingreso", et.Etiqueta, moneda(et.Total))
		}
		for _, et := range p.EgresosPorCategoria {
			h.fila("Egreso", et.Etiqueta, moneda(et.Total))
		}
	}
	if len(p.DetallePorDia) > 0 {
		h, err := nuevaHoja(f, "Detalle diario", "Fecha", "Ingresos", "Egresos", "Acumulado")
		if err != nil {
			return nil, err
		}
		for _, d := range p.DetallePorDia {
			h.fila(d.Fecha, moneda(d.Ingresos), moneda(d.Egresos), moneda(d.Acumulado))
		}
	}

	return bytesDe(f)
}

// RenderInventario genera el XLSX del reporte de inventario.
func (r *ExcelizeRenderer) RenderInventario(_ context.Context, p *dto.ReporteInventarioDTO) ([]byte, error) {
	f, esc, err := nuevoLibro("Reporte de Inventario", p.Periodo)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	esc.par("Total de productos", p.Resumen.TotalProductos)
	esc.par("Valor del inventario", moneda(p.Resumen.ValorInventario))
	esc.par("Sin stock", p.Resumen.SinStock)
	esc.par("Stock bajo", p.Resumen.StockBajo)
	esc.par("Stock alto", p.Resumen.StockAlto)
	esc.par("Stock normal", p.Resumen.Normal)

	if len(p.Productos) > 0 {
		h, err := nuevaHoja(f, "Productos",
			"Producto", "Cantidad", "Estado", "Unidades vendidas", "Rotación", "Valor")
		if err != nil {
			return nil, err
		}
		for _, prod := range p.Productos {
			h.fila(prod.Nombre, prod.Cantidad, prod.Estado,
				prod.UnidadesVendidas.StringFixed(0), prod.Rotacion.StringFixed(2),
				moneda(prod.ValorInventario))
		}
	}
	if len(p.SinMovimiento) > 0 {
		h, err := nuevaHoja(f, "Sin movimiento", "Producto", "Cantidad", "Valor inmovilizado")
		if err != nil {
			return nil, err
		}
		for _, prod := range p.SinMovimiento {
			h.fila(prod.Nombre, prod.Cantidad, moneda(prod.ValorInmovilizado))
		}
	}

	return bytesDe(f)
}

// ── Construcción del libro ────────────────────────────────────────────────────

// hojaResumen escribe pares etiqueta/valor en la hoja Resumen.
type hojaResumen struct {
	f    *excelize.File
	fila int
}

func (h *hojaResumen) par(etiqueta string, valor any) {
	h.fila++
	_ = h.f.SetCellValue("Resumen", fmt.Sprintf("A%d", h.fila), etiqueta)
	_ = h.f.SetCellValue("Resumen", fmt.Sprintf("B%d", h.fila), valor)
}

// hojaDetalle escribe filas bajo una cabecera.
type hojaDetalle struct {
	f          *excelize.File
	nombre     string
	filaActual int
}

func (h *hojaDetalle) fila(valores ...any) {
	h.filaActual++
	for i, v := range valores {
		celda, _ := excelize.CoordinatesToCellName(i+1, h.filaActual)
		_ = h.f.SetCellValue(h.nombre, celda, v)
	}
}

// nuevoLibro crea el archivo con la hoja Resumen, título y período.
func nuevoLibro(titulo string, periodo dto.PeriodoDTO) (*excelize.File, *hojaResumen, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Resumen"); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	_ = f.SetColWidth("Resumen", "A", "A", 28)
	_ = f.SetColWidth("Resumen", "B", "B", 20)

	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}})
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("excel: crear estilo: %w", err)
	}
	_ = f.SetCellValue("Resumen", "A1", titulo)
	_ = f.SetCellStyle("Resumen", "A1", "A1", negrita)
	_ = f.SetCellValue("Resumen", "A2",
		fmt.Sprintf("Período: %s a %s", periodo.FechaInicio, periodo.FechaFin))

	return f, &hojaResumen{f: f, fila: 3}, nil
}

// nuevaHoja agrega una hoja de detalle con su cabecera en negrita.
func nuevaHoja(f *excelize.File, nombre string, cabecera ...string) (*hojaDetalle, error) {
	if _, err := f.NewSheet(nombre); err != nil {
		return nil, fmt.Errorf("excel: crear hoja %s: %w", nombre, err)
	}
	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}
	for i, titulo := range cabecera {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(nombre, celda, titulo)
		_ = f.SetCellStyle(nombre, celda, celda, negrita)
		columna, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(nombre, columna, columna, 22)
	}
	return &hojaDetalle{f: f, nombre: nombre, filaActual: 1}, nil
}

func bytesDe(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// moneda formatea un monto con signo peso y separadores de miles es-CO.
func moneda(d decimal.Decimal) string {
	v, _ := d.Float64()
	return impresora.Sprintf("$%v", number.Decimal(v, number.MaxFractionDigits(0)))
}
