package reporte

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// topProductosVentas y topClientes: cortes del ranking del reporte de ventas.
const (
	topProductosVentas = 10
	topClientes        = 10
)

// ArmarReporteVentas agrega las ventas del período en el payload del reporte.
// Pura: recibe las filas ya consultadas (orden fecha ascendente) y no toca el store.
func ArmarReporteVentas(
	ventas []*entity.Venta,
	periodo dto.PeriodoDTO,
	umbralVentaAlta decimal.Decimal,
	metaMensual decimal.Decimal,
) *dto.ReporteVentasDTO {
	total := decimal.Zero
	unidades := decimal.Zero
	ventasAltas := 0

	productos := NewAgrupador()
	clientes := NewAgrupador()
	porDia := NewAgrupador()
	porTipo := NewAgrupador()

	uno := decimal.NewFromInt(1)

	for _, v := range ventas {
		total = total.Add(v.Total)
		if v.Total.GreaterThanOrEqual(umbralVentaAlta) {
			ventasAltas++
		}

		clienteNombre := entity.ClienteNoEspecificado
		if v.Cliente != nil && v.Cliente.Nombre != "" {
			clienteNombre = v.Cliente.Nombre
		}
		clientes.Acumular(clienteNombre, uno, v.Total, "")
		porDia.Acumular(v.Fecha.Format("2006-01-02"), uno, v.Total, "")

		tipo := v.Tipo
		if tipo == "" {
			tipo = entity.VentaProducto
		}
		porTipo.Acumular(tipo, uno, v.Total, "")

		for _, d := range v.Detalles {
			unidades = unidades.Add(d.Cantidad)
			nombre := "Producto eliminado"
			if d.Producto != nil && d.Producto.Nombre != "" {
				nombre = d.Producto.Nombre
			}
			productos.Acumular(nombre, d.Cantidad, d.Subtotal, clienteNombre)
		}
	}

	cantidad := len(ventas)
	promedio := decimal.Zero
	if cantidad > 0 {
		promedio = total.Div(decimal.NewFromInt(int64(cantidad))).Round(2)
	}
	cumplimiento := decimal.Zero
	if metaMensual.IsPositive() {
		cumplimiento = total.Div(metaMensual).Mul(decimal.NewFromInt(100)).Round(2)
	}

	topProd := make([]dto.ProductoVendidoDTO, 0, topProductosVentas)
	for _, g := range productos.TopN(topProductosVentas) {
		topProd = append(topProd, dto.ProductoVendidoDTO{
			Nombre:   g.Clave,
			Unidades: g.Cantidad,
			Total:    g.Total,
			Clientes: g.Secundarios,
		})
	}

	topCli := make([]dto.ClienteRankingDTO, 0, topClientes)
	for _, g := range clientes.TopN(topClientes) {
		topCli = append(topCli, dto.ClienteRankingDTO{
			Nombre:  g.Clave,
			Compras: int(g.Cantidad.IntPart()),
			Total:   g.Total,
		})
	}

	dias := make([]dto.DiaTotalDTO, 0, len(porDia.Grupos()))
	for _, g := range porDia.Grupos() {
		dias = append(dias, dto.DiaTotalDTO{
			Fecha:    g.Clave,
			Total:    g.Total,
			Cantidad: int(g.Cantidad.IntPart()),
		})
	}

	tipos := make([]dto.EtiquetaTotalDTO, 0, porTipo.Len())
	for _, g := range porTipo.Grupos() {
		tipos = append(tipos, dto.EtiquetaTotalDTO{Etiqueta: g.Clave, Total: g.Total})
	}

	return &dto.ReporteVentasDTO{
		Periodo: periodo,
		Resumen: dto.ResumenVentasDTO{
			TotalVentas:      total,
			CantidadVentas:   cantidad,
			PromedioVenta:    promedio,
			TotalUnidades:    unidades,
			VentasAltas:      ventasAltas,
			MetaMensual:      metaMensual,
			CumplimientoMeta: cumplimiento,
		},
		TopProductos:  topProd,
		TopClientes:   topCli,
		VentasPorDia:  dias,
		VentasPorTipo: tipos,
	}
}
