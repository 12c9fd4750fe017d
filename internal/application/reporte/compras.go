package reporte

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// Cortes del ranking del reporte de compras.
const (
	topProveedores        = 10
	topProductosComprados = 10
)

// ArmarReporteCompras agrega las compras del período en el payload del reporte.
func ArmarReporteCompras(compras []*entity.Compra, periodo dto.PeriodoDTO) *dto.ReporteComprasDTO {
	total := decimal.Zero

	proveedores := NewAgrupador()
	productos := NewAgrupador()
	porDia := NewAgrupador()

	uno := decimal.NewFromInt(1)

	for _, c := range compras {
		total = total.Add(c.Total)

		proveedorNombre := entity.ProveedorNoEspecificado
		if c.Proveedor != nil && c.Proveedor.Nombre != "" {
			proveedorNombre = c.Proveedor.Nombre
		}
		proveedores.Acumular(proveedorNombre, uno, c.Total, "")
		porDia.Acumular(c.Fecha.Format("2006-01-02"), uno, c.Total, "")

		for _, d := range c.Detalles {
			nombre := "Producto eliminado"
			if d.Producto != nil && d.Producto.Nombre != "" {
				nombre = d.Producto.Nombre
			}
			productos.Acumular(nombre, d.Cantidad, d.Subtotal, proveedorNombre)
		}
	}

	cantidad := len(compras)
	promedio := decimal.Zero
	if cantidad > 0 {
		promedio = total.Div(decimal.NewFromInt(int64(cantidad))).Round(2)
	}

	topProv := make([]dto.ProveedorRankingDTO, 0, topProveedores)
	for _, g := range proveedores.TopN(topProveedores) {
		topProv = append(topProv, dto.ProveedorRankingDTO{
			Nombre:  g.Clave,
			Compras: int(g.Cantidad.IntPart()),
			Total:   g.Total,
		})
	}

	topProd := make([]dto.ProductoCompradoDTO, 0, topProductosComprados)
	for _, g := range productos.TopN(topProductosComprados) {
		topProd = append(topProd, dto.ProductoCompradoDTO{
			Nombre:      g.Clave,
			Unidades:    g.Cantidad,
			Total:       g.Total,
			Proveedores: g.Secundarios,
		})
	}

	dias := make([]dto.DiaTotalDTO, 0, porDia.Len())
	for _, g := range porDia.Grupos() {
		dias = append(dias, dto.DiaTotalDTO{
			Fecha:    g.Clave,
			Total:    g.Total,
			Cantidad: int(g.Cantidad.IntPart()),
		})
	}

	return &dto.ReporteComprasDTO{
		Periodo: periodo,
		Resumen: dto.ResumenComprasDTO{
			TotalCompras:    total,
			CantidadCompras: cantidad,
			PromedioCompra:  promedio,
		},
		TopProveedores: topProv,
		TopProductos:   topProd,
		ComprasPorDia:  dias,
	}
}
