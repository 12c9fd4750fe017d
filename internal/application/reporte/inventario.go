package reporte

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// maxSinMovimiento corte de la lista de productos sin ventas en el período.
const maxSinMovimiento = 20

// Límites de la clasificación de stock.
const (
	stockBajoMax = 10
	stockAltoMin = 100
)

// ClasificarStock devuelve el estado de stock del producto. Los cuatro
// estados son mutuamente excluyentes: cada cantidad cae en exactamente uno.
func ClasificarStock(cantidad int) string {
	switch {
	case cantidad == 0:
		return dto.StockSinStock
	case cantidad <= stockBajoMax:
		return dto.StockBajo
	case cantidad > stockAltoMin:
		return dto.StockAlto
	default:
		return dto.StockNormal
	}
}

// ArmarReporteInventario cruza el inventario actual con las ventas del
// período: clasifica el stock de cada producto, calcula su rotación
// (unidades vendidas / stock actual, 0 si el stock es 0) y lista los
// productos sin movimiento ordenados por valor inmovilizado descendente.
func ArmarReporteInventario(
	productos []*entity.Producto,
	ventas []*entity.Venta,
	periodo dto.PeriodoDTO,
) *dto.ReporteInventarioDTO {
	// Unidades vendidas por producto en el período
	vendidas := make(map[string]decimal.Decimal)
	for _, v := range ventas {
		for _, d := range v.Detalles {
			if d.ProductoID == nil {
				continue
			}
			vendidas[*d.ProductoID] = vendidas[*d.ProductoID].Add(d.Cantidad)
		}
	}

	resumen := dto.ResumenInventarioDTO{ValorInventario: decimal.Zero}
	filas := make([]dto.ProductoInventarioDTO, 0, len(productos))
	var inmovilizados []dto.ProductoInmovilizadoDTO

	for _, p := range productos {
		estado := ClasificarStock(p.Cantidad)
		switch estado {
		case dto.StockSinStock:
			resumen.SinStock++
		case dto.StockBajo:
			resumen.StockBajo++
		case dto.StockAlto:
			resumen.StockAlto++
		default:
			resumen.Normal++
		}

		unidades := vendidas[p.ID]
		rotacion := decimal.Zero
		if p.Cantidad > 0 {
			rotacion = unidades.Div(decimal.NewFromInt(int64(p.Cantidad))).Round(2)
		}

		valor := p.ValorInmovilizado()
		resumen.ValorInventario = resumen.ValorInventario.Add(valor)

		filas = append(filas, dto.ProductoInventarioDTO{
			Nombre:           p.Nombre,
			Cantidad:         p.Cantidad,
			Estado:           estado,
			UnidadesVendidas: unidades,
			Rotacion:         rotacion,
			ValorInventario:  valor,
		})

		if unidades.IsZero() {
			inmovilizados = append(inmovilizados, dto.ProductoInmovilizadoDTO{
				Nombre:            p.Nombre,
				Cantidad:          p.Cantidad,
				ValorInmovilizado: valor,
			})
		}
	}
	resumen.TotalProductos = len(productos)

	sort.SliceStable(inmovilizados, func(i, j int) bool {
		return inmovilizados[i].ValorInmovilizado.GreaterThan(inmovilizados[j].ValorInmovilizado)
	})
	if len(inmovilizados) > maxSinMovimiento {
		inmovilizados = inmovilizados[:maxSinMovimiento]
	}
	if inmovilizados == nil {
		inmovilizados = []dto.ProductoInmovilizadoDTO{}
	}

	return &dto.ReporteInventarioDTO{
		Periodo:       periodo,
		Resumen:       resumen,
		Productos:     filas,
		SinMovimiento: inmovilizados,
	}
}
