package reporte

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/pkg/orderedmap"
)

// ArmarReporteIngresosEgresos agrega ingresos y egresos del período en el
// payload del estado de resultados simple: totales, promedios, desglose por
// categoría (orden de primera aparición) y detalle diario con acumulado.
func ArmarReporteIngresosEgresos(
	ingresos []*entity.Ingreso,
	egresos []*entity.Egreso,
	periodo dto.PeriodoDTO,
) *dto.ReporteIngresosEgresosDTO {
	totalIngresos := decimal.Zero
	totalEgresos := decimal.Zero

	ingresosPorCategoria := orderedmap.New()
	egresosPorCategoria := orderedmap.New()

	type dia struct {
		ingresos decimal.Decimal
		egresos  decimal.Decimal
	}
	porDia := make(map[string]*dia)
	diaDe := func(fecha string) *dia {
		d, ok := porDia[fecha]
		if !ok {
			d = &dia{ingresos: decimal.Zero, egresos: decimal.Zero}
			porDia[fecha] = d
		}
		return d
	}

	for _, in := range ingresos {
		totalIngresos = totalIngresos.Add(in.Monto)

		etiqueta := entity.SinCategoria
		if in.Categoria != nil && in.Categoria.Nombre != "" {
			etiqueta = in.Categoria.Nombre
		}
		ingresosPorCategoria.Sumar(etiqueta, in.Monto)

		f := in.Fecha.Format("2006-01-02")
		diaDe(f).ingresos = diaDe(f).ingresos.Add(in.Monto)
	}

	for _, eg := range egresos {
		totalEgresos = totalEgresos.Add(eg.Monto)

		etiqueta := entity.SinCategoria
		switch {
		case eg.Categoria != nil && eg.Categoria.Nombre != "":
			etiqueta = eg.Categoria.Nombre
		case eg.CategoriaGeneral != "":
			etiqueta = eg.CategoriaGeneral
		}
		egresosPorCategoria.Sumar(etiqueta, eg.Monto)

		f := eg.Fecha.Format("2006-01-02")
		diaDe(f).egresos = diaDe(f).egresos.Add(eg.Monto)
	}

	promedioIngreso := decimal.Zero
	if len(ingresos) > 0 {
		promedioIngreso = totalIngresos.Div(decimal.NewFromInt(int64(len(ingresos)))).Round(2)
	}
	promedioEgreso := decimal.Zero
	if len(egresos) > 0 {
		promedioEgreso = totalEgresos.Div(decimal.NewFromInt(int64(len(egresos)))).Round(2)
	}

	// Detalle diario en orden cronológico (las claves YYYY-MM-DD ordenan
	// lexicográficamente igual que por fecha), con balance acumulado.
	fechas := make([]string, 0, len(porDia))
	for f := range porDia {
		fechas = append(fechas, f)
	}
	sort.Strings(fechas)

	detalle := make([]dto.BalanceDiaDTO, 0, len(fechas))
	acumulado := decimal.Zero
	for _, f := range fechas {
		d := porDia[f]
		acumulado = acumulado.Add(d.ingresos).Sub(d.egresos)
		detalle = append(detalle, dto.BalanceDiaDTO{
			Fecha:     f,
			Ingresos:  d.ingresos,
			Egresos:   d.egresos,
			Acumulado: acumulado,
		})
	}

	return &dto.ReporteIngresosEgresosDTO{
		Periodo: periodo,
		Resumen: dto.ResumenIngresosEgresosDTO{
			TotalIngresos:    totalIngresos,
			TotalEgresos:     totalEgresos,
			Balance:          totalIngresos.Sub(totalEgresos),
			CantidadIngresos: len(ingresos),
			CantidadEgresos:  len(egresos),
			PromedioIngreso:  promedioIngreso,
			PromedioEgreso:   promedioEgreso,
		},
		IngresosPorCategoria: etiquetas(ingresosPorCategoria),
		EgresosPorCategoria:  etiquetas(egresosPorCategoria),
		DetallePorDia:        detalle,
	}
}

func etiquetas(m *orderedmap.Map) []dto.EtiquetaTotalDTO {
	entradas := m.Entradas()
	out := make([]dto.EtiquetaTotalDTO, 0, len(entradas))
	for _, e := range entradas {
		out = append(out, dto.EtiquetaTotalDTO{Etiqueta: e.Clave, Total: e.Valor})
	}
	return out
}
