// Package movimiento construye y agrega la vista unificada de movimientos:
// la proyección de Ingresos, Egresos, Ventas y Compras sobre una sola forma
// para el historial de transacciones, con filtros y tarjetas de resumen.
package movimiento

import (
	"sort"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// Normalizar proyecta las cuatro colecciones origen sobre []entity.Movimiento.
// Transformación pura: no consulta nada ni muta los registros de entrada.
// El resultado queda ordenado por fecha ascendente; ante fechas iguales se
// conserva el orden de entrada (ingresos, egresos, ventas, compras).
func Normalizar(
	ingresos []*entity.Ingreso,
	egresos []*entity.Egreso,
	ventas []*entity.Venta,
	compras []*entity.Compra,
) []entity.Movimiento {
	movs := make([]entity.Movimiento, 0, len(ingresos)+len(egresos)+len(ventas)+len(compras))

	for _, in := range ingresos {
		movs = append(movs, entity.Movimiento{
			ID:          in.ID,
			Tipo:        entity.MovIngreso,
			Fecha:       in.Fecha,
			Monto:       in.Monto,
			Descripcion: in.Descripcion,
			Ingreso:     in,
		})
	}
	for _, eg := range egresos {
		movs = append(movs, entity.Movimiento{
			ID:          eg.ID,
			Tipo:        entity.MovEgreso,
			Fecha:       eg.Fecha,
			Monto:       eg.Monto,
			Descripcion: eg.Descripcion,
			Egreso:      eg,
		})
	}
	for _, v := range ventas {
		movs = append(movs, entity.Movimiento{
			ID:          v.ID,
			Tipo:        entity.MovVenta,
			Fecha:       v.Fecha,
			Monto:       v.Total,
			Descripcion: v.Descripcion,
			Venta:       v,
		})
	}
	for _, c := range compras {
		movs = append(movs, entity.Movimiento{
			ID:          c.ID,
			Tipo:        entity.MovCompra,
			Fecha:       c.Fecha,
			Monto:       c.Total,
			Descripcion: c.Descripcion,
			Compra:      c,
		})
	}

	sort.SliceStable(movs, func(i, j int) bool {
		return movs[i].Fecha.Before(movs[j].Fecha)
	})
	return movs
}
