package movimiento

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// Filtro criterios del historial. Todos opcionales; los presentes se combinan
// con AND. Las fechas se comparan como fechas calendario inclusivas.
type Filtro struct {
	Tipo       entity.TipoMovimiento // "" = todos
	FechaDesde *time.Time
	FechaHasta *time.Time
	Texto      string // substring case-insensitive sobre descripción, tipo, monto y origen
}

// Resumen agregados sobre el conjunto filtrado. Con conjunto vacío todos los
// campos quedan en cero.
type Resumen struct {
	Ingresos decimal.Decimal // suma de montos de Ingreso + Venta
	Egresos  decimal.Decimal // suma de montos de Egreso + Compra
	Neto     decimal.Decimal // Ingresos - Egresos
	Total    int
}

// FiltrarYResumir aplica el filtro y calcula el resumen sobre lo filtrado.
// Determinista: sin estado oculto, mismo resultado en cada llamada.
func FiltrarYResumir(movs []entity.Movimiento, f Filtro) ([]entity.Movimiento, Resumen) {
	filtrados := make([]entity.Movimiento, 0, len(movs))
	var res Resumen
	res.Ingresos = decimal.Zero
	res.Egresos = decimal.Zero

	texto := strings.ToLower(strings.TrimSpace(f.Texto))

	for _, m := range movs {
		if f.Tipo != "" && m.Tipo != f.Tipo {
			continue
		}
		if !enRango(m.Fecha, f.FechaDesde, f.FechaHasta) {
			continue
		}
		if texto != "" && !coincideTexto(m, texto) {
			continue
		}
		filtrados = append(filtrados, m)
		if m.EsEntrada() {
			res.Ingresos = res.Ingresos.Add(m.Monto)
		} else {
			res.Egresos = res.Egresos.Add(m.Monto)
		}
	}

	res.Neto = res.Ingresos.Sub(res.Egresos)
	res.Total = len(filtrados)
	return filtrados, res
}

// coincideTexto busca el substring (ya en minúsculas) en los campos visibles
// del movimiento: descripción, etiqueta de tipo, monto y origen. OR lógico,
// gana la primera coincidencia.
func coincideTexto(m entity.Movimiento, texto string) bool {
	campos := [...]string{
		m.Descripcion,
		string(m.Tipo),
		m.Monto.String(),
		m.EtiquetaOrigen(),
		m.Detalle(),
	}
	for _, c := range campos {
		if strings.Contains(strings.ToLower(c), texto) {
			return true
		}
	}
	return false
}

// enRango compara como fechas calendario (sin componente horario), ambos
// límites inclusivos; un límite nil no acota por ese lado.
func enRango(fecha time.Time, desde, hasta *time.Time) bool {
	d := diaDe(fecha)
	if desde != nil && d.Before(diaDe(*desde)) {
		return false
	}
	if hasta != nil && d.After(diaDe(*hasta)) {
		return false
	}
	return true
}

func diaDe(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
