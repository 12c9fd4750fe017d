package movimiento_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/movimiento"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func fecha(dia string) time.Time {
	t, err := time.Parse("2006-01-02", dia)
	if err != nil {
		panic(err)
	}
	return t
}

func monto(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func ingresoDe(id, dia string, m int64, categoria string) *entity.Ingreso {
	in := &entity.Ingreso{ID: id, Fecha: fecha(dia), Monto: monto(m)}
	if categoria != "" {
		in.Categoria = &entity.Categoria{Nombre: categoria}
	}
	return in
}

func egresoDe(id, dia string, m int64) *entity.Egreso {
	return &entity.Egreso{ID: id, Fecha: fecha(dia), Monto: monto(m)}
}

func ventaDe(id, dia string, m int64, cliente string) *entity.Venta {
	v := &entity.Venta{ID: id, Fecha: fecha(dia), Total: monto(m), Tipo: entity.VentaProducto}
	if cliente != "" {
		v.Cliente = &entity.Cliente{Nombre: cliente}
	}
	return v
}

func compraDe(id, dia string, m int64, proveedor string) *entity.Compra {
	c := &entity.Compra{ID: id, Fecha: fecha(dia), Total: monto(m)}
	if proveedor != "" {
		c.Proveedor = &entity.Proveedor{Nombre: proveedor}
	}
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalizar — proyección y orden
// ──────────────────────────────────────────────────────────────────────────────

// Las cuatro colecciones se proyectan a una sola lista ordenada por fecha
// ascendente; ante fechas iguales se conserva el orden de entrada
// (ingresos, egresos, ventas, compras).
func TestNormalizar_OrdenaPorFechaConDesempateEstable(t *testing.T) {
	movs := movimiento.Normalizar(
		[]*entity.Ingreso{ingresoDe("i1", "2025-01-10", 100, "")},
		[]*entity.Egreso{egresoDe("e1", "2025-01-10", 50)},
		[]*entity.Venta{ventaDe("v1", "2025-01-05", 200, "")},
		[]*entity.Compra{compraDe("c1", "2025-01-10", 80, "")},
	)

	require.Len(t, movs, 4)
	// v1 es el más antiguo; los tres del 10 de enero conservan el orden de entrada
	assert.Equal(t, "v1", movs[0].ID)
	assert.Equal(t, "i1", movs[1].ID)
	assert.Equal(t, "e1", movs[2].ID)
	assert.Equal(t, "c1", movs[3].ID)
}

func TestNormalizar_ProyectaMontoSegunVariante(t *testing.T) {
	movs := movimiento.Normalizar(
		nil, nil,
		[]*entity.Venta{ventaDe("v1", "2025-01-05", 200, "")},
		[]*entity.Compra{compraDe("c1", "2025-01-06", 80, "")},
	)

	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovVenta, movs[0].Tipo)
	assert.True(t, movs[0].Monto.Equal(monto(200)), "el monto de una venta es su Total")
	assert.Equal(t, entity.MovCompra, movs[1].Tipo)
	assert.True(t, movs[1].Monto.Equal(monto(80)), "el monto de una compra es su Total")
}

func TestNormalizar_VacioDevuelveListaVacia(t *testing.T) {
	movs := movimiento.Normalizar(nil, nil, nil, nil)
	assert.Empty(t, movs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Etiquetas de origen
// ──────────────────────────────────────────────────────────────────────────────

func TestEtiquetaOrigen_ConRelacionPresente(t *testing.T) {
	movs := movimiento.Normalizar(
		[]*entity.Ingreso{ingresoDe("i1", "2025-01-01", 10, "Ventas locales")},
		nil,
		[]*entity.Venta{ventaDe("v1", "2025-01-02", 20, "María")},
		[]*entity.Compra{compraDe("c1", "2025-01-03", 30, "Distribuidora Sur")},
	)

	require.Len(t, movs, 3)
	assert.Equal(t, "Ventas locales", movs[0].EtiquetaOrigen())
	assert.Equal(t, "María", movs[1].EtiquetaOrigen())
	assert.Equal(t, "Distribuidora Sur", movs[2].EtiquetaOrigen())
}

// Sin relación cargada cada variante cae a su etiqueta por defecto.
func TestEtiquetaOrigen_Fallbacks(t *testing.T) {
	movs := movimiento.Normalizar(
		[]*entity.Ingreso{ingresoDe("i1", "2025-01-01", 10, "")},
		[]*entity.Egreso{egresoDe("e1", "2025-01-02", 10)},
		[]*entity.Venta{ventaDe("v1", "2025-01-03", 10, "")},
		[]*entity.Compra{compraDe("c1", "2025-01-04", 10, "")},
	)

	require.Len(t, movs, 4)
	assert.Equal(t, entity.SinCategoria, movs[0].EtiquetaOrigen())
	assert.Equal(t, entity.SinCategoria, movs[1].EtiquetaOrigen())
	assert.Equal(t, entity.ClienteNoEspecificado, movs[2].EtiquetaOrigen())
	assert.Equal(t, entity.ProveedorNoEspecificado, movs[3].EtiquetaOrigen())
}

// Un egreso sin categoría específica pero con categoría general usa esta última.
func TestEtiquetaOrigen_EgresoConCategoriaGeneral(t *testing.T) {
	eg := egresoDe("e1", "2025-01-02", 10)
	eg.CategoriaGeneral = "Servicios públicos"

	movs := movimiento.Normalizar(nil, []*entity.Egreso{eg}, nil, nil)
	require.Len(t, movs, 1)
	assert.Equal(t, "Servicios públicos", movs[0].EtiquetaOrigen())
}

// ──────────────────────────────────────────────────────────────────────────────
// FiltrarYResumir
// ──────────────────────────────────────────────────────────────────────────────

func movimientosDePrueba() []entity.Movimiento {
	return movimiento.Normalizar(
		[]*entity.Ingreso{ingresoDe("i1", "2025-01-01", 1000, "Arriendo recibido")},
		[]*entity.Egreso{egresoDe("e1", "2025-01-02", 300)},
		[]*entity.Venta{ventaDe("v1", "2025-01-03", 500, "María")},
		[]*entity.Compra{compraDe("c1", "2025-01-04", 200, "Distribuidora Sur")},
	)
}

func TestFiltrarYResumir_SinFiltroCalculaNeto(t *testing.T) {
	filtrados, res := movimiento.FiltrarYResumir(movimientosDePrueba(), movimiento.Filtro{})

	assert.Len(t, filtrados, 4)
	assert.True(t, res.Ingresos.Equal(monto(1500)), "Ingresos = Ingreso + Venta")
	assert.True(t, res.Egresos.Equal(monto(500)), "Egresos = Egreso + Compra")
	assert.True(t, res.Neto.Equal(monto(1000)), "Neto = Ingresos - Egresos")
	assert.Equal(t, 4, res.Total)
}

func TestFiltrarYResumir_PorTipo(t *testing.T) {
	filtrados, res := movimiento.FiltrarYResumir(movimientosDePrueba(), movimiento.Filtro{
		Tipo: entity.MovVenta,
	})

	require.Len(t, filtrados, 1)
	assert.Equal(t, "v1", filtrados[0].ID)
	assert.True(t, res.Ingresos.Equal(monto(500)))
	assert.True(t, res.Egresos.IsZero())
	assert.Equal(t, 1, res.Total)
}

// El rango de fechas es inclusivo en ambos extremos y compara fechas
// calendario, no instantes.
func TestFiltrarYResumir_RangoInclusivo(t *testing.T) {
	desde := fecha("2025-01-02")
	hasta := fecha("2025-01-03")

	filtrados, _ := movimiento.FiltrarYResumir(movimientosDePrueba(), movimiento.Filtro{
		FechaDesde: &desde,
		FechaHasta: &hasta,
	})

	require.Len(t, filtrados, 2)
	assert.Equal(t, "e1", filtrados[0].ID)
	assert.Equal(t, "v1", filtrados[1].ID)
}

// Un movimiento a las 23:59 del día límite sigue dentro del rango.
func TestFiltrarYResumir_ComponenteHorarioNoExcluye(t *testing.T) {
	in := ingresoDe("i1", "2025-01-05", 100, "")
	in.Fecha = time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC)
	movs := movimiento.Normalizar([]*entity.Ingreso{in}, nil, nil, nil)

	hasta := fecha("2025-01-05")
	filtrados, _ := movimiento.FiltrarYResumir(movs, movimiento.Filtro{FechaHasta: &hasta})
	assert.Len(t, filtrados, 1)
}

// La búsqueda de texto es case-insensitive y cubre descripción, tipo,
// monto y origen.
func TestFiltrarYResumir_TextoSobreOrigen(t *testing.T) {
	filtrados, _ := movimiento.FiltrarYResumir(movimientosDePrueba(), movimiento.Filtro{
		Texto: "distribuidora",
	})

	require.Len(t, filtrados, 1)
	assert.Equal(t, "c1", filtrados[0].ID)
}

func TestFiltrarYResumir_TextoSobreTipo(t *testing.T) {
	filtrados, _ := movimiento.FiltrarYResumir(movimientosDePrueba(), movimiento.Filtro{
		Texto: "venta",
	})

	require.Len(t, filtrados, 1)
	assert.Equal(t, entity.MovVenta, filtrados[0].Tipo)
}

func TestFiltrarYResumir_FiltrosSeCombinanConAND(t *testing.T) {
	desde := fecha("2025-01-03")
	filtrados, _ := movimiento.FiltrarYResumir(movimientosDePrueba(), movimiento.Filtro{
		Tipo:       entity.MovIngreso,
		FechaDesde: &desde,
	})
	// El único ingreso es del día 1, fuera del rango: ambos filtros aplican
	assert.Empty(t, filtrados)
}

// Con conjunto vacío el resumen queda todo en cero, nunca en nil.
func TestFiltrarYResumir_VacioResumenEnCero(t *testing.T) {
	filtrados, res := movimiento.FiltrarYResumir(nil, movimiento.Filtro{})

	assert.Empty(t, filtrados)
	assert.True(t, res.Ingresos.IsZero())
	assert.True(t, res.Egresos.IsZero())
	assert.True(t, res.Neto.IsZero())
	assert.Equal(t, 0, res.Total)
}
