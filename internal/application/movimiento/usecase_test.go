package movimiento_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/movimiento"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos fake: devuelven filas fijas y registran el rango consultado
// ──────────────────────────────────────────────────────────────────────────────

type ingresoRepoFake struct {
	rows  []*entity.Ingreso
	err   error
	desde *time.Time
	hasta *time.Time
}

func (f *ingresoRepoFake) Create(*entity.Ingreso) error          { return nil }
func (f *ingresoRepoFake) GetByID(string) (*entity.Ingreso, error) { return nil, nil }
func (f *ingresoRepoFake) Update(*entity.Ingreso) error          { return nil }
func (f *ingresoRepoFake) Delete(string) error                   { return nil }
func (f *ingresoRepoFake) ListByNegocio(_ context.Context, _ string, desde, hasta *time.Time) ([]*entity.Ingreso, error) {
	f.desde, f.hasta = desde, hasta
	return f.rows, f.err
}

type egresoRepoFake struct {
	rows []*entity.Egreso
	err  error
}

func (f *egresoRepoFake) Create(*entity.Egreso) error            { return nil }
func (f *egresoRepoFake) GetByID(string) (*entity.Egreso, error) { return nil, nil }
func (f *egresoRepoFake) Update(*entity.Egreso) error            { return nil }
func (f *egresoRepoFake) Delete(string) error                    { return nil }
func (f *egresoRepoFake) ListByNegocio(context.Context, string, *time.Time, *time.Time) ([]*entity.Egreso, error) {
	return f.rows, f.err
}

type ventaRepoFake struct {
	rows []*entity.Venta
	err  error
}

func (f *ventaRepoFake) Create(*entity.Venta) error            { return nil }
func (f *ventaRepoFake) GetByID(string) (*entity.Venta, error) { return nil, nil }
func (f *ventaRepoFake) Delete(string) error                   { return nil }
func (f *ventaRepoFake) ListByNegocio(context.Context, string, *time.Time, *time.Time) ([]*entity.Venta, error) {
	return f.rows, f.err
}

type compraRepoFake struct {
	rows []*entity.Compra
	err  error
}

func (f *compraRepoFake) Create(*entity.Compra) error            { return nil }
func (f *compraRepoFake) GetByID(string) (*entity.Compra, error) { return nil, nil }
func (f *compraRepoFake) Delete(string) error                    { return nil }
func (f *compraRepoFake) ListByNegocio(context.Context, string, *time.Time, *time.Time) ([]*entity.Compra, error) {
	return f.rows, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// GetMovimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestGetMovimientos_ArmaRespuestaConResumen(t *testing.T) {
	uc := movimiento.NewMovimientoUseCase(
		&ingresoRepoFake{rows: []*entity.Ingreso{ingresoDe("i1", "2025-01-01", 1000, "Arriendo recibido")}},
		&egresoRepoFake{rows: []*entity.Egreso{egresoDe("e1", "2025-01-02", 300)}},
		&ventaRepoFake{rows: []*entity.Venta{ventaDe("v1", "2025-01-03", 500, "María")}},
		&compraRepoFake{},
	)

	out, err := uc.GetMovimientos(context.Background(), "neg-1", dto.MovimientoFiltroRequest{})
	require.NoError(t, err)

	require.Len(t, out.Movimientos, 3)
	assert.Equal(t, "Ingreso", out.Movimientos[0].Tipo)
	assert.Equal(t, "2025-01-01", out.Movimientos[0].Fecha)
	assert.Equal(t, "Arriendo recibido", out.Movimientos[0].Origen)
	assert.Equal(t, "María", out.Movimientos[2].Origen)

	assert.True(t, out.Resumen.Ingresos.Equal(monto(1500)))
	assert.True(t, out.Resumen.Egresos.Equal(monto(300)))
	assert.True(t, out.Resumen.Neto.Equal(monto(1200)))
	assert.Equal(t, 3, out.Resumen.Total)
}

// El rango de fechas del filtro se empuja a la consulta del repositorio.
func TestGetMovimientos_EmpujaRangoALaConsulta(t *testing.T) {
	ingresos := &ingresoRepoFake{}
	uc := movimiento.NewMovimientoUseCase(ingresos, &egresoRepoFake{}, &ventaRepoFake{}, &compraRepoFake{})

	_, err := uc.GetMovimientos(context.Background(), "neg-1", dto.MovimientoFiltroRequest{
		FechaDesde: "2025-01-01",
		FechaHasta: "2025-01-31",
	})
	require.NoError(t, err)

	require.NotNil(t, ingresos.desde)
	require.NotNil(t, ingresos.hasta)
	assert.Equal(t, "2025-01-01", ingresos.desde.Format("2006-01-02"))
	assert.Equal(t, "2025-01-31", ingresos.hasta.Format("2006-01-02"))
}

func TestGetMovimientos_TipoInvalido(t *testing.T) {
	uc := movimiento.NewMovimientoUseCase(&ingresoRepoFake{}, &egresoRepoFake{}, &ventaRepoFake{}, &compraRepoFake{})

	_, err := uc.GetMovimientos(context.Background(), "neg-1", dto.MovimientoFiltroRequest{Tipo: "Transferencia"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetMovimientos_FechaInvalida(t *testing.T) {
	uc := movimiento.NewMovimientoUseCase(&ingresoRepoFake{}, &egresoRepoFake{}, &ventaRepoFake{}, &compraRepoFake{})

	_, err := uc.GetMovimientos(context.Background(), "neg-1", dto.MovimientoFiltroRequest{FechaDesde: "01/01/2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El fallo de cualquiera de las cuatro consultas tumba la operación completa.
func TestGetMovimientos_ErrorDeUnaConsultaSePropaga(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := movimiento.NewMovimientoUseCase(
		&ingresoRepoFake{},
		&egresoRepoFake{},
		&ventaRepoFake{err: boom},
		&compraRepoFake{},
	)

	_, err := uc.GetMovimientos(context.Background(), "neg-1", dto.MovimientoFiltroRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

// Sin movimientos la respuesta tiene lista vacía y resumen en cero.
func TestGetMovimientos_SinDatos(t *testing.T) {
	uc := movimiento.NewMovimientoUseCase(&ingresoRepoFake{}, &egresoRepoFake{}, &ventaRepoFake{}, &compraRepoFake{})

	out, err := uc.GetMovimientos(context.Background(), "neg-1", dto.MovimientoFiltroRequest{})
	require.NoError(t, err)
	assert.Empty(t, out.Movimientos)
	assert.True(t, out.Resumen.Neto.IsZero())
	assert.Equal(t, 0, out.Resumen.Total)
}
