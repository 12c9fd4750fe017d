package reporte_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/reporte"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Spies: cuentan llamadas para verificar que la validación corre antes de
// tocar el store
// ──────────────────────────────────────────────────────────────────────────────

type ingresoRepoSpy struct {
	llamadas int
}

func (s *ingresoRepoSpy) Create(*entity.Ingreso) error            { return nil }
func (s *ingresoRepoSpy) GetByID(string) (*entity.Ingreso, error) { return nil, nil }
func (s *ingresoRepoSpy) Update(*entity.Ingreso) error            { return nil }
func (s *ingresoRepoSpy) Delete(string) error                     { return nil }
func (s *ingresoRepoSpy) ListByNegocio(context.Context, string, *time.Time, *time.Time) ([]*entity.Ingreso, error) {
	s.llamadas++
	return nil, nil
}

type egresoRepoSpy struct {
	llamadas int
}

func (s *egresoRepoSpy) Create(*entity.Egreso) error            { return nil }
func (s *egresoRepoSpy) GetByID(string) (*entity.Egreso, error) { return nil, nil }
func (s *egresoRepoSpy) Update(*entity.Egreso) error            { return nil }
func (s *egresoRepoSpy) Delete(string) error                    { return nil }
func (s *egresoRepoSpy) ListByNegocio(context.Context, string, *time.Time, *time.Time) ([]*entity.Egreso, error) {
	s.llamadas++
	return nil, nil
}

type ventaRepoSpy struct {
	llamadas int
	desde    *time.Time
	hasta    *time.Time
	rows     []*entity.Venta
}

func (s *ventaRepoSpy) Create(*entity.Venta) error            { return nil }
func (s *ventaRepoSpy) GetByID(string) (*entity.Venta, error) { return nil, nil }
func (s *ventaRepoSpy) Delete(string) error                   { return nil }
func (s *ventaRepoSpy) ListByNegocio(_ context.Context, _ string, desde, hasta *time.Time) ([]*entity.Venta, error) {
	s.llamadas++
	s.desde, s.hasta = desde, hasta
	return s.rows, nil
}

type compraRepoSpy struct {
	llamadas int
}

func (s *compraRepoSpy) Create(*entity.Compra) error            { return nil }
func (s *compraRepoSpy) GetByID(string) (*entity.Compra, error) { return nil, nil }
func (s *compraRepoSpy) Delete(string) error                    { return nil }
func (s *compraRepoSpy) ListByNegocio(context.Context, string, *time.Time, *time.Time) ([]*entity.Compra, error) {
	s.llamadas++
	return nil, nil
}

type productoRepoSpy struct {
	llamadas int
}

func (s *productoRepoSpy) Create(*entity.Producto) error            { return nil }
func (s *productoRepoSpy) GetByID(string) (*entity.Producto, error) { return nil, nil }
func (s *productoRepoSpy) Update(*entity.Producto) error            { return nil }
func (s *productoRepoSpy) Delete(string) error                      { return nil }
func (s *productoRepoSpy) ListByNegocio(context.Context, string) ([]*entity.Producto, error) {
	s.llamadas++
	return nil, nil
}

// rendererFake devuelve bytes fijos o un error, y recuerda qué método se llamó.
type rendererFake struct {
	bytes   []byte
	err     error
	llamado string
}

func (r *rendererFake) RenderVentas(context.Context, *dto.ReporteVentasDTO) ([]byte, error) {
	r.llamado = "ventas"
	return r.bytes, r.err
}
func (r *rendererFake) RenderCompras(context.Context, *dto.ReporteComprasDTO) ([]byte, error) {
	r.llamado = "compras"
	return r.bytes, r.err
}
func (r *rendererFake) RenderIngresosEgresos(context.Context, *dto.ReporteIngresosEgresosDTO) ([]byte, error) {
	r.llamado = "ingresos-egresos"
	return r.bytes, r.err
}
func (r *rendererFake) RenderInventario(context.Context, *dto.ReporteInventarioDTO) ([]byte, error) {
	r.llamado = "inventario"
	return r.bytes, r.err
}

type bancoDePruebas struct {
	ingresos  *ingresoRepoSpy
	egresos   *egresoRepoSpy
	ventas    *ventaRepoSpy
	compras   *compraRepoSpy
	productos *productoRepoSpy
	pdf       *rendererFake
	excel     *rendererFake
	uc        *reporte.ReporteUseCase
}

func armarBanco() *bancoDePruebas {
	b := &bancoDePruebas{
		ingresos:  &ingresoRepoSpy{},
		egresos:   &egresoRepoSpy{},
		ventas:    &ventaRepoSpy{},
		compras:   &compraRepoSpy{},
		productos: &productoRepoSpy{},
		pdf:       &rendererFake{bytes: []byte("%PDF-fake")},
		excel:     &rendererFake{bytes: []byte("PK-fake")},
	}
	b.uc = reporte.NewReporteUseCase(
		b.ingresos, b.egresos, b.ventas, b.compras, b.productos,
		b.pdf, b.excel,
		reporte.Config{VentaAltaUmbral: d(50000), MetaMensual: d(500000), Timeout: 5 * time.Second},
	)
	return b
}

func (b *bancoDePruebas) consultasTotales() int {
	return b.ingresos.llamadas + b.egresos.llamadas + b.ventas.llamadas +
		b.compras.llamadas + b.productos.llamadas
}

var reqValida = dto.ReporteRequest{FechaInicio: "2025-01-01", FechaFin: "2025-01-31", Formato: dto.FormatoPDF}

// ──────────────────────────────────────────────────────────────────────────────
// Validación: corre completa antes de cualquier consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarVentas_FormatoNoSoportado(t *testing.T) {
	b := armarBanco()
	req := reqValida
	req.Formato = "csv"

	_, err := b.uc.GenerarVentas(context.Background(), "neg-1", req)

	assert.ErrorIs(t, err, domain.ErrFormatoNoSoportado)
	assert.Contains(t, err.Error(), "csv", "el mensaje nombra el formato rechazado")
	assert.Zero(t, b.consultasTotales(), "con formato inválido la base no se toca")
}

func TestGenerarVentas_CamposFaltantes(t *testing.T) {
	b := armarBanco()

	casos := []dto.ReporteRequest{
		{FechaFin: "2025-01-31", Formato: dto.FormatoPDF},
		{FechaInicio: "2025-01-01", Formato: dto.FormatoPDF},
		{FechaInicio: "2025-01-01", FechaFin: "2025-01-31"},
	}
	for _, req := range casos {
		_, err := b.uc.GenerarVentas(context.Background(), "neg-1", req)
		assert.ErrorIs(t, err, domain.ErrPeriodoInvalido)
	}
	assert.Zero(t, b.consultasTotales())
}

func TestGenerarVentas_FechaMalFormada(t *testing.T) {
	b := armarBanco()
	req := reqValida
	req.FechaInicio = "31/01/2025"

	_, err := b.uc.GenerarVentas(context.Background(), "neg-1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, b.consultasTotales())
}

// ──────────────────────────────────────────────────────────────────────────────
// Generación: despacho por formato, mime y filename
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarVentas_PDF(t *testing.T) {
	b := armarBanco()

	out, err := b.uc.GenerarVentas(context.Background(), "neg-1", reqValida)
	require.NoError(t, err)

	assert.Equal(t, "ventas", b.pdf.llamado)
	assert.Empty(t, b.excel.llamado, "el renderizador Excel no se invoca para PDF")
	assert.Equal(t, "application/pdf", out.MimeType)
	assert.Equal(t, "reporte-ventas-2025-01-01-2025-01-31.pdf", out.Filename)
	assert.Equal(t, []byte("%PDF-fake"), out.Contenido)
}

func TestGenerarVentas_Excel(t *testing.T) {
	b := armarBanco()
	req := reqValida
	req.Formato = dto.FormatoExcel

	out, err := b.uc.GenerarVentas(context.Background(), "neg-1", req)
	require.NoError(t, err)

	assert.Equal(t, "ventas", b.excel.llamado)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out.MimeType)
	assert.Equal(t, "reporte-ventas-2025-01-01-2025-01-31.xlsx", out.Filename)
}

// La fecha fin se extiende al final del día para que el rango consultado sea
// inclusivo en fechas calendario.
func TestGenerarVentas_RangoInclusivo(t *testing.T) {
	b := armarBanco()

	_, err := b.uc.GenerarVentas(context.Background(), "neg-1", reqValida)
	require.NoError(t, err)

	require.NotNil(t, b.ventas.hasta)
	assert.Equal(t, "2025-01-31", b.ventas.hasta.Format("2006-01-02"))
	assert.Equal(t, 23, b.ventas.hasta.Hour())
}

// Un fallo del renderizador se propaga sin entregar bytes parciales.
func TestGenerarVentas_ErrorDelRenderizador(t *testing.T) {
	b := armarBanco()
	boom := errors.New("sin memoria")
	b.pdf.err = boom

	out, err := b.uc.GenerarVentas(context.Background(), "neg-1", reqValida)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}

func TestGenerarCompras_ConsultaSoloCompras(t *testing.T) {
	b := armarBanco()

	out, err := b.uc.GenerarCompras(context.Background(), "neg-1", reqValida)
	require.NoError(t, err)

	assert.Equal(t, "compras", b.pdf.llamado)
	assert.Equal(t, 1, b.compras.llamadas)
	assert.Zero(t, b.ventas.llamadas)
	assert.Equal(t, "reporte-compras-2025-01-01-2025-01-31.pdf", out.Filename)
}

func TestGenerarIngresosEgresos_ConsultaAmbasFuentes(t *testing.T) {
	b := armarBanco()

	_, err := b.uc.GenerarIngresosEgresos(context.Background(), "neg-1", reqValida)
	require.NoError(t, err)

	assert.Equal(t, "ingresos-egresos", b.pdf.llamado)
	assert.Equal(t, 1, b.ingresos.llamadas)
	assert.Equal(t, 1, b.egresos.llamadas)
}

// El inventario necesita el catálogo completo más las ventas del período.
func TestGenerarInventario_ConsultaProductosYVentas(t *testing.T) {
	b := armarBanco()

	_, err := b.uc.GenerarInventario(context.Background(), "neg-1", reqValida)
	require.NoError(t, err)

	assert.Equal(t, "inventario", b.pdf.llamado)
	assert.Equal(t, 1, b.productos.llamadas)
	assert.Equal(t, 1, b.ventas.llamadas)
}
