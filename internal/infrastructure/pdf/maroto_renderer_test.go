package pdf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/infrastructure/pdf"
)

var periodoTest = dto.PeriodoDTO{FechaInicio: "2025-01-01", FechaFin: "2025-01-31"}

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// esPDF verifica el magic number del documento.
func esPDF(t *testing.T, b []byte) {
	t.Helper()
	require.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]), "el documento debe empezar con el encabezado PDF")
}

func TestRenderVentas_GeneraPDF(t *testing.T) {
	r := pdf.NewMarotoRenderer()
	payload := &dto.ReporteVentasDTO{
		Periodo: periodoTest,
		Resumen: dto.ResumenVentasDTO{
			TotalVentas:      d(100000),
			CantidadVentas:   3,
			PromedioVenta:    d(33333),
			TotalUnidades:    d(6),
			VentasAltas:      1,
			MetaMensual:      d(500000),
			CumplimientoMeta: d(20),
		},
		TopProductos: []dto.ProductoVendidoDTO{
			{Nombre: "Café", Unidades: d(3), Total: d(60000), Clientes: []string{"María", "Pedro"}},
		},
		TopClientes: []dto.ClienteRankingDTO{
			{Nombre: "María", Compras: 2, Total: d(80000)},
		},
		VentasPorTipo: []dto.EtiquetaTotalDTO{
			{Etiqueta: "producto", Total: d(100000)},
		},
	}

	b, err := r.RenderVentas(context.Background(), payload)
	require.NoError(t, err)
	esPDF(t, b)
}

// Un período sin datos igual produce un documento válido (solo resumen en cero).
func TestRenderVentas_SinDatos(t *testing.T) {
	r := pdf.NewMarotoRenderer()
	b, err := r.RenderVentas(context.Background(), &dto.ReporteVentasDTO{Periodo: periodoTest})
	require.NoError(t, err)
	esPDF(t, b)
}

func TestRenderCompras_GeneraPDF(t *testing.T) {
	r := pdf.NewMarotoRenderer()
	payload := &dto.ReporteComprasDTO{
		Periodo: periodoTest,
		Resumen: dto.ResumenComprasDTO{TotalCompras: d(50000), CantidadCompras: 2, PromedioCompra: d(25000)},
		TopProveedores: []dto.ProveedorRankingDTO{
			{Nombre: "Distribuidora Sur", Compras: 2, Total: d(50000)},
		},
	}

	b, err := r.RenderCompras(context.Background(), payload)
	require.NoError(t, err)
	esPDF(t, b)
}

// El balance negativo cambia el color de la cifra pero no rompe el render.
func TestRenderIngresosEgresos_BalanceNegativo(t *testing.T) {
	r := pdf.NewMarotoRenderer()
	payload := &dto.ReporteIngresosEgresosDTO{
		Periodo: periodoTest,
		Resumen: dto.ResumenIngresosEgresosDTO{
			TotalIngresos: d(1000),
			TotalEgresos:  d(5000),
			Balance:       d(-4000),
		},
		EgresosPorCategoria: []dto.EtiquetaTotalDTO{{Etiqueta: "Arriendo", Total: d(5000)}},
		DetallePorDia: []dto.BalanceDiaDTO{
			{Fecha: "2025-01-02", Ingresos: d(1000), Egresos: d(5000), Acumulado: d(-4000)},
		},
	}

	b, err := r.RenderIngresosEgresos(context.Background(), payload)
	require.NoError(t, err)
	esPDF(t, b)
}

func TestRenderInventario_GeneraPDF(t *testing.T) {
	r := pdf.NewMarotoRenderer()
	payload := &dto.ReporteInventarioDTO{
		Periodo: periodoTest,
		Resumen: dto.ResumenInventarioDTO{TotalProductos: 2, ValorInventario: d(80000), SinStock: 1, StockBajo: 1},
		Productos: []dto.ProductoInventarioDTO{
			{Nombre: "Café", Cantidad: 10, Estado: dto.StockBajo, Rotacion: d(0), ValorInventario: d(30000)},
			{Nombre: "Pan", Cantidad: 0, Estado: dto.StockSinStock, Rotacion: d(0), ValorInventario: d(0)},
		},
		SinMovimiento: []dto.ProductoInmovilizadoDTO{
			{Nombre: "Café", Cantidad: 10, ValorInmovilizado: d(30000)},
		},
	}

	b, err := r.RenderInventario(context.Background(), payload)
	require.NoError(t, err)
	esPDF(t, b)
}
