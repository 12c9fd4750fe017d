package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repos + TxRunner que los pasa tal cual al callback
// ──────────────────────────────────────────────────────────────────────────────

type ventaRepoMem struct {
	creadas   []*entity.Venta
	porID     map[string]*entity.Venta
	eliminada string
}

func newVentaRepoMem() *ventaRepoMem {
	return &ventaRepoMem{porID: make(map[string]*entity.Venta)}
}

func (r *ventaRepoMem) Create(v *entity.Venta) error {
	r.creadas = append(r.creadas, v)
	r.porID[v.ID] = v
	return nil
}
func (r *ventaRepoMem) GetByID(id string) (*entity.Venta, error) { return r.porID[id], nil }
func (r *ventaRepoMem) Delete(id string) error {
	r.eliminada = id
	delete(r.porID, id)
	return nil
}
func (r *ventaRepoMem) ListByNegocio(context.Context, string, *time.Time, *time.Time) ([]*entity.Venta, error) {
	return r.creadas, nil
}

type compraRepoMem struct {
	creadas []*entity.Compra
	porID   map[string]*entity.Compra
}

func newCompraRepoMem() *compraRepoMem {
	return &compraRepoMem{porID: make(map[string]*entity.Compra)}
}

func (r *compraRepoMem) Create(c *entity.Compra) error {
	r.creadas = append(r.creadas, c)
	r.porID[c.ID] = c
	return nil
}
func (r *compraRepoMem) GetByID(id string) (*entity.Compra, error) { return r.porID[id], nil }
func (r *compraRepoMem) Delete(id string) error {
	delete(r.porID, id)
	return nil
}
func (r *compraRepoMem) ListByNegocio(context.Context, string, *time.Time, *time.Time) ([]*entity.Compra, error) {
	return r.creadas, nil
}

type productoRepoMem struct {
	porID map[string]*entity.Producto
}

func newProductoRepoMem(productos ...*entity.Producto) *productoRepoMem {
	r := &productoRepoMem{porID: make(map[string]*entity.Producto)}
	for _, p := range productos {
		r.porID[p.ID] = p
	}
	return r
}

func (r *productoRepoMem) Create(p *entity.Producto) error {
	r.porID[p.ID] = p
	return nil
}
func (r *productoRepoMem) GetByID(id string) (*entity.Producto, error) { return r.porID[id], nil }
func (r *productoRepoMem) Update(p *entity.Producto) error {
	r.porID[p.ID] = p
	return nil
}
func (r *productoRepoMem) Delete(id string) error {
	delete(r.porID, id)
	return nil
}
func (r *productoRepoMem) ListByNegocio(context.Context, string) ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.porID))
	for _, p := range r.porID {
		out = append(out, p)
	}
	return out, nil
}

// txRunnerFake ejecuta el callback directamente contra los repos en memoria.
// Registra si el callback devolvió error para verificar el rollback efectivo
// (nada persistido en ese caso).
type txRunnerFake struct {
	ventas    *ventaRepoMem
	compras   *compraRepoMem
	productos *productoRepoMem
	fallo     error
}

func (f *txRunnerFake) Run(_ context.Context, fn func(
	ventaRepo repository.VentaRepository,
	compraRepo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	f.fallo = fn(f.ventas, f.compras, f.productos)
	return f.fallo
}

func num(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

const negocioTest = "neg-1"

func productoTest(id string, stock int, precioVenta, precioCompra int64) *entity.Producto {
	return &entity.Producto{
		ID:           id,
		NegocioID:    negocioTest,
		Nombre:       "Producto " + id,
		Cantidad:     stock,
		PrecioVenta:  num(precioVenta),
		PrecioCompra: num(precioCompra),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// VentaUseCase.Create
// ──────────────────────────────────────────────────────────────────────────────

func armarVentaUC(productos ...*entity.Producto) (*usecase.VentaUseCase, *ventaRepoMem, *productoRepoMem) {
	ventas := newVentaRepoMem()
	prods := newProductoRepoMem(productos...)
	tx := &txRunnerFake{ventas: ventas, compras: newCompraRepoMem(), productos: prods}
	return usecase.NewVentaUseCase(ventas, tx), ventas, prods
}

func TestVentaCreate_CalculaTotalYDescuentaStock(t *testing.T) {
	uc, ventas, prods := armarVentaUC(productoTest("p1", 10, 5000, 3000))

	out, err := uc.Create(context.Background(), negocioTest, dto.CreateVentaRequest{
		Tipo:  entity.VentaProducto,
		Fecha: "2025-01-15",
		Detalles: []dto.VentaDetalleRequest{
			{ProductoID: "p1", Cantidad: num(3), PrecioUnitario: num(4000)},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(num(12000)), "Total = 3 × 4000")
	require.Len(t, out.Detalles, 1)
	assert.True(t, out.Detalles[0].Subtotal.Equal(num(12000)))

	require.Len(t, ventas.creadas, 1)
	assert.Equal(t, negocioTest, ventas.creadas[0].NegocioID)

	p, _ := prods.GetByID("p1")
	assert.Equal(t, 7, p.Cantidad, "el stock baja en la cantidad vendida")
}

// Una línea sin precio unitario toma el precio de venta vigente del producto.
func TestVentaCreate_PrecioPorDefectoDelProducto(t *testing.T) {
	uc, _, _ := armarVentaUC(productoTest("p1", 10, 5000, 3000))

	out, err := uc.Create(context.Background(), negocioTest, dto.CreateVentaRequest{
		Tipo:  entity.VentaProducto,
		Fecha: "2025-01-15",
		Detalles: []dto.VentaDetalleRequest{
			{ProductoID: "p1", Cantidad: num(2)},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(num(10000)), "2 × 5000 del catálogo")
}

// Una venta de servicio puede no referenciar productos: no toca stock.
func TestVentaCreate_ServicioSinProducto(t *testing.T) {
	uc, ventas, _ := armarVentaUC()

	out, err := uc.Create(context.Background(), negocioTest, dto.CreateVentaRequest{
		Tipo:  entity.VentaServicio,
		Fecha: "2025-01-15",
		Detalles: []dto.VentaDetalleRequest{
			{Cantidad: num(1), PrecioUnitario: num(25000)},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(num(25000)))
	assert.Len(t, ventas.creadas, 1)
}

// Vender más unidades de las disponibles se rechaza dentro de la transacción:
// el stock nunca queda negativo y nada se persiste.
func TestVentaCreate_StockInsuficiente(t *testing.T) {
	uc, ventas, prods := armarVentaUC(productoTest("p1", 2, 5000, 3000))

	_, err := uc.Create(context.Background(), negocioTest, dto.CreateVentaRequest{
		Tipo:  entity.VentaProducto,
		Fecha: "2025-01-15",
		Detalles: []dto.VentaDetalleRequest{
			{ProductoID: "p1", Cantidad: num(5), PrecioUnitario: num(4000)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, ventas.creadas)

	p, _ := prods.GetByID("p1")
	assert.Equal(t, 2, p.Cantidad, "el stock no se toca cuando la venta se rechaza")
}

// Vender exactamente el stock disponible es válido y deja el producto en cero.
func TestVentaCreate_StockExacto(t *testing.T) {
	uc, _, prods := armarVentaUC(productoTest("p1", 3, 5000, 3000))

	_, err := uc.Create(context.Background(), negocioTest, dto.CreateVentaRequest{
		Tipo:  entity.VentaProducto,
		Fecha: "2025-01-15",
		Detalles: []dto.VentaDetalleRequest{
			{ProductoID: "p1", Cantidad: num(3), PrecioUnitario: num(4000)},
		},
	})
	require.NoError(t, err)

	p, _ := prods.GetByID("p1")
	assert.Equal(t, 0, p.Cantidad)
}

func TestVentaCreate_TipoInvalido(t *testing.T) {
	uc, ventas, _ := armarVentaUC()

	_, err := uc.Create(context.Background(), negocioTest, dto.CreateVentaRequest{
		Tipo:     "donación",
		Fecha:    "2025-01-15",
		Detalles: []dto.VentaDetalleRequest{{Cantidad: num(1), PrecioUnitario: num(100)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, ventas.creadas)
}

func TestVentaCreate_SinDetalles(t *testing.T) {
	uc, _, _ := armarVentaUC()

	_, err := uc.Create(context.Background(), negocioTest, dto.CreateVentaRequest{
		Tipo:  entity.VentaProducto,
		Fecha: "2025-01-15",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVentaCreate_CantidadNoPositiva(t *testing.T) {
	uc, ventas, _ := armarVentaUC(productoTest("p1", 10, 5000, 3000))

	_, err := uc.Create(context.Background(), negocioTest, dto.CreateVentaRequest{
		Tipo:  entity.VentaProducto,
		Fecha: "2025-01-15",
		Detalles: []dto.VentaDetalleRequest{
			{ProductoID: "p1", Cantidad: num(0)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, ventas.creadas, "la transacción no persiste nada")
}

// Un producto de otro negocio se trata como inexistente.
func TestVentaCreate_ProductoDeOtroNegocio(t *testing.T) {
	ajeno := productoTest("p1", 10, 5000, 3000)
	ajeno.NegocioID = "neg-ajeno"
	uc, ventas, _ := armarVentaUC(ajeno)

	_, err := uc.Create(context.Background(), negocioTest, dto.CreateVentaRequest{
		Tipo:  entity.VentaProducto,
		Fecha: "2025-01-15",
		Detalles: []dto.VentaDetalleRequest{
			{ProductoID: "p1", Cantidad: num(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, ventas.creadas)
}

// ──────────────────────────────────────────────────────────────────────────────
// VentaUseCase.GetByID / Delete — propiedad del negocio
// ──────────────────────────────────────────────────────────────────────────────

func TestVentaGetByID_DeOtroNegocio(t *testing.T) {
	ventas := newVentaRepoMem()
	_ = ventas.Create(&entity.Venta{ID: "v1", NegocioID: "neg-ajeno", Total: num(100), Fecha: time.Now()})
	uc := usecase.NewVentaUseCase(ventas, &txRunnerFake{ventas: ventas, compras: newCompraRepoMem(), productos: newProductoRepoMem()})

	_, err := uc.GetByID(negocioTest, "v1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "una venta ajena se responde como inexistente")
}

func TestVentaDelete_PropiaYAjena(t *testing.T) {
	ventas := newVentaRepoMem()
	_ = ventas.Create(&entity.Venta{ID: "propia", NegocioID: negocioTest, Fecha: time.Now()})
	_ = ventas.Create(&entity.Venta{ID: "ajena", NegocioID: "neg-ajeno", Fecha: time.Now()})
	uc := usecase.NewVentaUseCase(ventas, &txRunnerFake{ventas: ventas, compras: newCompraRepoMem(), productos: newProductoRepoMem()})

	require.NoError(t, uc.Delete(negocioTest, "propia"))
	assert.Equal(t, "propia", ventas.eliminada)

	err := uc.Delete(negocioTest, "ajena")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CompraUseCase.Create — espejo de venta con stock en aumento
// ──────────────────────────────────────────────────────────────────────────────

func armarCompraUC(productos ...*entity.Producto) (*usecase.CompraUseCase, *compraRepoMem, *productoRepoMem) {
	compras := newCompraRepoMem()
	prods := newProductoRepoMem(productos...)
	tx := &txRunnerFake{ventas: newVentaRepoMem(), compras: compras, productos: prods}
	return usecase.NewCompraUseCase(compras, tx), compras, prods
}

func TestCompraCreate_CalculaTotalYAumentaStock(t *testing.T) {
	uc, compras, prods := armarCompraUC(productoTest("p1", 5, 5000, 3000))

	out, err := uc.Create(context.Background(), negocioTest, dto.CreateCompraRequest{
		Fecha: "2025-01-15",
		Detalles: []dto.CompraDetalleRequest{
			{ProductoID: "p1", Cantidad: num(10), PrecioUnitario: num(2800)},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(num(28000)))
	require.Len(t, compras.creadas, 1)

	p, _ := prods.GetByID("p1")
	assert.Equal(t, 15, p.Cantidad, "el stock sube en la cantidad comprada")
}

// Una línea de compra sin precio toma el precio de compra del catálogo.
func TestCompraCreate_PrecioPorDefectoDelProducto(t *testing.T) {
	uc, _, _ := armarCompraUC(productoTest("p1", 5, 5000, 3000))

	out, err := uc.Create(context.Background(), negocioTest, dto.CreateCompraRequest{
		Fecha: "2025-01-15",
		Detalles: []dto.CompraDetalleRequest{
			{ProductoID: "p1", Cantidad: num(4)},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(num(12000)), "4 × 3000 del catálogo")
}

func TestCompraCreate_SinDetalles(t *testing.T) {
	uc, _, _ := armarCompraUC()

	_, err := uc.Create(context.Background(), negocioTest, dto.CreateCompraRequest{Fecha: "2025-01-15"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompraCreate_FechaInvalida(t *testing.T) {
	uc, compras, _ := armarCompraUC()

	_, err := uc.Create(context.Background(), negocioTest, dto.CreateCompraRequest{
		Fecha:    "15-01-2025",
		Detalles: []dto.CompraDetalleRequest{{Cantidad: num(1), PrecioUnitario: num(100)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, compras.creadas)
}
