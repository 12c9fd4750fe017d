// Package reporte implementa la tubería de reportes: validación de
// parámetros, consulta del período, agregación en un payload agnóstico del
// formato y despacho al renderizador (PDF o Excel).
package reporte

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// Config umbrales y límites inyectados desde la configuración.
type Config struct {
	VentaAltaUmbral decimal.Decimal
	MetaMensual     decimal.Decimal
	Timeout         time.Duration // deadline por petición de reporte
}

// ReporteUseCase orquesta la generación de los cuatro reportes.
// Cada método valida antes de consultar: con parámetros inválidos la base no
// se toca. Falla completa o entrega completa; nunca un documento parcial.
type ReporteUseCase struct {
	ingresoRepo  repository.IngresoRepository
	egresoRepo   repository.EgresoRepository
	ventaRepo    repository.VentaRepository
	compraRepo   repository.CompraRepository
	productoRepo repository.ProductoRepository

	pdf   ReporteRenderer
	excel ReporteRenderer
	cfg   Config
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(
	ingresoRepo repository.IngresoRepository,
	egresoRepo repository.EgresoRepository,
	ventaRepo repository.VentaRepository,
	compraRepo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
	pdf ReporteRenderer,
	excel ReporteRenderer,
	cfg Config,
) *ReporteUseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &ReporteUseCase{
		ingresoRepo:  ingresoRepo,
		egresoRepo:   egresoRepo,
		ventaRepo:    ventaRepo,
		compraRepo:   compraRepo,
		productoRepo: productoRepo,
		pdf:          pdf,
		excel:        excel,
		cfg:          cfg,
	}
}

// Resultados de las consultas paralelas por entidad.
type listaIngresos struct {
	rows []*entity.Ingreso
	err  error
}

type listaEgresos struct {
	rows []*entity.Egreso
	err  error
}

type listaVentas struct {
	rows []*entity.Venta
	err  error
}

type listaProductos struct {
	rows []*entity.Producto
	err  error
}

// periodo rango validado, con el límite superior extendido al fin del día
// para que el BETWEEN de la consulta sea inclusivo en fechas calendario.
type periodo struct {
	inicio time.Time
	fin    time.Time
	dto    dto.PeriodoDTO
}

// validar comprueba presencia de los tres campos y el formato soportado.
// Se ejecuta completa antes de cualquier consulta.
func validar(req dto.ReporteRequest) (periodo, error) {
	var p periodo
	if req.FechaInicio == "" || req.FechaFin == "" || req.Formato == "" {
		return p, domain.ErrPeriodoInvalido
	}
	if req.Formato != dto.FormatoPDF && req.Formato != dto.FormatoExcel {
		return p, fmt.Errorf("%w: %q", domain.ErrFormatoNoSoportado, req.Formato)
	}
	inicio, err := time.Parse("2006-01-02", req.FechaInicio)
	if err != nil {
		return p, fmt.Errorf("%w: fechaInicio %q", domain.ErrInvalidInput, req.FechaInicio)
	}
	fin, err := time.Parse("2006-01-02", req.FechaFin)
	if err != nil {
		return p, fmt.Errorf("%w: fechaFin %q", domain.ErrInvalidInput, req.FechaFin)
	}
	p.inicio = inicio
	p.fin = fin.Add(24*time.Hour - time.Nanosecond)
	p.dto = dto.PeriodoDTO{FechaInicio: req.FechaInicio, FechaFin: req.FechaFin}
	return p, nil
}

// GenerarVentas genera el reporte de ventas en el formato pedido.
func (uc *ReporteUseCase) GenerarVentas(
	ctx context.Context,
	negocioID string,
	req dto.ReporteRequest,
) (*dto.ReporteGeneradoDTO, error) {
	p, err := validar(req)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	ventas, err := uc.ventaRepo.ListByNegocio(ctx, negocioID, &p.inicio, &p.fin)
	if err != nil {
		return nil, fmt.Errorf("reporte ventas: %w", err)
	}
	payload := ArmarReporteVentas(ventas, p.dto, uc.cfg.VentaAltaUmbral, uc.cfg.MetaMensual)

	return uc.render(ctx, "reporte-ventas", p, req.Formato, func(r ReporteRenderer) ([]byte, error) {
		return r.RenderVentas(ctx, payload)
	})
}

// GenerarCompras genera el reporte de compras y proveedores.
func (uc *ReporteUseCase) GenerarCompras(
	ctx context.Context,
	negocioID string,
	req dto.ReporteRequest,
) (*dto.ReporteGeneradoDTO, error) {
	p, err := validar(req)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	compras, err := uc.compraRepo.ListByNegocio(ctx, negocioID, &p.inicio, &p.fin)
	if err != nil {
		return nil, fmt.Errorf("reporte compras: %w", err)
	}
	payload := ArmarReporteCompras(compras, p.dto)

	return uc.render(ctx, "reporte-compras", p, req.Formato, func(r ReporteRenderer) ([]byte, error) {
		return r.RenderCompras(ctx, payload)
	})
}

// GenerarIngresosEgresos genera el estado de resultados simple del período.
// Ingresos y egresos se consultan en paralelo (llamadas independientes).
func (uc *ReporteUseCase) GenerarIngresosEgresos(
	ctx context.Context,
	negocioID string,
	req dto.ReporteRequest,
) (*dto.ReporteGeneradoDTO, error) {
	p, err := validar(req)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	ingCh := make(chan listaIngresos, 1)
	egrCh := make(chan listaEgresos, 1)

	go func() {
		rows, err := uc.ingresoRepo.ListByNegocio(ctx, negocioID, &p.inicio, &p.fin)
		ingCh <- listaIngresos{rows, err}
	}()
	go func() {
		rows, err := uc.egresoRepo.ListByNegocio(ctx, negocioID, &p.inicio, &p.fin)
		egrCh <- listaEgresos{rows, err}
	}()

	ing := <-ingCh
	egr := <-egrCh
	if ing.err != nil {
		return nil, fmt.Errorf("reporte ingresos-egresos: ingresos: %w", ing.err)
	}
	if egr.err != nil {
		return nil, fmt.Errorf("reporte ingresos-egresos: egresos: %w", egr.err)
	}

	payload := ArmarReporteIngresosEgresos(ing.rows, egr.rows, p.dto)

	return uc.render(ctx, "reporte-ingresos-egresos", p, req.Formato, func(r ReporteRenderer) ([]byte, error) {
		return r.RenderIngresosEgresos(ctx, payload)
	})
}

// GenerarInventario genera el reporte de estado de inventario: necesita el
// catálogo completo más las ventas del período para la rotación.
func (uc *ReporteUseCase) GenerarInventario(
	ctx context.Context,
	negocioID string,
	req dto.ReporteRequest,
) (*dto.ReporteGeneradoDTO, error) {
	p, err := validar(req)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	prodCh := make(chan listaProductos, 1)
	venCh := make(chan listaVentas, 1)

	go func() {
		rows, err := uc.productoRepo.ListByNegocio(ctx, negocioID)
		prodCh <- listaProductos{rows, err}
	}()
	go func() {
		rows, err := uc.ventaRepo.ListByNegocio(ctx, negocioID, &p.inicio, &p.fin)
		venCh <- listaVentas{rows, err}
	}()

	prod := <-prodCh
	ven := <-venCh
	if prod.err != nil {
		return nil, fmt.Errorf("reporte inventario: productos: %w", prod.err)
	}
	if ven.err != nil {
		return nil, fmt.Errorf("reporte inventario: ventas: %w", ven.err)
	}

	payload := ArmarReporteInventario(prod.rows, ven.rows, p.dto)

	return uc.render(ctx, "reporte-inventario", p, req.Formato, func(r ReporteRenderer) ([]byte, error) {
		return r.RenderInventario(ctx, payload)
	})
}

// render despacha al renderizador del formato y arma mime y filename.
// Cualquier fallo del renderizador se propaga sin bytes parciales.
func (uc *ReporteUseCase) render(
	_ context.Context,
	nombre string,
	p periodo,
	formato string,
	fn func(ReporteRenderer) ([]byte, error),
) (*dto.ReporteGeneradoDTO, error) {
	var (
		renderer ReporteRenderer
		mime     string
		ext      string
	)
	switch formato {
	case dto.FormatoPDF:
		renderer, mime, ext = uc.pdf, "application/pdf", "pdf"
	case dto.FormatoExcel:
		renderer = uc.excel
		mime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		ext = "xlsx"
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrFormatoNoSoportado, formato)
	}

	contenido, err := fn(renderer)
	if err != nil {
		return nil, fmt.Errorf("generar reporte: %w", err)
	}

	return &dto.ReporteGeneradoDTO{
		Contenido: contenido,
		MimeType:  mime,
		Filename: fmt.Sprintf("%s-%s-%s.%s",
			nombre, p.dto.FechaInicio, p.dto.FechaFin, ext),
	}, nil
}
