package movimiento

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// MovimientoUseCase arma el historial unificado: lee las cuatro tablas origen,
// normaliza, filtra y resume. Solo lectura.
type MovimientoUseCase struct {
	ingresoRepo repository.IngresoRepository
	egresoRepo  repository.EgresoRepository
	ventaRepo   repository.VentaRepository
	compraRepo  repository.CompraRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(
	ingresoRepo repository.IngresoRepository,
	egresoRepo repository.EgresoRepository,
	ventaRepo repository.VentaRepository,
	compraRepo repository.CompraRepository,
) *MovimientoUseCase {
	return &MovimientoUseCase{
		ingresoRepo: ingresoRepo,
		egresoRepo:  egresoRepo,
		ventaRepo:   ventaRepo,
		compraRepo:  compraRepo,
	}
}

// GetMovimientos devuelve el historial filtrado con su resumen.
//
// Las cuatro consultas son independientes y se lanzan en paralelo; el rango de
// fechas del filtro se empuja a la consulta para no traer filas de más, y el
// resto del filtro (tipo, texto) se aplica en memoria sobre lo normalizado.
func (uc *MovimientoUseCase) GetMovimientos(
	ctx context.Context,
	negocioID string,
	req dto.MovimientoFiltroRequest,
) (*dto.MovimientosResponse, error) {
	filtro, err := parseFiltro(req)
	if err != nil {
		return nil, err
	}

	type ingresosResult struct {
		rows []*entity.Ingreso
		err  error
	}
	type egresosResult struct {
		rows []*entity.Egreso
		err  error
	}
	type ventasResult struct {
		rows []*entity.Venta
		err  error
	}
	type comprasResult struct {
		rows []*entity.Compra
		err  error
	}

	ingCh := make(chan ingresosResult, 1)
	egrCh := make(chan egresosResult, 1)
	venCh := make(chan ventasResult, 1)
	comCh := make(chan comprasResult, 1)

	go func() {
		rows, err := uc.ingresoRepo.ListByNegocio(ctx, negocioID, filtro.FechaDesde, filtro.FechaHasta)
		ingCh <- ingresosResult{rows, err}
	}()
	go func() {
		rows, err := uc.egresoRepo.ListByNegocio(ctx, negocioID, filtro.FechaDesde, filtro.FechaHasta)
		egrCh <- egresosResult{rows, err}
	}()
	go func() {
		rows, err := uc.ventaRepo.ListByNegocio(ctx, negocioID, filtro.FechaDesde, filtro.FechaHasta)
		venCh <- ventasResult{rows, err}
	}()
	go func() {
		rows, err := uc.compraRepo.ListByNegocio(ctx, negocioID, filtro.FechaDesde, filtro.FechaHasta)
		comCh <- comprasResult{rows, err}
	}()

	ing := <-ingCh
	egr := <-egrCh
	ven := <-venCh
	com := <-comCh

	if ing.err != nil {
		return nil, fmt.Errorf("movimientos: ingresos: %w", ing.err)
	}
	if egr.err != nil {
		return nil, fmt.Errorf("movimientos: egresos: %w", egr.err)
	}
	if ven.err != nil {
		return nil, fmt.Errorf("movimientos: ventas: %w", ven.err)
	}
	if com.err != nil {
		return nil, fmt.Errorf("movimientos: compras: %w", com.err)
	}

	movs := Normalizar(ing.rows, egr.rows, ven.rows, com.rows)
	filtrados, resumen := FiltrarYResumir(movs, filtro)

	out := make([]dto.MovimientoDTO, 0, len(filtrados))
	for _, m := range filtrados {
		out = append(out, dto.MovimientoDTO{
			ID:          m.ID,
			Tipo:        string(m.Tipo),
			Fecha:       m.Fecha.Format("2006-01-02"),
			Monto:       m.Monto,
			Descripcion: m.Descripcion,
			Origen:      m.EtiquetaOrigen(),
			Detalle:     m.Detalle(),
		})
	}

	return &dto.MovimientosResponse{
		Movimientos: out,
		Resumen: dto.ResumenMovimientosDTO{
			Ingresos: resumen.Ingresos,
			Egresos:  resumen.Egresos,
			Neto:     resumen.Neto,
			Total:    resumen.Total,
		},
	}, nil
}

// parseFiltro valida y convierte el filtro HTTP al filtro de dominio.
func parseFiltro(req dto.MovimientoFiltroRequest) (Filtro, error) {
	var f Filtro
	f.Texto = req.Texto

	switch entity.TipoMovimiento(req.Tipo) {
	case "", entity.MovIngreso, entity.MovEgreso, entity.MovVenta, entity.MovCompra:
		f.Tipo = entity.TipoMovimiento(req.Tipo)
	default:
		return f, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, req.Tipo)
	}

	if req.FechaDesde != "" {
		t, err := time.Parse("2006-01-02", req.FechaDesde)
		if err != nil {
			return f, fmt.Errorf("%w: fecha_desde %q", domain.ErrInvalidInput, req.FechaDesde)
		}
		f.FechaDesde = &t
	}
	if req.FechaHasta != "" {
		t, err := time.Parse("2006-01-02", req.FechaHasta)
		if err != nil {
			return f, fmt.Errorf("%w: fecha_hasta %q", domain.ErrInvalidInput, req.FechaHasta)
		}
		f.FechaHasta = &t
	}
	return f, nil
}
