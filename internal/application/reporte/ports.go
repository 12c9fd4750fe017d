package reporte

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
)

// ReporteRenderer serializa un payload de reporte a un documento binario.
// Hay una implementación por formato (PDF con Maroto, XLSX con excelize);
// los assemblers no saben de formatos.
type ReporteRenderer interface {
	RenderVentas(ctx context.Context, payload *dto.ReporteVentasDTO) ([]byte, error)
	RenderCompras(ctx context.Context, payload *dto.ReporteComprasDTO) ([]byte, error)
	RenderIngresosEgresos(ctx context.Context, payload *dto.ReporteIngresosEgresosDTO) ([]byte, error)
	RenderInventario(ctx context.Context, payload *dto.ReporteInventarioDTO) ([]byte, error)
}
