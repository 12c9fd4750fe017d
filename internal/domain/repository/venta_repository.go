package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// VentaRepository puerto de persistencia para Venta.
// ListByNegocio precarga Cliente y Detalles (con Producto), ordenado por
// fecha ascendente; los reportes de ventas e inventario dependen de los
// detalles para agrupar por producto.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	Delete(id string) error
	ListByNegocio(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*entity.Venta, error)
}
