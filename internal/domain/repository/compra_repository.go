package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// CompraRepository puerto de persistencia para Compra.
// ListByNegocio precarga Proveedor y Detalles (con Producto).
type CompraRepository interface {
	Create(compra *entity.Compra) error
	GetByID(id string) (*entity.Compra, error)
	Delete(id string) error
	ListByNegocio(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*entity.Compra, error)
}
