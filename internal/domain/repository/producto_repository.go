package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// ProductoRepository puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error
	ListByNegocio(ctx context.Context, negocioID string) ([]*entity.Producto, error)
}
