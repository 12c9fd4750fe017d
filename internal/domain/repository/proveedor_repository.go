package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// ProveedorRepository puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	Delete(id string) error
	ListByNegocio(negocioID string, limit, offset int) ([]*entity.Proveedor, error)
}
