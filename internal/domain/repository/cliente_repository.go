package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// ClienteRepository puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
	ListByNegocio(negocioID string, limit, offset int) ([]*entity.Cliente, error)
}
