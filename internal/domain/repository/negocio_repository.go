package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// NegocioRepository puerto de persistencia para Negocio.
type NegocioRepository interface {
	Create(negocio *entity.Negocio) error
	GetByID(id string) (*entity.Negocio, error)
	List(limit, offset int) ([]*entity.Negocio, error)
}
