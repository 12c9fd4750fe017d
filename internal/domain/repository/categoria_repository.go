package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// CategoriaRepository puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Delete(id string) error
	ListByNegocio(negocioID, tipo string) ([]*entity.Categoria, error)
}
