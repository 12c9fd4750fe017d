package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// IngresoRepository puerto de persistencia para Ingreso.
// ListByNegocio devuelve los ingresos del negocio dentro del rango inclusivo
// [desde, hasta] (un límite nil significa sin cota por ese lado), ordenados
// por fecha ascendente y con la Categoria precargada.
type IngresoRepository interface {
	Create(ingreso *entity.Ingreso) error
	GetByID(id string) (*entity.Ingreso, error)
	Update(ingreso *entity.Ingreso) error
	Delete(id string) error
	ListByNegocio(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*entity.Ingreso, error)
}
