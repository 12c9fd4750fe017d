package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// EgresoRepository puerto de persistencia para Egreso.
type EgresoRepository interface {
	Create(egreso *entity.Egreso) error
	GetByID(id string) (*entity.Egreso, error)
	Update(egreso *entity.Egreso) error
	Delete(id string) error
	ListByNegocio(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*entity.Egreso, error)
}
