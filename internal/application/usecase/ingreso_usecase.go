package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// IngresoUseCase casos de uso para ingresos manuales.
type IngresoUseCase struct {
	repo repository.IngresoRepository
}

// NewIngresoUseCase construye el caso de uso.
func NewIngresoUseCase(repo repository.IngresoRepository) *IngresoUseCase {
	return &IngresoUseCase{repo: repo}
}

// Create registra un ingreso. Monto debe ser positivo; fecha YYYY-MM-DD.
func (uc *IngresoUseCase) Create(negocioID string, in dto.CreateIngresoRequest) (*dto.IngresoResponse, error) {
	if !in.Monto.IsPositive() {
		return nil, fmt.Errorf("%w: monto debe ser positivo", domain.ErrInvalidInput)
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Fecha)
	}
	ingreso := &entity.Ingreso{
		ID:          uuid.New().String(),
		NegocioID:   negocioID,
		Monto:       in.Monto,
		Fecha:       fecha,
		Descripcion: in.Descripcion,
		CategoriaID: in.CategoriaID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ingreso); err != nil {
		return nil, err
	}
	return toIngresoResponse(ingreso), nil
}

// List devuelve los ingresos del negocio, opcionalmente acotados por fechas.
func (uc *IngresoUseCase) List(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*dto.IngresoResponse, error) {
	ingresos, err := uc.repo.ListByNegocio(ctx, negocioID, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IngresoResponse, 0, len(ingresos))
	for _, in := range ingresos {
		out = append(out, toIngresoResponse(in))
	}
	return out, nil
}

// Delete elimina un ingreso del negocio.
func (uc *IngresoUseCase) Delete(negocioID, id string) error {
	ingreso, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ingreso == nil || ingreso.NegocioID != negocioID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toIngresoResponse(in *entity.Ingreso) *dto.IngresoResponse {
	resp := &dto.IngresoResponse{
		ID:          in.ID,
		Monto:       in.Monto,
		Fecha:       in.Fecha.Format("2006-01-02"),
		Descripcion: in.Descripcion,
		CategoriaID: in.CategoriaID,
		CreatedAt:   in.CreatedAt,
	}
	if in.Categoria != nil {
		resp.Categoria = in.Categoria.Nombre
	}
	return resp
}
