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

// EgresoUseCase casos de uso para egresos manuales.
type EgresoUseCase struct {
	repo repository.EgresoRepository
}

// NewEgresoUseCase construye el caso de uso.
func NewEgresoUseCase(repo repository.EgresoRepository) *EgresoUseCase {
	return &EgresoUseCase{repo: repo}
}

// Create registra un egreso. Monto debe ser positivo; fecha YYYY-MM-DD.
func (uc *EgresoUseCase) Create(negocioID string, in dto.CreateEgresoRequest) (*dto.EgresoResponse, error) {
	if !in.Monto.IsPositive() {
		return nil, fmt.Errorf("%w: monto debe ser positivo", domain.ErrInvalidInput)
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Fecha)
	}
	egreso := &entity.Egreso{
		ID:               uuid.New().String(),
		NegocioID:        negocioID,
		Monto:            in.Monto,
		Fecha:            fecha,
		Descripcion:      in.Descripcion,
		CategoriaID:      in.CategoriaID,
		CategoriaGeneral: in.CategoriaGeneral,
		CreatedAt:        time.Now(),
	}
	if err := uc.repo.Create(egreso); err != nil {
		return nil, err
	}
	return toEgresoResponse(egreso), nil
}

// List devuelve los egresos del negocio, opcionalmente acotados por fechas.
func (uc *EgresoUseCase) List(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*dto.EgresoResponse, error) {
	egresos, err := uc.repo.ListByNegocio(ctx, negocioID, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EgresoResponse, 0, len(egresos))
	for _, eg := range egresos {
		out = append(out, toEgresoResponse(eg))
	}
	return out, nil
}

// Delete elimina un egreso del negocio.
func (uc *EgresoUseCase) Delete(negocioID, id string) error {
	egreso, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if egreso == nil || egreso.NegocioID != negocioID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toEgresoResponse(eg *entity.Egreso) *dto.EgresoResponse {
	resp := &dto.EgresoResponse{
		ID:               eg.ID,
		Monto:            eg.Monto,
		Fecha:            eg.Fecha.Format("2006-01-02"),
		Descripcion:      eg.Descripcion,
		CategoriaID:      eg.CategoriaID,
		CategoriaGeneral: eg.CategoriaGeneral,
		CreatedAt:        eg.CreatedAt,
	}
	if eg.Categoria != nil {
		resp.Categoria = eg.Categoria.Nombre
	}
	return resp
}
