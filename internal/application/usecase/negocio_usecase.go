package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// NegocioUseCase casos de uso para negocios (tenants).
type NegocioUseCase struct {
	repo repository.NegocioRepository
}

// NewNegocioUseCase construye el caso de uso.
func NewNegocioUseCase(repo repository.NegocioRepository) *NegocioUseCase {
	return &NegocioUseCase{repo: repo}
}

// Create crea un negocio nuevo.
func (uc *NegocioUseCase) Create(in dto.CreateNegocioRequest) (*dto.NegocioResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	negocio := &entity.Negocio{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Email:     in.Email,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(negocio); err != nil {
		return nil, err
	}
	return toNegocioResponse(negocio), nil
}

// GetByID obtiene un negocio por ID.
func (uc *NegocioUseCase) GetByID(id string) (*dto.NegocioResponse, error) {
	negocio, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if negocio == nil {
		return nil, nil
	}
	return toNegocioResponse(negocio), nil
}

// List lista negocios paginados.
func (uc *NegocioUseCase) List(limit, offset int) ([]*dto.NegocioResponse, error) {
	negocios, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NegocioResponse, 0, len(negocios))
	for _, n := range negocios {
		out = append(out, toNegocioResponse(n))
	}
	return out, nil
}

func toNegocioResponse(n *entity.Negocio) *dto.NegocioResponse {
	return &dto.NegocioResponse{
		ID:        n.ID,
		Nombre:    n.Nombre,
		Email:     n.Email,
		Telefono:  n.Telefono,
		Direccion: n.Direccion,
		CreatedAt: n.CreatedAt,
	}
}
