package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos del inventario.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto. Cantidad y precios no pueden ser negativos.
func (uc *ProductoUseCase) Create(negocioID string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Cantidad < 0 || in.PrecioCompra.IsNegative() || in.PrecioVenta.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:           uuid.New().String(),
		NegocioID:    negocioID,
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		Cantidad:     in.Cantidad,
		PrecioCompra: in.PrecioCompra,
		PrecioVenta:  in.PrecioVenta,
		CategoriaID:  in.CategoriaID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto del negocio.
func (uc *ProductoUseCase) GetByID(negocioID, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil || producto.NegocioID != negocioID {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Update actualiza campos presentes del producto.
func (uc *ProductoUseCase) Update(negocioID, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil || producto.NegocioID != negocioID {
		return nil, nil
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Cantidad != nil {
		if *in.Cantidad < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.Cantidad = *in.Cantidad
	}
	if in.PrecioCompra != nil {
		producto.PrecioCompra = *in.PrecioCompra
	}
	if in.PrecioVenta != nil {
		producto.PrecioVenta = *in.PrecioVenta
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista los productos del negocio.
func (uc *ProductoUseCase) List(ctx context.Context, negocioID string) ([]*dto.ProductoResponse, error) {
	productos, err := uc.repo.ListByNegocio(ctx, negocioID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// Delete elimina un producto del negocio.
func (uc *ProductoUseCase) Delete(negocioID, id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil || producto.NegocioID != negocioID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Cantidad:     p.Cantidad,
		PrecioCompra: p.PrecioCompra,
		PrecioVenta:  p.PrecioVenta,
		CategoriaID:  p.CategoriaID,
		CreatedAt:    p.CreatedAt,
	}
}
