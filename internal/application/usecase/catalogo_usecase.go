package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// CatalogoUseCase casos de uso CRUD de los catálogos del negocio: categorías,
// clientes y proveedores. Son entidades planas sin reglas propias, por eso
// comparten caso de uso.
type CatalogoUseCase struct {
	categoriaRepo repository.CategoriaRepository
	clienteRepo   repository.ClienteRepository
	proveedorRepo repository.ProveedorRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(
	categoriaRepo repository.CategoriaRepository,
	clienteRepo repository.ClienteRepository,
	proveedorRepo repository.ProveedorRepository,
) *CatalogoUseCase {
	return &CatalogoUseCase{
		categoriaRepo: categoriaRepo,
		clienteRepo:   clienteRepo,
		proveedorRepo: proveedorRepo,
	}
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategoria crea una categoría de ingreso o egreso.
func (uc *CatalogoUseCase) CreateCategoria(negocioID string, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.CategoriaIngreso && in.Tipo != entity.CategoriaEgreso {
		return nil, domain.ErrInvalidInput
	}
	cat := &entity.Categoria{
		ID:        uuid.New().String(),
		NegocioID: negocioID,
		Nombre:    in.Nombre,
		Tipo:      in.Tipo,
		CreatedAt: time.Now(),
	}
	if err := uc.categoriaRepo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoriaResponse(cat), nil
}

// ListCategorias lista categorías del negocio; tipo vacío lista todas.
func (uc *CatalogoUseCase) ListCategorias(negocioID, tipo string) ([]*dto.CategoriaResponse, error) {
	cats, err := uc.categoriaRepo.ListByNegocio(negocioID, tipo)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// DeleteCategoria elimina una categoría del negocio.
func (uc *CatalogoUseCase) DeleteCategoria(negocioID, id string) error {
	cat, err := uc.categoriaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil || cat.NegocioID != negocioID {
		return domain.ErrNotFound
	}
	return uc.categoriaRepo.Delete(id)
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CreateCliente crea un cliente.
func (uc *CatalogoUseCase) CreateCliente(negocioID string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cli := &entity.Cliente{
		ID:        uuid.New().String(),
		NegocioID: negocioID,
		Nombre:    in.Nombre,
		Email:     in.Email,
		Telefono:  in.Telefono,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clienteRepo.Create(cli); err != nil {
		return nil, err
	}
	return toClienteResponse(cli), nil
}

// ListClientes lista clientes paginados.
func (uc *CatalogoUseCase) ListClientes(negocioID string, limit, offset int) ([]*dto.ClienteResponse, error) {
	clientes, err := uc.clienteRepo.ListByNegocio(negocioID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// DeleteCliente elimina un cliente del negocio.
func (uc *CatalogoUseCase) DeleteCliente(negocioID, id string) error {
	cli, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cli == nil || cli.NegocioID != negocioID {
		return domain.ErrNotFound
	}
	return uc.clienteRepo.Delete(id)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateProveedor crea un proveedor.
func (uc *CatalogoUseCase) CreateProveedor(negocioID string, in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	prov := &entity.Proveedor{
		ID:        uuid.New().String(),
		NegocioID: negocioID,
		Nombre:    in.Nombre,
		Email:     in.Email,
		Telefono:  in.Telefono,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.proveedorRepo.Create(prov); err != nil {
		return nil, err
	}
	return toProveedorResponse(prov), nil
}

// ListProveedores lista proveedores paginados.
func (uc *CatalogoUseCase) ListProveedores(negocioID string, limit, offset int) ([]*dto.ProveedorResponse, error) {
	proveedores, err := uc.proveedorRepo.ListByNegocio(negocioID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, toProveedorResponse(p))
	}
	return out, nil
}

// DeleteProveedor elimina un proveedor del negocio.
func (uc *CatalogoUseCase) DeleteProveedor(negocioID, id string) error {
	prov, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if prov == nil || prov.NegocioID != negocioID {
		return domain.ErrNotFound
	}
	return uc.proveedorRepo.Delete(id)
}

// ── mappers ───────────────────────────────────────────────────────────────────

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, Tipo: c.Tipo, CreatedAt: c.CreatedAt}
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{ID: c.ID, Nombre: c.Nombre, Email: c.Email, Telefono: c.Telefono, CreatedAt: c.CreatedAt}
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{ID: p.ID, Nombre: p.Nombre, Email: p.Email, Telefono: p.Telefono, CreatedAt: p.CreatedAt}
}
