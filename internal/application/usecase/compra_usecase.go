package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// CompraUseCase casos de uso para compras a proveedores.
type CompraUseCase struct {
	compraRepo repository.CompraRepository
	tx         TxRunner
}

// NewCompraUseCase construye el caso de uso.
func NewCompraUseCase(compraRepo repository.CompraRepository, tx TxRunner) *CompraUseCase {
	return &CompraUseCase{compraRepo: compraRepo, tx: tx}
}

// Create registra una compra calculando subtotales y total a partir de las
// líneas. Si una línea no trae precio unitario se usa el precio de compra
// actual del producto, y la cantidad comprada se suma al stock. Todo corre
// en una transacción.
func (uc *CompraUseCase) Create(ctx context.Context, negocioID string, in dto.CreateCompraRequest) (*dto.CompraResponse, error) {
	if len(in.Detalles) == 0 {
		return nil, fmt.Errorf("%w: la compra requiere al menos una línea", domain.ErrInvalidInput)
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Fecha)
	}

	compra := &entity.Compra{
		ID:          uuid.New().String(),
		NegocioID:   negocioID,
		ProveedorID: in.ProveedorID,
		Fecha:       fecha,
		Descripcion: in.Descripcion,
		CreatedAt:   time.Now(),
	}

	err = uc.tx.Run(ctx, func(
		_ repository.VentaRepository,
		compraRepo repository.CompraRepository,
		productoRepo repository.ProductoRepository,
	) error {
		total := decimal.Zero
		for _, det := range in.Detalles {
			if !det.Cantidad.IsPositive() {
				return fmt.Errorf("%w: cantidad debe ser positiva", domain.ErrInvalidInput)
			}
			linea := entity.CompraDetalle{
				ID:             uuid.New().String(),
				CompraID:       compra.ID,
				Cantidad:       det.Cantidad,
				PrecioUnitario: det.PrecioUnitario,
			}
			if det.ProductoID != "" {
				producto, err := productoRepo.GetByID(det.ProductoID)
				if err != nil {
					return err
				}
				if producto == nil || producto.NegocioID != negocioID {
					return fmt.Errorf("%w: producto %s", domain.ErrNotFound, det.ProductoID)
				}
				linea.ProductoID = &producto.ID
				if linea.PrecioUnitario.IsZero() {
					linea.PrecioUnitario = producto.PrecioCompra
				}
				producto.Cantidad += int(det.Cantidad.IntPart())
				producto.UpdatedAt = time.Now()
				if err := productoRepo.Update(producto); err != nil {
					return err
				}
			}
			linea.Subtotal = linea.Cantidad.Mul(linea.PrecioUnitario)
			total = total.Add(linea.Subtotal)
			compra.Detalles = append(compra.Detalles, linea)
		}
		compra.Total = total
		return compraRepo.Create(compra)
	})
	if err != nil {
		return nil, err
	}
	return toCompraResponse(compra), nil
}

// GetByID devuelve una compra del negocio con sus líneas.
func (uc *CompraUseCase) GetByID(negocioID, id string) (*dto.CompraResponse, error) {
	compra, err := uc.compraRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if compra == nil || compra.NegocioID != negocioID {
		return nil, domain.ErrNotFound
	}
	return toCompraResponse(compra), nil
}

// List devuelve las compras del negocio, opcionalmente acotadas por fechas.
func (uc *CompraUseCase) List(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*dto.CompraResponse, error) {
	compras, err := uc.compraRepo.ListByNegocio(ctx, negocioID, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompraResponse, 0, len(compras))
	for _, c := range compras {
		out = append(out, toCompraResponse(c))
	}
	return out, nil
}

// Delete elimina una compra del negocio.
func (uc *CompraUseCase) Delete(negocioID, id string) error {
	compra, err := uc.compraRepo.GetByID(id)
	if err != nil {
		return err
	}
	if compra == nil || compra.NegocioID != negocioID {
		return domain.ErrNotFound
	}
	return uc.compraRepo.Delete(id)
}

func toCompraResponse(c *entity.Compra) *dto.CompraResponse {
	resp := &dto.CompraResponse{
		ID:          c.ID,
		ProveedorID: c.ProveedorID,
		Total:       c.Total,
		Fecha:       c.Fecha.Format("2006-01-02"),
		Descripcion: c.Descripcion,
		Detalles:    make([]dto.CompraDetalleResponse, 0, len(c.Detalles)),
		CreatedAt:   c.CreatedAt,
	}
	if c.Proveedor != nil {
		resp.Proveedor = c.Proveedor.Nombre
	}
	for _, det := range c.Detalles {
		linea := dto.CompraDetalleResponse{
			ProductoID:     det.ProductoID,
			Cantidad:       det.Cantidad,
			PrecioUnitario: det.PrecioUnitario,
			Subtotal:       det.Subtotal,
		}
		if det.Producto != nil {
			linea.Producto = det.Producto.Nombre
		}
		resp.Detalles = append(resp.Detalles, linea)
	}
	return resp
}
