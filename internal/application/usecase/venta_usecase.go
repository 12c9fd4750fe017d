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

// VentaUseCase casos de uso para ventas.
type VentaUseCase struct {
	ventaRepo repository.VentaRepository
	tx        TxRunner
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(ventaRepo repository.VentaRepository, tx TxRunner) *VentaUseCase {
	return &VentaUseCase{ventaRepo: ventaRepo, tx: tx}
}

// Create registra una venta calculando subtotales y total a partir de las
// líneas. Si una línea no trae precio unitario se usa el precio de venta
// actual del producto, y se descuenta la cantidad vendida del stock. Todo
// corre en una transacción.
func (uc *VentaUseCase) Create(ctx context.Context, negocioID string, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if in.Tipo != entity.VentaProducto && in.Tipo != entity.VentaServicio {
		return nil, fmt.Errorf("%w: tipo de venta %q", domain.ErrInvalidInput, in.Tipo)
	}
	if len(in.Detalles) == 0 {
		return nil, fmt.Errorf("%w: la venta requiere al menos una línea", domain.ErrInvalidInput)
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Fecha)
	}

	venta := &entity.Venta{
		ID:          uuid.New().String(),
		NegocioID:   negocioID,
		ClienteID:   in.ClienteID,
		Tipo:        in.Tipo,
		Fecha:       fecha,
		Descripcion: in.Descripcion,
		CreatedAt:   time.Now(),
	}

	err = uc.tx.Run(ctx, func(
		ventaRepo repository.VentaRepository,
		_ repository.CompraRepository,
		productoRepo repository.ProductoRepository,
	) error {
		total := decimal.Zero
		for _, det := range in.Detalles {
			if !det.Cantidad.IsPositive() {
				return fmt.Errorf("%w: cantidad debe ser positiva", domain.ErrInvalidInput)
			}
			linea := entity.VentaDetalle{
				ID:             uuid.New().String(),
				VentaID:        venta.ID,
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
					linea.PrecioUnitario = producto.PrecioVenta
				}
				cantidad := int(det.Cantidad.IntPart())
				if producto.Cantidad < cantidad {
					return fmt.Errorf("%w: %s (disponible %d, pedido %d)",
						domain.ErrInsufficientStock, producto.Nombre, producto.Cantidad, cantidad)
				}
				producto.Cantidad -= cantidad
				producto.UpdatedAt = time.Now()
				if err := productoRepo.Update(producto); err != nil {
					return err
				}
			}
			linea.Subtotal = linea.Cantidad.Mul(linea.PrecioUnitario)
			total = total.Add(linea.Subtotal)
			venta.Detalles = append(venta.Detalles, linea)
		}
		venta.Total = total
		return ventaRepo.Create(venta)
	})
	if err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// GetByID devuelve una venta del negocio con sus líneas.
func (uc *VentaUseCase) GetByID(negocioID, id string) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil || venta.NegocioID != negocioID {
		return nil, domain.ErrNotFound
	}
	return toVentaResponse(venta), nil
}

// List devuelve las ventas del negocio, opcionalmente acotadas por fechas.
func (uc *VentaUseCase) List(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*dto.VentaResponse, error) {
	ventas, err := uc.ventaRepo.ListByNegocio(ctx, negocioID, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, toVentaResponse(v))
	}
	return out, nil
}

// Delete elimina una venta del negocio.
func (uc *VentaUseCase) Delete(negocioID, id string) error {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if venta == nil || venta.NegocioID != negocioID {
		return domain.ErrNotFound
	}
	return uc.ventaRepo.Delete(id)
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:          v.ID,
		ClienteID:   v.ClienteID,
		Tipo:        v.Tipo,
		Total:       v.Total,
		Fecha:       v.Fecha.Format("2006-01-02"),
		Descripcion: v.Descripcion,
		Detalles:    make([]dto.VentaDetalleResponse, 0, len(v.Detalles)),
		CreatedAt:   v.CreatedAt,
	}
	if v.Cliente != nil {
		resp.Cliente = v.Cliente.Nombre
	}
	for _, det := range v.Detalles {
		linea := dto.VentaDetalleResponse{
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
