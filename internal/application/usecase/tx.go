package usecase

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Las ventas y compras insertan cabecera, líneas y ajuste de stock; o entra
// todo o no entra nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		compraRepo repository.CompraRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
