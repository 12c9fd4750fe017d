package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación de CompraRepository sobre PostgreSQL.
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// Create persiste la compra y sus líneas de detalle.
func (r *CompraRepo) Create(compra *entity.Compra) error {
	query := `
		INSERT INTO compras (id, negocio_id, proveedor_id, total, fecha, descripcion, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		compra.ID, compra.NegocioID, compra.ProveedorID, compra.Total,
		compra.Fecha, compra.Descripcion, compra.CreatedAt,
	)
	if err != nil {
		if esViolacionUnica(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert compra: %w", err)
	}
	for _, det := range compra.Detalles {
		detQuery := `
			INSERT INTO compra_detalles (id, compra_id, producto_id, cantidad, precio_unitario, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`
		_, err := r.q.Exec(context.Background(), detQuery,
			det.ID, compra.ID, det.ProductoID, det.Cantidad, det.PrecioUnitario, det.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert compra detalle: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una compra con proveedor y detalles.
func (r *CompraRepo) GetByID(id string) (*entity.Compra, error) {
	query := `
		SELECT co.id, co.negocio_id, co.proveedor_id, co.total, co.fecha, co.descripcion, co.created_at,
		       pr.id, pr.negocio_id, pr.nombre, pr.email, pr.telefono, pr.created_at, pr.updated_at
		FROM compras co
		LEFT JOIN proveedores pr ON pr.id = co.proveedor_id
		WHERE co.id = $1`
	c, err := scanCompra(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	detalles, err := r.detallesDe(context.Background(), []string{c.ID})
	if err != nil {
		return nil, err
	}
	c.Detalles = detalles[c.ID]
	return c, nil
}

// Delete elimina una compra y sus detalles.
func (r *CompraRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM compra_detalles WHERE compra_id = $1`, id); err != nil {
		return fmt.Errorf("delete compra detalles: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM compras WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete compra: %w", err)
	}
	return nil
}

// ListByNegocio lista las compras del negocio dentro del rango inclusivo con
// proveedor y detalles precargados, ordenadas por fecha ascendente.
func (r *CompraRepo) ListByNegocio(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*entity.Compra, error) {
	query := `
		SELECT co.id, co.negocio_id, co.proveedor_id, co.total, co.fecha, co.descripcion, co.created_at,
		       pr.id, pr.negocio_id, pr.nombre, pr.email, pr.telefono, pr.created_at, pr.updated_at
		FROM compras co
		LEFT JOIN proveedores pr ON pr.id = co.proveedor_id
		WHERE co.negocio_id = $1
		  AND ($2::timestamptz IS NULL OR co.fecha >= $2)
		  AND ($3::timestamptz IS NULL OR co.fecha <= $3)
		ORDER BY co.fecha ASC, co.created_at ASC`
	rows, err := r.q.Query(ctx, query, negocioID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()

	var list []*entity.Compra
	var ids []string
	for rows.Next() {
		c, err := scanCompra(rows)
		if err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	detalles, err := r.detallesDe(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		c.Detalles = detalles[c.ID]
	}
	return list, nil
}

func (r *CompraRepo) detallesDe(ctx context.Context, compraIDs []string) (map[string][]entity.CompraDetalle, error) {
	query := `
		SELECT d.id, d.compra_id, d.producto_id, d.cantidad, d.precio_unitario, d.subtotal,
		       p.id, p.negocio_id, p.nombre, p.descripcion, p.cantidad,
		       p.precio_compra, p.precio_venta, p.categoria_id, p.created_at, p.updated_at
		FROM compra_detalles d
		LEFT JOIN productos p ON p.id = d.producto_id
		WHERE d.compra_id = ANY($1)
		ORDER BY d.id`
	rows, err := r.q.Query(ctx, query, compraIDs)
	if err != nil {
		return nil, fmt.Errorf("list compra detalles: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.CompraDetalle)
	for rows.Next() {
		var d entity.CompraDetalle
		var prodID, prodNegocioID, prodNombre, prodDescripcion *string
		var prodCantidad *int
		var prodPrecioCompra, prodPrecioVenta *decimal.Decimal
		var prodCategoriaID *string
		var prodCreatedAt, prodUpdatedAt *time.Time
		if err := rows.Scan(
			&d.ID, &d.CompraID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal,
			&prodID, &prodNegocioID, &prodNombre, &prodDescripcion, &prodCantidad,
			&prodPrecioCompra, &prodPrecioVenta, &prodCategoriaID, &prodCreatedAt, &prodUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan compra detalle: %w", err)
		}
		if prodID != nil {
			p := &entity.Producto{
				ID:          *prodID,
				NegocioID:   *prodNegocioID,
				Nombre:      *prodNombre,
				CategoriaID: prodCategoriaID,
			}
			if prodDescripcion != nil {
				p.Descripcion = *prodDescripcion
			}
			if prodCantidad != nil {
				p.Cantidad = *prodCantidad
			}
			if prodPrecioCompra != nil {
				p.PrecioCompra = *prodPrecioCompra
			}
			if prodPrecioVenta != nil {
				p.PrecioVenta = *prodPrecioVenta
			}
			if prodCreatedAt != nil {
				p.CreatedAt = *prodCreatedAt
			}
			if prodUpdatedAt != nil {
				p.UpdatedAt = *prodUpdatedAt
			}
			d.Producto = p
		}
		out[d.CompraID] = append(out[d.CompraID], d)
	}
	return out, rows.Err()
}

func scanCompra(row pgx.Row) (*entity.Compra, error) {
	var c entity.Compra
	var provID, provNegocioID, provNombre, provEmail, provTelefono *string
	var provCreatedAt, provUpdatedAt *time.Time
	if err := row.Scan(
		&c.ID, &c.NegocioID, &c.ProveedorID, &c.Total, &c.Fecha, &c.Descripcion, &c.CreatedAt,
		&provID, &provNegocioID, &provNombre, &provEmail, &provTelefono, &provCreatedAt, &provUpdatedAt,
	); err != nil {
		return nil, err
	}
	if provID != nil {
		c.Proveedor = &entity.Proveedor{
			ID:        *provID,
			NegocioID: *provNegocioID,
			Nombre:    *provNombre,
			Email:     *provEmail,
			Telefono:  *provTelefono,
			CreatedAt: *provCreatedAt,
			UpdatedAt: *provUpdatedAt,
		}
	}
	return &c, nil
}
