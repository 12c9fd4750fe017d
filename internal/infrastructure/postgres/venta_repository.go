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

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la venta y sus líneas de detalle.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, negocio_id, cliente_id, tipo, total, fecha, descripcion, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.NegocioID, venta.ClienteID, venta.Tipo, venta.Total,
		venta.Fecha, venta.Descripcion, venta.CreatedAt,
	)
	if err != nil {
		if esViolacionUnica(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	for _, det := range venta.Detalles {
		detQuery := `
			INSERT INTO venta_detalles (id, venta_id, producto_id, cantidad, precio_unitario, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`
		_, err := r.q.Exec(context.Background(), detQuery,
			det.ID, venta.ID, det.ProductoID, det.Cantidad, det.PrecioUnitario, det.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert venta detalle: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con cliente y detalles.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `
		SELECT v.id, v.negocio_id, v.cliente_id, v.tipo, v.total, v.fecha, v.descripcion, v.created_at,
		       c.id, c.negocio_id, c.nombre, c.email, c.telefono, c.created_at, c.updated_at
		FROM ventas v
		LEFT JOIN clientes c ON c.id = v.cliente_id
		WHERE v.id = $1`
	v, err := scanVenta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	detalles, err := r.detallesDe(context.Background(), []string{v.ID})
	if err != nil {
		return nil, err
	}
	v.Detalles = detalles[v.ID]
	return v, nil
}

// Delete elimina una venta y sus detalles.
func (r *VentaRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM venta_detalles WHERE venta_id = $1`, id); err != nil {
		return fmt.Errorf("delete venta detalles: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM ventas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

// ListByNegocio lista las ventas del negocio dentro del rango inclusivo con
// cliente y detalles precargados, ordenadas por fecha ascendente.
func (r *VentaRepo) ListByNegocio(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*entity.Venta, error) {
	query := `
		SELECT v.id, v.negocio_id, v.cliente_id, v.tipo, v.total, v.fecha, v.descripcion, v.created_at,
		       c.id, c.negocio_id, c.nombre, c.email, c.telefono, c.created_at, c.updated_at
		FROM ventas v
		LEFT JOIN clientes c ON c.id = v.cliente_id
		WHERE v.negocio_id = $1
		  AND ($2::timestamptz IS NULL OR v.fecha >= $2)
		  AND ($3::timestamptz IS NULL OR v.fecha <= $3)
		ORDER BY v.fecha ASC, v.created_at ASC`
	rows, err := r.q.Query(ctx, query, negocioID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Venta
	var ids []string
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
		ids = append(ids, v.ID)
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
	for _, v := range list {
		v.Detalles = detalles[v.ID]
	}
	return list, nil
}

// detallesDe trae en una sola consulta los detalles (con producto) de las
// ventas indicadas, agrupados por venta.
func (r *VentaRepo) detallesDe(ctx context.Context, ventaIDs []string) (map[string][]entity.VentaDetalle, error) {
	query := `
		SELECT d.id, d.venta_id, d.producto_id, d.cantidad, d.precio_unitario, d.subtotal,
		       p.id, p.negocio_id, p.nombre, p.descripcion, p.cantidad,
		       p.precio_compra, p.precio_venta, p.categoria_id, p.created_at, p.updated_at
		FROM venta_detalles d
		LEFT JOIN productos p ON p.id = d.producto_id
		WHERE d.venta_id = ANY($1)
		ORDER BY d.id`
	rows, err := r.q.Query(ctx, query, ventaIDs)
	if err != nil {
		return nil, fmt.Errorf("list venta detalles: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.VentaDetalle)
	for rows.Next() {
		var d entity.VentaDetalle
		var prodID, prodNegocioID, prodNombre, prodDescripcion *string
		var prodCantidad *int
		var prodPrecioCompra, prodPrecioVenta *decimal.Decimal
		var prodCategoriaID *string
		var prodCreatedAt, prodUpdatedAt *time.Time
		if err := rows.Scan(
			&d.ID, &d.VentaID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal,
			&prodID, &prodNegocioID, &prodNombre, &prodDescripcion, &prodCantidad,
			&prodPrecioCompra, &prodPrecioVenta, &prodCategoriaID, &prodCreatedAt, &prodUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venta detalle: %w", err)
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
		out[d.VentaID] = append(out[d.VentaID], d)
	}
	return out, rows.Err()
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	var cliID, cliNegocioID, cliNombre, cliEmail, cliTelefono *string
	var cliCreatedAt, cliUpdatedAt *time.Time
	if err := row.Scan(
		&v.ID, &v.NegocioID, &v.ClienteID, &v.Tipo, &v.Total, &v.Fecha, &v.Descripcion, &v.CreatedAt,
		&cliID, &cliNegocioID, &cliNombre, &cliEmail, &cliTelefono, &cliCreatedAt, &cliUpdatedAt,
	); err != nil {
		return nil, err
	}
	if cliID != nil {
		v.Cliente = &entity.Cliente{
			ID:        *cliID,
			NegocioID: *cliNegocioID,
			Nombre:    *cliNombre,
			Email:     *cliEmail,
			Telefono:  *cliTelefono,
			CreatedAt: *cliCreatedAt,
			UpdatedAt: *cliUpdatedAt,
		}
	}
	return &v, nil
}
