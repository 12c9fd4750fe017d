package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, negocio_id, nombre, descripcion, cantidad, precio_compra, precio_venta, categoria_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.NegocioID, producto.Nombre, producto.Descripcion, producto.Cantidad,
		producto.PrecioCompra, producto.PrecioVenta, producto.CategoriaID,
		producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if esViolacionUnica(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con su categoría precargada.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `
		SELECT p.id, p.negocio_id, p.nombre, p.descripcion, p.cantidad,
		       p.precio_compra, p.precio_venta, p.categoria_id, p.created_at, p.updated_at,
		       c.id, c.negocio_id, c.nombre, c.tipo, c.created_at
		FROM productos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE p.id = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// Update actualiza un producto.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, cantidad = $4, precio_compra = $5,
		    precio_venta = $6, categoria_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Cantidad,
		producto.PrecioCompra, producto.PrecioVenta, producto.CategoriaID, producto.UpdatedAt,
	)
	if err != nil {
		if esViolacionUnica(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// ListByNegocio lista todos los productos del negocio con su categoría.
// El reporte de inventario recorre el catálogo completo, por eso no pagina.
func (r *ProductoRepo) ListByNegocio(ctx context.Context, negocioID string) ([]*entity.Producto, error) {
	query := `
		SELECT p.id, p.negocio_id, p.nombre, p.descripcion, p.cantidad,
		       p.precio_compra, p.precio_venta, p.categoria_id, p.created_at, p.updated_at,
		       c.id, c.negocio_id, c.nombre, c.tipo, c.created_at
		FROM productos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE p.negocio_id = $1
		ORDER BY p.nombre`
	rows, err := r.q.Query(ctx, query, negocioID)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// scanProducto escanea un producto con categoría opcional (columnas NULL del LEFT JOIN).
func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	var catID, catNegocioID, catNombre, catTipo *string
	var catCreatedAt *time.Time
	if err := row.Scan(
		&p.ID, &p.NegocioID, &p.Nombre, &p.Descripcion, &p.Cantidad,
		&p.PrecioCompra, &p.PrecioVenta, &p.CategoriaID, &p.CreatedAt, &p.UpdatedAt,
		&catID, &catNegocioID, &catNombre, &catTipo, &catCreatedAt,
	); err != nil {
		return nil, err
	}
	if catID != nil {
		p.Categoria = &entity.Categoria{
			ID:        *catID,
			NegocioID: *catNegocioID,
			Nombre:    *catNombre,
			Tipo:      *catTipo,
			CreatedAt: *catCreatedAt,
		}
	}
	return &p, nil
}
