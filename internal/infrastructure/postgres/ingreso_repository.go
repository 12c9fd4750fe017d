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

var _ repository.IngresoRepository = (*IngresoRepo)(nil)

// IngresoRepo implementación de IngresoRepository sobre PostgreSQL.
type IngresoRepo struct {
	q Querier
}

// NewIngresoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngresoRepository(q Querier) *IngresoRepo {
	return &IngresoRepo{q: q}
}

// Create persiste un nuevo ingreso.
func (r *IngresoRepo) Create(ingreso *entity.Ingreso) error {
	query := `
		INSERT INTO ingresos (id, negocio_id, monto, fecha, descripcion, categoria_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ingreso.ID, ingreso.NegocioID, ingreso.Monto, ingreso.Fecha,
		ingreso.Descripcion, ingreso.CategoriaID, ingreso.CreatedAt,
	)
	if err != nil {
		if esViolacionUnica(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingreso: %w", err)
	}
	return nil
}

// GetByID obtiene un ingreso por ID con su categoría.
func (r *IngresoRepo) GetByID(id string) (*entity.Ingreso, error) {
	query := `
		SELECT i.id, i.negocio_id, i.monto, i.fecha, i.descripcion, i.categoria_id, i.created_at,
		       c.id, c.negocio_id, c.nombre, c.tipo, c.created_at
		FROM ingresos i
		LEFT JOIN categorias c ON c.id = i.categoria_id
		WHERE i.id = $1`
	in, err := scanIngreso(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingreso: %w", err)
	}
	return in, nil
}

// Update actualiza un ingreso.
func (r *IngresoRepo) Update(ingreso *entity.Ingreso) error {
	query := `
		UPDATE ingresos SET monto = $2, fecha = $3, descripcion = $4, categoria_id = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ingreso.ID, ingreso.Monto, ingreso.Fecha, ingreso.Descripcion, ingreso.CategoriaID,
	)
	if err != nil {
		return fmt.Errorf("update ingreso: %w", err)
	}
	return nil
}

// Delete elimina un ingreso por ID.
func (r *IngresoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ingresos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingreso: %w", err)
	}
	return nil
}

// ListByNegocio lista los ingresos del negocio dentro del rango inclusivo,
// ordenados por fecha ascendente. Un límite nil no acota por ese lado.
func (r *IngresoRepo) ListByNegocio(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*entity.Ingreso, error) {
	query := `
		SELECT i.id, i.negocio_id, i.monto, i.fecha, i.descripcion, i.categoria_id, i.created_at,
		       c.id, c.negocio_id, c.nombre, c.tipo, c.created_at
		FROM ingresos i
		LEFT JOIN categorias c ON c.id = i.categoria_id
		WHERE i.negocio_id = $1
		  AND ($2::timestamptz IS NULL OR i.fecha >= $2)
		  AND ($3::timestamptz IS NULL OR i.fecha <= $3)
		ORDER BY i.fecha ASC, i.created_at ASC`
	rows, err := r.q.Query(ctx, query, negocioID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list ingresos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingreso
	for rows.Next() {
		in, err := scanIngreso(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingreso: %w", err)
		}
		list = append(list, in)
	}
	return list, rows.Err()
}

func scanIngreso(row pgx.Row) (*entity.Ingreso, error) {
	var in entity.Ingreso
	var catID, catNegocioID, catNombre, catTipo *string
	var catCreatedAt *time.Time
	if err := row.Scan(
		&in.ID, &in.NegocioID, &in.Monto, &in.Fecha, &in.Descripcion, &in.CategoriaID, &in.CreatedAt,
		&catID, &catNegocioID, &catNombre, &catTipo, &catCreatedAt,
	); err != nil {
		return nil, err
	}
	if catID != nil {
		in.Categoria = &entity.Categoria{
			ID:        *catID,
			NegocioID: *catNegocioID,
			Nombre:    *catNombre,
			Tipo:      *catTipo,
			CreatedAt: *catCreatedAt,
		}
	}
	return &in, nil
}
