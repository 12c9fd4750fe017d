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

var _ repository.EgresoRepository = (*EgresoRepo)(nil)

// EgresoRepo implementación de EgresoRepository sobre PostgreSQL.
type EgresoRepo struct {
	q Querier
}

// NewEgresoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEgresoRepository(q Querier) *EgresoRepo {
	return &EgresoRepo{q: q}
}

// Create persiste un nuevo egreso.
func (r *EgresoRepo) Create(egreso *entity.Egreso) error {
	query := `
		INSERT INTO egresos (id, negocio_id, monto, fecha, descripcion, categoria_id, categoria_general, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		egreso.ID, egreso.NegocioID, egreso.Monto, egreso.Fecha,
		egreso.Descripcion, egreso.CategoriaID, egreso.CategoriaGeneral, egreso.CreatedAt,
	)
	if err != nil {
		if esViolacionUnica(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert egreso: %w", err)
	}
	return nil
}

// GetByID obtiene un egreso por ID con su categoría.
func (r *EgresoRepo) GetByID(id string) (*entity.Egreso, error) {
	query := `
		SELECT e.id, e.negocio_id, e.monto, e.fecha, e.descripcion, e.categoria_id, e.categoria_general, e.created_at,
		       c.id, c.negocio_id, c.nombre, c.tipo, c.created_at
		FROM egresos e
		LEFT JOIN categorias c ON c.id = e.categoria_id
		WHERE e.id = $1`
	eg, err := scanEgreso(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get egreso: %w", err)
	}
	return eg, nil
}

// Update actualiza un egreso.
func (r *EgresoRepo) Update(egreso *entity.Egreso) error {
	query := `
		UPDATE egresos
		SET monto = $2, fecha = $3, descripcion = $4, categoria_id = $5, categoria_general = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		egreso.ID, egreso.Monto, egreso.Fecha, egreso.Descripcion,
		egreso.CategoriaID, egreso.CategoriaGeneral,
	)
	if err != nil {
		return fmt.Errorf("update egreso: %w", err)
	}
	return nil
}

// Delete elimina un egreso por ID.
func (r *EgresoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM egresos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete egreso: %w", err)
	}
	return nil
}

// ListByNegocio lista los egresos del negocio dentro del rango inclusivo,
// ordenados por fecha ascendente. Un límite nil no acota por ese lado.
func (r *EgresoRepo) ListByNegocio(ctx context.Context, negocioID string, desde, hasta *time.Time) ([]*entity.Egreso, error) {
	query := `
		SELECT e.id, e.negocio_id, e.monto, e.fecha, e.descripcion, e.categoria_id, e.categoria_general, e.created_at,
		       c.id, c.negocio_id, c.nombre, c.tipo, c.created_at
		FROM egresos e
		LEFT JOIN categorias c ON c.id = e.categoria_id
		WHERE e.negocio_id = $1
		  AND ($2::timestamptz IS NULL OR e.fecha >= $2)
		  AND ($3::timestamptz IS NULL OR e.fecha <= $3)
		ORDER BY e.fecha ASC, e.created_at ASC`
	rows, err := r.q.Query(ctx, query, negocioID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list egresos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Egreso
	for rows.Next() {
		eg, err := scanEgreso(rows)
		if err != nil {
			return nil, fmt.Errorf("scan egreso: %w", err)
		}
		list = append(list, eg)
	}
	return list, rows.Err()
}

func scanEgreso(row pgx.Row) (*entity.Egreso, error) {
	var eg entity.Egreso
	var catID, catNegocioID, catNombre, catTipo *string
	var catCreatedAt *time.Time
	if err := row.Scan(
		&eg.ID, &eg.NegocioID, &eg.Monto, &eg.Fecha, &eg.Descripcion,
		&eg.CategoriaID, &eg.CategoriaGeneral, &eg.CreatedAt,
		&catID, &catNegocioID, &catNombre, &catTipo, &catCreatedAt,
	); err != nil {
		return nil, err
	}
	if catID != nil {
		eg.Categoria = &entity.Categoria{
			ID:        *catID,
			NegocioID: *catNegocioID,
			Nombre:    *catNombre,
			Tipo:      *catTipo,
			CreatedAt: *catCreatedAt,
		}
	}
	return &eg, nil
}
