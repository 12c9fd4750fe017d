package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

var _ repository.NegocioRepository = (*NegocioRepo)(nil)

// NegocioRepo implementación de NegocioRepository sobre PostgreSQL.
type NegocioRepo struct {
	q Querier
}

// NewNegocioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNegocioRepository(q Querier) *NegocioRepo {
	return &NegocioRepo{q: q}
}

// Create persiste un nuevo negocio.
func (r *NegocioRepo) Create(negocio *entity.Negocio) error {
	query := `
		INSERT INTO negocios (id, nombre, email, telefono, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		negocio.ID, negocio.Nombre, negocio.Email, negocio.Telefono, negocio.Direccion,
		negocio.CreatedAt, negocio.UpdatedAt,
	)
	if err != nil {
		if esViolacionUnica(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert negocio: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *NegocioRepo) GetByID(id string) (*entity.Negocio, error) {
	query := `
		SELECT id, nombre, email, telefono, direccion, created_at, updated_at
		FROM negocios WHERE id = $1`
	var n entity.Negocio
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.Nombre, &n.Email, &n.Telefono, &n.Direccion, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negocio: %w", err)
	}
	return &n, nil
}

// List lista negocios con paginación.
func (r *NegocioRepo) List(limit, offset int) ([]*entity.Negocio, error) {
	query := `
		SELECT id, nombre, email, telefono, direccion, created_at, updated_at
		FROM negocios ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list negocios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Negocio
	for rows.Next() {
		var n entity.Negocio
		if err := rows.Scan(&n.ID, &n.Nombre, &n.Email, &n.Telefono, &n.Direccion, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan negocio: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
