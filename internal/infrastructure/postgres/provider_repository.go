package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/productos-api/internal/domain/entity"
	"github.com/jhoicas/productos-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación de ProviderRepository sobre PostgreSQL (solo lectura).
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// GetByID obtiene un proveedor por id. Devuelve (nil, nil) si no existe.
func (r *ProviderRepo) GetByID(ctx context.Context, id int) (*entity.Provider, error) {
	query := `SELECT id, description, phone FROM providers WHERE id = $1`
	var p entity.Provider
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Description, &p.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &p, nil
}

// List devuelve todos los proveedores ordenados por id.
func (r *ProviderRepo) List(ctx context.Context) ([]*entity.Provider, error) {
	rows, err := r.q.Query(ctx, `SELECT id, description, phone FROM providers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.Description, &p.Phone); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
