package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/productos-api/internal/domain"
	"github.com/jhoicas/productos-api/internal/domain/entity"
	"github.com/jhoicas/productos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por id. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	query := `
		SELECT id, description, active, manufacturing_date, validity_date, provider_id
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Description, &p.Active, &p.ManufacturingDate, &p.ValidityDate, &p.ProviderID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListAll devuelve todos los productos en el orden natural del almacén (por id).
// El filtrado por predicado y la paginación se aplican en memoria aguas arriba.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, description, active, manufacturing_date, validity_date, provider_id
		FROM products ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Description, &p.Active, &p.ManufacturingDate, &p.ValidityDate, &p.ProviderID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza el producto. Con ID en cero la secuencia de la
// tabla asigna el identificador; con ID existente se actualizan todos los
// campos escalares (incluida la referencia provider_id, nunca datos del
// proveedor). Devuelve el registro persistido con su id definitivo.
func (r *ProductRepo) Upsert(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	saved := *product
	var err error
	if product.ID == 0 {
		query := `
			INSERT INTO products (description, active, manufacturing_date, validity_date, provider_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`
		err = r.q.QueryRow(ctx, query,
			product.Description, product.Active, product.ManufacturingDate, product.ValidityDate, product.ProviderID,
		).Scan(&saved.ID)
	} else {
		query := `
			INSERT INTO products (id, description, active, manufacturing_date, validity_date, provider_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				description = EXCLUDED.description,
				active = EXCLUDED.active,
				manufacturing_date = EXCLUDED.manufacturing_date,
				validity_date = EXCLUDED.validity_date,
				provider_id = EXCLUDED.provider_id`
		_, err = r.q.Exec(ctx, query,
			product.ID, product.Description, product.Active, product.ManufacturingDate, product.ValidityDate, product.ProviderID,
		)
	}
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrInvalidProvider
		}
		return nil, fmt.Errorf("upsert product: %w", err)
	}
	return &saved, nil
}

// SetActive escribe únicamente el campo active del producto (borrado lógico).
func (r *ProductRepo) SetActive(ctx context.Context, id int, active bool) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	return nil
}
