package repository

import (
	"context"

	"github.com/jhoicas/productos-api/internal/domain/entity"
)

// ProviderRepository define el puerto de lectura para Provider.
// Los proveedores son datos de referencia: esta API nunca los escribe.
type ProviderRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Provider, error)
	List(ctx context.Context) ([]*entity.Provider, error)
}
