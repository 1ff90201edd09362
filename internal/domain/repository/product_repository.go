package repository

import (
	"context"

	"github.com/jhoicas/productos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando el registro no existe.
type ProductRepository interface {
	// GetByID obtiene un producto por su identificador.
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	// ListAll devuelve todos los productos en el orden natural del almacén (por id).
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// Upsert inserta el producto si el id no existe (el almacén asigna uno si viene en cero)
	// o actualiza todos sus campos escalares si ya existe. Devuelve el registro persistido.
	Upsert(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// SetActive escribe únicamente el campo Active del producto indicado.
	SetActive(ctx context.Context, id int, active bool) error
}
