package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/productos-api/internal/application/dto"
	"github.com/jhoicas/productos-api/internal/domain"
	"github.com/jhoicas/productos-api/internal/domain/entity"
	"github.com/jhoicas/productos-api/internal/domain/filter"
	"github.com/jhoicas/productos-api/internal/domain/repository"
)

// ProductUseCase casos de uso sobre productos: listado paginado con filtros
// dinámicos, consulta por id, alta/actualización y borrado lógico.
type ProductUseCase struct {
	products  repository.ProductRepository
	providers repository.ProviderRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, providers repository.ProviderRepository) *ProductUseCase {
	return &ProductUseCase{products: products, providers: providers}
}

// GetAll compila los filtros de la petición en un predicado, lo aplica sobre la
// colección con paginación y proyecta cada producto junto con su proveedor.
// Los filtros inválidos se descartan y se registran; nunca tumban la petición.
func (uc *ProductUseCase) GetAll(ctx context.Context, in dto.PaginationRequest) ([]dto.ProductView, error) {
	descriptors := make([]filter.Descriptor, 0, len(in.Filters))
	for _, f := range in.Filters {
		descriptors = append(descriptors, filter.Descriptor{
			Property: f.Property,
			Value:    f.Value,
			Operator: filter.Operator(f.FilterType),
		})
	}
	compiled := filter.Compile(descriptors)
	for _, r := range compiled.Rejected {
		log.Warn().
			Str("property", r.Descriptor.Property).
			Str("filterType", string(r.Descriptor.Operator)).
			Str("reason", string(r.Reason)).
			Msg("filtro descartado")
	}

	all, err := uc.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	page, err := filter.Paginate(all, compiled.Predicate, in.CurrentPage, in.ItemsPerPage)
	if err != nil {
		return nil, err
	}

	// Cache de proveedores por petición: varios productos suelen compartir proveedor.
	providers := make(map[int]*entity.Provider)
	views := make([]dto.ProductView, 0, len(page))
	for _, p := range page {
		prov, ok := providers[p.ProviderID]
		if !ok {
			prov, err = uc.providers.GetByID(ctx, p.ProviderID)
			if err != nil {
				return nil, err
			}
			providers[p.ProviderID] = prov
		}
		views = append(views, toProductView(p, prov))
	}
	return views, nil
}

// GetByID obtiene un producto por id unido con su proveedor.
// Devuelve (nil, nil) si no existe; el que llama decide cómo tratarlo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int) (*dto.ProductView, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	prov, err := uc.providers.GetByID(ctx, p.ProviderID)
	if err != nil {
		return nil, err
	}
	view := toProductView(p, prov)
	return &view, nil
}

// AddOrUpdate crea el producto si su id no existe (el almacén asigna uno si
// viene en cero) o lo actualiza en su lugar. Solo se persisten los campos
// escalares y la referencia al proveedor; ningún dato del proveedor se escribe
// por esta vía. Falla con domain.ErrInvalidDates, sin tocar el almacén, si la
// fecha de fabricación no es anterior a la de vencimiento.
func (uc *ProductUseCase) AddOrUpdate(ctx context.Context, in dto.ProductRequest) (*dto.ProductView, error) {
	if !in.ManufacturingDate.Before(in.ValidityDate) {
		return nil, domain.ErrInvalidDates
	}
	saved, err := uc.products.Upsert(ctx, &entity.Product{
		ID:                in.ID,
		Description:       in.Description,
		Active:            in.Active,
		ManufacturingDate: in.ManufacturingDate,
		ValidityDate:      in.ValidityDate,
		ProviderID:        in.ProviderID,
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, saved.ID)
}

// SoftDelete marca el producto como inactivo escribiendo únicamente el campo
// Active; el registro nunca se elimina físicamente. Con un id inexistente no
// muta nada y devuelve (nil, nil) tras la consulta de poscondición.
func (uc *ProductUseCase) SoftDelete(ctx context.Context, id int) (*dto.ProductView, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p != nil {
		if err := uc.products.SetActive(ctx, id, false); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(ctx, id)
}

func toProductView(p *entity.Product, prov *entity.Provider) dto.ProductView {
	view := dto.ProductView{
		ID:                p.ID,
		Description:       p.Description,
		Active:            p.Active,
		ManufacturingDate: p.ManufacturingDate,
		ValidityDate:      p.ValidityDate,
		ProviderID:        p.ProviderID,
	}
	if prov != nil {
		view.ProviderDescription = prov.Description
		view.ProviderPhone = prov.Phone
	}
	return view
}
