package usecase

import (
	"context"

	"github.com/jhoicas/productos-api/internal/application/dto"
	"github.com/jhoicas/productos-api/internal/domain/entity"
	"github.com/jhoicas/productos-api/internal/domain/repository"
)

// ProviderUseCase consulta de proveedores (solo lectura: los proveedores son
// datos de referencia y esta API nunca los crea ni los modifica).
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// List devuelve todos los proveedores.
func (uc *ProviderUseCase) List(ctx context.Context) ([]dto.ProviderView, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]dto.ProviderView, 0, len(list))
	for _, p := range list {
		views = append(views, toProviderView(p))
	}
	return views, nil
}

// GetByID obtiene un proveedor por id. Devuelve (nil, nil) si no existe.
func (uc *ProviderUseCase) GetByID(ctx context.Context, id int) (*dto.ProviderView, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	view := toProviderView(p)
	return &view, nil
}

func toProviderView(p *entity.Provider) dto.ProviderView {
	return dto.ProviderView{ID: p.ID, Description: p.Description, Phone: p.Phone}
}
