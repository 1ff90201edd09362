package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/productos-api/internal/application/dto"
	"github.com/jhoicas/productos-api/internal/application/usecase"
	"github.com/jhoicas/productos-api/internal/domain"
	"github.com/jhoicas/productos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products      []*entity.Product
	nextID        int
	upserts       int
	partialWrites int
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	return append([]*entity.Product(nil), f.products...), nil
}

func (f *fakeProductRepo) Upsert(_ context.Context, p *entity.Product) (*entity.Product, error) {
	f.upserts++
	c := *p
	if c.ID == 0 {
		f.nextID++
		c.ID = f.nextID
		f.products = append(f.products, &c)
		return &c, nil
	}
	for i, existing := range f.products {
		if existing.ID == c.ID {
			f.products[i] = &c
			return &c, nil
		}
	}
	if c.ID > f.nextID {
		f.nextID = c.ID
	}
	f.products = append(f.products, &c)
	return &c, nil
}

func (f *fakeProductRepo) SetActive(_ context.Context, id int, active bool) error {
	f.partialWrites++
	for _, p := range f.products {
		if p.ID == id {
			p.Active = active
		}
	}
	return nil
}

type fakeProviderRepo struct {
	providers []*entity.Provider
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id int) (*entity.Provider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) List(_ context.Context) ([]*entity.Provider, error) {
	return append([]*entity.Provider(nil), f.providers...), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Montaje
// ──────────────────────────────────────────────────────────────────────────────

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func montar() (*usecase.ProductUseCase, *fakeProductRepo, *fakeProviderRepo) {
	productos := &fakeProductRepo{
		products: []*entity.Product{
			{ID: 1, Description: "Leche entera", Active: true, ManufacturingDate: fecha(2024, 1, 1), ValidityDate: fecha(2024, 6, 1), ProviderID: 10},
			{ID: 2, Description: "Queso campesino", Active: true, ManufacturingDate: fecha(2024, 2, 1), ValidityDate: fecha(2024, 5, 1), ProviderID: 20},
			{ID: 3, Description: "Yogur de fresa", Active: false, ManufacturingDate: fecha(2024, 3, 1), ValidityDate: fecha(2024, 9, 1), ProviderID: 10},
		},
		nextID: 3,
	}
	proveedores := &fakeProviderRepo{
		providers: []*entity.Provider{
			{ID: 10, Description: "Lácteos del Valle", Phone: "3001234567"},
			{ID: 20, Description: "Quesos La Florida", Phone: "3107654321"},
		},
	}
	return usecase.NewProductUseCase(productos, proveedores), productos, proveedores
}

// ──────────────────────────────────────────────────────────────────────────────
// GetAll
// ──────────────────────────────────────────────────────────────────────────────

// Caso: el listado une cada producto con su proveedor y proyecta descripción y
// teléfono en la vista.
func TestGetAll_UneConProveedor(t *testing.T) {
	uc, _, _ := montar()

	out, err := uc.GetAll(context.Background(), dto.PaginationRequest{ItemsPerPage: 10, CurrentPage: 1})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "Lácteos del Valle", out[0].ProviderDescription)
	assert.Equal(t, "3001234567", out[0].ProviderPhone)
	assert.Equal(t, "Quesos La Florida", out[1].ProviderDescription)
}

// Caso: los filtros válidos restringen el listado; los inválidos se descartan
// sin tumbar la petición.
func TestGetAll_FiltrosValidosEInvalidos(t *testing.T) {
	uc, _, _ := montar()

	out, err := uc.GetAll(context.Background(), dto.PaginationRequest{
		ItemsPerPage: 10,
		CurrentPage:  1,
		Filters: []dto.FilterByProperty{
			{Property: "active", Value: "true", FilterType: "Equals"},
			{Property: "noExiste", Value: "x", FilterType: "Equals"},
			{Property: "id", Value: "no-numerico", FilterType: "Equals"},
		},
	})
	require.NoError(t, err, "los filtros inválidos no deben producir error")
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 2, out[1].ID)
}

// Caso: paginación inválida es un error del que llama, no un ajuste silencioso.
func TestGetAll_PaginacionInvalida(t *testing.T) {
	uc, _, _ := montar()

	_, err := uc.GetAll(context.Background(), dto.PaginationRequest{ItemsPerPage: 0, CurrentPage: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidPage)

	_, err = uc.GetAll(context.Background(), dto.PaginationRequest{ItemsPerPage: 5, CurrentPage: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPage)
}

// Caso: una página fuera de rango devuelve lista vacía, no error.
func TestGetAll_PaginaFueraDeRango(t *testing.T) {
	uc, _, _ := montar()

	out, err := uc.GetAll(context.Background(), dto.PaginationRequest{ItemsPerPage: 10, CurrentPage: 4})
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

// Caso: un id inexistente devuelve (nil, nil), no un error.
func TestGetByID_Inexistente(t *testing.T) {
	uc, _, _ := montar()

	out, err := uc.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddOrUpdate
// ──────────────────────────────────────────────────────────────────────────────

// Caso: fabricación posterior (o igual) al vencimiento se rechaza con
// ErrInvalidDates y el almacén no se toca.
func TestAddOrUpdate_FechasInvalidas_SinMutacion(t *testing.T) {
	uc, productos, _ := montar()

	_, err := uc.AddOrUpdate(context.Background(), dto.ProductRequest{
		Description:       "Producto vencido antes de fabricarse",
		Active:            true,
		ManufacturingDate: fecha(2024, 1, 10),
		ValidityDate:      fecha(2024, 1, 1),
		ProviderID:        10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDates)
	assert.Zero(t, productos.upserts, "no debe haber escritura en el almacén")
	assert.Len(t, productos.products, 3)
}

// Caso: con id en cero el almacén asigna el identificador y la respuesta vuelve
// unida con el proveedor.
func TestAddOrUpdate_CreaYAsignaId(t *testing.T) {
	uc, _, _ := montar()

	out, err := uc.AddOrUpdate(context.Background(), dto.ProductRequest{
		Description:       "Mantequilla",
		Active:            true,
		ManufacturingDate: fecha(2024, 4, 1),
		ValidityDate:      fecha(2024, 10, 1),
		ProviderID:        20,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 4, out.ID, "el almacén debe asignar el siguiente id")
	assert.Equal(t, "Quesos La Florida", out.ProviderDescription)
}

// Caso: con un id existente se actualiza en su lugar; solo cambia lo enviado y
// la referencia al proveedor, nunca los datos del proveedor.
func TestAddOrUpdate_ActualizaEnSuLugar(t *testing.T) {
	uc, productos, proveedores := montar()

	out, err := uc.AddOrUpdate(context.Background(), dto.ProductRequest{
		ID:                2,
		Description:       "Queso doble crema",
		Active:            true,
		ManufacturingDate: fecha(2024, 2, 15),
		ValidityDate:      fecha(2024, 8, 15),
		ProviderID:        10,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 2, out.ID)
	assert.Equal(t, "Queso doble crema", out.Description)
	assert.Equal(t, 10, out.ProviderID)
	assert.Len(t, productos.products, 3, "actualizar no debe crear registros")

	// Los proveedores quedan intactos.
	prov, err := proveedores.GetByID(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, "Quesos La Florida", prov.Description)
}

// ──────────────────────────────────────────────────────────────────────────────
// SoftDelete
// ──────────────────────────────────────────────────────────────────────────────

// Caso: el borrado lógico solo escribe el campo active; el resto del registro
// queda intacto y una consulta posterior lo confirma.
func TestSoftDelete_SoloCambiaActive(t *testing.T) {
	uc, productos, _ := montar()

	out, err := uc.SoftDelete(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, out.Active)
	assert.Equal(t, "Leche entera", out.Description)
	assert.Equal(t, fecha(2024, 1, 1), out.ManufacturingDate)
	assert.Equal(t, 10, out.ProviderID)
	assert.Equal(t, 1, productos.partialWrites, "debe haber una sola escritura parcial")
	assert.Zero(t, productos.upserts, "el borrado lógico no reescribe el registro completo")

	otraVez, err := uc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, otraVez.Active, "la consulta posterior debe ver active=false")
}

// Caso: borrar un id inexistente no muta nada y devuelve "no encontrado".
func TestSoftDelete_Inexistente_SinMutacion(t *testing.T) {
	uc, productos, _ := montar()

	out, err := uc.SoftDelete(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Zero(t, productos.partialWrites, "no debe haber escrituras")
}
