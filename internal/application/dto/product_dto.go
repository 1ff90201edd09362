package dto

import "time"

// ProductRequest entrada para crear o actualizar un producto. Si ID es cero el
// almacén asigna uno nuevo; si coincide con un producto existente se actualiza
// en su lugar. Solo se persiste la referencia ProviderID, nunca datos del
// proveedor.
type ProductRequest struct {
	ID                int       `json:"id"`
	Description       string    `json:"description" validate:"required,max=300"`
	Active            bool      `json:"active"`
	ManufacturingDate time.Time `json:"manufacturingDate"`
	ValidityDate      time.Time `json:"validityDate"`
	ProviderID        int       `json:"providerId"`
}

// ProductView salida de un producto con los datos de su proveedor proyectados.
type ProductView struct {
	ID                  int       `json:"id"`
	Description         string    `json:"description"`
	Active              bool      `json:"active"`
	ManufacturingDate   time.Time `json:"manufacturingDate"`
	ValidityDate        time.Time `json:"validityDate"`
	ProviderID          int       `json:"providerId"`
	ProviderDescription string    `json:"providerDescription"`
	ProviderPhone       string    `json:"providerPhone"`
}

// ProviderView salida de un proveedor (solo lectura).
type ProviderView struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
}
