package entity

import "time"

// Product representa un producto del inventario. El borrado es lógico:
// Active pasa a false y el registro nunca se elimina físicamente.
type Product struct {
	ID                int
	Description       string // obligatoria, máx. 300 caracteres
	Active            bool
	ManufacturingDate time.Time
	ValidityDate      time.Time // fecha de vencimiento; siempre posterior a ManufacturingDate
	ProviderID        int
}
