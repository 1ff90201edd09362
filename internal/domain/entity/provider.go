package entity

// Provider representa un proveedor referenciado por los productos.
// Desde esta API es solo lectura: nunca se crea ni se modifica aquí.
type Provider struct {
	ID          int
	Description string // máx. 300 caracteres
	Phone       string // máx. 20 caracteres
}
