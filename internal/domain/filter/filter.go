// Package filter implementa el compilador de filtros dinámicos para el listado
// de productos: valida cada filtro contra la tabla de campos del producto,
// convierte su valor al tipo real del campo y compone un único predicado
// conjuntivo aplicable en memoria sobre la colección.
package filter

// Operator identifica el tipo de comparación de un filtro, con el mismo nombre
// que viaja en el campo filterType de la petición.
type Operator string

const (
	Contains           Operator = "Contains"
	NotContains        Operator = "NotContains"
	Equals             Operator = "Equals"
	GreaterThan        Operator = "GreaterThan"
	GreaterThanOrEqual Operator = "GreaterThanOrEqual"
	LessThan           Operator = "LessThan"
	LessThanOrEqual    Operator = "LessThanOrEqual"
)

// known devuelve true si el operador es uno de los siete soportados.
func (o Operator) known() bool {
	switch o {
	case Contains, NotContains, Equals, GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual:
		return true
	}
	return false
}

// Descriptor es un filtro crudo tal como llega en la petición: nombre de
// propiedad, valor sin tipar y operador. Vive solo durante la petición.
type Descriptor struct {
	Property string
	Value    any
	Operator Operator
}

// RejectReason indica por qué un filtro fue descartado durante la compilación.
type RejectReason string

const (
	// RejectUnknownProperty la propiedad no existe en el registro de campos.
	RejectUnknownProperty RejectReason = "UNKNOWN_PROPERTY"
	// RejectUnknownOperator el filterType no es ninguno de los siete operadores.
	RejectUnknownOperator RejectReason = "UNKNOWN_OPERATOR"
	// RejectInvalidValue el valor no se pudo convertir al tipo del campo.
	RejectInvalidValue RejectReason = "INVALID_VALUE"
)

// Rejection es un filtro descartado junto con el motivo.
type Rejection struct {
	Descriptor Descriptor
	Reason     RejectReason
}
