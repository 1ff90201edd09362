package filter

import "github.com/jhoicas/productos-api/internal/domain/entity"

// Kind es el tipo semántico de un campo filtrable.
type Kind int

const (
	KindInt Kind = iota
	KindBool
	KindTime
	KindString
)

// Field es una entrada del registro de campos: el tipo del campo y un accesor
// tipado sobre el producto. Reemplaza la reflexión en tiempo de ejecución por
// una tabla conocida en compilación.
type Field struct {
	Kind Kind
	Get  func(p *entity.Product) Value
}

// productFields mapea el nombre de cada propiedad (tal como aparece en las
// respuestas JSON) a su campo. Solo los campos de Product son filtrables;
// los del proveedor no lo son en este diseño.
var productFields = map[string]Field{
	"id": {Kind: KindInt, Get: func(p *entity.Product) Value {
		return Value{Kind: KindInt, Int: int64(p.ID)}
	}},
	"description": {Kind: KindString, Get: func(p *entity.Product) Value {
		return Value{Kind: KindString, Str: p.Description}
	}},
	"active": {Kind: KindBool, Get: func(p *entity.Product) Value {
		return Value{Kind: KindBool, Bool: p.Active}
	}},
	"manufacturingDate": {Kind: KindTime, Get: func(p *entity.Product) Value {
		return Value{Kind: KindTime, Time: p.ManufacturingDate}
	}},
	"validityDate": {Kind: KindTime, Get: func(p *entity.Product) Value {
		return Value{Kind: KindTime, Time: p.ValidityDate}
	}},
	"providerId": {Kind: KindInt, Get: func(p *entity.Product) Value {
		return Value{Kind: KindInt, Int: int64(p.ProviderID)}
	}},
}

// FieldFor busca una propiedad filtrable por nombre. La comparación es exacta
// y sensible a mayúsculas para no filtrar por el campo equivocado.
func FieldFor(name string) (Field, bool) {
	f, ok := productFields[name]
	return f, ok
}
