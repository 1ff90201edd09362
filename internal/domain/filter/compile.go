package filter

import (
	"strings"

	"github.com/jhoicas/productos-api/internal/domain/entity"
)

// Predicate decide si un producto entra en el resultado filtrado. Es una
// función pura: se puede evaluar cuantas veces haga falta y en cualquier orden.
type Predicate func(p *entity.Product) bool

// Result es el resultado particionado de la compilación: el predicado conjunto
// más las listas de filtros aceptados y descartados. Los descartados no afectan
// al predicado; el que llama decide si los registra o los reporta.
type Result struct {
	Predicate Predicate
	Accepted  []Descriptor
	Rejected  []Rejection
}

// True es el predicado identidad: acepta todo producto. Es el resultado de
// compilar una lista sin filtros válidos.
func True() Predicate {
	return func(*entity.Product) bool { return true }
}

// And compone dos predicados en conjunción con cortocircuito.
func And(a, b Predicate) Predicate {
	return func(p *entity.Product) bool { return a(p) && b(p) }
}

// Compile valida cada filtro contra el registro de campos, convierte su valor
// al tipo del campo y construye el predicado conjunto de izquierda a derecha.
// Un filtro con propiedad desconocida, operador desconocido o valor no
// convertible se descarta y queda en Rejected; el resto de la petición sigue
// adelante. Compile no muta la lista de entrada.
func Compile(filters []Descriptor) Result {
	res := Result{Predicate: True()}
	for _, f := range filters {
		field, ok := FieldFor(f.Property)
		if !ok {
			res.Rejected = append(res.Rejected, Rejection{Descriptor: f, Reason: RejectUnknownProperty})
			continue
		}
		if !f.Operator.known() {
			res.Rejected = append(res.Rejected, Rejection{Descriptor: f, Reason: RejectUnknownOperator})
			continue
		}
		want, err := Coerce(f.Value, field.Kind)
		if err != nil {
			res.Rejected = append(res.Rejected, Rejection{Descriptor: f, Reason: RejectInvalidValue})
			continue
		}
		res.Predicate = And(res.Predicate, fieldPredicate(field, f.Operator, want))
		res.Accepted = append(res.Accepted, f)
	}
	return res
}

// fieldPredicate construye la prueba de un solo campo contra el valor ya
// convertido. Contains opera sobre la representación textual de ambos lados,
// también en campos no textuales; el resto de operadores usa igualdad y orden
// del tipo correcto (ver Value.Equal y Value.Compare).
func fieldPredicate(field Field, op Operator, want Value) Predicate {
	switch op {
	case Contains:
		return func(p *entity.Product) bool {
			return strings.Contains(field.Get(p).String(), want.String())
		}
	case NotContains:
		return func(p *entity.Product) bool {
			return !strings.Contains(field.Get(p).String(), want.String())
		}
	case Equals:
		return func(p *entity.Product) bool {
			return field.Get(p).Equal(want)
		}
	case GreaterThan:
		return func(p *entity.Product) bool {
			return field.Get(p).Compare(want) > 0
		}
	case GreaterThanOrEqual:
		return func(p *entity.Product) bool {
			return field.Get(p).Compare(want) >= 0
		}
	case LessThan:
		return func(p *entity.Product) bool {
			return field.Get(p).Compare(want) < 0
		}
	default: // LessThanOrEqual; known() ya validó el operador
		return func(p *entity.Product) bool {
			return field.Get(p).Compare(want) <= 0
		}
	}
}
