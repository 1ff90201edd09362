package filter

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Value es la unión etiquetada que produce la coerción: un valor ya convertido
// al tipo real del campo. Solo el campo correspondiente a Kind es significativo.
type Value struct {
	Kind Kind
	Int  int64
	Bool bool
	Time time.Time
	Str  string
}

// timeLayouts formatos aceptados para valores de fecha, en orden de prueba.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Coerce convierte un valor sin tipar (normalmente decodificado de JSON) al
// tipo del campo destino. Para Int, Bool y Time falla si la representación
// textual no es válida; para String nunca falla.
func Coerce(raw any, kind Kind) (Value, error) {
	text := textOf(raw)
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%q no es un entero válido", text)
		}
		return Value{Kind: KindInt, Int: n}, nil
	case KindBool:
		switch {
		case strings.EqualFold(text, "true"):
			return Value{Kind: KindBool, Bool: true}, nil
		case strings.EqualFold(text, "false"):
			return Value{Kind: KindBool, Bool: false}, nil
		}
		return Value{}, fmt.Errorf("%q no es un booleano válido", text)
	case KindTime:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return Value{Kind: KindTime, Time: t}, nil
			}
		}
		return Value{}, fmt.Errorf("%q no es una fecha válida", text)
	default:
		return Value{Kind: KindString, Str: text}, nil
	}
}

// textOf obtiene la representación textual del valor crudo. Los números JSON
// llegan como float64; si son enteros se formatean sin parte decimal.
func textOf(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// String devuelve la representación textual del valor, usada por Contains
// sobre campos no textuales.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindTime:
		return v.Time.Format(time.RFC3339)
	default:
		return v.Str
	}
}

// Equal compara dos valores del mismo Kind con igualdad del tipo correcto
// (numérica para Int, instante para Time), nunca por texto.
func (v Value) Equal(o Value) bool {
	switch v.Kind {
	case KindInt:
		return v.Int == o.Int
	case KindBool:
		return v.Bool == o.Bool
	case KindTime:
		return v.Time.Equal(o.Time)
	default:
		return v.Str == o.Str
	}
}

// Compare ordena dos valores del mismo Kind: -1, 0 o 1. El orden es numérico
// para Int y cronológico para Time. Para Bool se define false < true y para
// String el orden lexicográfico por bytes.
func (v Value) Compare(o Value) int {
	switch v.Kind {
	case KindInt:
		return cmp.Compare(v.Int, o.Int)
	case KindBool:
		return cmp.Compare(boolToInt(v.Bool), boolToInt(o.Bool))
	case KindTime:
		return v.Time.Compare(o.Time)
	default:
		return strings.Compare(v.Str, o.Str)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
