package builtins

import (
	"math"
	"strconv"
	"strings"

	"github.com/classad-go/classad/internal/value"
)

// registerCoercions wires `int`, `real`, `string`: numeric and string
// coercion, round-toward-zero for int(real), Undefined/Error arguments
// and unparseable strings always yield Error.
func registerCoercions(r *Registry) {
	r.register("int", coerceInt)
	r.register("real", coerceReal)
	r.register("string", coerceString)
}

func coerceInt(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.Error{}
	}
	switch x := args[0].(type) {
	case value.Int:
		return x
	case value.Real:
		return value.Int{V: int64(math.Trunc(x.V))}
	case value.Str:
		if n, err := strconv.ParseInt(strings.TrimSpace(x.V), 0, 64); err == nil {
			return value.Int{V: n}
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(x.V), 64); err == nil {
			return value.Int{V: int64(math.Trunc(f))}
		}
		return value.Error{}
	default:
		return value.Error{}
	}
}

func coerceReal(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.Error{}
	}
	switch x := args[0].(type) {
	case value.Int:
		return value.Real{V: float64(x.V)}
	case value.Real:
		return x
	case value.Str:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x.V), 64); err == nil {
			return value.Real{V: f}
		}
		return value.Error{}
	default:
		return value.Error{}
	}
}

func coerceString(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.Error{}
	}
	switch args[0].(type) {
	case value.Undefined, value.Error:
		return value.Error{}
	default:
		return value.Str{V: args[0].String()}
	}
}
