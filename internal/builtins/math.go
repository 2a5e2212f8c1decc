package builtins

import (
	"math"
	"math/rand"

	"github.com/classad-go/classad/internal/value"
)

// registerMath wires `floor`, `ceiling`, `round`, `pow`, `quantize` and
// `random`.
func registerMath(r *Registry) {
	r.register("floor", roundingFn(math.Floor))
	r.register("ceiling", roundingFn(math.Ceil))
	r.register("round", roundingFn(math.Round))
	r.register("pow", builtinPow)
	r.register("quantize", builtinQuantize)
	r.register("random", builtinRandom)
}

// roundingFn implements floor/ceiling/round: an Int argument is already
// integral and is returned unchanged; a Real argument is rounded and
// truncated to Int (the three rounding built-ins always return an
// integer).
func roundingFn(op func(float64) float64) Func {
	return func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.Error{}
		}
		if v, ok := strictArgs(args[0]); ok {
			return v
		}
		switch x := args[0].(type) {
		case value.Int:
			return x
		case value.Real:
			return value.Int{V: int64(op(x.V))}
		default:
			return value.Error{}
		}
	}
}

func builtinPow(args []value.Value) value.Value {
	if len(args) != 2 {
		return value.Error{}
	}
	if v, ok := strictArgs(args[0], args[1]); ok {
		return v
	}
	if !value.IsNumeric(args[0]) || !value.IsNumeric(args[1]) {
		return value.Error{}
	}
	return value.Real{V: math.Pow(value.AsFloat(args[0]), value.AsFloat(args[1]))}
}

// builtinQuantize implements the two-shape `quantize`: a numeric
// second argument rounds a up to the nearest multiple of b, carrying b's
// numeric type; a List second argument returns its first element >= a,
// or else an integral multiple of its last element that is >= a.
func builtinQuantize(args []value.Value) value.Value {
	if len(args) != 2 {
		return value.Error{}
	}
	a, b := args[0], args[1]
	if v, ok := strictArgs(a, b); ok {
		return v
	}
	if !value.IsNumeric(a) {
		return value.Error{}
	}
	switch bv := b.(type) {
	case value.Int, value.Real:
		return quantizeToStep(value.AsFloat(a), bv)
	case value.List:
		return quantizeToList(value.AsFloat(a), bv.Elements)
	default:
		return value.Error{}
	}
}

func quantizeToStep(a float64, step value.Value) value.Value {
	s := value.AsFloat(step)
	if s == 0 {
		return value.Error{}
	}
	n := math.Ceil(a / s)
	result := n * s
	if _, isInt := step.(value.Int); isInt {
		return value.Int{V: int64(result)}
	}
	return value.Real{V: result}
}

func quantizeToList(a float64, elems []value.Value) value.Value {
	if len(elems) == 0 {
		return value.Error{}
	}
	for _, e := range elems {
		if v, ok := strictArgs(e); ok {
			return v
		}
		if !value.IsNumeric(e) {
			return value.Error{}
		}
		if value.AsFloat(e) >= a {
			return e
		}
	}
	return quantizeToStep(a, elems[len(elems)-1])
}

// builtinRandom implements `random()` (Real in [0,1)) and `random(n)`
// (numeric in [0,n), carrying n's type), grounded on the library's plain
// math/rand usage elsewhere in matchmaking-rank style code — this is not
// a security-sensitive draw.
func builtinRandom(args []value.Value) value.Value {
	switch len(args) {
	case 0:
		return value.Real{V: rand.Float64()}
	case 1:
		if v, ok := strictArgs(args[0]); ok {
			return v
		}
		switch n := args[0].(type) {
		case value.Int:
			if n.V <= 0 {
				return value.Error{}
			}
			return value.Int{V: rand.Int63n(n.V)}
		case value.Real:
			if n.V <= 0 {
				return value.Error{}
			}
			return value.Real{V: rand.Float64() * n.V}
		default:
			return value.Error{}
		}
	default:
		return value.Error{}
	}
}
