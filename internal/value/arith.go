package value

// propagateSpecial implements the shared propagation rule used by the
// arithmetic, ordered-comparison, equality and list-index operators: Error
// beats Undefined, and either beats an ordinary result. The logical
// operators (logic.go) and meta-equality apply their own tables instead.
func propagateSpecial(a, b Value) (Value, bool) {
	if isError(a) || isError(b) {
		return Error{}, true
	}
	if isUndefined(a) || isUndefined(b) {
		return Undefined{}, true
	}
	return nil, false
}

func isError(v Value) bool {
	_, ok := v.(Error)
	return ok
}

func isUndefined(v Value) bool {
	_, ok := v.(Undefined)
	return ok
}

// Add, Sub, Mul and Div implement the arithmetic operators.
func Add(a, b Value) Value { return arith(a, b, func(x, y float64) float64 { return x + y }, func(x, y int64) int64 { return x + y }) }
func Sub(a, b Value) Value { return arith(a, b, func(x, y float64) float64 { return x - y }, func(x, y int64) int64 { return x - y }) }
func Mul(a, b Value) Value { return arith(a, b, func(x, y float64) float64 { return x * y }, func(x, y int64) int64 { return x * y }) }

func Div(a, b Value) Value {
	if v, ok := propagateSpecial(a, b); ok {
		return v
	}
	if !IsNumeric(a) || !IsNumeric(b) {
		return Error{}
	}
	ai, aInt := a.(Int)
	bi, bInt := b.(Int)
	if aInt && bInt {
		if bi.V == 0 {
			return Error{}
		}
		return Int{V: ai.V / bi.V}
	}
	bf := AsFloat(b)
	if bf == 0 {
		return Error{}
	}
	return Real{V: AsFloat(a) / bf}
}

// arith implements the shared numeric promotion used by +, - and *:
// Int with Int stays Int, anything with a Real promotes to Real.
func arith(a, b Value, realOp func(x, y float64) float64, intOp func(x, y int64) int64) Value {
	if v, ok := propagateSpecial(a, b); ok {
		return v
	}
	if !IsNumeric(a) || !IsNumeric(b) {
		return Error{}
	}
	ai, aIsInt := a.(Int)
	bi, bIsInt := b.(Int)
	if aIsInt && bIsInt {
		return Int{V: intOp(ai.V, bi.V)}
	}
	return Real{V: realOp(AsFloat(a), AsFloat(b))}
}

// Neg implements unary `-`.
func Neg(v Value) Value {
	switch x := v.(type) {
	case Int:
		return Int{V: -x.V}
	case Real:
		return Real{V: -x.V}
	case Undefined:
		return Undefined{}
	case Error:
		return Error{}
	default:
		return Error{}
	}
}

// Not implements unary `!`.
func Not(v Value) Value {
	switch x := v.(type) {
	case Bool:
		return Bool{V: !x.V}
	case Undefined:
		return Undefined{}
	case Error:
		return Error{}
	default:
		return Error{}
	}
}
