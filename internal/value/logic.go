package value

// And and Or implement the logical operators over the extended truth
// tables: false absorbs under &&, true absorbs under ||, Error beats
// Undefined, and a non-Bool operand is Error. The evaluator is
// responsible for short-circuiting: it must not evaluate the right
// operand when ShortCircuitAnd/ShortCircuitOr already determines the
// result from the left operand alone.

// ShortCircuitAnd reports whether lhs alone determines the result of
// `lhs && rhs` (lhs is false, or lhs is Error), returning that result.
func ShortCircuitAnd(lhs Value) (Value, bool) {
	if b, ok := lhs.(Bool); ok && !b.V {
		return Bool{V: false}, true
	}
	if isError(lhs) {
		return Error{}, true
	}
	return nil, false
}

// And combines an already-evaluated pair per the `&&` truth table, for
// the case where ShortCircuitAnd(lhs) did not short-circuit (lhs is
// Bool(true) or Undefined).
func And(lhs, rhs Value) Value {
	switch lhs.(type) {
	case Bool, Undefined:
	default:
		return Error{}
	}
	switch r := rhs.(type) {
	case Bool:
		if !r.V {
			return Bool{V: false}
		}
		if _, ok := lhs.(Bool); ok {
			return Bool{V: true}
		}
		return Undefined{}
	case Undefined:
		return Undefined{}
	case Error:
		return Error{}
	default:
		return Error{}
	}
}

// ShortCircuitOr reports whether lhs alone determines the result of
// `lhs || rhs` (lhs is true, or lhs is Error).
func ShortCircuitOr(lhs Value) (Value, bool) {
	if b, ok := lhs.(Bool); ok && b.V {
		return Bool{V: true}, true
	}
	if isError(lhs) {
		return Error{}, true
	}
	return nil, false
}

// Or combines an already-evaluated pair per the `||` truth table, for the
// case where ShortCircuitOr(lhs) did not short-circuit (lhs is
// Bool(false) or Undefined).
func Or(lhs, rhs Value) Value {
	switch lhs.(type) {
	case Bool, Undefined:
	default:
		return Error{}
	}
	switch r := rhs.(type) {
	case Bool:
		if r.V {
			return Bool{V: true}
		}
		if _, ok := lhs.(Bool); ok {
			return Bool{V: false}
		}
		return Undefined{}
	case Undefined:
		return Undefined{}
	case Error:
		return Error{}
	default:
		return Error{}
	}
}
