package builtins

import "github.com/classad-go/classad/internal/value"

// registerPredicates wires the type-predicate family: each inspects its
// single argument's variant and returns Bool. Unlike the other built-ins
// the predicates are not strict in their argument — they exist to answer
// "is this Undefined/Error" and must not fail on it. Arity mismatch is
// still Error.
func registerPredicates(r *Registry) {
	r.register("isUndefined", kindPredicate(func(v value.Value) bool { _, ok := v.(value.Undefined); return ok }))
	r.register("isError", kindPredicate(func(v value.Value) bool { _, ok := v.(value.Error); return ok }))
	r.register("isString", kindPredicate(func(v value.Value) bool { _, ok := v.(value.Str); return ok }))
	r.register("isInteger", kindPredicate(func(v value.Value) bool { _, ok := v.(value.Int); return ok }))
	r.register("isReal", kindPredicate(func(v value.Value) bool { _, ok := v.(value.Real); return ok }))
	r.register("isBoolean", kindPredicate(func(v value.Value) bool { _, ok := v.(value.Bool); return ok }))
	r.register("isList", kindPredicate(func(v value.Value) bool { _, ok := v.(value.List); return ok }))
}

func kindPredicate(check func(value.Value) bool) Func {
	return func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.Error{}
		}
		return value.Bool{V: check(args[0])}
	}
}
