// Package builtins implements the fixed-name built-in function table.
// Every function here is a pure Value slice -> Value mapping; the three
// functions whose semantics require access to the unevaluated AST or
// lazy argument evaluation (eval, unparse, ifThenElse) are special-cased
// by internal/eval instead of living here, since this package
// deliberately has no dependency on the parser or the evaluator.
package builtins

import "github.com/classad-go/classad/internal/value"

// Func is one built-in's implementation over already-evaluated
// arguments.
type Func func(args []value.Value) value.Value

// Registry is the fixed-name built-in dispatch table.
type Registry struct {
	fns map[string]Func
}

// Default returns the registry holding the full built-in set.
func Default() *Registry {
	r := &Registry{fns: make(map[string]Func)}
	registerPredicates(r)
	registerCoercions(r)
	registerMath(r)
	registerStrings(r)
	registerStubs(r)
	return r
}

func (r *Registry) register(name string, fn Func) {
	r.fns[normalizeName(name)] = fn
}

// Call dispatches name against already-evaluated args. An unknown name
// yields Error.
func (r *Registry) Call(name string, args []value.Value) value.Value {
	fn, ok := r.fns[normalizeName(name)]
	if !ok {
		return value.Error{}
	}
	return fn(args)
}

// Has reports whether name is a registered built-in.
func (r *Registry) Has(name string) bool {
	_, ok := r.fns[normalizeName(name)]
	return ok
}

func normalizeName(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// strictArgs yields Error when any argument is Undefined or Error. Every
// built-in except the type predicates is strict: a missing or invalid
// input makes the whole call invalid rather than propagating Undefined.
func strictArgs(args ...value.Value) (value.Value, bool) {
	for _, a := range args {
		switch a.(type) {
		case value.Undefined, value.Error:
			return value.Error{}, true
		}
	}
	return nil, false
}
