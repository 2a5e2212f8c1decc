// Package eval implements the tri-valued tree-walking evaluator:
// eval(expr, ctx) -> Value, where ctx tracks the current scope-chain
// path inside `my`, plus the `my`/`target` matchmaking pair.
package eval

import (
	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/builtins"
	"github.com/classad-go/classad/internal/ident"
	"github.com/classad-go/classad/internal/value"
)

// DefaultMaxDepth bounds both scope-walk recursion and general
// expression-tree recursion, against stack overflow on pathologically
// nested input.
const DefaultMaxDepth = 256

// ctx is the immutable per-call evaluation context: the scope-chain path
// from the root of my, and the my/target matchmaking pair.
type ctx struct {
	path   []string
	my     *value.Record
	target *value.Record
}

// visitKey identifies one (record, attribute name) pair on the current
// evaluation stack, for cycle detection local to a single eval call.
type visitKey struct {
	rec  *value.Record
	name string
}

func normalizeVisit(name string) string { return ident.Normalize(name) }

// evaluator carries the mutable state threaded through one Eval call:
// the recursion-depth counter and the cycle-detection visited set. The
// pure (expr, ctx) -> Value contract is preserved from the caller's
// perspective; this state never outlives a single top-level call.
type evaluator struct {
	maxDepth int
	depth    int
	visited  map[visitKey]bool
	builtins *builtins.Registry
}

// Eval evaluates expr against the given my/target pair using
// DefaultMaxDepth.
func Eval(expr ast.Expression, my, target *value.Record) value.Value {
	return EvalDepth(expr, my, target, DefaultMaxDepth)
}

// EvalDepth is Eval with an explicit recursion bound.
func EvalDepth(expr ast.Expression, my, target *value.Record, maxDepth int) value.Value {
	e := &evaluator{maxDepth: maxDepth, visited: make(map[visitKey]bool), builtins: builtins.Default()}
	return e.eval(expr, ctx{my: my, target: target})
}

// EvalAttr evaluates the named attribute of rec, resolved from rec's own
// root scope with rec playing the `my` role; target may be nil.
func EvalAttr(rec *value.Record, name string, target *value.Record, maxDepth int) value.Value {
	e := &evaluator{maxDepth: maxDepth, visited: make(map[visitKey]bool), builtins: builtins.Default()}
	return e.evalAttrInRecord(rec, name, ctx{my: rec, target: target})
}
