package eval

import (
	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/value"
)

// scopeResolve implements the scope walk for an unqualified attribute
// reference `name` under c: ascend c.path inside c.my, then fail over to
// c.target's root. It returns both the resolved
// value and the context that should be used to resolve any further
// Dotted/AbsoluteRef/ScopeRef suffix chained onto this name — path
// extended by name, my/target unchanged except that a target fail-over
// makes target the root for the remainder of the chain.
func (e *evaluator) scopeResolve(c ctx, name string) (value.Value, ctx) {
	if c.my != nil {
		path := c.path
		for {
			rec := e.recordAt(ctx{path: path, my: c.my, target: c.target})
			if rec != nil && rec.Has(name) {
				v := e.evalAttrInRecord(rec, name, ctx{path: path, my: c.my, target: c.target})
				return v, ctx{path: appendName(path, name), my: c.my, target: c.target}
			}
			if len(path) == 0 {
				break
			}
			path = path[:len(path)-1]
		}
	}
	if c.target != nil && c.target.Has(name) {
		v := e.evalAttrInRecord(c.target, name, ctx{my: c.target, target: c.target})
		return v, ctx{path: []string{name}, my: c.target, target: c.target}
	}
	return value.Undefined{}, c
}

// scopeResolveExpr mirrors scopeResolve but returns the raw, unevaluated
// expression bound to name (for the `unparse` built-in), without
// triggering evaluation or cycle tracking.
func (e *evaluator) scopeResolveExpr(c ctx, name string) (ast.Expression, bool) {
	if c.my != nil {
		path := c.path
		for {
			rec := e.recordAt(ctx{path: path, my: c.my, target: c.target})
			if rec != nil {
				if expr, ok := rec.Lookup(name); ok {
					return expr, true
				}
			}
			if len(path) == 0 {
				break
			}
			path = path[:len(path)-1]
		}
	}
	if c.target != nil {
		if expr, ok := c.target.Lookup(name); ok {
			return expr, true
		}
	}
	return nil, false
}

// recordAt navigates from c.my down c.path, evaluating each intermediate
// attribute's expression, and returns the Record found there (or nil if
// the path does not resolve to a Record at every step).
func (e *evaluator) recordAt(c ctx) *value.Record {
	rec := c.my
	cur := ctx{my: c.my, target: c.target}
	for _, name := range c.path {
		if rec == nil {
			return nil
		}
		v := e.evalAttrInRecord(rec, name, cur)
		r, ok := v.(*value.Record)
		if !ok {
			return nil
		}
		rec = r
		cur = ctx{path: appendName(cur.path, name), my: c.my, target: c.target}
	}
	return rec
}

// evalAttrInRecord evaluates rec's attribute `name` under c, with cycle
// detection local to this eval call: revisiting the same (record, name)
// pair resolves to Undefined rather than recursing forever.
func (e *evaluator) evalAttrInRecord(rec *value.Record, name string, c ctx) value.Value {
	expr, ok := rec.Lookup(name)
	if !ok {
		return value.Undefined{}
	}
	key := visitKey{rec: rec, name: normalizeVisit(name)}
	if e.visited[key] {
		return value.Undefined{}
	}
	e.visited[key] = true
	defer delete(e.visited, key)
	return e.eval(expr, c)
}

// evalDotted resolves the first name by the scope walk, then descends
// strictly inside the enclosing record for each subsequent name.
func (e *evaluator) evalDotted(n *ast.Dotted, c ctx) value.Value {
	v, next := e.scopeResolve(c, n.Names[0])
	v, _ = e.descendChain(v, next, n.Names[1:])
	return v
}

// evalAbsolute resolves the chain starting at the root of `my`.
func (e *evaluator) evalAbsolute(n *ast.AbsoluteRef, c ctx) value.Value {
	root := ctx{my: c.my, target: c.target}
	v, next := e.scopeResolve(root, n.Names[0])
	v, _ = e.descendChain(v, next, n.Names[1:])
	return v
}

// evalScopeRef resolves a my/target/parent-anchored reference. `super`
// never reaches here: the parser rejects it at parse time (see
// internal/parser/paths.go, DESIGN.md).
func (e *evaluator) evalScopeRef(n *ast.ScopeRef, c ctx) value.Value {
	switch n.Scope {
	case ast.ScopeParent:
		return e.evalParentRef(n, c)
	case ast.ScopeSuper:
		return value.Error{}
	}

	rec := c.my
	if n.Scope == ast.ScopeTarget {
		rec = c.target
	}
	if rec == nil {
		return value.Undefined{}
	}
	if len(n.Names) == 0 {
		return rec
	}
	if !rec.Has(n.Names[0]) {
		return value.Undefined{}
	}
	v := e.evalAttrInRecord(rec, n.Names[0], ctx{my: rec, target: rec})
	next := ctx{path: []string{n.Names[0]}, my: rec, target: rec}
	v, _ = e.descendChain(v, next, n.Names[1:])
	return v
}

// evalParentRef implements the `parent` keyword: resolution starts one
// level up the current path, exactly where ordinary scope-walk ascension
// would continue after the current scope failed. See DESIGN.md.
func (e *evaluator) evalParentRef(n *ast.ScopeRef, c ctx) value.Value {
	parentPath := c.path
	if len(parentPath) > 0 {
		parentPath = parentPath[:len(parentPath)-1]
	}
	parentCtx := ctx{path: parentPath, my: c.my, target: c.target}
	if len(n.Names) == 0 {
		rec := e.recordAt(parentCtx)
		if rec == nil {
			return value.Undefined{}
		}
		return rec
	}
	v, next := e.scopeResolve(parentCtx, n.Names[0])
	v, _ = e.descendChain(v, next, n.Names[1:])
	return v
}

// descendChain walks a chain of strict record-member accesses following
// an already-resolved base value, used by Dotted/AbsoluteRef/ScopeRef
// tails and by subscript bases. Unlike the leading name, tail names
// never re-enter the scope walk. It returns the final value together
// with the context any further member access on it resolves under.
func (e *evaluator) descendChain(v value.Value, next ctx, names []string) (value.Value, ctx) {
	for _, name := range names {
		switch v.(type) {
		case value.Undefined, value.Error:
			return v, next
		}
		rec, ok := v.(*value.Record)
		if !ok {
			return value.Error{}, next
		}
		if !rec.Has(name) {
			return value.Undefined{}, next
		}
		v = e.evalAttrInRecord(rec, name, ctx{path: next.path, my: next.my, target: next.target})
		next = ctx{path: appendName(next.path, name), my: next.my, target: next.target}
	}
	return v, next
}

func appendName(path []string, name string) []string {
	next := make([]string, len(path)+1)
	copy(next, path)
	next[len(path)] = name
	return next
}
