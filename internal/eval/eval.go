package eval

import (
	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/ident"
	"github.com/classad-go/classad/internal/parser"
	"github.com/classad-go/classad/internal/value"
)

// eval is the tree-walking core: one case per AST node variant. It never
// panics; every operand combination flows through the value package's
// exhaustive operator tables.
func (e *evaluator) eval(expr ast.Expression, c ctx) value.Value {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.maxDepth {
		return value.Error{}
	}

	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return value.Int{V: n.Value}
	case *ast.RealLiteral:
		return value.Real{V: n.Value}
	case *ast.StringLiteral:
		return value.Str{V: n.Value}
	case *ast.BoolLiteral:
		return value.Bool{V: n.Value}
	case *ast.ErrorLiteral:
		return value.Error{}
	case *ast.UndefinedLiteral:
		return value.Undefined{}
	case *ast.ListLit:
		return e.evalList(n, c)
	case *ast.RecordLit:
		return e.evalRecordLit(n)
	case *ast.AttrRef:
		v, _ := e.scopeResolve(c, n.Name)
		return v
	case *ast.Dotted:
		return e.evalDotted(n, c)
	case *ast.AbsoluteRef:
		return e.evalAbsolute(n, c)
	case *ast.ScopeRef:
		return e.evalScopeRef(n, c)
	case *ast.Subscript:
		return e.evalSubscript(n, c)
	case *ast.Call:
		return e.evalCall(n, c)
	case *ast.Unary:
		return e.evalUnary(n, c)
	case *ast.Binary:
		return e.evalBinary(n, c)
	case *ast.Ternary:
		return e.evalTernary(n, c)
	default:
		return value.Error{}
	}
}

func (e *evaluator) evalList(n *ast.ListLit, c ctx) value.Value {
	elems := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		elems[i] = e.eval(el, c)
	}
	return value.List{Elements: elems}
}

// evalRecordLit builds a Record from a RecordLit's attribute defs,
// lazily: attribute expressions are stored unevaluated, to be evaluated
// at lookup. The parser only accepts IDENT tokens as attribute names, and
// bare reserved words tokenize distinctly, but a quoted identifier such as
// 'true' is an IDENT whose name Set rejects, as is a reserved name in a
// hand-built AST. Such an attribute is dropped rather than panicking.
func (e *evaluator) evalRecordLit(n *ast.RecordLit) value.Value {
	rec := value.NewRecord()
	for _, a := range n.Attrs {
		_ = rec.Set(a.Name, a.Expr)
	}
	return rec
}

func (e *evaluator) evalUnary(n *ast.Unary, c ctx) value.Value {
	v := e.eval(n.Operand, c)
	switch n.Operator {
	case "!":
		return value.Not(v)
	case "-":
		return value.Neg(v)
	default:
		return value.Error{}
	}
}

func (e *evaluator) evalBinary(n *ast.Binary, c ctx) value.Value {
	switch n.Operator {
	case "&&":
		lhs := e.eval(n.Left, c)
		if v, ok := value.ShortCircuitAnd(lhs); ok {
			return v
		}
		return value.And(lhs, e.eval(n.Right, c))
	case "||":
		lhs := e.eval(n.Left, c)
		if v, ok := value.ShortCircuitOr(lhs); ok {
			return v
		}
		return value.Or(lhs, e.eval(n.Right, c))
	}

	l := e.eval(n.Left, c)
	r := e.eval(n.Right, c)
	switch n.Operator {
	case "+":
		return value.Add(l, r)
	case "-":
		return value.Sub(l, r)
	case "*":
		return value.Mul(l, r)
	case "/":
		return value.Div(l, r)
	case "<", "<=", ">", ">=":
		return value.Compare(n.Operator, l, r)
	case "==":
		return value.Eq(l, r)
	case "!=":
		return value.Neq(l, r)
	case "=?=", "is":
		return value.Is(l, r)
	case "=!=", "isnt":
		return value.Isnt(l, r)
	default:
		return value.Error{}
	}
}

// evalTernary implements the lazy-branch conditional, including the
// elvis form (Then == nil): only the selected branch is ever evaluated.
// An Undefined condition yields Undefined, except in the elvis form,
// where it falls through to the else arm. A numeric or string condition
// is Error, never coerced.
func (e *evaluator) evalTernary(n *ast.Ternary, c ctx) value.Value {
	cond := e.eval(n.Cond, c)
	switch x := cond.(type) {
	case value.Error:
		return value.Error{}
	case value.Undefined:
		if n.Then == nil {
			return e.eval(n.Else, c)
		}
		return value.Undefined{}
	case value.Bool:
		if x.V {
			if n.Then == nil {
				return cond
			}
			return e.eval(n.Then, c)
		}
		return e.eval(n.Else, c)
	default:
		return value.Error{}
	}
}

func (e *evaluator) evalSubscript(n *ast.Subscript, c ctx) value.Value {
	v, _ := e.evalSubscriptScoped(n, c)
	return v
}

// evalSubscriptScoped handles both `list[intExpr]` and `record[strExpr]`,
// returning the result together with the context its own members resolve
// under. Chained record subscripts (`[...].b.d.f` desugars to nested
// Subscript nodes) must extend the path under the record chain's root,
// not re-root at each level: the selected attribute's body still sees
// every enclosing scope when the walk ascends.
func (e *evaluator) evalSubscriptScoped(n *ast.Subscript, c ctx) (value.Value, ctx) {
	base, baseCtx := e.resolveMemberBase(n.Base, c)
	switch b := base.(type) {
	case value.List:
		idx := e.eval(n.Index, c)
		return value.Index(base, idx), c
	case *value.Record:
		idx := e.eval(n.Index, c)
		switch idx.(type) {
		case value.Undefined:
			return value.Undefined{}, c
		case value.Error:
			return value.Error{}, c
		}
		name, ok := idx.(value.Str)
		if !ok {
			return value.Error{}, c
		}
		if !b.Has(name.V) {
			return value.Undefined{}, c
		}
		v := e.evalAttrInRecord(b, name.V, baseCtx)
		return v, ctx{path: appendName(baseCtx.path, name.V), my: baseCtx.my, target: baseCtx.target}
	case value.Undefined:
		return value.Undefined{}, c
	case value.Error:
		return value.Error{}, c
	default:
		return value.Error{}, c
	}
}

// resolveMemberBase evaluates the base of a member access and returns
// the scope context members of the result resolve under: attribute
// references carry the path they were reached through, a nested
// subscript threads its own chain, and a record literal roots a fresh
// scope. Any other base that happens to produce a record (a call, a
// ternary) has no path within `my` to extend and roots a fresh scope.
func (e *evaluator) resolveMemberBase(expr ast.Expression, c ctx) (value.Value, ctx) {
	switch b := expr.(type) {
	case *ast.AttrRef:
		return e.scopeResolve(c, b.Name)
	case *ast.Dotted:
		v, next := e.scopeResolve(c, b.Names[0])
		return e.descendChain(v, next, b.Names[1:])
	case *ast.AbsoluteRef:
		v, next := e.scopeResolve(ctx{my: c.my, target: c.target}, b.Names[0])
		return e.descendChain(v, next, b.Names[1:])
	case *ast.Subscript:
		return e.evalSubscriptScoped(b, c)
	case *ast.RecordLit:
		rec := e.evalRecordLit(b).(*value.Record)
		return rec, ctx{my: rec, target: c.target}
	default:
		v := e.eval(expr, c)
		if r, ok := v.(*value.Record); ok {
			return v, ctx{my: r, target: c.target}
		}
		return v, c
	}
}

func (e *evaluator) evalCall(n *ast.Call, c ctx) value.Value {
	switch ident.Normalize(n.Name) {
	case "ifthenelse":
		return e.callIfThenElse(n, c)
	case "eval":
		return e.callEval(n, c)
	case "unparse":
		return e.callUnparse(n, c)
	}
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = e.eval(a, c)
	}
	return e.builtins.Call(n.Name, args)
}

// callIfThenElse implements the lazy selection built-in: only the
// selected branch is evaluated. Unlike the ternary operator it accepts a
// numeric condition, selecting the else arm on zero.
func (e *evaluator) callIfThenElse(n *ast.Call, c ctx) value.Value {
	if len(n.Args) != 3 {
		return value.Error{}
	}
	cond := e.eval(n.Args[0], c)
	switch x := cond.(type) {
	case value.Undefined:
		return value.Undefined{}
	case value.Error:
		return value.Error{}
	case value.Str:
		return value.Error{}
	case value.Bool:
		if x.V {
			return e.eval(n.Args[1], c)
		}
		return e.eval(n.Args[2], c)
	case value.Int:
		if x.V == 0 {
			return e.eval(n.Args[2], c)
		}
		return e.eval(n.Args[1], c)
	case value.Real:
		if x.V == 0 {
			return e.eval(n.Args[2], c)
		}
		return e.eval(n.Args[1], c)
	default:
		return value.Error{}
	}
}

// callEval implements `eval(x)`: parse the string argument and evaluate
// the result under the same context.
func (e *evaluator) callEval(n *ast.Call, c ctx) value.Value {
	if len(n.Args) != 1 {
		return value.Error{}
	}
	v := e.eval(n.Args[0], c)
	s, ok := v.(value.Str)
	if !ok {
		return value.Error{}
	}
	parsed, errs := parser.Parse(s.V)
	if len(errs) > 0 {
		return value.Error{}
	}
	return e.eval(parsed, c)
}

// callUnparse implements `unparse(attr)`: the textual form of the
// attribute's defining expression, without evaluating it.
func (e *evaluator) callUnparse(n *ast.Call, c ctx) value.Value {
	if len(n.Args) != 1 {
		return value.Error{}
	}
	return value.Str{V: e.resolveForUnparse(n.Args[0], c).String()}
}

func (e *evaluator) resolveForUnparse(arg ast.Expression, c ctx) ast.Expression {
	switch a := arg.(type) {
	case *ast.AttrRef:
		if expr, ok := e.scopeResolveExpr(c, a.Name); ok {
			return expr
		}
	case *ast.Dotted:
		if expr, ok := e.scopeResolveExpr(c, a.Names[0]); ok {
			return descendExprChain(expr, a.Names[1:])
		}
	}
	return arg
}

// descendExprChain best-effort walks a chain of record-literal member
// names without evaluating, for unparse's "don't evaluate" contract.
func descendExprChain(expr ast.Expression, names []string) ast.Expression {
	cur := expr
	for _, name := range names {
		rl, ok := cur.(*ast.RecordLit)
		if !ok {
			break
		}
		found := false
		for _, at := range rl.Attrs {
			if ident.Equal(at.Name, name) {
				cur = at.Expr
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return cur
}
