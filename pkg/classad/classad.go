// Package classad is the public surface of the ClassAd expression
// engine: parsing source text, evaluating a parsed Expression, and
// evaluating one attribute of a Record against an optional matchmaking
// peer.
package classad

import (
	"fmt"

	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/classaderr"
	"github.com/classad-go/classad/internal/eval"
	"github.com/classad-go/classad/internal/parser"
	"github.com/classad-go/classad/internal/value"
)

// Value is the runtime value produced by evaluation: Int, Real, Str,
// Bool, List, *Record, Undefined, or Error.
type Value = value.Value

// ParseErrors is returned by Parse on malformed input; no partial tree
// is ever returned alongside a non-nil error.
type ParseErrors []*classaderr.ParseError

func (e ParseErrors) Error() string {
	return classaderr.FormatErrors(e, false)
}

// Expression is a parsed ClassAd expression, ready to evaluate.
type Expression struct {
	expr ast.Expression
}

// Record is a parsed or hand-built ClassAd: a case-folded mapping from
// attribute name to its unevaluated defining expression.
type Record struct {
	rec *value.Record
}

// Parse parses source as either a bracketed/standalone expression or a
// bare attribute stream.
func Parse(source string) (Expression, error) {
	expr, errs := parser.Parse(source)
	if len(errs) > 0 {
		return Expression{}, ParseErrors(errs)
	}
	return Expression{expr: expr}, nil
}

// ParseRecord parses source and requires the result to be a record
// (bracketed or bare attribute-stream form); a standalone expression
// (e.g. "1 + 2") is rejected with an error.
func ParseRecord(source string) (*Record, error) {
	e, err := Parse(source)
	if err != nil {
		return nil, err
	}
	lit, ok := e.expr.(*ast.RecordLit)
	if !ok {
		return nil, fmt.Errorf("classad: %q is not a record", source)
	}
	return recordFromLit(lit)
}

func recordFromLit(lit *ast.RecordLit) (*Record, error) {
	rec := value.NewRecord()
	for _, a := range lit.Attrs {
		if err := rec.Set(a.Name, a.Expr); err != nil {
			return nil, err
		}
	}
	return &Record{rec: rec}, nil
}

// Evaluate evaluates the expression against the given my/target
// matchmaking pair (either may be nil).
func (e Expression) Evaluate(my, target *Record) Value {
	return eval.Eval(e.expr, recPtr(my), recPtr(target))
}

// Unparse renders the expression's textual form, for diagnostics and
// round-tripping.
func (e Expression) Unparse() string {
	if e.expr == nil {
		return ""
	}
	return e.expr.String()
}

// IsZero reports whether e holds no parsed expression.
func (e Expression) IsZero() bool { return e.expr == nil }

// Evaluate evaluates the named attribute of r, with r playing `my` and
// target the matchmaking peer (nil if there is none).
func (r *Record) Evaluate(name string, target *Record) Value {
	return eval.EvalAttr(r.rec, name, recPtr(target), eval.DefaultMaxDepth)
}

// Names returns the record's attribute names, in definition order.
func (r *Record) Names() []string { return r.rec.Names() }

// Has reports whether name is a defined attribute.
func (r *Record) Has(name string) bool { return r.rec.Has(name) }

// Unparse renders the record's textual form.
func (r *Record) Unparse() string { return r.rec.String() }

func recPtr(r *Record) *value.Record {
	if r == nil {
		return nil
	}
	return r.rec
}

// RecordBuilder constructs a Record programmatically, for host programs
// that build ads without parsing a whole stream at once. Attributes must
// all be defined before the record is first evaluated.
type RecordBuilder struct {
	rec *value.Record
}

// NewRecordBuilder creates an empty RecordBuilder.
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{rec: value.NewRecord()}
}

// Set parses source and defines name as its result, returning an error
// if source fails to parse or name is reserved.
func (b *RecordBuilder) Set(name, source string) error {
	e, err := Parse(source)
	if err != nil {
		return err
	}
	return b.rec.Set(name, e.expr)
}

// SetExpr defines name directly from an already-parsed Expression.
func (b *RecordBuilder) SetExpr(name string, e Expression) error {
	return b.rec.Set(name, e.expr)
}

// Build finalizes the Record.
func (b *RecordBuilder) Build() *Record {
	return &Record{rec: b.rec}
}
