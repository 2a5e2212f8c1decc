package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/lexer"
)

// astEqual compares two ASTs structurally, ignoring the embedded lexer
// token (source position/raw text): the stream form and record form of
// the same input must compare equal.
func astEqual(t *testing.T, got, want ast.Expression) {
	t.Helper()
	diff := cmp.Diff(want, got, cmpopts.IgnoreTypes(lexer.Token{}))
	if diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func mustParse(t *testing.T, src string) ast.Expression {
	t.Helper()
	expr, errs := Parse(src)
	if len(errs) > 0 {
		t.Fatalf("parse %q: %v", src, errs)
	}
	return expr
}

func TestRecordFormAndStreamFormProduceEqualASTs(t *testing.T) {
	record := mustParse(t, `[a=1; b="x"; c=a+b]`)
	stream := mustParse(t, "a = 1\nb = \"x\"\nc = a+b")
	astEqual(t, stream, record)
}

func TestOperatorPrecedence(t *testing.T) {
	expr := mustParse(t, "1 + 2 * 3")
	want := &ast.Binary{
		Operator: "+",
		Left:     &ast.IntegerLiteral{Value: 1},
		Right: &ast.Binary{
			Operator: "*",
			Left:     &ast.IntegerLiteral{Value: 2},
			Right:    &ast.IntegerLiteral{Value: 3},
		},
	}
	astEqual(t, expr, want)
}

func TestLogicalPrecedence(t *testing.T) {
	expr := mustParse(t, "a || b && c")
	want := &ast.Binary{
		Operator: "||",
		Left:     &ast.AttrRef{Name: "a"},
		Right: &ast.Binary{
			Operator: "&&",
			Left:     &ast.AttrRef{Name: "b"},
			Right:    &ast.AttrRef{Name: "c"},
		},
	}
	astEqual(t, expr, want)
}

func TestUnaryBindsTighterThanBinary(t *testing.T) {
	expr := mustParse(t, "-a + b")
	want := &ast.Binary{
		Operator: "+",
		Left:     &ast.Unary{Operator: "-", Operand: &ast.AttrRef{Name: "a"}},
		Right:    &ast.AttrRef{Name: "b"},
	}
	astEqual(t, expr, want)
}

func TestTernary(t *testing.T) {
	expr := mustParse(t, "true?10:undefined")
	want := &ast.Ternary{
		Cond: &ast.BoolLiteral{Value: true},
		Then: &ast.IntegerLiteral{Value: 10},
		Else: &ast.UndefinedLiteral{},
	}
	astEqual(t, expr, want)
}

func TestTernaryElvisForm(t *testing.T) {
	expr := mustParse(t, "a ? : 1")
	want := &ast.Ternary{
		Cond: &ast.AttrRef{Name: "a"},
		Then: nil,
		Else: &ast.IntegerLiteral{Value: 1},
	}
	astEqual(t, expr, want)
}

func TestDottedAttributePath(t *testing.T) {
	expr := mustParse(t, "a.b.c")
	want := &ast.Dotted{Names: []string{"a", "b", "c"}}
	astEqual(t, expr, want)
}

func TestAbsoluteRef(t *testing.T) {
	expr := mustParse(t, ".a.b")
	want := &ast.AbsoluteRef{Names: []string{"a", "b"}}
	astEqual(t, expr, want)
}

func TestScopeRef(t *testing.T) {
	expr := mustParse(t, "target.Requirements")
	want := &ast.ScopeRef{Scope: ast.ScopeTarget, Names: []string{"Requirements"}}
	astEqual(t, expr, want)
}

func TestBareScopeKeyword(t *testing.T) {
	expr := mustParse(t, "my")
	want := &ast.ScopeRef{Scope: ast.ScopeMy}
	astEqual(t, expr, want)
}

func TestSuperRejectedAtParseTime(t *testing.T) {
	_, errs := Parse("super.Foo")
	if len(errs) == 0 {
		t.Fatal("expected a parse error for super")
	}
}

func TestSubscriptAndDotMemberAreEquivalent(t *testing.T) {
	bySubscript := mustParse(t, `f(x)["name"]`)
	byDot := mustParse(t, "f(x).name")
	astEqual(t, byDot, bySubscript)
}

func TestListLiteral(t *testing.T) {
	expr := mustParse(t, "{1, 2, 3}")
	want := &ast.ListLit{Elements: []ast.Expression{
		&ast.IntegerLiteral{Value: 1},
		&ast.IntegerLiteral{Value: 2},
		&ast.IntegerLiteral{Value: 3},
	}}
	astEqual(t, expr, want)
}

func TestFunctionCall(t *testing.T) {
	expr := mustParse(t, `strcat("a", "b")`)
	want := &ast.Call{Name: "strcat", Args: []ast.Expression{
		&ast.StringLiteral{Value: "a"},
		&ast.StringLiteral{Value: "b"},
	}}
	astEqual(t, expr, want)
}

func TestNestedRecordLiteral(t *testing.T) {
	expr := mustParse(t, `[a=[b=1]]`)
	want := &ast.RecordLit{Attrs: []ast.RecordAttr{
		{Name: "a", Expr: &ast.RecordLit{Attrs: []ast.RecordAttr{
			{Name: "b", Expr: &ast.IntegerLiteral{Value: 1}},
		}}},
	}}
	astEqual(t, expr, want)
}

func TestQuotedIdentifierAsAttributeName(t *testing.T) {
	expr := mustParse(t, `['weird name'=1]`)
	want := &ast.RecordLit{Attrs: []ast.RecordAttr{
		{Name: "weird name", Expr: &ast.IntegerLiteral{Value: 1}},
	}}
	astEqual(t, expr, want)
}

func TestHexAndOctalIntegers(t *testing.T) {
	astEqual(t, mustParse(t, "0x1F"), &ast.IntegerLiteral{Value: 31})
	astEqual(t, mustParse(t, "017"), &ast.IntegerLiteral{Value: 15})
}

func TestMalformedInputProducesParseError(t *testing.T) {
	expr, errs := Parse("1 +")
	if expr != nil {
		t.Errorf("expected nil expression on error, got %#v", expr)
	}
	if len(errs) == 0 {
		t.Fatal("expected at least one parse error")
	}
}

func TestUnterminatedRecordIsError(t *testing.T) {
	_, errs := Parse("[a=1")
	if len(errs) == 0 {
		t.Fatal("expected a parse error for unterminated record")
	}
}
