// Package value implements the ClassAd value lattice: Int, Real, Str,
// Bool, List, Record, Undefined and Error, plus the operator families
// defined over them. Values are immutable after construction; operators
// never panic on any operand combination.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/classad-go/classad/internal/ast"
	"github.com/classad-go/classad/internal/ident"
	"github.com/classad-go/classad/internal/lexer"
)

// Value is the runtime type for every ClassAd value. It is a closed
// interface so that every operator implementation is an exhaustive
// switch over the variants below.
type Value interface {
	// Kind returns the lattice tag of this value (e.g. "Integer").
	Kind() string
	// String renders the value for diagnostics and the `string()`
	// built-in.
	String() string
}

// Int is a 64-bit signed integer value.
type Int struct{ V int64 }

func (Int) Kind() string     { return "Integer" }
func (i Int) String() string { return strconv.FormatInt(i.V, 10) }

// Real is an IEEE-754 double value.
type Real struct{ V float64 }

func (Real) Kind() string     { return "Real" }
func (r Real) String() string { return strconv.FormatFloat(r.V, 'g', -1, 64) }

// Str is a UTF-8 string value. Equality under "==" is case-insensitive;
// under "is"/"isnt" it is case-sensitive.
type Str struct{ V string }

func (Str) Kind() string     { return "String" }
func (s Str) String() string { return s.V }

// Bool is a boolean value, distinct from Int.
type Bool struct{ V bool }

func (Bool) Kind() string { return "Boolean" }
func (b Bool) String() string {
	if b.V {
		return "true"
	}
	return "false"
}

// List is a finite, immutable-after-construction ordered sequence of
// values.
type List struct{ Elements []Value }

func (List) Kind() string { return "List" }
func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range l.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Record is a ClassAd: an ordered, case-folded mapping from attribute
// name to its (unevaluated) defining expression. Record participates as
// both a Value and an evaluation scope.
type Record struct {
	attrs *ident.Map[ast.Expression]
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{attrs: ident.NewMap[ast.Expression]()}
}

// reservedSet holds the identifiers that can never be attribute names.
var reservedSet = func() map[string]bool {
	m := make(map[string]bool)
	for _, n := range lexer.ReservedNames() {
		m[ident.Normalize(n)] = true
	}
	return m
}()

// ErrReservedName is returned by Set when name is a reserved word.
type ErrReservedName struct{ Name string }

func (e *ErrReservedName) Error() string {
	return fmt.Sprintf("%q cannot be used as an attribute name: it is a reserved word", e.Name)
}

// Set defines (or redefines) an attribute. It returns an error if name
// is a reserved word; this is the one violation surfaced at record
// construction rather than as an in-lattice value.
func (r *Record) Set(name string, expr ast.Expression) error {
	if reservedSet[ident.Normalize(name)] {
		return &ErrReservedName{Name: name}
	}
	r.attrs.Set(name, expr)
	return nil
}

// Lookup returns the unevaluated expression stored under name (any
// casing) and whether it was present.
func (r *Record) Lookup(name string) (ast.Expression, bool) {
	return r.attrs.Get(name)
}

// Has reports whether name is a defined attribute.
func (r *Record) Has(name string) bool {
	return r.attrs.Has(name)
}

// Names returns attribute names in definition order.
func (r *Record) Names() []string {
	return r.attrs.Keys()
}

// Len returns the number of attributes.
func (r *Record) Len() int {
	return r.attrs.Len()
}

func (Record) Kind() string { return "Record" }

func (r Record) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	r.attrs.Range(func(key string, expr ast.Expression) bool {
		if !first {
			sb.WriteString("; ")
		}
		first = false
		sb.WriteString(key)
		sb.WriteString(" = ")
		sb.WriteString(expr.String())
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}

// Undefined is the sentinel "no such attribute" value.
type Undefined struct{}

func (Undefined) Kind() string   { return "Undefined" }
func (Undefined) String() string { return "undefined" }

// Error is the sentinel "operation invalid on these types" value.
type Error struct{}

func (Error) Kind() string   { return "Error" }
func (Error) String() string { return "error" }

// IsNumeric reports whether v is Int or Real.
func IsNumeric(v Value) bool {
	switch v.(type) {
	case Int, Real:
		return true
	default:
		return false
	}
}

// AsFloat returns v's numeric value as a float64. Only valid when
// IsNumeric(v).
func AsFloat(v Value) float64 {
	switch x := v.(type) {
	case Int:
		return float64(x.V)
	case Real:
		return x.V
	default:
		return 0
	}
}
