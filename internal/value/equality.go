package value

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// stringsEqualFold reports case-insensitive string equality using the
// same locale-aware collator the string built-ins compare with
// (internal/builtins/strings.go), so `==` and `stricmp` agree on what
// "same text" means for non-ASCII input.
func stringsEqualFold(a, b string) bool {
	return collate.New(language.Und, collate.IgnoreCase).CompareString(a, b) == 0
}

// Eq implements `==`, the three-valued equality.
func Eq(a, b Value) Value {
	if v, ok := propagateSpecial(a, b); ok {
		return v
	}
	switch {
	case IsNumeric(a) && IsNumeric(b):
		return Bool{V: AsFloat(a) == AsFloat(b)}
	case isStr(a) && isStr(b):
		return Bool{V: stringsEqualFold(a.(Str).V, b.(Str).V)}
	case isBool(a) && isBool(b):
		return Bool{V: a.(Bool).V == b.(Bool).V}
	default:
		return Error{}
	}
}

// Neq implements `!=`, the Bool-negation of Eq where Eq yields Bool, and
// the same propagated special value otherwise.
func Neq(a, b Value) Value {
	eq := Eq(a, b)
	if b, ok := eq.(Bool); ok {
		return Bool{V: !b.V}
	}
	return eq
}

func isStr(v Value) bool {
	_, ok := v.(Str)
	return ok
}

func isBool(v Value) bool {
	_, ok := v.(Bool)
	return ok
}

// Is implements meta-equality (`is`, `=?=`): total, Bool-valued identity
// that never yields Undefined or Error. Unlike Eq, string comparison is
// case-sensitive and variant mismatches (including against
// Undefined/Error) simply yield false rather than propagating.
func Is(a, b Value) Value {
	return Bool{V: metaEqual(a, b)}
}

// Isnt implements `isnt`/`=!=`, the Bool negation of Is.
func Isnt(a, b Value) Value {
	return Bool{V: !metaEqual(a, b)}
}

func metaEqual(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x.V == y.V
	case Real:
		y, ok := b.(Real)
		return ok && x.V == y.V
	case Str:
		y, ok := b.(Str)
		return ok && x.V == y.V // case-sensitive
	case Bool:
		y, ok := b.(Bool)
		return ok && x.V == y.V
	case Undefined:
		_, ok := b.(Undefined)
		return ok
	case Error:
		_, ok := b.(Error)
		return ok
	case List:
		y, ok := b.(List)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !metaEqual(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Record:
		y, ok := b.(*Record)
		return ok && x.String() == y.String()
	default:
		return false
	}
}
