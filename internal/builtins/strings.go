package builtins

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/classad-go/classad/internal/value"
)

// registerStrings wires the string/list utility family. Every function
// here yields Error if any argument is Undefined or Error.
func registerStrings(r *Registry) {
	r.register("strcat", builtinStrcat)
	r.register("join", builtinJoin)
	r.register("split", builtinSplit)
	r.register("size", builtinSize)
	r.register("substr", builtinSubstr)
	r.register("strcmp", compareFn(false))
	r.register("stricmp", compareFn(true))
	r.register("toUpper", caseFn(cases.Upper(language.Und).String))
	r.register("toLower", caseFn(cases.Lower(language.Und).String))
}

func builtinStrcat(args []value.Value) value.Value {
	if len(args) == 0 {
		return value.Error{}
	}
	var sb strings.Builder
	for _, a := range args {
		if v, ok := strictArgs(a); ok {
			return v
		}
		sb.WriteString(a.String())
	}
	return value.Str{V: sb.String()}
}

// builtinJoin implements `join(sep, list)` and the variadic
// `join(sep, a, b, c, ...)` form.
func builtinJoin(args []value.Value) value.Value {
	if len(args) < 2 {
		return value.Error{}
	}
	if v, ok := strictArgs(args[0]); ok {
		return v
	}
	sep, ok := args[0].(value.Str)
	if !ok {
		return value.Error{}
	}
	var elems []value.Value
	if len(args) == 2 {
		if list, ok := args[1].(value.List); ok {
			elems = list.Elements
		} else {
			elems = args[1:]
		}
	} else {
		elems = args[1:]
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		if v, ok := strictArgs(e); ok {
			return v
		}
		parts[i] = e.String()
	}
	return value.Str{V: strings.Join(parts, sep.V)}
}

// builtinSplit implements `split(s)` (whitespace-delimited) and
// `split(s, charset)` (split on any rune in charset).
func builtinSplit(args []value.Value) value.Value {
	if len(args) < 1 || len(args) > 2 {
		return value.Error{}
	}
	if v, ok := strictArgs(args...); ok {
		return v
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return value.Error{}
	}
	var parts []string
	if len(args) == 2 {
		charset, ok := args[1].(value.Str)
		if !ok {
			return value.Error{}
		}
		parts = strings.FieldsFunc(s.V, func(r rune) bool { return strings.ContainsRune(charset.V, r) })
	} else {
		parts = strings.Fields(s.V)
	}
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.Str{V: p}
	}
	return value.List{Elements: elems}
}

func builtinSize(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.Error{}
	}
	if v, ok := strictArgs(args[0]); ok {
		return v
	}
	switch x := args[0].(type) {
	case value.Str:
		return value.Int{V: int64(len([]rune(x.V)))}
	case value.List:
		return value.Int{V: int64(len(x.Elements))}
	case *value.Record:
		return value.Int{V: int64(x.Len())}
	default:
		return value.Error{}
	}
}

// builtinSubstr implements `substr(s, start[, length])`; a negative
// start counts from the end of s, matching the C ClassAd library's
// convention. Out-of-range bounds clamp rather than erroring.
func builtinSubstr(args []value.Value) value.Value {
	if len(args) < 2 || len(args) > 3 {
		return value.Error{}
	}
	if v, ok := strictArgs(args...); ok {
		return v
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return value.Error{}
	}
	startV, ok := args[1].(value.Int)
	if !ok {
		return value.Error{}
	}
	runes := []rune(s.V)
	n := len(runes)
	start := int(startV.V)
	if start < 0 {
		start = n + start
	}
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := n
	if len(args) == 3 {
		lenV, ok := args[2].(value.Int)
		if !ok {
			return value.Error{}
		}
		l := int(lenV.V)
		if l < 0 {
			end = n + l
		} else {
			end = start + l
		}
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return value.Str{V: string(runes[start:end])}
}

// compareFn implements strcmp (case-sensitive, byte-wise) and stricmp
// (case-insensitive, via the same locale-aware collator used by `==`).
func compareFn(caseInsensitive bool) Func {
	col := collate.New(language.Und, collate.IgnoreCase)
	return func(args []value.Value) value.Value {
		if len(args) != 2 {
			return value.Error{}
		}
		if v, ok := strictArgs(args...); ok {
			return v
		}
		a, aOk := args[0].(value.Str)
		b, bOk := args[1].(value.Str)
		if !aOk || !bOk {
			return value.Error{}
		}
		if caseInsensitive {
			return value.Int{V: int64(col.CompareString(a.V, b.V))}
		}
		return value.Int{V: int64(strings.Compare(a.V, b.V))}
	}
}

func caseFn(op func(string) string) Func {
	return func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.Error{}
		}
		if v, ok := strictArgs(args[0]); ok {
			return v
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return value.Error{}
		}
		return value.Str{V: op(s.V)}
	}
}
