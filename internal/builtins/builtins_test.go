package builtins_test

import (
	"testing"

	"github.com/classad-go/classad/internal/builtins"
	"github.com/classad-go/classad/internal/value"
)

func call(t *testing.T, r *builtins.Registry, name string, args ...value.Value) value.Value {
	t.Helper()
	return r.Call(name, args)
}

func TestPredicates(t *testing.T) {
	r := builtins.Default()
	cases := []struct {
		name string
		arg  value.Value
		want bool
	}{
		{"isUndefined", value.Undefined{}, true},
		{"isUndefined", value.Int{V: 1}, false},
		{"isError", value.Error{}, true},
		{"isString", value.Str{V: "x"}, true},
		{"isInteger", value.Int{V: 1}, true},
		{"isInteger", value.Real{V: 1}, false},
		{"isReal", value.Real{V: 1.5}, true},
		{"isBoolean", value.Bool{V: true}, true},
		{"isList", value.List{}, true},
		{"isList", value.Str{V: "x"}, false},
	}
	for _, c := range cases {
		got := call(t, r, c.name, c.arg)
		if got != (value.Bool{V: c.want}) {
			t.Errorf("%s(%v) = %v, want %v", c.name, c.arg, got, c.want)
		}
	}
}

func TestPredicateArityMismatchIsError(t *testing.T) {
	r := builtins.Default()
	got := call(t, r, "isInteger")
	if _, ok := got.(value.Error); !ok {
		t.Errorf("isInteger() = %v, want Error", got)
	}
}

func TestCoerceInt(t *testing.T) {
	r := builtins.Default()
	cases := []struct {
		arg  value.Value
		want value.Value
	}{
		{value.Int{V: 7}, value.Int{V: 7}},
		{value.Real{V: 3.9}, value.Int{V: 3}},
		{value.Real{V: -3.9}, value.Int{V: -3}},
		{value.Str{V: "42"}, value.Int{V: 42}},
		{value.Str{V: "0x2A"}, value.Int{V: 42}},
		{value.Str{V: "3.7"}, value.Int{V: 3}},
	}
	for _, c := range cases {
		got := call(t, r, "int", c.arg)
		if got != c.want {
			t.Errorf("int(%v) = %v, want %v", c.arg, got, c.want)
		}
	}
	if got := call(t, r, "int", value.Str{V: "nope"}); !isError(got) {
		t.Errorf("int(%q) = %v, want Error", "nope", got)
	}
}

func TestCoerceReal(t *testing.T) {
	r := builtins.Default()
	if got := call(t, r, "real", value.Int{V: 4}); got != (value.Real{V: 4}) {
		t.Errorf("real(4) = %v, want 4.0", got)
	}
	if got := call(t, r, "real", value.Str{V: "2.5"}); got != (value.Real{V: 2.5}) {
		t.Errorf("real(\"2.5\") = %v, want 2.5", got)
	}
}

func TestCoerceString(t *testing.T) {
	r := builtins.Default()
	if got := call(t, r, "string", value.Int{V: 9}); got != (value.Str{V: "9"}) {
		t.Errorf("string(9) = %v, want \"9\"", got)
	}
	if got := call(t, r, "string", value.Undefined{}); !isError(got) {
		t.Errorf("string(undefined) = %v, want Error", got)
	}
}

func TestRoundingFunctions(t *testing.T) {
	r := builtins.Default()
	if got := call(t, r, "floor", value.Real{V: 3.7}); got != (value.Int{V: 3}) {
		t.Errorf("floor(3.7) = %v, want 3", got)
	}
	if got := call(t, r, "ceiling", value.Real{V: 3.1}); got != (value.Int{V: 4}) {
		t.Errorf("ceiling(3.1) = %v, want 4", got)
	}
	if got := call(t, r, "round", value.Real{V: 3.5}); got != (value.Int{V: 4}) {
		t.Errorf("round(3.5) = %v, want 4", got)
	}
	if got := call(t, r, "floor", value.Int{V: 5}); got != (value.Int{V: 5}) {
		t.Errorf("floor(5) = %v, want 5", got)
	}
}

func TestPow(t *testing.T) {
	r := builtins.Default()
	got := call(t, r, "pow", value.Int{V: 2}, value.Int{V: 10})
	if got != (value.Real{V: 1024}) {
		t.Errorf("pow(2, 10) = %v, want 1024", got)
	}
}

func TestQuantizeNumericStep(t *testing.T) {
	r := builtins.Default()
	got := call(t, r, "quantize", value.Int{V: 13}, value.Int{V: 5})
	if got != (value.Int{V: 15}) {
		t.Errorf("quantize(13, 5) = %v, want 15", got)
	}
}

func TestQuantizeListStep(t *testing.T) {
	r := builtins.Default()
	list := value.List{Elements: []value.Value{value.Int{V: 1}, value.Int{V: 2}, value.Int{V: 4}}}
	got := call(t, r, "quantize", value.Int{V: 3}, list)
	if got != (value.Int{V: 4}) {
		t.Errorf("quantize(3, {1,2,4}) = %v, want 4", got)
	}
}

func TestRandomBounds(t *testing.T) {
	r := builtins.Default()
	got := call(t, r, "random", value.Int{V: 10})
	n, ok := got.(value.Int)
	if !ok {
		t.Fatalf("random(10) = %v, want Int", got)
	}
	if n.V < 0 || n.V >= 10 {
		t.Errorf("random(10) = %d, want in [0, 10)", n.V)
	}
	if got := call(t, r, "random", value.Int{V: 0}); !isError(got) {
		t.Errorf("random(0) = %v, want Error", got)
	}
}

func TestStrcat(t *testing.T) {
	r := builtins.Default()
	got := call(t, r, "strcat", value.Str{V: "a"}, value.Int{V: 1}, value.Str{V: "b"})
	if got != (value.Str{V: "a1b"}) {
		t.Errorf("strcat(...) = %v, want \"a1b\"", got)
	}
	if got := call(t, r, "strcat", value.Undefined{}); !isError(got) {
		t.Errorf("strcat(undefined) = %v, want Error", got)
	}
}

func TestJoin(t *testing.T) {
	r := builtins.Default()
	list := value.List{Elements: []value.Value{value.Str{V: "a"}, value.Str{V: "b"}, value.Str{V: "c"}}}
	got := call(t, r, "join", value.Str{V: "-"}, list)
	if got != (value.Str{V: "a-b-c"}) {
		t.Errorf("join(\"-\", list) = %v, want \"a-b-c\"", got)
	}
	got = call(t, r, "join", value.Str{V: ","}, value.Str{V: "x"}, value.Str{V: "y"})
	if got != (value.Str{V: "x,y"}) {
		t.Errorf("join(\",\", x, y) = %v, want \"x,y\"", got)
	}
}

func TestSplit(t *testing.T) {
	r := builtins.Default()
	got := call(t, r, "split", value.Str{V: "a b  c"})
	list, ok := got.(value.List)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("split(\"a b  c\") = %v, want 3-element list", got)
	}
	got = call(t, r, "split", value.Str{V: "a,b;c"}, value.Str{V: ",;"})
	list, ok = got.(value.List)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("split with charset = %v, want 3-element list", got)
	}
}

func TestSize(t *testing.T) {
	r := builtins.Default()
	if got := call(t, r, "size", value.Str{V: "hello"}); got != (value.Int{V: 5}) {
		t.Errorf("size(\"hello\") = %v, want 5", got)
	}
	list := value.List{Elements: []value.Value{value.Int{V: 1}, value.Int{V: 2}}}
	if got := call(t, r, "size", list); got != (value.Int{V: 2}) {
		t.Errorf("size(list) = %v, want 2", got)
	}
}

func TestSubstr(t *testing.T) {
	r := builtins.Default()
	if got := call(t, r, "substr", value.Str{V: "classad"}, value.Int{V: 0}, value.Int{V: 5}); got != (value.Str{V: "class"}) {
		t.Errorf("substr = %v, want \"class\"", got)
	}
	if got := call(t, r, "substr", value.Str{V: "classad"}, value.Int{V: -2}); got != (value.Str{V: "ad"}) {
		t.Errorf("substr with negative start = %v, want \"ad\"", got)
	}
}

func TestStrcmpCaseSensitivity(t *testing.T) {
	r := builtins.Default()
	if got := call(t, r, "strcmp", value.Str{V: "ABC"}, value.Str{V: "abc"}); got == (value.Int{V: 0}) {
		t.Errorf("strcmp(\"ABC\", \"abc\") = 0, want nonzero")
	}
	if got := call(t, r, "stricmp", value.Str{V: "ABC"}, value.Str{V: "abc"}); got != (value.Int{V: 0}) {
		t.Errorf("stricmp(\"ABC\", \"abc\") = %v, want 0", got)
	}
}

func TestCaseConversion(t *testing.T) {
	r := builtins.Default()
	if got := call(t, r, "toUpper", value.Str{V: "abc"}); got != (value.Str{V: "ABC"}) {
		t.Errorf("toUpper(\"abc\") = %v, want \"ABC\"", got)
	}
	if got := call(t, r, "toLower", value.Str{V: "ABC"}); got != (value.Str{V: "abc"}) {
		t.Errorf("toLower(\"ABC\") = %v, want \"abc\"", got)
	}
}

func TestUnknownBuiltinIsError(t *testing.T) {
	r := builtins.Default()
	if got := call(t, r, "notARealFunction", value.Int{V: 1}); !isError(got) {
		t.Errorf("notARealFunction(1) = %v, want Error", got)
	}
}

func TestStubbedBuiltinsAlwaysError(t *testing.T) {
	r := builtins.Default()
	for _, name := range []string{"time", "strftime", "regexp", "interval"} {
		if got := call(t, r, name); !isError(got) {
			t.Errorf("%s() = %v, want Error", name, got)
		}
	}
}

func isError(v value.Value) bool {
	_, ok := v.(value.Error)
	return ok
}
