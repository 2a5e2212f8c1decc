package value

import "testing"

func TestShortCircuitAnd(t *testing.T) {
	if v, ok := ShortCircuitAnd(Bool{V: false}); !ok || v != (Bool{V: false}) {
		t.Errorf("ShortCircuitAnd(false) = %#v, %v", v, ok)
	}
	if v, ok := ShortCircuitAnd(Error{}); !ok || v != (Error{}) {
		t.Errorf("ShortCircuitAnd(error) = %#v, %v", v, ok)
	}
	if _, ok := ShortCircuitAnd(Bool{V: true}); ok {
		t.Errorf("ShortCircuitAnd(true) should not short-circuit")
	}
	if _, ok := ShortCircuitAnd(Undefined{}); ok {
		t.Errorf("ShortCircuitAnd(undefined) should not short-circuit")
	}
}

func TestAnd(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want Value
	}{
		{"true && true", Bool{V: true}, Bool{V: true}, Bool{V: true}},
		{"true && false", Bool{V: true}, Bool{V: false}, Bool{V: false}},
		{"true && undefined", Bool{V: true}, Undefined{}, Undefined{}},
		{"undefined && false absorbs to false", Undefined{}, Bool{V: false}, Bool{V: false}},
		{"undefined && true stays undefined", Undefined{}, Bool{V: true}, Undefined{}},
		{"undefined && undefined", Undefined{}, Undefined{}, Undefined{}},
		{"true && error", Bool{V: true}, Error{}, Error{}},
		{"true && string is error", Bool{V: true}, Str{V: "x"}, Error{}},
		{"int && false is error", Int{V: 5}, Bool{V: false}, Error{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := And(c.a, c.b); got != c.want {
				t.Errorf("And(%#v, %#v) = %#v, want %#v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestShortCircuitOr(t *testing.T) {
	if v, ok := ShortCircuitOr(Bool{V: true}); !ok || v != (Bool{V: true}) {
		t.Errorf("ShortCircuitOr(true) = %#v, %v", v, ok)
	}
	if v, ok := ShortCircuitOr(Error{}); !ok || v != (Error{}) {
		t.Errorf("ShortCircuitOr(error) = %#v, %v", v, ok)
	}
	if _, ok := ShortCircuitOr(Bool{V: false}); ok {
		t.Errorf("ShortCircuitOr(false) should not short-circuit")
	}
}

func TestOr(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want Value
	}{
		{"false || true", Bool{V: false}, Bool{V: true}, Bool{V: true}},
		{"false || false", Bool{V: false}, Bool{V: false}, Bool{V: false}},
		{"false || undefined", Bool{V: false}, Undefined{}, Undefined{}},
		{"undefined || true absorbs to true", Undefined{}, Bool{V: true}, Bool{V: true}},
		{"undefined || false stays undefined", Undefined{}, Bool{V: false}, Undefined{}},
		{"false || error", Bool{V: false}, Error{}, Error{}},
		{"string || true is error", Str{V: "x"}, Bool{V: true}, Error{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Or(c.a, c.b); got != c.want {
				t.Errorf("Or(%#v, %#v) = %#v, want %#v", c.a, c.b, got, c.want)
			}
		})
	}
}
