package value

import "testing"

func TestEqualSameVariant(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null", Null, Null, true},
		{"bool true", True, True, true},
		{"bool mismatch", True, False, false},
		{"int equal", IntValue{Value: 5}, IntValue{Value: 5}, true},
		{"int unequal", IntValue{Value: 5}, IntValue{Value: 6}, false},
		{"float equal", FloatValue{Value: 1.5}, FloatValue{Value: 1.5}, true},
		{"string equal", StringValue{Value: "hi"}, StringValue{Value: "hi"}, true},
		{"string unequal", StringValue{Value: "hi"}, StringValue{Value: "lo"}, false},
		{"identifier equal", IdentifierValue{Name: "x"}, IdentifierValue{Name: "x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualCrossVariantIsAlwaysFalse(t *testing.T) {
	if Equal(IntValue{Value: 1}, FloatValue{Value: 1.0}) {
		t.Error("Int and Float must never compare equal, even for equal magnitudes")
	}
	if Equal(StringValue{Value: "1"}, IntValue{Value: 1}) {
		t.Error("String and Int must never compare equal")
	}
}

func TestEqualArrayStructural(t *testing.T) {
	a := &ArrayValue{Elements: []Value{IntValue{Value: 1}, StringValue{Value: "x"}}}
	b := &ArrayValue{Elements: []Value{IntValue{Value: 1}, StringValue{Value: "x"}}}
	c := &ArrayValue{Elements: []Value{IntValue{Value: 1}, StringValue{Value: "y"}}}

	if !Equal(a, b) {
		t.Error("arrays with equal elements must be Equal, not identity-compared")
	}
	if Equal(a, c) {
		t.Error("arrays differing in one element must not be Equal")
	}
}

func TestEqualDictIgnoresInsertionOrder(t *testing.T) {
	d1 := NewDict()
	_ = d1.Set(StringValue{Value: "a"}, IntValue{Value: 1})
	_ = d1.Set(StringValue{Value: "b"}, IntValue{Value: 2})

	d2 := NewDict()
	_ = d2.Set(StringValue{Value: "b"}, IntValue{Value: 2})
	_ = d2.Set(StringValue{Value: "a"}, IntValue{Value: 1})

	if !Equal(d1, d2) {
		t.Error("dicts with the same pairs inserted in different order must be Equal (§8 invariant 5)")
	}
}

func TestEqualQuoteStructural(t *testing.T) {
	q1 := &QuoteValue{Inner: IdentifierValue{Name: "x"}}
	q2 := &QuoteValue{Inner: IdentifierValue{Name: "x"}}
	q3 := &QuoteValue{Inner: IdentifierValue{Name: "y"}}

	if !Equal(q1, q2) {
		t.Error("quotes wrapping equal inner values must be Equal")
	}
	if Equal(q1, q3) {
		t.Error("quotes wrapping different inner values must not be Equal")
	}
}

func TestEqualFuncIsIdentity(t *testing.T) {
	fn := func(args []Value, env *Environment) (Value, error) { return Null, nil }
	f1 := &FuncValue{Name: "f", Fn: fn}
	f2 := &FuncValue{Name: "f", Fn: fn}
	other := &FuncValue{Name: "g", Fn: func(args []Value, env *Environment) (Value, error) { return Null, nil }}

	if !Equal(f1, f2) {
		t.Error("FuncValues sharing the same underlying function must be Equal")
	}
	if Equal(f1, other) {
		t.Error("FuncValues with distinct underlying functions must not be Equal")
	}
}

func TestEqualReflexiveForHashableKinds(t *testing.T) {
	// §8 invariant 6: (= x x) holds for every hashable x.
	xs := []Value{
		Null, True, False,
		IntValue{Value: 7}, FloatValue{Value: 3.14}, StringValue{Value: "s"},
		IdentifierValue{Name: "id"}, &QuoteValue{Inner: IntValue{Value: 1}},
	}
	for _, x := range xs {
		if !Equal(x, x) {
			t.Errorf("Equal(%s, %s) = false, want true", x, x)
		}
	}
}
