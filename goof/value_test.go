package goof

import (
	"math"
	"testing"
)

func TestValueToText(t *testing.T) {
	tenth := 0.1
	tests := []struct {
		value Value
		want  string
	}{
		{NewInt(42), "42"},
		{NewInt(-7), "-7"},
		{NewFloat(3.05), "3.05"},
		{NewFloat(2), "2"},
		{NewFloat(tenth + 0.2), "0.30000000000000004"},
		{NewFloat(1e21), "1000000000000000000000"},
		{NewFloat(math.Inf(1)), "inf"},
		{NewFloat(math.Inf(-1)), "-inf"},
		{NewFloat(math.NaN()), "NaN"},
		{NewChoice(true), "yes"},
		{NewChoice(false), "no"},
		{NewText("hi"), "hi"},
		{NewNothing(), "nothing"},
		{Value{}, "nothing"},
	}

	for _, tt := range tests {
		got := tt.value.ToText()
		if got.Kind() != KindText || got.Text() != tt.want {
			t.Fatalf("ToText(%v): got %q (%s) want %q", tt.value, got.Text(), got.Kind(), tt.want)
		}
	}
}

func TestValueToChoice(t *testing.T) {
	tests := []struct {
		value Value
		want  bool
	}{
		{NewInt(0), false},
		{NewInt(-3), true},
		{NewFloat(0), false},
		{NewFloat(0.5), true},
		{NewText(""), false},
		{NewText("no"), true},
		{NewChoice(true), true},
		{NewChoice(false), false},
		{NewNothing(), false},
	}

	for _, tt := range tests {
		got := tt.value.ToChoice()
		if got.Kind() != KindChoice || got.Choice() != tt.want {
			t.Fatalf("ToChoice(%s %v): got %v want %v", tt.value.Kind(), tt.value, got, tt.want)
		}
	}
}

func TestValueToNumber(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		kind  ValueKind
		num   float64
	}{
		{"yes is zero", NewChoice(true), KindInt, 0},
		{"no is one", NewChoice(false), KindInt, 1},
		{"int unchanged", NewInt(9), KindInt, 9},
		{"float unchanged", NewFloat(1.5), KindFloat, 1.5},
		{"int text", NewText("-12"), KindInt, -12},
		{"float text", NewText("2.25"), KindFloat, 2.25},
		{"exponent text", NewText("1e3"), KindFloat, 1000},
		{"overflowing exponent", NewText("1e400"), KindFloat, math.Inf(1)},
		{"negative overflow", NewText("-1e400"), KindFloat, math.Inf(-1)},
		{"too large for int", NewText("99999999999999999999"), KindFloat, 1e20},
		{"nothing is zero", NewNothing(), KindInt, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.value.ToNumber()
			if got.Kind() != tt.kind || got.Float() != tt.num {
				t.Fatalf("got %s %v want %s %v", got.Kind(), got, tt.kind, tt.num)
			}
		})
	}

	for _, input := range []string{"", "abc", " 5", "5 ", "3 dot 1", "0x1p3", "0x10", "-0X1p2", "+0x8"} {
		if got := NewText(input).ToNumber(); !got.IsNothing() {
			t.Fatalf("ToNumber(%q): expected nothing, got %s %v", input, got.Kind(), got)
		}
	}
}

func TestChoiceNumberMappingIsInverted(t *testing.T) {
	values := []Value{
		NewInt(0), NewInt(5), NewFloat(0), NewFloat(-1.5),
		NewText(""), NewText("x"), NewChoice(true), NewChoice(false), NewNothing(),
	}
	for _, v := range values {
		want := int64(1)
		if v.ToChoice().Choice() {
			want = 0
		}
		got := v.ToChoice().ToNumber()
		if got.Kind() != KindInt || got.Int() != want {
			t.Fatalf("num choice %v: got %v want %d", v, got, want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		left, right Value
		want        bool
	}{
		{NewInt(5), NewFloat(5), true},
		{NewInt(5), NewInt(6), false},
		{NewFloat(0.5), NewFloat(0.5), true},
		{NewText("a"), NewText("a"), true},
		{NewText("1"), NewInt(1), false},
		{NewChoice(true), NewChoice(true), true},
		{NewChoice(true), NewInt(0), false},
		{NewNothing(), NewNothing(), false},
		{NewFloat(math.NaN()), NewFloat(math.NaN()), false},
		{NewInt(math.MaxInt64), NewInt(math.MaxInt64 - 1), false},
	}

	for _, tt := range tests {
		if got := tt.left.Equal(tt.right); got != tt.want {
			t.Fatalf("%s %v is %s %v: got %v want %v", tt.left.Kind(), tt.left, tt.right.Kind(), tt.right, got, tt.want)
		}
		if got := tt.right.Equal(tt.left); got != tt.want {
			t.Fatalf("equality is not symmetric for %v and %v", tt.left, tt.right)
		}
	}
}

func TestEnvNamesAreSorted(t *testing.T) {
	env := NewEnv()
	env.Set("zeta", NewInt(1))
	env.Set("alpha", NewInt(2))
	env.Set("zeta", NewInt(3))

	if env.Len() != 2 {
		t.Fatalf("expected 2 bindings, got %d", env.Len())
	}
	names := env.Names()
	if names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("unexpected names: %v", names)
	}
	if v, _ := env.Get("zeta"); v.Int() != 3 {
		t.Fatalf("set did not overwrite: %v", v)
	}
	if _, ok := env.Get("missing"); ok {
		t.Fatalf("expected missing binding")
	}
}
