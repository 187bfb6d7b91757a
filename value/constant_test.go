package value

import "testing"

func TestConstantToValue(t *testing.T) {
	c := ConstString("hello")
	v := c.ToValue()
	if s, ok := v.Str(); !ok || s != "hello" {
		t.Errorf("ToValue().Str() = %v, %v; want hello, true", s, ok)
	}
}

func TestConstantDisplayQuotesStrings(t *testing.T) {
	c := ConstString("hi")
	if got, want := c.Display(), `"hi"`; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
	if got, want := NilConstant.Display(), "nil"; got != want {
		t.Errorf("NilConstant.Display() = %q, want %q", got, want)
	}
	if got, want := ConstLambda(3, 1).Display(), "fn@3@1"; got != want {
		t.Errorf("ConstLambda.Display() = %q, want %q", got, want)
	}
}

func TestConstantEqual(t *testing.T) {
	a := ConstCallable("+")
	b := ConstCallable("+")
	c := ConstCallable("-")
	if !a.Equal(b) {
		t.Error("constants with the same callable name should be equal")
	}
	if a.Equal(c) {
		t.Error("constants with different callable names should not be equal")
	}
}

func TestConstantKind(t *testing.T) {
	if ConstString("x").Kind() != KindString {
		t.Error("ConstString should report KindString")
	}
	if NilConstant.Kind() != KindNil {
		t.Error("NilConstant should report KindNil")
	}
}
