package callables

import (
	"math/big"
	"testing"

	"miniclj/value"
)

func TestNumberCastParsesRationalLiteral(t *testing.T) {
	got, err := (NumberCast{}).Execute(nil, []value.Value{value.NewString("3/4")})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := big.NewRat(3, 4); ratOf(t, got).Cmp(want) != 0 {
		t.Errorf("(num \"3/4\") = %v, want %v", ratOf(t, got), want)
	}
}

func TestNumberCastRejectsGarbage(t *testing.T) {
	if _, err := (NumberCast{}).Execute(nil, []value.Value{value.NewString("not a number")}); err == nil {
		t.Error("expected an error parsing a non-numeric string")
	}
}

func TestStringCastTreatsNilAsEmpty(t *testing.T) {
	got, err := (StringCast{}).Execute(nil, []value.Value{value.NewString("a"), value.Nil, value.NewInt(1)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if s, ok := got.Str(); !ok || s != "a1" {
		t.Errorf("(str \"a\" nil 1) = %v, %v; want \"a1\", true", s, ok)
	}
}

func TestOrdAndChrRoundTrip(t *testing.T) {
	ord, err := (Ord{}).Execute(nil, []value.Value{value.NewString("A")})
	if err != nil {
		t.Fatalf("Ord.Execute: %v", err)
	}
	n, ok := ord.Rat()
	if !ok || n.Num().Int64() != 65 {
		t.Fatalf("(ord \"A\") = %v, want 65", ord)
	}

	chr, err := (Chr{}).Execute(nil, []value.Value{value.NewInt(65)})
	if err != nil {
		t.Fatalf("Chr.Execute: %v", err)
	}
	if s, ok := chr.Str(); !ok || s != "A" {
		t.Errorf("(chr 65) = %v, %v; want \"A\", true", s, ok)
	}
}

func TestOrdRejectsEmptyString(t *testing.T) {
	if _, err := (Ord{}).Execute(nil, []value.Value{value.NewString("")}); err == nil {
		t.Error("expected an error taking ord of an empty string")
	}
}

func TestChrRejectsNegativeAndFractional(t *testing.T) {
	if _, err := (Chr{}).Execute(nil, []value.Value{value.NewInt(-1)}); err == nil {
		t.Error("expected an error for a negative codepoint")
	}
	frac := value.NewNumber(big.NewRat(1, 2))
	if _, err := (Chr{}).Execute(nil, []value.Value{frac}); err == nil {
		t.Error("expected an error for a fractional codepoint")
	}
}
