package callables

import (
	"math/big"
	"testing"

	"miniclj/value"
)

func ratOf(t *testing.T, v value.Value) *big.Rat {
	t.Helper()
	r, ok := v.Rat()
	if !ok {
		t.Fatalf("%v is not a number", v)
	}
	return r
}

func TestAddSumsArgsAndDefaultsToZero(t *testing.T) {
	got, err := (Add{}).Execute(nil, []value.Value{value.NewInt(2), value.NewInt(3)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := big.NewRat(5, 1); ratOf(t, got).Cmp(want) != 0 {
		t.Errorf("(+ 2 3) = %v, want %v", ratOf(t, got), want)
	}
	got, err = (Add{}).Execute(nil, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := big.NewRat(0, 1); ratOf(t, got).Cmp(want) != 0 {
		t.Errorf("(+) = %v, want 0", ratOf(t, got))
	}
}

func TestSubNegatesSingleArgument(t *testing.T) {
	got, err := (Sub{}).Execute(nil, []value.Value{value.NewInt(5)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := big.NewRat(-5, 1); ratOf(t, got).Cmp(want) != 0 {
		t.Errorf("(- 5) = %v, want -5", ratOf(t, got))
	}
}

func TestSubRejectsEmptyArgs(t *testing.T) {
	if _, err := (Sub{}).Execute(nil, nil); err == nil {
		t.Error("expected an error calling - with no arguments")
	}
}

func TestMulDefaultsToOne(t *testing.T) {
	got, err := (Mul{}).Execute(nil, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := big.NewRat(1, 1); ratOf(t, got).Cmp(want) != 0 {
		t.Errorf("(*) = %v, want 1", ratOf(t, got))
	}
}

func TestDivReciprocatesSingleArgument(t *testing.T) {
	got, err := (Div{}).Execute(nil, []value.Value{value.NewInt(4)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := big.NewRat(1, 4); ratOf(t, got).Cmp(want) != 0 {
		t.Errorf("(/ 4) = %v, want 1/4", ratOf(t, got))
	}
}

func TestDivByZeroErrors(t *testing.T) {
	if _, err := (Div{}).Execute(nil, []value.Value{value.NewInt(1), value.NewInt(0)}); err == nil {
		t.Error("expected a division-by-zero error")
	}
	if _, err := (Div{}).Execute(nil, []value.Value{value.NewInt(0)}); err == nil {
		t.Error("expected a division-by-zero error reciprocating zero")
	}
}

func TestArithmeticRejectsNonNumbers(t *testing.T) {
	if _, err := (Add{}).Execute(nil, []value.Value{value.NewString("x")}); err == nil {
		t.Error("expected an error summing a non-number")
	}
}
