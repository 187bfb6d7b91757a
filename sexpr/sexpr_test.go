package sexpr

import (
	"math/big"
	"testing"
)

func TestIsAtom(t *testing.T) {
	tests := []struct {
		name string
		e    SExpr
		want bool
	}{
		{"symbol", NewSymbol("x"), true},
		{"string", NewString("x"), true},
		{"number", NewNumber(big.NewRat(1, 1)), true},
		{"nil", NewNil(), true},
		{"expr", NewExpr(nil), false},
		{"vector", NewVector(nil), false},
	}
	for _, tt := range tests {
		if got := tt.e.IsAtom(); got != tt.want {
			t.Errorf("%s.IsAtom() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTypeStr(t *testing.T) {
	if got, want := NewSymbol("x").TypeStr(), "a symbol"; got != want {
		t.Errorf("TypeStr() = %q, want %q", got, want)
	}
	if got, want := NewNil().TypeStr(), "nil"; got != want {
		t.Errorf("TypeStr() = %q, want %q", got, want)
	}
}

func TestStringRoundTripsSourceShape(t *testing.T) {
	tests := []struct {
		e    SExpr
		want string
	}{
		{NewExpr([]SExpr{NewSymbol("+"), NewNumber(big.NewRat(1, 1))}), "(+ 1)"},
		{NewVector([]SExpr{NewNumber(big.NewRat(1, 1)), NewNumber(big.NewRat(2, 1))}), "[1 2]"},
		{NewSet([]SExpr{NewNumber(big.NewRat(1, 1))}), "#{1}"},
		{NewList([]SExpr{NewNumber(big.NewRat(1, 1))}), "'(1)"},
		{NewShortLambda([]SExpr{NewSymbol("%")}), "#(%)"},
		{NewNil(), "nil"},
		{NewString("hi"), `"hi"`},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
