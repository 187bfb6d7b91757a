package parser

import (
	"testing"

	"miniclj/lexer"
	"miniclj/sexpr"
)

func parseOne(t *testing.T, src string) sexpr.SExpr {
	t.Helper()
	p := New(lexer.New(src))
	forms := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	if len(forms) != 1 {
		t.Fatalf("expected exactly one form, got %d", len(forms))
	}
	return forms[0]
}

func TestParseCallExpr(t *testing.T) {
	form := parseOne(t, "(+ 1 2)")
	if form.Kind != sexpr.Expr {
		t.Fatalf("Kind = %v, want Expr", form.Kind)
	}
	if len(form.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(form.Children))
	}
	if form.Children[0].Kind != sexpr.Symbol || form.Children[0].Sym != "+" {
		t.Errorf("head = %v, want symbol +", form.Children[0])
	}
}

func TestParseVector(t *testing.T) {
	form := parseOne(t, "[1 2 3]")
	if form.Kind != sexpr.Vector {
		t.Fatalf("Kind = %v, want Vector", form.Kind)
	}
	if len(form.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(form.Children))
	}
}

func TestParseSet(t *testing.T) {
	form := parseOne(t, "#{1 2}")
	if form.Kind != sexpr.Set {
		t.Fatalf("Kind = %v, want Set", form.Kind)
	}
}

func TestParseShortLambda(t *testing.T) {
	form := parseOne(t, "#(+ % 1)")
	if form.Kind != sexpr.ShortLambda {
		t.Fatalf("Kind = %v, want ShortLambda", form.Kind)
	}
}

func TestParseQuotedList(t *testing.T) {
	form := parseOne(t, "'(1 2)")
	if form.Kind != sexpr.List {
		t.Fatalf("Kind = %v, want List", form.Kind)
	}
}

func TestParseNestedForms(t *testing.T) {
	form := parseOne(t, "(defn add [x y] (+ x y))")
	if form.Kind != sexpr.Expr || len(form.Children) != 4 {
		t.Fatalf("unexpected top-level shape: %+v", form)
	}
	if form.Children[2].Kind != sexpr.Vector {
		t.Errorf("args = %v, want Vector", form.Children[2].Kind)
	}
	if form.Children[3].Kind != sexpr.Expr {
		t.Errorf("body = %v, want Expr", form.Children[3].Kind)
	}
}

func TestParseAtoms(t *testing.T) {
	tests := []struct {
		src  string
		kind sexpr.Kind
	}{
		{"nil", sexpr.Nil},
		{"foo", sexpr.Symbol},
		{`"hi"`, sexpr.String},
		{"3/4", sexpr.Number},
		{"-5", sexpr.Number},
	}
	for _, tt := range tests {
		form := parseOne(t, tt.src)
		if form.Kind != tt.kind {
			t.Errorf("parsing %q: Kind = %v, want %v", tt.src, form.Kind, tt.kind)
		}
	}
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	p := New(lexer.New("(def x 1)\n(def y 2)"))
	forms := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	if len(forms) != 2 {
		t.Fatalf("expected 2 top-level forms, got %d", len(forms))
	}
}

func TestParseUnbalancedParenReportsError(t *testing.T) {
	p := New(lexer.New("(+ 1 2"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Error("expected a syntax error for an unclosed form")
	}
}

func TestParseAccumulatesMultipleErrors(t *testing.T) {
	p := New(lexer.New(")\n)"))
	p.ParseProgram()
	if len(p.Errors()) != 2 {
		t.Errorf("expected 2 accumulated errors (one per stray close-paren), got %d: %v", len(p.Errors()), p.Errors())
	}
}
