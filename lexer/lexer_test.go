package lexer

import (
	"testing"

	"miniclj/token"
)

func TestNextToken(t *testing.T) {
	input := `(defn add [x y] (+ x y))
[1 2 3]
#{1 2}
#(inc %)
'(1 2)
"foo bar"
-3/4
nil
true?`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LPAREN, "("},
		{token.IDENT, "defn"},
		{token.IDENT, "add"},
		{token.LBRACKET, "["},
		{token.IDENT, "x"},
		{token.IDENT, "y"},
		{token.RBRACKET, "]"},
		{token.LPAREN, "("},
		{token.IDENT, "+"},
		{token.IDENT, "x"},
		{token.IDENT, "y"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
		{token.LBRACKET, "["},
		{token.NUMBER, "1"},
		{token.NUMBER, "2"},
		{token.NUMBER, "3"},
		{token.RBRACKET, "]"},
		{token.HASH_LBRACE, "#{"},
		{token.NUMBER, "1"},
		{token.NUMBER, "2"},
		{token.RBRACE, "}"},
		{token.HASH_LPAREN, "#("},
		{token.IDENT, "inc"},
		{token.IDENT, "%"},
		{token.RPAREN, ")"},
		{token.QUOTE, "'"},
		{token.LPAREN, "("},
		{token.NUMBER, "1"},
		{token.NUMBER, "2"},
		{token.RPAREN, ")"},
		{token.STRING, "foo bar"},
		{token.NUMBER, "-3/4"},
		{token.NIL, "nil"},
		{token.IDENT, "true?"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%q, got=%q (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestSkipsComments(t *testing.T) {
	l := New("; a comment\n(+ 1 2) ; trailing\n")
	var types []token.Type
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	want := []token.Type{token.LPAREN, token.IDENT, token.NUMBER, token.NUMBER, token.RPAREN, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, types[i], want[i])
		}
	}
}
