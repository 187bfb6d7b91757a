// Package parser implements a recursive-descent reader for the language's
// S-expression source surface.
//
// Unlike a conventional expression parser, S-expressions have no infix
// operators to climb: every compound form is delimited by a bracket pair,
// so parsing a form is just "read until the matching close bracket". The
// entry point, ParseProgram, reads a sequence of top-level forms until EOF.
package parser

import (
	"fmt"
	"math/big"

	"miniclj/lexer"
	"miniclj/sexpr"
	"miniclj/token"
)

// Parser turns a token stream into a sequence of sexpr.SExpr forms,
// accumulating syntax errors rather than stopping at the first one so a
// single `check` invocation can report everything wrong with a file.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseProgram reads every top-level form in the input.
func (p *Parser) ParseProgram() []sexpr.SExpr {
	var forms []sexpr.SExpr
	for p.curToken.Type != token.EOF {
		form, ok := p.parseForm()
		if ok {
			forms = append(forms, form)
		} else {
			p.nextToken()
		}
	}
	return forms
}

// parseForm reads one S-expression starting at the current token.
func (p *Parser) parseForm() (sexpr.SExpr, bool) {
	switch p.curToken.Type {
	case token.LPAREN:
		return p.parseCompound(token.RPAREN, sexpr.NewExpr)
	case token.HASH_LPAREN:
		return p.parseCompound(token.RPAREN, sexpr.NewShortLambda)
	case token.LBRACKET:
		return p.parseCompound(token.RBRACKET, sexpr.NewVector)
	case token.HASH_LBRACE:
		return p.parseCompound(token.RBRACE, sexpr.NewSet)
	case token.LBRACE:
		return p.parseCompound(token.RBRACE, sexpr.NewMap)
	case token.QUOTE:
		p.nextToken()
		if p.curToken.Type != token.LPAREN {
			p.errorf("expected '(' after quote, got %s", p.curToken.Literal)
			return sexpr.SExpr{}, false
		}
		return p.parseCompound(token.RPAREN, sexpr.NewList)
	case token.IDENT:
		lit := p.curToken.Literal
		p.nextToken()
		return sexpr.NewSymbol(lit), true
	case token.STRING:
		lit := p.curToken.Literal
		p.nextToken()
		return sexpr.NewString(lit), true
	case token.NUMBER:
		n, err := parseRational(p.curToken.Literal)
		if err != nil {
			p.errorf("invalid number literal %q: %s", p.curToken.Literal, err)
			p.nextToken()
			return sexpr.SExpr{}, false
		}
		p.nextToken()
		return sexpr.NewNumber(n), true
	case token.NIL:
		p.nextToken()
		return sexpr.NewNil(), true
	case token.ILLEGAL:
		p.errorf("illegal token: %s", p.curToken.Literal)
		p.nextToken()
		return sexpr.SExpr{}, false
	default:
		p.errorf("unexpected token %q", p.curToken.Literal)
		return sexpr.SExpr{}, false
	}
}

// parseCompound reads forms until the closing token, then builds a node via
// build. The opening token has already been consumed by the caller's
// dispatch in parseForm; here we advance past it and collect children.
func (p *Parser) parseCompound(closing token.Type, build func([]sexpr.SExpr) sexpr.SExpr) (sexpr.SExpr, bool) {
	p.nextToken() // consume the opening delimiter
	var children []sexpr.SExpr
	for p.curToken.Type != closing {
		if p.curToken.Type == token.EOF {
			p.errorf("unexpected end of input, expected %q", closing)
			return sexpr.SExpr{}, false
		}
		child, ok := p.parseForm()
		if !ok {
			return sexpr.SExpr{}, false
		}
		children = append(children, child)
	}
	p.nextToken() // consume the closing delimiter
	return build(children), true
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

// parseRational parses a literal shaped like "3", "-2", or "3/4" into an
// exact rational.
func parseRational(lit string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, fmt.Errorf("not a valid rational")
	}
	return r, nil
}
