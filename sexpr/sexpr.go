// Package sexpr defines the S-expression tree the parser produces and the
// compiler consumes.
//
// This is the contract between the two: call expression, short lambda,
// quoted list, vector/set/map literals, and literal atoms (symbol, string,
// rational number, nil). The concrete grammar that produces this tree lives
// in the lexer and parser packages; this package only defines the shape.
package sexpr

import (
	"fmt"
	"math/big"
	"strings"
)

// Kind tags which variant of SExpr a node is.
type Kind uint8

const (
	// Expr is a call form: (head args...).
	Expr Kind = iota
	// ShortLambda is a #(...) form.
	ShortLambda
	// List is a quoted list literal: '(...).
	List
	// Vector is a [...] literal.
	Vector
	// Set is a #{...} literal.
	Set
	// Map is a {...} literal, read as a flat child list of alternating
	// key/value forms.
	Map
	// Symbol is an identifier atom.
	Symbol
	// String is a string literal atom, carrying its escape sequences
	// exactly as authored (undecoded).
	String
	// Number is a rational literal atom.
	Number
	// Nil is the literal nil atom.
	Nil
)

// SExpr is one node of the parsed tree. Children is populated for the
// compound kinds (Expr, ShortLambda, List, Vector, Set, Map); Sym/Str/Num
// are populated for the corresponding atom kinds.
type SExpr struct {
	Kind     Kind
	Children []SExpr
	Sym      string
	Str      string
	Num      *big.Rat
}

// NewExpr builds a call-expression node.
func NewExpr(children []SExpr) SExpr { return SExpr{Kind: Expr, Children: children} }

// NewShortLambda builds a #(...) node.
func NewShortLambda(children []SExpr) SExpr { return SExpr{Kind: ShortLambda, Children: children} }

// NewList builds a quoted list literal node.
func NewList(children []SExpr) SExpr { return SExpr{Kind: List, Children: children} }

// NewVector builds a vector literal node.
func NewVector(children []SExpr) SExpr { return SExpr{Kind: Vector, Children: children} }

// NewSet builds a set literal node.
func NewSet(children []SExpr) SExpr { return SExpr{Kind: Set, Children: children} }

// NewMap builds a map literal node from a flat alternating key/value child
// list; the caller (the parser) is responsible for rejecting odd lengths
// before constructing this if it wants an early syntax error, though the
// compiler also validates arity.
func NewMap(children []SExpr) SExpr { return SExpr{Kind: Map, Children: children} }

// NewSymbol builds a symbol atom.
func NewSymbol(name string) SExpr { return SExpr{Kind: Symbol, Sym: name} }

// NewString builds a string atom, str carrying escape sequences undecoded.
func NewString(str string) SExpr { return SExpr{Kind: String, Str: str} }

// NewNumber builds a rational number atom.
func NewNumber(n *big.Rat) SExpr { return SExpr{Kind: Number, Num: n} }

// NewNil builds the nil atom.
func NewNil() SExpr { return SExpr{Kind: Nil} }

// IsAtom reports whether the node is a leaf (Symbol, String, Number, Nil).
func (e SExpr) IsAtom() bool {
	switch e.Kind {
	case Symbol, String, Number, Nil:
		return true
	default:
		return false
	}
}

// TypeStr names the node's kind the way compile-error messages quote it.
func (e SExpr) TypeStr() string {
	switch e.Kind {
	case Expr:
		return "a s-expression"
	case ShortLambda:
		return "a lambda function"
	case List:
		return "a list"
	case Vector:
		return "a vector"
	case Set:
		return "a set"
	case Map:
		return "a map"
	case Symbol:
		return "a symbol"
	case String:
		return "a string"
	case Number:
		return "a number"
	case Nil:
		return "nil"
	default:
		return "an unknown form"
	}
}

// String renders the node back into source-like text, used by the `ast` CLI
// subcommand and by diagnostics.
func (e SExpr) String() string {
	switch e.Kind {
	case Expr:
		return wrap("(", ")", e.Children)
	case ShortLambda:
		return "#" + wrap("(", ")", e.Children)
	case List:
		return "'" + wrap("(", ")", e.Children)
	case Vector:
		return wrap("[", "]", e.Children)
	case Set:
		return "#" + wrap("{", "}", e.Children)
	case Map:
		return wrap("{", "}", e.Children)
	case Symbol:
		return e.Sym
	case String:
		return fmt.Sprintf("%q", e.Str)
	case Number:
		return e.Num.RatString()
	case Nil:
		return "nil"
	default:
		return "<?>"
	}
}

func wrap(open, close string, children []SExpr) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.String()
	}
	return open + strings.Join(parts, " ") + close
}
