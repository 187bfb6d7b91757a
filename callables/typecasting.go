package callables

import (
	"math/big"
	"strings"

	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// parseNumberLiteral parses a number for "num" at runtime, after trimming
// surrounding whitespace, using big.Rat.SetString: it accepts integers,
// "p/q" fractions, decimals and exponents, with an optional sign, which is a
// wider set than the lexer's number literals. It doesn't use the
// lexer/parser, since a runtime builtin reaching back into the front end
// would invert this package's one-way dependency shape.
func parseNumberLiteral(s string) (*big.Rat, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	r := new(big.Rat)
	if _, ok := r.SetString(s); ok {
		return r, true
	}
	return nil, false
}

// NumberCast implements "num": parses a string into a rational.
type NumberCast struct{}

func (NumberCast) Name() string { return "num" }
func (NumberCast) CheckArity(n int) error {
	if n == 1 {
		return nil
	}
	return langerr.WrongArity("num", "<string>")
}
func (o NumberCast) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o NumberCast) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o NumberCast) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 1, len(args))
	}
	s, ok := args[0].Str()
	if !ok {
		return value.Nil, langerr.WrongDataType(o.Name(), "a string", args[0].TypeStr())
	}
	r, ok := parseNumberLiteral(s)
	if !ok {
		return value.Nil, langerr.CouldntParse("\""+s+"\"", "a number")
	}
	return value.NewNumber(r), nil
}

// unescape decodes the backslash escapes a string literal preserves
// undecoded, the runtime I/O contract's job per the lexer's own doc comment.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// StringCast implements "str": concatenates the display form of every
// argument, treating nil as the empty string rather than the literal "nil".
type StringCast struct{}

func (StringCast) Name() string       { return "str" }
func (StringCast) CheckArity(int) error { return nil }
func (o StringCast) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o StringCast) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (StringCast) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	var b strings.Builder
	for _, a := range args {
		if a.IsNil() {
			continue
		}
		if s, ok := a.Str(); ok {
			b.WriteString(unescape(s))
			continue
		}
		b.WriteString(a.Display())
	}
	return value.NewString(b.String()), nil
}

// Ord implements "ord": the codepoint of a string's first character.
type Ord struct{}

func (Ord) Name() string { return "ord" }
func (Ord) CheckArity(n int) error {
	if n == 1 {
		return nil
	}
	return langerr.WrongArity("ord", "<string>")
}
func (o Ord) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Ord) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Ord) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 1, len(args))
	}
	s, ok := args[0].Str()
	if !ok {
		return value.Nil, langerr.WrongDataType(o.Name(), "a string", args[0].TypeStr())
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return value.Nil, langerr.WrongDataType(o.Name(), "a string with at least one character", "an empty string")
	}
	return value.NewInt(int64(runes[0])), nil
}

// Chr implements "chr": the character for a non-negative integer codepoint.
type Chr struct{}

func (Chr) Name() string { return "chr" }
func (Chr) CheckArity(n int) error {
	if n == 1 {
		return nil
	}
	return langerr.WrongArity("chr", "<integer>")
}
func (o Chr) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Chr) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Chr) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 1, len(args))
	}
	n, ok := args[0].Rat()
	if !ok || !n.IsInt() || n.Sign() < 0 {
		return value.Nil, langerr.WrongDataType(o.Name(), "a positive integer", "a decimal or negative integer")
	}
	codepoint := n.Num().Int64()
	r := rune(codepoint)
	if codepoint < 0 || int64(r) != codepoint || !isValidRune(r) {
		return value.Nil, langerr.CouldntParse(n.Num().String(), "a character")
	}
	return value.NewString(string(r)), nil
}

func isValidRune(r rune) bool {
	return r >= 0 && r <= 0x10FFFF && !(r >= 0xD800 && r <= 0xDFFF)
}
