package callables

import (
	"strings"

	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

func displayArg(v value.Value) string {
	if s, ok := v.Str(); ok {
		return unescape(s)
	}
	return v.Display()
}

func writeArgs(w interface {
	WriteString(string) (int, error)
}, args []value.Value) error {
	for i, a := range args {
		if i > 0 {
			if _, err := w.WriteString(" "); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(displayArg(a)); err != nil {
			return err
		}
	}
	return nil
}

// Print implements "print": writes its arguments space-separated, with no
// trailing newline.
type Print struct{}

func (Print) Name() string { return "print" }
func (Print) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs("print")
	}
	return nil
}
func (o Print) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Print) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Print) Execute(rt RuntimeTarget, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Nil, langerr.WrongArityS(o.Name(), "at least one value", 0)
	}
	var b strings.Builder
	_ = writeArgs(&b, args)
	if _, err := rt.Stdout().Write([]byte(b.String())); err != nil {
		return value.Nil, langerr.IOError("print to stdout", err)
	}
	return value.Nil, nil
}

// Println implements "println": print plus a trailing newline, with any
// arity including zero.
type Println struct{}

func (Println) Name() string       { return "println" }
func (Println) CheckArity(int) error { return nil }
func (o Println) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Println) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Println) Execute(rt RuntimeTarget, args []value.Value) (value.Value, error) {
	var b strings.Builder
	_ = writeArgs(&b, args)
	b.WriteByte('\n')
	if _, err := rt.Stdout().Write([]byte(b.String())); err != nil {
		return value.Nil, langerr.IOError("print to stdout", err)
	}
	return value.Nil, nil
}

// Read implements "read": reads a single line from stdin.
type Read struct{}

func (Read) Name() string { return "read" }
func (Read) CheckArity(n int) error {
	if n == 0 {
		return nil
	}
	return langerr.WrongArity("read", "")
}
func (o Read) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Read) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Read) Execute(rt RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 0, len(args))
	}
	line, err := rt.Stdin().ReadString('\n')
	if err != nil && line == "" {
		return value.Nil, langerr.IOError("read from stdin", err)
	}
	line = strings.TrimRight(line, "\r\n")
	return value.NewString(line), nil
}
