package callables

import (
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// Fn implements "fn": an anonymous function literal. Unlike defn, the jump
// over its body is emitted first and its entry ip is simply "here" right
// after, with no deferred constant to patch in before the jump since nothing
// needs to reference the lambda's address before its entry point is known.
type Fn struct{}

func (Fn) Name() string { return "fn" }
func (Fn) CheckArity(n int) error {
	if n == 2 {
		return nil
	}
	return langerr.WrongArity("fn", "<args vector> <body>")
}

func (Fn) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	if err := (Fn{}).CheckArity(len(args)); err != nil {
		return memaddress.Address{}, err
	}
	argNames, err := symbolsVector("fn", args[0])
	if err != nil {
		return memaddress.Address{}, err
	}
	return c.CompileLambda(argNames, args[1])
}

func (Fn) GetAsAddress(CompileTarget) (memaddress.Address, bool) { return memaddress.Address{}, false }
func (Fn) Execute(RuntimeTarget, []value.Value) (value.Value, error) {
	return value.Nil, langerr.CompilerErr("compiler shouldn't emit \"fn\" calls")
}
