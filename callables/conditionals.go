package callables

import (
	"miniclj/code"
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// IsTrue implements "true?": coerces any value to 0/1 via the language's
// truthiness rule.
type IsTrue struct{}

func (IsTrue) Name() string { return "true?" }
func (IsTrue) CheckArity(n int) error {
	if n == 1 {
		return nil
	}
	return langerr.WrongArity("true?", "<value>")
}
func (o IsTrue) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o IsTrue) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o IsTrue) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, langerr.WrongArityS(o.Name(), "one value", len(args))
	}
	return boolValue(args[0].IsTruthy()), nil
}

// If implements the branching special form. It always wraps its condition
// through true? before emitting the conditional jump, since JumpOnFalse
// only accepts a strict 0/1 number while true?'s coercion is broader.
type If struct{}

func (If) Name() string { return "if" }
func (If) CheckArity(n int) error {
	if n == 3 {
		return nil
	}
	return langerr.WrongArity("if", "<condition> <true expression> <false expression>")
}

func (o If) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return memaddress.Address{}, err
	}
	condArg, trueArg, falseArg := args[0], args[1], args[2]

	condAddr, err := IsTrue{}.Compile(c, []sexpr.SExpr{condArg})
	if err != nil {
		return memaddress.Address{}, err
	}
	jumpOnFalse := c.Emit(code.NewJumpOnFalse(condAddr, -1))

	result := c.NewAddress(memaddress.Temporal)

	trueAddr, err := c.CompileExpr(trueArg)
	if err != nil {
		return memaddress.Address{}, err
	}
	c.Emit(code.NewAssignment(trueAddr, result))
	jumpOverFalse := c.Emit(code.NewJump(-1))

	c.FillJump(jumpOnFalse, c.CurrentIP())
	falseAddr, err := c.CompileExpr(falseArg)
	if err != nil {
		return memaddress.Address{}, err
	}
	c.Emit(code.NewAssignment(falseAddr, result))
	c.FillJump(jumpOverFalse, c.CurrentIP())

	return result, nil
}

func (If) GetAsAddress(CompileTarget) (memaddress.Address, bool) { return memaddress.Address{}, false }
func (If) Execute(RuntimeTarget, []value.Value) (value.Value, error) {
	return value.Nil, langerr.CompilerErr("compiler shouldn't emit \"if\" calls")
}

// And implements "and": evaluates every argument (short-circuiting is not
// performed at the bytecode level, only the result is), returning 1 iff
// every argument is truthy.
type And struct{}

func (And) Name() string { return "and" }
func (And) CheckArity(int) error { return nil }
func (o And) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o And) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (And) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	for _, a := range args {
		if !a.IsTruthy() {
			return boolValue(false), nil
		}
	}
	return boolValue(true), nil
}

// Or implements "or": returns 1 iff any argument is truthy.
type Or struct{}

func (Or) Name() string { return "or" }
func (Or) CheckArity(int) error { return nil }
func (o Or) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Or) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (Or) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	for _, a := range args {
		if a.IsTruthy() {
			return boolValue(true), nil
		}
	}
	return boolValue(false), nil
}
