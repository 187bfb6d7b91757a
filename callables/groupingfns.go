package callables

import (
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// Do implements "do": compiles every expression in order for its side
// effects, returning the address of the last one.
type Do struct{}

func (Do) Name() string { return "do" }
func (Do) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs("do")
	}
	return nil
}

func (Do) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	if err := (Do{}).CheckArity(len(args)); err != nil {
		return memaddress.Address{}, err
	}
	var last memaddress.Address
	for _, a := range args {
		addr, err := c.CompileExpr(a)
		if err != nil {
			return memaddress.Address{}, err
		}
		last = addr
	}
	return last, nil
}

func (Do) GetAsAddress(CompileTarget) (memaddress.Address, bool) { return memaddress.Address{}, false }
func (Do) Execute(RuntimeTarget, []value.Value) (value.Value, error) {
	return value.Nil, langerr.CompilerErr("compiler shouldn't emit \"do\" calls")
}
