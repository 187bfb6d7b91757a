package callables

import (
	"math/big"

	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

func numbersOf(name string, args []value.Value) ([]*big.Rat, error) {
	nums := make([]*big.Rat, len(args))
	for i, a := range args {
		n, ok := a.Rat()
		if !ok {
			return nil, langerr.WrongDataType(name, "a number", a.TypeStr())
		}
		nums[i] = n
	}
	return nums, nil
}

// Add implements "+": sums its arguments, 0 for no arguments.
type Add struct{}

func (Add) Name() string { return "+" }
func (Add) CheckArity(int) error { return nil }
func (o Add) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Add) GetAsAddress(c CompileTarget) (memaddress.Address, bool) { return InternSelf(o.Name(), c) }
func (o Add) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	nums, err := numbersOf(o.Name(), args)
	if err != nil {
		return value.Nil, err
	}
	sum := big.NewRat(0, 1)
	for _, n := range nums {
		sum.Add(sum, n)
	}
	return value.NewNumber(sum), nil
}

// Sub implements "-": negates a single argument, otherwise subtracts every
// argument after the first from the first.
type Sub struct{}

func (Sub) Name() string { return "-" }
func (Sub) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs("-")
	}
	return nil
}
func (o Sub) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Sub) GetAsAddress(c CompileTarget) (memaddress.Address, bool) { return InternSelf(o.Name(), c) }
func (o Sub) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	nums, err := numbersOf(o.Name(), args)
	if err != nil {
		return value.Nil, err
	}
	if len(nums) == 0 {
		return value.Nil, langerr.WrongArityS(o.Name(), "at least one number", 0)
	}
	if len(nums) == 1 {
		return value.NewNumber(new(big.Rat).Neg(nums[0])), nil
	}
	result := new(big.Rat).Set(nums[0])
	for _, n := range nums[1:] {
		result.Sub(result, n)
	}
	return value.NewNumber(result), nil
}

// Mul implements "*": multiplies its arguments, 1 for no arguments.
type Mul struct{}

func (Mul) Name() string { return "*" }
func (Mul) CheckArity(int) error { return nil }
func (o Mul) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Mul) GetAsAddress(c CompileTarget) (memaddress.Address, bool) { return InternSelf(o.Name(), c) }
func (o Mul) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	nums, err := numbersOf(o.Name(), args)
	if err != nil {
		return value.Nil, err
	}
	prod := big.NewRat(1, 1)
	for _, n := range nums {
		prod.Mul(prod, n)
	}
	return value.NewNumber(prod), nil
}

// Div implements "/": reciprocates a single argument, otherwise divides the
// first argument by the product of the rest.
type Div struct{}

func (Div) Name() string { return "/" }
func (Div) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs("/")
	}
	return nil
}
func (o Div) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Div) GetAsAddress(c CompileTarget) (memaddress.Address, bool) { return InternSelf(o.Name(), c) }
func (o Div) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	nums, err := numbersOf(o.Name(), args)
	if err != nil {
		return value.Nil, err
	}
	if len(nums) == 0 {
		return value.Nil, langerr.WrongArityS(o.Name(), "at least one number", 0)
	}
	if len(nums) == 1 {
		if nums[0].Sign() == 0 {
			return value.Nil, langerr.DivisionByZero()
		}
		return value.NewNumber(new(big.Rat).Inv(nums[0])), nil
	}
	denom := big.NewRat(1, 1)
	for _, n := range nums[1:] {
		denom.Mul(denom, n)
	}
	if denom.Sign() == 0 {
		return value.Nil, langerr.DivisionByZero()
	}
	result := new(big.Rat).Quo(nums[0], denom)
	return value.NewNumber(result), nil
}
