package callables

import (
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// Range implements "range": (range stop), (range start stop) or
// (range start stop step), building the half-open sequence as a list.
type Range struct{}

func (Range) Name() string { return "range" }
func (Range) CheckArity(n int) error {
	if n >= 1 && n <= 3 {
		return nil
	}
	return langerr.WrongArity("range", "<stop> | <start> <stop> | <start> <stop> <step>")
}
func (o Range) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Range) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Range) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityS(o.Name(), "one, two or three numbers", len(args))
	}
	ints := make([]int, len(args))
	for i, a := range args {
		n, err := asNonNegativeInt(o.Name(), a)
		if err != nil {
			return value.Nil, err
		}
		ints[i] = n
	}
	start, stop, step := 0, 0, 1
	switch len(ints) {
	case 1:
		stop = ints[0]
	case 2:
		start, stop = ints[0], ints[1]
	case 3:
		start, stop, step = ints[0], ints[1], ints[2]
	}
	if step == 0 {
		return value.Nil, langerr.DivisionByZero()
	}

	var elems []value.Value
	for i := start; i < stop; i += step {
		elems = append(elems, value.NewInt(int64(i)))
	}
	return value.NewList(value.FromSlice(elems)), nil
}
