package callables

import (
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

func boolValue(b bool) value.Value {
	if b {
		return value.NewInt(1)
	}
	return value.NewInt(0)
}

func requireNonEmpty(name string, args []value.Value) error {
	if len(args) == 0 {
		return langerr.WrongArityS(name, "at least one number", 0)
	}
	return nil
}

// Eq implements "=": structural equality against the first argument.
type Eq struct{}

func (Eq) Name() string { return "=" }
func (Eq) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs("=")
	}
	return nil
}
func (o Eq) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Eq) GetAsAddress(c CompileTarget) (memaddress.Address, bool) { return InternSelf(o.Name(), c) }
func (o Eq) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := requireNonEmpty(o.Name(), args); err != nil {
		return value.Nil, err
	}
	for _, v := range args {
		if !v.Equal(args[0]) {
			return boolValue(false), nil
		}
	}
	return boolValue(true), nil
}

// Ne implements "!=": true if any argument differs from the first.
type Ne struct{}

func (Ne) Name() string { return "!=" }
func (Ne) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs("!=")
	}
	return nil
}
func (o Ne) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Ne) GetAsAddress(c CompileTarget) (memaddress.Address, bool) { return InternSelf(o.Name(), c) }
func (o Ne) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := requireNonEmpty(o.Name(), args); err != nil {
		return value.Nil, err
	}
	for _, v := range args {
		if !v.Equal(args[0]) {
			return boolValue(true), nil
		}
	}
	return boolValue(false), nil
}

func relation(name string, args []value.Value, ok func(a, b int) bool) (value.Value, error) {
	if err := requireNonEmpty(name, args); err != nil {
		return value.Nil, err
	}
	nums, err := numbersOf(name, args)
	if err != nil {
		return value.Nil, err
	}
	for i := 0; i+1 < len(nums); i++ {
		if !ok(nums[i].Cmp(nums[i+1]), 0) {
			return boolValue(false), nil
		}
	}
	return boolValue(true), nil
}

// Gt implements ">".
type Gt struct{}

func (Gt) Name() string { return ">" }
func (Gt) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs(">")
	}
	return nil
}
func (o Gt) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Gt) GetAsAddress(c CompileTarget) (memaddress.Address, bool) { return InternSelf(o.Name(), c) }
func (o Gt) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	return relation(o.Name(), args, func(cmp, _ int) bool { return cmp > 0 })
}

// Lt implements "<".
type Lt struct{}

func (Lt) Name() string { return "<" }
func (Lt) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs("<")
	}
	return nil
}
func (o Lt) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Lt) GetAsAddress(c CompileTarget) (memaddress.Address, bool) { return InternSelf(o.Name(), c) }
func (o Lt) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	return relation(o.Name(), args, func(cmp, _ int) bool { return cmp < 0 })
}

// Ge implements ">=".
type Ge struct{}

func (Ge) Name() string { return ">=" }
func (Ge) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs(">=")
	}
	return nil
}
func (o Ge) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Ge) GetAsAddress(c CompileTarget) (memaddress.Address, bool) { return InternSelf(o.Name(), c) }
func (o Ge) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	return relation(o.Name(), args, func(cmp, _ int) bool { return cmp >= 0 })
}

// Le implements "<=".
type Le struct{}

func (Le) Name() string { return "<=" }
func (Le) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs("<=")
	}
	return nil
}
func (o Le) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Le) GetAsAddress(c CompileTarget) (memaddress.Address, bool) { return InternSelf(o.Name(), c) }
func (o Le) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	return relation(o.Name(), args, func(cmp, _ int) bool { return cmp <= 0 })
}
