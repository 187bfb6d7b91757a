package callables

import (
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// ListBuiltin implements "list": builds a list from its arguments in order.
type ListBuiltin struct{}

func (ListBuiltin) Name() string        { return "list" }
func (ListBuiltin) CheckArity(int) error { return nil }
func (ListBuiltin) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(ListBuiltin{}, c, args)
}
func (o ListBuiltin) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (ListBuiltin) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	return value.NewList(value.FromSlice(args)), nil
}

// VectorBuiltin implements "vector".
type VectorBuiltin struct{}

func (VectorBuiltin) Name() string        { return "vector" }
func (VectorBuiltin) CheckArity(int) error { return nil }
func (VectorBuiltin) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(VectorBuiltin{}, c, args)
}
func (o VectorBuiltin) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (VectorBuiltin) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	return value.NewVector(append([]value.Value{}, args...)), nil
}

// SetBuiltin implements "set".
type SetBuiltin struct{}

func (SetBuiltin) Name() string        { return "set" }
func (SetBuiltin) CheckArity(int) error { return nil }
func (SetBuiltin) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(SetBuiltin{}, c, args)
}
func (o SetBuiltin) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (SetBuiltin) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	return value.NewSet(args), nil
}

// HashMapBuiltin implements "hash-map": requires an even number of arguments,
// consumed as alternating key/value pairs.
type HashMapBuiltin struct{}

func (HashMapBuiltin) Name() string { return "hash-map" }
func (HashMapBuiltin) CheckArity(n int) error {
	if n%2 != 0 {
		return langerr.WrongArity("hash-map", "<key1> <val1> ... <keyN> <valN>")
	}
	return nil
}
func (o HashMapBuiltin) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o HashMapBuiltin) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o HashMapBuiltin) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if len(args)%2 != 0 {
		return value.Nil, langerr.WrongArityS(o.Name(), "an even number of arguments", len(args))
	}
	pairs := make([][2]value.Value, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, [2]value.Value{args[i], args[i+1]})
	}
	return value.NewMap(pairs), nil
}
