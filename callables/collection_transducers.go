package callables

import (
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// requireFunction rejects anything that isn't a Lambda or Callable value
// before applyFunc tries to invoke it.
func requireFunction(name string, v value.Value) error {
	switch v.Kind() {
	case value.KindCallable, value.KindLambda:
		return nil
	default:
		return langerr.WrongDataType(name, "a function", v.TypeStr())
	}
}

func applyFunc(rt RuntimeTarget, fn value.Value, args []value.Value) (value.Value, error) {
	if entry, arity, ok := fn.LambdaEntry(); ok {
		if len(args) != arity {
			return value.Nil, langerr.WrongArityN("lambda", arity, len(args))
		}
		return rt.ExecuteLambda(entry, arity, args)
	}
	name, _ := fn.CallableName()
	op, ok := rt.LookupCallable(name)
	if !ok {
		return value.Nil, langerr.NotACallable(fn.TypeStr())
	}
	return op.Execute(rt, args)
}

// MapBuiltin implements "map": applies a function lockstep over one or more
// collections, stopping as soon as the shortest is exhausted.
type MapBuiltin struct{}

func (MapBuiltin) Name() string { return "map" }
func (MapBuiltin) CheckArity(n int) error {
	if n >= 2 {
		return nil
	}
	return langerr.WrongArity("map", "<function> <collection>...")
}
func (o MapBuiltin) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o MapBuiltin) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o MapBuiltin) Execute(rt RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityS(o.Name(), "a function and at least one collection", len(args))
	}
	fn := args[0]
	if err := requireFunction(o.Name(), fn); err != nil {
		return value.Nil, err
	}
	lists := make([]*value.List, len(args)-1)
	for i, a := range args[1:] {
		l, err := asList(o.Name(), a)
		if err != nil {
			return value.Nil, err
		}
		lists[i] = l
	}

	var results []value.Value
	for {
		step := make([]value.Value, len(lists))
		for i, l := range lists {
			if l.IsEmpty() {
				return value.NewList(value.FromSlice(results)), nil
			}
			step[i] = l.First()
			lists[i] = l.Rest()
		}
		v, err := applyFunc(rt, fn, step)
		if err != nil {
			return value.Nil, err
		}
		results = append(results, v)
	}
}

// FilterBuiltin implements "filter": keeps elements for which the predicate
// is truthy.
type FilterBuiltin struct{}

func (FilterBuiltin) Name() string { return "filter" }
func (FilterBuiltin) CheckArity(n int) error {
	if n == 2 {
		return nil
	}
	return langerr.WrongArity("filter", "<function> <collection>")
}
func (o FilterBuiltin) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o FilterBuiltin) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o FilterBuiltin) Execute(rt RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 2, len(args))
	}
	fn := args[0]
	if err := requireFunction(o.Name(), fn); err != nil {
		return value.Nil, err
	}
	l, err := asList(o.Name(), args[1])
	if err != nil {
		return value.Nil, err
	}
	var results []value.Value
	for cur := l; !cur.IsEmpty(); cur = cur.Rest() {
		v := cur.First()
		keep, err := applyFunc(rt, fn, []value.Value{v})
		if err != nil {
			return value.Nil, err
		}
		if keep.IsTruthy() {
			results = append(results, v)
		}
	}
	return value.NewList(value.FromSlice(results)), nil
}

// ReduceBuiltin implements "reduce": left-folds a function over a
// collection. An empty collection calls the function with no arguments at
// all (e.g. (reduce + []) evaluates (+) => 0); a single-element collection
// returns that element without calling the function.
type ReduceBuiltin struct{}

func (ReduceBuiltin) Name() string { return "reduce" }
func (ReduceBuiltin) CheckArity(n int) error {
	if n == 2 {
		return nil
	}
	return langerr.WrongArity("reduce", "<function> <collection>")
}
func (o ReduceBuiltin) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o ReduceBuiltin) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o ReduceBuiltin) Execute(rt RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 2, len(args))
	}
	fn := args[0]
	if err := requireFunction(o.Name(), fn); err != nil {
		return value.Nil, err
	}
	l, err := asList(o.Name(), args[1])
	if err != nil {
		return value.Nil, err
	}
	elems := l.Slice()
	if len(elems) == 0 {
		return applyFunc(rt, fn, nil)
	}
	if len(elems) == 1 {
		return elems[0], nil
	}
	acc, err := applyFunc(rt, fn, elems[:2])
	if err != nil {
		return value.Nil, err
	}
	for _, e := range elems[2:] {
		acc, err = applyFunc(rt, fn, []value.Value{acc, e})
		if err != nil {
			return value.Nil, err
		}
	}
	return acc, nil
}
