package callables

import (
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// asList coerces any collection value (or nil) to a persistent list, the
// common representation first/rest/cons/count operate over.
func asList(name string, v value.Value) (*value.List, error) {
	switch v.Kind() {
	case value.KindList:
		l, _ := v.List()
		return l, nil
	case value.KindVector:
		vec, _ := v.Vector()
		return value.FromSlice(vec), nil
	case value.KindSet:
		set, _ := v.Set()
		return value.FromSlice(set), nil
	case value.KindMap:
		pairs, _ := v.MapPairs()
		elems := make([]value.Value, len(pairs))
		for i, p := range pairs {
			elems[i] = value.NewVector([]value.Value{p[0], p[1]})
		}
		return value.FromSlice(elems), nil
	case value.KindNil:
		return value.Empty, nil
	default:
		return nil, langerr.WrongDataType(name, "a collection", v.TypeStr())
	}
}

// First implements "first": the head of a coerced list, or nil if empty.
type First struct{}

func (First) Name() string { return "first" }
func (First) CheckArity(n int) error {
	if n == 1 {
		return nil
	}
	return langerr.WrongArity("first", "<collection>")
}
func (o First) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o First) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o First) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 1, len(args))
	}
	l, err := asList(o.Name(), args[0])
	if err != nil {
		return value.Nil, err
	}
	return l.First(), nil
}

// Rest implements "rest": the tail of a coerced list, always a list.
type Rest struct{}

func (Rest) Name() string { return "rest" }
func (Rest) CheckArity(n int) error {
	if n == 1 {
		return nil
	}
	return langerr.WrongArity("rest", "<collection>")
}
func (o Rest) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Rest) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Rest) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 1, len(args))
	}
	l, err := asList(o.Name(), args[0])
	if err != nil {
		return value.Nil, err
	}
	return value.NewList(l.Rest()), nil
}

// Cons implements "cons": prepends a value onto a coerced list, always
// returning a list regardless of the source collection's kind.
type Cons struct{}

func (Cons) Name() string { return "cons" }
func (Cons) CheckArity(n int) error {
	if n == 2 {
		return nil
	}
	return langerr.WrongArity("cons", "<value> <collection>")
}
func (o Cons) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Cons) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Cons) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 2, len(args))
	}
	l, err := asList(o.Name(), args[1])
	if err != nil {
		return value.Nil, err
	}
	return value.NewList(value.Cons(args[0], l)), nil
}

// Conj implements "conj": adds values to a collection, preserving its kind.
// On a list, each value is consed in turn onto the accumulator, so the last
// supplied value ends up closest to the head.
type Conj struct{}

func (Conj) Name() string { return "conj" }
func (Conj) CheckArity(n int) error {
	if n == 0 {
		return langerr.EmptyArgs("conj")
	}
	return nil
}
func (o Conj) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Conj) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Conj) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Nil, langerr.WrongArityS(o.Name(), "at least one argument", 0)
	}
	coll, rest := args[0], args[1:]
	switch coll.Kind() {
	case value.KindList, value.KindNil:
		l, _ := asList(o.Name(), coll)
		for _, v := range rest {
			l = value.Cons(v, l)
		}
		return value.NewList(l), nil
	case value.KindVector:
		vec, _ := coll.Vector()
		out := append(append([]value.Value{}, vec...), rest...)
		return value.NewVector(out), nil
	case value.KindSet:
		set, _ := coll.Set()
		out := append([]value.Value{}, set...)
		out = append(out, rest...)
		return value.NewSet(out), nil
	case value.KindMap:
		pairs, _ := coll.MapPairs()
		for _, v := range rest {
			vec, ok := v.Vector()
			if !ok || len(vec) != 2 {
				return value.Nil, langerr.InvalidMapEntry()
			}
			pairs = append(pairs, [2]value.Value{vec[0], vec[1]})
		}
		return value.NewMap(pairs), nil
	default:
		return value.Nil, langerr.WrongDataType(o.Name(), "a collection", coll.TypeStr())
	}
}

func asNonNegativeInt(name string, v value.Value) (int, error) {
	n, ok := v.Rat()
	if !ok || !n.IsInt() || n.Sign() < 0 {
		return 0, langerr.WrongDataType(name, "a positive number", v.TypeStr())
	}
	return int(n.Num().Int64()), nil
}

// Nth implements "nth": indexed access into a list, vector or string,
// erroring out of range.
type Nth struct{}

func (Nth) Name() string { return "nth" }
func (Nth) CheckArity(n int) error {
	if n == 2 {
		return nil
	}
	return langerr.WrongArity("nth", "<collection> <index>")
}
func (o Nth) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Nth) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Nth) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 2, len(args))
	}
	coll, idxArg := args[0], args[1]
	idx, err := asNonNegativeInt(o.Name(), idxArg)
	if err != nil {
		return value.Nil, err
	}
	switch coll.Kind() {
	case value.KindList:
		l, _ := coll.List()
		v, ok := l.Nth(idx)
		if !ok {
			return value.Nil, langerr.IndexOutOfBounds(coll.TypeStr())
		}
		return v, nil
	case value.KindVector:
		vec, _ := coll.Vector()
		if idx >= len(vec) {
			return value.Nil, langerr.IndexOutOfBounds(coll.TypeStr())
		}
		return vec[idx], nil
	case value.KindString:
		s, _ := coll.Str()
		runes := []rune(s)
		if idx >= len(runes) {
			return value.Nil, langerr.IndexOutOfBounds(coll.TypeStr())
		}
		return value.NewString(string(runes[idx])), nil
	default:
		return value.Nil, langerr.WrongDataType(o.Name(), "a collection", coll.TypeStr())
	}
}

// Get implements "get": associative access, returning nil rather than
// erroring on a missing or out-of-range key. Lists are never associative and
// always answer nil.
type Get struct{}

func (Get) Name() string { return "get" }
func (Get) CheckArity(n int) error {
	if n == 2 {
		return nil
	}
	return langerr.WrongArity("get", "<collection> <key>")
}
func (o Get) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Get) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Get) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 2, len(args))
	}
	coll, key := args[0], args[1]
	switch coll.Kind() {
	case value.KindList:
		return value.Nil, nil
	case value.KindVector:
		idx, err := asNonNegativeInt(o.Name(), key)
		if err != nil {
			return value.Nil, nil
		}
		vec, _ := coll.Vector()
		if idx >= len(vec) {
			return value.Nil, nil
		}
		return vec[idx], nil
	case value.KindString:
		idx, err := asNonNegativeInt(o.Name(), key)
		if err != nil {
			return value.Nil, nil
		}
		s, _ := coll.Str()
		runes := []rune(s)
		if idx >= len(runes) {
			return value.Nil, nil
		}
		return value.NewString(string(runes[idx])), nil
	case value.KindSet:
		set, _ := coll.Set()
		for _, e := range set {
			if e.Equal(key) {
				return e, nil
			}
		}
		return value.Nil, nil
	case value.KindMap:
		v, ok := coll.MapGet(key)
		if !ok {
			return value.Nil, nil
		}
		return v, nil
	default:
		return value.Nil, langerr.WrongDataType(o.Name(), "a collection", coll.TypeStr())
	}
}

// Del implements "del": the inverse of conj/get for a single key, removing
// an element or entry and preserving collection kind. Vectors remove by
// index (an index past the end is IndexOutOfBounds), sets/maps by value/key
// (a miss returns the collection unchanged); lists aren't associative so del
// on a list drops the first element equal to the key. Any other kind,
// strings included, is a WrongDataType error.
type Del struct{}

func (Del) Name() string { return "del" }
func (Del) CheckArity(n int) error {
	if n == 2 {
		return nil
	}
	return langerr.WrongArity("del", "<collection> <key>")
}
func (o Del) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Del) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Del) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 2, len(args))
	}
	coll, key := args[0], args[1]
	switch coll.Kind() {
	case value.KindList:
		l, _ := coll.List()
		elems := l.Slice()
		out := make([]value.Value, 0, len(elems))
		removed := false
		for _, e := range elems {
			if !removed && e.Equal(key) {
				removed = true
				continue
			}
			out = append(out, e)
		}
		return value.NewList(value.FromSlice(out)), nil
	case value.KindVector:
		idx, err := asNonNegativeInt(o.Name(), key)
		if err != nil {
			return value.Nil, err
		}
		vec, _ := coll.Vector()
		if idx >= len(vec) {
			return value.Nil, langerr.IndexOutOfBounds(coll.TypeStr())
		}
		out := make([]value.Value, 0, len(vec)-1)
		out = append(out, vec[:idx]...)
		out = append(out, vec[idx+1:]...)
		return value.NewVector(out), nil
	case value.KindSet:
		set, _ := coll.Set()
		out := make([]value.Value, 0, len(set))
		for _, e := range set {
			if !e.Equal(key) {
				out = append(out, e)
			}
		}
		return value.NewSet(out), nil
	case value.KindMap:
		pairs, _ := coll.MapPairs()
		out := make([][2]value.Value, 0, len(pairs))
		for _, p := range pairs {
			if !p[0].Equal(key) {
				out = append(out, p)
			}
		}
		return value.NewMap(out), nil
	default:
		return value.Nil, langerr.WrongDataType(o.Name(), "a collection", coll.TypeStr())
	}
}

// Count implements "count": the number of elements, 0 for nil.
type Count struct{}

func (Count) Name() string { return "count" }
func (Count) CheckArity(n int) error {
	if n == 1 {
		return nil
	}
	return langerr.WrongArity("count", "<collection>")
}
func (o Count) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o Count) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o Count) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 1, len(args))
	}
	v := args[0]
	switch v.Kind() {
	case value.KindNil:
		return value.NewInt(0), nil
	case value.KindList:
		l, _ := v.List()
		return value.NewInt(int64(l.Len())), nil
	case value.KindVector:
		vec, _ := v.Vector()
		return value.NewInt(int64(len(vec))), nil
	case value.KindSet:
		set, _ := v.Set()
		return value.NewInt(int64(len(set))), nil
	case value.KindMap:
		pairs, _ := v.MapPairs()
		return value.NewInt(int64(len(pairs))), nil
	case value.KindString:
		s, _ := v.Str()
		return value.NewInt(int64(len([]rune(s)))), nil
	default:
		return value.Nil, langerr.WrongDataType(o.Name(), "a collection", v.TypeStr())
	}
}

// IsEmpty implements "empty?".
type IsEmpty struct{}

func (IsEmpty) Name() string { return "empty?" }
func (IsEmpty) CheckArity(n int) error {
	if n == 1 {
		return nil
	}
	return langerr.WrongArity("empty?", "<collection>")
}
func (o IsEmpty) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	return CompileOrdinaryCall(o, c, args)
}
func (o IsEmpty) GetAsAddress(c CompileTarget) (memaddress.Address, bool) {
	return InternSelf(o.Name(), c)
}
func (o IsEmpty) Execute(_ RuntimeTarget, args []value.Value) (value.Value, error) {
	if err := o.CheckArity(len(args)); err != nil {
		return value.Nil, langerr.WrongArityN(o.Name(), 1, len(args))
	}
	v := args[0]
	switch v.Kind() {
	case value.KindNil:
		return boolValue(true), nil
	case value.KindList:
		l, _ := v.List()
		return boolValue(l.IsEmpty()), nil
	case value.KindVector:
		vec, _ := v.Vector()
		return boolValue(len(vec) == 0), nil
	case value.KindSet:
		set, _ := v.Set()
		return boolValue(len(set) == 0), nil
	case value.KindMap:
		pairs, _ := v.MapPairs()
		return boolValue(len(pairs) == 0), nil
	case value.KindString:
		s, _ := v.Str()
		return boolValue(len(s) == 0), nil
	default:
		return value.Nil, langerr.WrongDataType(o.Name(), "a collection", v.TypeStr())
	}
}
