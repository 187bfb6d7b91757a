// Package value defines the runtime value universe of the language and its
// compile-time constant-pool counterpart.
//
// Constant and Value share the same scalar variant set (Callable, Lambda,
// String, Number, Nil); Value additionally carries the collection kinds
// (List, Vector, Set, Map) that only ever exist at runtime. Equality and
// hashing are defined structurally and are kept consistent with each other:
// anything that compares equal must hash equal.
package value

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Kind identifies the shape of a Value without requiring a type switch at
// every call site; operators report it in error messages via TypeStr.
type Kind uint8

const (
	KindNil Kind = iota
	KindNumber
	KindString
	KindCallable
	KindLambda
	KindList
	KindVector
	KindSet
	KindMap
)

// Value is the runtime representation of every datum the VM manipulates.
// The zero Value is Nil.
type Value struct {
	kind  Kind
	num   *big.Rat
	str   string
	entry int // Lambda entry instruction pointer
	arity int // Lambda arity
	name  string
	list  *List
	vec   []Value
	set   []Value          // kept sorted-by-nothing; membership via Equal
	mp    map[string]mapEnt // map keyed by the display form of the key Value
}

type mapEnt struct {
	key Value
	val Value
}

// Nil is the canonical nil value.
var Nil = Value{kind: KindNil}

// NewNumber wraps an exact rational. The rational is canonicalized (reduced,
// denominator made positive) by math/big.Rat itself.
func NewNumber(r *big.Rat) Value { return Value{kind: KindNumber, num: r} }

// NewInt builds a Number from a plain integer, the common case for literals
// and arithmetic results that stay whole.
func NewInt(n int64) Value { return Value{kind: KindNumber, num: big.NewRat(n, 1)} }

// NewString builds a String value.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewCallable builds a reference to a built-in operator by its stable name.
func NewCallable(name string) Value { return Value{kind: KindCallable, name: name} }

// NewLambda builds a user-defined function value: an entry instruction
// pointer plus a fixed arity. Lambdas capture nothing.
func NewLambda(entry, arity int) Value { return Value{kind: KindLambda, entry: entry, arity: arity} }

// NewVector builds a Vector from its elements, preserving order.
func NewVector(elems []Value) Value { return Value{kind: KindVector, vec: elems} }

// NewList builds a List value from a persistent list.
func NewList(l *List) Value {
	if l == nil {
		l = Empty
	}
	return Value{kind: KindList, list: l}
}

// NewSet builds a Set from elements, deduplicating by structural equality.
func NewSet(elems []Value) Value {
	var out []Value
	for _, e := range elems {
		if !containsValue(out, e) {
			out = append(out, e)
		}
	}
	return Value{kind: KindSet, set: out}
}

func containsValue(vs []Value, v Value) bool {
	for _, x := range vs {
		if x.Equal(v) {
			return true
		}
	}
	return false
}

// NewMap builds a Map from key/value pairs, keeping the last write on key
// collision.
func NewMap(pairs [][2]Value) Value {
	mp := make(map[string]mapEnt, len(pairs))
	for _, p := range pairs {
		mp[p[0].mapKey()] = mapEnt{key: p[0], val: p[1]}
	}
	return Value{kind: KindMap, mp: mp}
}

// Kind reports the value's variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the Nil value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// Rat returns the underlying rational and true if v is a Number.
func (v Value) Rat() (*big.Rat, bool) {
	if v.kind != KindNumber {
		return nil, false
	}
	return v.num, true
}

// Str returns the underlying string and true if v is a String.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// CallableName returns the operator name and true if v is a Callable.
func (v Value) CallableName() (string, bool) {
	if v.kind != KindCallable {
		return "", false
	}
	return v.name, true
}

// LambdaEntry returns the entry pointer and arity and true if v is a Lambda.
func (v Value) LambdaEntry() (entry, arity int, ok bool) {
	if v.kind != KindLambda {
		return 0, 0, false
	}
	return v.entry, v.arity, true
}

// List returns the underlying persistent list and true if v is a List.
func (v Value) List() (*List, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// Vector returns the underlying slice and true if v is a Vector. The slice
// must be treated as read-only by callers; mutation happens on fresh copies.
func (v Value) Vector() ([]Value, bool) {
	if v.kind != KindVector {
		return nil, false
	}
	return v.vec, true
}

// Set returns the underlying element slice and true if v is a Set.
func (v Value) Set() ([]Value, bool) {
	if v.kind != KindSet {
		return nil, false
	}
	return v.set, true
}

// MapPairs returns the map's entries in a stable (key-display-sorted) order,
// and true if v is a Map. Sorting keeps Display/printing deterministic even
// though the underlying Go map has none.
func (v Value) MapPairs() ([][2]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	keys := make([]string, 0, len(v.mp))
	for k := range v.mp {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([][2]Value, 0, len(keys))
	for _, k := range keys {
		e := v.mp[k]
		out = append(out, [2]Value{e.key, e.val})
	}
	return out, true
}

// MapGet looks up a key by structural equality.
func (v Value) MapGet(key Value) (Value, bool) {
	if v.kind != KindMap {
		return Nil, false
	}
	e, ok := v.mp[key.mapKey()]
	if !ok {
		return Nil, false
	}
	return e.val, true
}

func (v Value) mapKey() string { return v.Display() }

// TypeStr names the value's kind the way error messages quote it, e.g.
// "a number", "a string".
func (v Value) TypeStr() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindNumber:
		return "a number"
	case KindString:
		return "a string"
	case KindCallable, KindLambda:
		return "a callable"
	case KindList:
		return "a list"
	case KindVector:
		return "a vector"
	case KindSet:
		return "a set"
	case KindMap:
		return "a map"
	default:
		return "an unknown value"
	}
}

// IsTruthy implements the language's broad truthiness rule: Nil and
// Number(0) are false, everything else is true.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindNumber:
		return v.num.Sign() != 0
	default:
		return true
	}
}

// AsBool implements the strict runtime boolean decode used by JumpOnTrue and
// JumpOnFalse: only Number(0) and Number(1) are valid.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindNumber {
		return false, fmt.Errorf("%s", v.TypeStr())
	}
	if v.num.Cmp(big.NewRat(0, 1)) == 0 {
		return false, nil
	}
	if v.num.Cmp(big.NewRat(1, 1)) == 0 {
		return true, nil
	}
	return false, fmt.Errorf("a number other than 0 or 1")
}

// Equal implements structural equality, consistent with Hash.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindNumber:
		return v.num.Cmp(o.num) == 0
	case KindString:
		return v.str == o.str
	case KindCallable:
		return v.name == o.name
	case KindLambda:
		return v.entry == o.entry
	case KindList:
		return v.list.Equal(o.list)
	case KindVector:
		if len(v.vec) != len(o.vec) {
			return false
		}
		for i := range v.vec {
			if !v.vec[i].Equal(o.vec[i]) {
				return false
			}
		}
		return true
	case KindSet:
		if len(v.set) != len(o.set) {
			return false
		}
		for _, e := range v.set {
			if !containsValue(o.set, e) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.mp) != len(o.mp) {
			return false
		}
		for k, e := range v.mp {
			oe, ok := o.mp[k]
			if !ok || !e.val.Equal(oe.val) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hash produces a hash consistent with Equal. Set and Map fold each member's
// hash into a running total via wrapping addition so iteration order never
// affects the result.
func (v Value) Hash() uint64 {
	const fnvOffset = 14695981039346656037
	const fnvPrime = 1099511628211

	hashBytes := func(b []byte) uint64 {
		h := uint64(fnvOffset)
		for _, c := range b {
			h ^= uint64(c)
			h *= fnvPrime
		}
		return h
	}

	switch v.kind {
	case KindNil:
		return hashBytes([]byte("nil"))
	case KindNumber:
		return hashBytes([]byte(v.num.RatString()))
	case KindString:
		return hashBytes([]byte("s:" + v.str))
	case KindCallable:
		return hashBytes([]byte("c:" + v.name))
	case KindLambda:
		return hashBytes([]byte(fmt.Sprintf("l:%d", v.entry)))
	case KindList:
		var h uint64
		for n := v.list; n != nil && !n.IsEmpty(); n = n.rest {
			h += n.head.Hash()
		}
		return h
	case KindVector:
		h := hashBytes([]byte("v:"))
		for _, e := range v.vec {
			h = h*fnvPrime + e.Hash()
		}
		return h
	case KindSet:
		var h uint64
		for _, e := range v.set {
			h += e.Hash()
		}
		return h
	case KindMap:
		var h uint64
		for _, e := range v.mp {
			h += e.key.Hash() + e.val.Hash()
		}
		return h
	default:
		return 0
	}
}

// Display renders v the way print/println/str present it to the user.
func (v Value) Display() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindNumber:
		return v.num.RatString()
	case KindString:
		return v.str
	case KindCallable:
		return v.name
	case KindLambda:
		return fmt.Sprintf("fn@%d@%d", v.entry, v.arity)
	case KindList:
		return v.list.Display()
	case KindVector:
		parts := make([]string, len(v.vec))
		for i, e := range v.vec {
			parts[i] = e.debugDisplay()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindSet:
		parts := make([]string, len(v.set))
		for i, e := range v.set {
			parts[i] = e.debugDisplay()
		}
		return "#{" + strings.Join(parts, " ") + "}"
	case KindMap:
		pairs, _ := v.MapPairs()
		parts := make([]string, len(pairs))
		for i, p := range pairs {
			parts[i] = fmt.Sprintf("%s %s", p[0].debugDisplay(), p[1].debugDisplay())
		}
		return "{" + strings.Join(parts, " ") + "}"
	default:
		return "<unknown>"
	}
}

// debugDisplay is used for elements nested inside a collection: strings are
// quoted there, the way the original implementation's Debug formatting does,
// even though a top-level String displays unquoted.
func (v Value) debugDisplay() string {
	if v.kind == KindString {
		return fmt.Sprintf("%q", v.str)
	}
	return v.Display()
}
