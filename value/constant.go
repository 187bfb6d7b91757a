package value

// Constant is the compile-time counterpart of Value: the same scalar variant
// set (Nil, Number, String, Callable, Lambda) but never a collection kind,
// since collections are only ever built at runtime. It is a distinct named
// type so the compiler's constant pool can't accidentally intern a Vector or
// a Map, while still sharing Value's equality, hashing and display logic.
type Constant struct{ v Value }

// NilConstant is the canonical nil constant.
var NilConstant = Constant{v: Nil}

// NewNumberConstant wraps a Number value as a constant.
func NewNumberConstant(r *Value) Constant { return Constant{v: *r} }

// ConstNumber builds a Number constant directly.
func ConstNumber(v Value) Constant { return Constant{v: v} }

// ConstString builds a String constant.
func ConstString(s string) Constant { return Constant{v: NewString(s)} }

// ConstCallable builds a Callable constant.
func ConstCallable(name string) Constant { return Constant{v: NewCallable(name)} }

// ConstLambda builds a Lambda constant.
func ConstLambda(entry, arity int) Constant { return Constant{v: NewLambda(entry, arity)} }

// ToValue converts a Constant into its runtime Value. Every Constant is a
// valid Value; the reverse is only true for the scalar kinds.
func (c Constant) ToValue() Value { return c.v }

// Equal mirrors Value.Equal: Callable by name, Lambda by entry pointer only.
func (c Constant) Equal(o Constant) bool { return c.v.Equal(o.v) }

// Hash mirrors Value.Hash.
func (c Constant) Hash() uint64 { return c.v.Hash() }

// Display mirrors Value.Display: "fn@<entry>@<arity>" for Lambdas, "p/q" for
// numbers, the operator name for Callables, a quoted string, or "nil".
func (c Constant) Display() string {
	if s, ok := c.v.Str(); ok {
		return "\"" + s + "\""
	}
	return c.v.Display()
}

// Kind exposes the underlying Value's kind for callers that need to branch.
func (c Constant) Kind() Kind { return c.v.kind }
