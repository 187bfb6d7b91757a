// Package memaddress defines the typed address space shared by the compiler
// and the virtual machine.
//
// An address names where a value lives rather than the value itself: a slot
// in the constant pool, a global variable slot, a local variable slot inside
// the current activation, or a temporary slot inside the current activation.
// Addresses are small value types, copyable and hashable, and round-trip
// exactly through a single packed integer so they can be written to and read
// back from the textual bytecode format.
package memaddress

import "fmt"

// Lifetime selects which table an Address's Index is resolved against.
type Lifetime uint8

const (
	// Constant addresses resolve against the compiler's interned constant pool.
	// Writing to a Constant address is always an error.
	Constant Lifetime = iota + 1

	// GlobalVar addresses resolve against the root activation's variable slots,
	// regardless of which activation is currently executing.
	GlobalVar

	// LocalVar addresses resolve against the current activation's variable
	// slots. Argument slots occupy indices [0, arity).
	LocalVar

	// Temporal addresses resolve against the current activation's temporary
	// slots and are only meaningful for the lifetime of that activation.
	Temporal
)

// String renders the lifetime the way it appears in diagnostics.
func (l Lifetime) String() string {
	switch l {
	case Constant:
		return "const"
	case GlobalVar:
		return "global"
	case LocalVar:
		return "local"
	case Temporal:
		return "temp"
	default:
		return fmt.Sprintf("lifetime(%d)", uint8(l))
	}
}

const (
	lifetimeShift = 24
	lifetimeBits  = 4
	lifetimeMask  = (1 << lifetimeBits) - 1
	indexMask     = (1 << lifetimeShift) - 1
)

// Address is a packed (Lifetime, Index) pair. The zero value is not a valid
// address; always construct one through New or one of its helpers.
type Address struct {
	lifetime Lifetime
	idx      int
}

// New builds an Address from a lifetime and an index. The index must fit in
// 24 bits; callers that allocate addresses through a symbol table never
// approach that limit in practice.
func New(lifetime Lifetime, idx int) Address {
	return Address{lifetime: lifetime, idx: idx}
}

// NewLocalVar is a convenience constructor used when seeding a lambda
// activation's argument slots.
func NewLocalVar(idx int) Address {
	return New(LocalVar, idx)
}

// Lifetime reports which table the address resolves against.
func (a Address) Lifetime() Lifetime { return a.lifetime }

// Index reports the address's offset within its lifetime's table.
func (a Address) Index() int { return a.idx }

// Pack encodes the address into a single integer: the high bits carry the
// lifetime tag, the low 24 bits carry the index. This is the exact encoding
// used by the bytecode text format.
func (a Address) Pack() int {
	return int(a.lifetime&lifetimeMask)<<lifetimeShift | (a.idx & indexMask)
}

// Unpack reverses Pack exactly.
func Unpack(packed int) Address {
	return Address{
		lifetime: Lifetime((packed >> lifetimeShift) & lifetimeMask),
		idx:      packed & indexMask,
	}
}

// String prints the address in its packed integer form, matching the
// bytecode text format.
func (a Address) String() string {
	return fmt.Sprintf("%d", a.Pack())
}
