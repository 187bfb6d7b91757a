package value

import "strings"

// List is a persistent singly linked list. The empty list and every Cons
// node are immutable once built, so tails are freely shared: cons(v, l) is
// O(1) and never copies l.
type List struct {
	head Value
	rest *List
}

// Empty is the canonical empty list. All empty lists are this same pointer,
// which keeps the empty check cheap and IsEmpty well-defined even on a nil
// *List received from elsewhere.
var Empty = &List{}

// IsEmpty reports whether l has no elements. A nil receiver counts as empty
// so callers that forget to default to Empty still behave correctly.
func (l *List) IsEmpty() bool { return l.isEmptyNode() }

// Cons prepends v to l, returning a new head that shares l as its tail.
func Cons(v Value, l *List) *List {
	if l == nil {
		l = Empty
	}
	return &List{head: v, rest: l}
}

// First returns the head element, or Nil if the list is empty.
func (l *List) First() Value {
	if l.isEmptyNode() {
		return Nil
	}
	return l.head
}

// Rest returns the tail, or the empty list if l is empty or has one element.
func (l *List) Rest() *List {
	if l.isEmptyNode() || l.rest == nil {
		return Empty
	}
	return l.rest
}

// isEmptyNode is the real emptiness test, distinct from the exported
// IsEmpty's defensive nil-handling: a node is the empty sentinel exactly
// when it is the Empty pointer itself.
func (l *List) isEmptyNode() bool {
	return l == nil || l == Empty
}

// Nth returns the i-th element (0-based) and true, or Nil and false if i is
// out of range.
func (l *List) Nth(i int) (Value, bool) {
	if i < 0 {
		return Nil, false
	}
	cur := l
	for ; i > 0 && !cur.isEmptyNode(); i-- {
		cur = cur.rest
	}
	if cur.isEmptyNode() {
		return Nil, false
	}
	return cur.head, true
}

// Len counts the elements in O(n).
func (l *List) Len() int {
	n := 0
	for cur := l; !cur.isEmptyNode(); cur = cur.rest {
		n++
	}
	return n
}

// Equal compares two lists element-wise, head to tail.
func (l *List) Equal(o *List) bool {
	a, b := l, o
	for {
		aEmpty, bEmpty := a.isEmptyNode(), b.isEmptyNode()
		if aEmpty != bEmpty {
			return false
		}
		if aEmpty {
			return true
		}
		if !a.head.Equal(b.head) {
			return false
		}
		a, b = a.rest, b.rest
	}
}

// Slice materializes the list into a freshly allocated slice, head first.
func (l *List) Slice() []Value {
	out := make([]Value, 0, l.Len())
	for cur := l; !cur.isEmptyNode(); cur = cur.rest {
		out = append(out, cur.head)
	}
	return out
}

// FromSlice builds a list from elems in the given order: elems[0] becomes
// the head. Because Cons only ever prepends, this walks elems back to front,
// which is the "reverse-accumulation" pattern used throughout the builtins
// that build lists from a forward iteration (range, list literals, map).
func FromSlice(elems []Value) *List {
	l := Empty
	for i := len(elems) - 1; i >= 0; i-- {
		l = Cons(elems[i], l)
	}
	return l
}

// Display renders the list in its printed form: a parenthesized,
// space-separated sequence, matching the language's quoted-list syntax.
func (l *List) Display() string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for cur := l; !cur.isEmptyNode(); cur = cur.rest {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(cur.head.debugDisplay())
	}
	b.WriteByte(')')
	return b.String()
}
