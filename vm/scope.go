package vm

import (
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/value"
)

// scope is one activation's storage: a local slot array (argument slots
// occupy [0, arity) by construction) and a temporary slot array, both
// append-grow. A missing slot (never stored to) is a compiler bug, not a
// user error, since the compiler is the only thing that ever allocates an
// address.
type scope struct {
	locals []value.Value
	temps  []value.Value
}

func newScope() *scope {
	return &scope{}
}

func growTo(slots []value.Value, idx int) []value.Value {
	for len(slots) <= idx {
		slots = append(slots, value.Nil)
	}
	return slots
}

func (s *scope) store(idx int, v value.Value, slots *[]value.Value) {
	*slots = growTo(*slots, idx)
	(*slots)[idx] = v
}

func (s *scope) storeLocal(idx int, v value.Value) { s.store(idx, v, &s.locals) }
func (s *scope) storeTemp(idx int, v value.Value)  { s.store(idx, v, &s.temps) }

func (s *scope) loadLocal(idx int) (value.Value, bool) {
	if idx < 0 || idx >= len(s.locals) {
		return value.Nil, false
	}
	return s.locals[idx], true
}

func (s *scope) loadTemp(idx int) (value.Value, bool) {
	if idx < 0 || idx >= len(s.temps) {
		return value.Nil, false
	}
	return s.temps[idx], true
}

// load resolves addr against the running scope hierarchy: Constant against
// the constant pool, GlobalVar against the root scope, Local/Temporal
// against the current scope.
func (m *Machine) load(addr memaddress.Address) (value.Value, error) {
	switch addr.Lifetime() {
	case memaddress.Constant:
		idx := addr.Index()
		if idx < 0 || idx >= len(m.constants) {
			return value.Nil, langerr.CompilerErr("constant address out of range")
		}
		return m.constants[idx].ToValue(), nil
	case memaddress.GlobalVar:
		v, ok := m.root.loadLocal(addr.Index())
		if !ok {
			return value.Nil, langerr.CompilerErr("read of unset global slot")
		}
		return v, nil
	case memaddress.LocalVar:
		v, ok := m.current.loadLocal(addr.Index())
		if !ok {
			return value.Nil, langerr.CompilerErr("read of unset local slot")
		}
		return v, nil
	case memaddress.Temporal:
		v, ok := m.current.loadTemp(addr.Index())
		if !ok {
			return value.Nil, langerr.CompilerErr("read of unset temporary slot")
		}
		return v, nil
	default:
		return value.Nil, langerr.CompilerErr("address has unknown lifetime")
	}
}

// storeAt writes v to addr, against the root scope for GlobalVar regardless
// of which scope is current, the current scope otherwise. Storing to a
// Constant address is a compiler bug.
func (m *Machine) storeAt(addr memaddress.Address, v value.Value) error {
	switch addr.Lifetime() {
	case memaddress.GlobalVar:
		m.root.storeLocal(addr.Index(), v)
		return nil
	case memaddress.LocalVar:
		m.current.storeLocal(addr.Index(), v)
		return nil
	case memaddress.Temporal:
		m.current.storeTemp(addr.Index(), v)
		return nil
	default:
		return langerr.CompilerErr("cannot write to a constant address")
	}
}
