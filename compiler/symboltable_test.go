package compiler

import (
	"testing"

	"miniclj/memaddress"
)

func TestRootFrameGlobalBinding(t *testing.T) {
	root := newRootFrame()
	addr := root.newAddress(memaddress.GlobalVar)
	root.insert("x", addr)

	got, ok := root.get("x")
	if !ok || got != addr {
		t.Fatalf("get(x) = %v, %v; want %v, true", got, ok, addr)
	}
}

func TestChildFrameSeesOwnLocalsAndGlobals(t *testing.T) {
	root := newRootFrame()
	globalAddr := root.newAddress(memaddress.GlobalVar)
	root.insert("g", globalAddr)

	child := newChildFrame(root, 2)
	child.insert("a", memaddress.NewLocalVar(0))
	child.insert("b", memaddress.NewLocalVar(1))

	if _, ok := child.get("a"); !ok {
		t.Error("child frame should resolve its own local")
	}
	if addr, ok := child.get("g"); !ok || addr != globalAddr {
		t.Error("child frame should resolve a root global")
	}
}

func TestChildFrameDoesNotSeeAncestorLocals(t *testing.T) {
	root := newRootFrame()
	outer := newChildFrame(root, 1)
	outer.insert("x", memaddress.NewLocalVar(0))

	inner := newChildFrame(outer, 1)
	inner.insert("y", memaddress.NewLocalVar(0))

	if _, ok := inner.get("x"); ok {
		t.Error("inner frame should not resolve an enclosing frame's local; lambdas do not close over locals")
	}
	if _, ok := inner.get("y"); !ok {
		t.Error("inner frame should resolve its own local")
	}
}

func TestLocalVarCounterSeededByArity(t *testing.T) {
	root := newRootFrame()
	child := newChildFrame(root, 3)
	addr := child.newAddress(memaddress.LocalVar)
	if addr.Index() != 3 {
		t.Errorf("first allocated local after arity 3 = index %d, want 3", addr.Index())
	}
}

func TestGlobalVarAlwaysCountsOnRoot(t *testing.T) {
	root := newRootFrame()
	child := newChildFrame(root, 0)

	a := child.newAddress(memaddress.GlobalVar)
	b := root.newAddress(memaddress.GlobalVar)
	if a.Index() == b.Index() {
		t.Errorf("two distinct GlobalVar allocations share index %d", a.Index())
	}
}

func TestRemoveLocalUnbindsFromCurrentFrameOnly(t *testing.T) {
	root := newRootFrame()
	root.insert("x", root.newAddress(memaddress.GlobalVar))
	child := newChildFrame(root, 0)
	child.insert("x", memaddress.NewLocalVar(0))

	child.removeLocal("x")

	if _, ok := child.get("x"); !ok {
		t.Error("removing the child's local shadow should fall back to the still-bound global")
	}
}

func TestNewAddressPanicsOnConstantLifetime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic allocating a Constant address via the symbol table")
		}
	}()
	newRootFrame().newAddress(memaddress.Constant)
}
