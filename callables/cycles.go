package callables

import (
	"miniclj/code"
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// Loop implements "loop": establishes bindings exactly like let, but
// additionally records the binding slots and the body's entry ip on the
// loop-jump stack so a nested recur can jump back here and re-seed them.
type Loop struct{}

func (Loop) Name() string { return "loop" }
func (Loop) CheckArity(n int) error {
	if n == 2 {
		return nil
	}
	return langerr.WrongArity("loop", "<bindings vector> <body>")
}

func (Loop) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	if err := (Loop{}).CheckArity(len(args)); err != nil {
		return memaddress.Address{}, err
	}
	bindings, err := asBindingsVector("loop", args[0])
	if err != nil {
		return memaddress.Address{}, err
	}

	type shadow struct {
		sym  string
		addr memaddress.Address
	}
	var shadowed []shadow
	var bound []string
	slots := make([]memaddress.Address, 0, len(bindings))

	for _, b := range bindings {
		if addr, ok := c.GetSymbol(b.Sym); ok {
			shadowed = append(shadowed, shadow{sym: b.Sym, addr: addr})
		}
		slotAddr := c.NewAddress(memaddress.LocalVar)
		valueAddr, err := c.CompileExpr(b.Val)
		if err != nil {
			return memaddress.Address{}, err
		}
		c.Emit(code.NewAssignment(valueAddr, slotAddr))
		c.InsertSymbol(b.Sym, slotAddr)
		bound = append(bound, b.Sym)
		slots = append(slots, slotAddr)
	}

	entryIP := c.CurrentIP()
	c.PushLoopJump(entryIP, slots)
	resultAddr, err := c.CompileExpr(args[1])
	c.PopLoopJump()
	if err != nil {
		return memaddress.Address{}, err
	}

	for _, sym := range bound {
		c.RemoveLocalSymbol(sym)
	}
	for _, s := range shadowed {
		c.InsertSymbol(s.sym, s.addr)
	}

	return resultAddr, nil
}

func (Loop) GetAsAddress(CompileTarget) (memaddress.Address, bool) {
	return memaddress.Address{}, false
}
func (Loop) Execute(RuntimeTarget, []value.Value) (value.Value, error) {
	return value.Nil, langerr.CompilerErr("compiler shouldn't emit \"loop\" calls")
}

// Recur implements "recur": jumps back to the nearest enclosing loop's
// entry, re-seeding its binding slots. Its arity depends on the enclosing
// loop's binding count, which isn't known until Compile runs, so unlike
// every other operator it validates its own call shape rather than going
// through CheckArity.
type Recur struct{}

func (Recur) Name() string { return "recur" }

func (Recur) CheckArity(int) error {
	panic("recur's arity depends on the enclosing loop; Compile validates it directly")
}

func (Recur) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	entryIP, slots, ok := c.PeekLoopJump()
	if !ok {
		return memaddress.Address{}, langerr.CallableNotDefined("recur")
	}
	if len(args) != len(slots) {
		return memaddress.Address{}, langerr.WrongRecurCall(len(slots), len(args))
	}

	argAddrs := make([]memaddress.Address, len(args))
	for i, a := range args {
		addr, err := c.CompileExpr(a)
		if err != nil {
			return memaddress.Address{}, err
		}
		argAddrs[i] = addr
	}
	for i, addr := range argAddrs {
		c.Emit(code.NewAssignment(addr, slots[i]))
	}
	c.Emit(code.NewJump(entryIP))

	return c.NewAddress(memaddress.Temporal), nil
}

func (Recur) GetAsAddress(CompileTarget) (memaddress.Address, bool) {
	return memaddress.Address{}, false
}
func (Recur) Execute(RuntimeTarget, []value.Value) (value.Value, error) {
	return value.Nil, langerr.CompilerErr("compiler shouldn't emit \"recur\" calls")
}
