package callables

import (
	"miniclj/code"
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// asBindingsVector validates a let/loop bindings form: an even-length vector
// whose odd-position entries are symbols, returned as ordered
// (symbol, value-expr) pairs.
func asBindingsVector(fnName string, expr sexpr.SExpr) ([]struct {
	Sym string
	Val sexpr.SExpr
}, error) {
	if expr.Kind != sexpr.Vector || len(expr.Children)%2 != 0 {
		return nil, langerr.WrongArgument(fnName, "a vector of symbol-value pairs", expr.TypeStr())
	}
	pairs := make([]struct {
		Sym string
		Val sexpr.SExpr
	}, 0, len(expr.Children)/2)
	for i := 0; i < len(expr.Children); i += 2 {
		key := expr.Children[i]
		if key.Kind != sexpr.Symbol {
			return nil, langerr.WrongArgument(fnName, "a vector of symbol-value pairs",
				"a vector with something other than symbols in odd positions")
		}
		pairs = append(pairs, struct {
			Sym string
			Val sexpr.SExpr
		}{Sym: key.Sym, Val: expr.Children[i+1]})
	}
	return pairs, nil
}

// symbolsVector validates an fn/defn argument vector: every element must be
// a symbol.
func symbolsVector(fnName string, expr sexpr.SExpr) ([]string, error) {
	if expr.Kind != sexpr.Vector {
		return nil, langerr.WrongArgument(fnName, "a vector of symbols", expr.TypeStr())
	}
	names := make([]string, len(expr.Children))
	for i, c := range expr.Children {
		if c.Kind != sexpr.Symbol {
			return nil, langerr.WrongArgument(fnName, "a vector of symbols", "a vector of something else")
		}
		names[i] = c.Sym
	}
	return names, nil
}

// Def implements "def": binds a global to a compiled value, evaluated once.
type Def struct{}

func (Def) Name() string { return "def" }
func (Def) CheckArity(n int) error {
	if n == 2 {
		return nil
	}
	return langerr.WrongArity("def", "<symbol> <value>")
}

func (Def) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	if err := (Def{}).CheckArity(len(args)); err != nil {
		return memaddress.Address{}, err
	}
	symbolArg, valueArg := args[0], args[1]
	if symbolArg.Kind != sexpr.Symbol {
		return memaddress.Address{}, langerr.WrongArgument("def", "a symbol", symbolArg.TypeStr())
	}

	valueAddr, err := c.CompileExpr(valueArg)
	if err != nil {
		return memaddress.Address{}, err
	}
	globalAddr := c.NewAddress(memaddress.GlobalVar)
	c.Emit(code.NewAssignment(valueAddr, globalAddr))
	c.InsertSymbol(symbolArg.Sym, globalAddr)
	return valueAddr, nil
}

func (Def) GetAsAddress(CompileTarget) (memaddress.Address, bool) { return memaddress.Address{}, false }
func (Def) Execute(RuntimeTarget, []value.Value) (value.Value, error) {
	return value.Nil, langerr.CompilerErr("compiler shouldn't emit \"def\" calls")
}

// Defn implements "defn", lowering to the same shape as (def sym (fn [args]
// body)): the lambda constant's global assignment precedes the skip-jump
// over its body. The entry ip is recorded right after the skip-jump is
// emitted rather than computed from a fixed instruction-count offset, so the
// lowering can't silently drift if another instruction is inserted between
// the assignment and the jump: the constant pool slot is reserved before the
// jump (to fix the mov's source address) and its entry patched in once known,
// the same deferred-fixup idea FillJump already uses for jump targets.
type Defn struct{}

func (Defn) Name() string { return "defn" }
func (Defn) CheckArity(n int) error {
	if n == 3 {
		return nil
	}
	return langerr.WrongArity("defn", "<symbol> <args vector> <body>")
}

func (Defn) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	if err := (Defn{}).CheckArity(len(args)); err != nil {
		return memaddress.Address{}, err
	}
	symbolArg, argsVecArg, bodyArg := args[0], args[1], args[2]
	if symbolArg.Kind != sexpr.Symbol {
		return memaddress.Address{}, langerr.WrongArgument("defn", "a symbol", symbolArg.TypeStr())
	}
	argNames, err := symbolsVector("defn", argsVecArg)
	if err != nil {
		return memaddress.Address{}, err
	}

	lambdaAddr := c.ReserveLambdaAddress(len(argNames))
	globalAddr := c.NewAddress(memaddress.GlobalVar)
	c.Emit(code.NewAssignment(lambdaAddr, globalAddr))
	c.InsertSymbol(symbolArg.Sym, globalAddr)

	jumpPtr := c.Emit(code.NewJump(-1))
	entry := c.CurrentIP()
	c.FillLambdaAddress(lambdaAddr, entry)

	if err := c.CompileLambdaBody(argNames, bodyArg); err != nil {
		return memaddress.Address{}, err
	}
	c.FillJump(jumpPtr, c.CurrentIP())

	return globalAddr, nil
}

func (Defn) GetAsAddress(CompileTarget) (memaddress.Address, bool) {
	return memaddress.Address{}, false
}
func (Defn) Execute(RuntimeTarget, []value.Value) (value.Value, error) {
	return value.Nil, langerr.CompilerErr("compiler shouldn't emit \"defn\" calls")
}

// Let implements lexical binding: each binding sees the ones before it,
// shadowed outer bindings are captured and restored on scope exit.
type Let struct{}

func (Let) Name() string { return "let" }
func (Let) CheckArity(n int) error {
	if n == 2 {
		return nil
	}
	return langerr.WrongArity("let", "<bindings vector> <body>")
}

func (Let) Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	if err := (Let{}).CheckArity(len(args)); err != nil {
		return memaddress.Address{}, err
	}
	bindings, err := asBindingsVector("let", args[0])
	if err != nil {
		return memaddress.Address{}, err
	}

	type shadow struct {
		sym  string
		addr memaddress.Address
	}
	var shadowed []shadow
	var bound []string

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
	}

	resultAddr, err := c.CompileExpr(args[1])
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

func (Let) GetAsAddress(CompileTarget) (memaddress.Address, bool) { return memaddress.Address{}, false }
func (Let) Execute(RuntimeTarget, []value.Value) (value.Value, error) {
	return value.Nil, langerr.CompilerErr("compiler shouldn't emit \"let\" calls")
}
