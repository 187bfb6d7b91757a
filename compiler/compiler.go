// Package compiler translates a parsed SExpr tree into a flat bytecode
// stream over the typed address space defined by memaddress: a constant
// pool, a global/local/temporary variable space, and deferred jump fixup.
package compiler

import (
	"fmt"
	"log/slog"

	"miniclj/callables"
	"miniclj/code"
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// Compiler owns every piece of state a compilation unit accumulates: the
// constant pool, the instruction stream, the lexical scope stack, and the
// loop-jump stack recur consults. It satisfies callables.CompileTarget
// structurally, so the callables package never imports this one.
type Compiler struct {
	registry *callables.Registry

	constants    []value.Constant
	constIndex   map[string]int
	instructions code.Instructions

	frame *frame

	loopJumps []loopJump

	log *slog.Logger
}

type loopJump struct {
	entryIP code.InstructionPtr
	slots   []memaddress.Address
}

// New builds a Compiler ready to compile a top-level compilation unit.
func New(registry *callables.Registry, log *slog.Logger) *Compiler {
	if log == nil {
		log = slog.Default()
	}
	return &Compiler{
		registry:   registry,
		constIndex: make(map[string]int),
		frame:      newRootFrame(),
		log:        log,
	}
}

// Constants returns the finished constant pool, in interning order.
func (c *Compiler) Constants() []value.Constant { return c.constants }

// Instructions returns the finished instruction stream.
func (c *Compiler) Instructions() code.Instructions { return c.instructions }

// Compile compiles every top-level form in order, discarding each result
// address: only the side effects (global bindings, function definitions,
// I/O) matter at the top level.
func (c *Compiler) Compile(forms []sexpr.SExpr) error {
	for _, form := range forms {
		if _, err := c.CompileExpr(form); err != nil {
			return err
		}
	}
	c.log.Debug("compilation finished",
		"instructions", len(c.instructions),
		"constants", len(c.constants))
	return nil
}

// CompileExpr is the central structural-recursion dispatch described by the
// operator-compilation contract.
func (c *Compiler) CompileExpr(e sexpr.SExpr) (memaddress.Address, error) {
	switch e.Kind {
	case sexpr.Symbol:
		return c.compileSymbol(e.Sym)

	case sexpr.String:
		return c.InternConstant(value.ConstString(e.Str)), nil
	case sexpr.Number:
		return c.InternConstant(value.ConstNumber(value.NewNumber(e.Num))), nil
	case sexpr.Nil:
		return c.InternConstant(value.NilConstant), nil

	case sexpr.List:
		return c.compileCollectionLiteral("list", e.Children)
	case sexpr.Vector:
		return c.compileCollectionLiteral("vector", e.Children)
	case sexpr.Set:
		return c.compileCollectionLiteral("set", e.Children)
	case sexpr.Map:
		return c.compileCollectionLiteral("hash-map", e.Children)

	case sexpr.ShortLambda:
		return c.CompileLambda([]string{"%"}, sexpr.NewExpr(e.Children))

	case sexpr.Expr:
		return c.compileCall(e.Children)

	default:
		return memaddress.Address{}, langerr.CompilerErr(
			fmt.Sprintf("compiler cannot handle expression kind %v", e.Kind))
	}
}

func (c *Compiler) compileSymbol(name string) (memaddress.Address, error) {
	if addr, ok := c.frame.get(name); ok {
		return addr, nil
	}
	if op, ok := c.registry.Lookup(name); ok {
		if addr, ok := op.GetAsAddress(c); ok {
			return addr, nil
		}
	}
	return memaddress.Address{}, langerr.SymbolNotDefined(name)
}

func (c *Compiler) compileCollectionLiteral(builtin string, children []sexpr.SExpr) (memaddress.Address, error) {
	op, ok := c.registry.Lookup(builtin)
	if !ok {
		return memaddress.Address{}, langerr.CompilerErr("builtin " + builtin + " not registered")
	}
	return op.Compile(c, children)
}

// compileCall handles a call-expression form "(head args...)": if head is an
// unshadowed symbol naming a registered operator, dispatch to its compile
// hook; otherwise compile head and every argument and emit an ordinary Call.
func (c *Compiler) compileCall(children []sexpr.SExpr) (memaddress.Address, error) {
	if len(children) == 0 {
		return c.compileCollectionLiteral("list", nil)
	}
	head, args := children[0], children[1:]

	if head.Kind == sexpr.Symbol {
		if _, shadowed := c.frame.get(head.Sym); !shadowed {
			if op, ok := c.registry.Lookup(head.Sym); ok {
				return op.Compile(c, args)
			}
		}
	}

	calleeAddr, err := c.CompileExpr(head)
	if err != nil {
		return memaddress.Address{}, err
	}
	argAddrs := make([]memaddress.Address, len(args))
	for i, a := range args {
		addr, err := c.CompileExpr(a)
		if err != nil {
			return memaddress.Address{}, err
		}
		argAddrs[i] = addr
	}
	result := c.NewAddress(memaddress.Temporal)
	c.Emit(code.NewCall(calleeAddr, argAddrs, result))
	return result, nil
}

// --- callables.CompileTarget ---

func (c *Compiler) NewAddress(lifetime memaddress.Lifetime) memaddress.Address {
	return c.frame.newAddress(lifetime)
}

func (c *Compiler) Emit(instr code.Instruction) code.InstructionPtr {
	c.instructions = append(c.instructions, instr)
	return len(c.instructions) - 1
}

func (c *Compiler) CurrentIP() code.InstructionPtr { return len(c.instructions) }

func (c *Compiler) FillJump(ip, target code.InstructionPtr) {
	c.instructions.FillJump(ip, target)
}

func (c *Compiler) InternConstant(cst value.Constant) memaddress.Address {
	key := constKey(cst)
	if idx, ok := c.constIndex[key]; ok {
		return memaddress.New(memaddress.Constant, idx)
	}
	idx := len(c.constants)
	c.constants = append(c.constants, cst)
	c.constIndex[key] = idx
	return memaddress.New(memaddress.Constant, idx)
}

// ReserveLambdaAddress appends a constant slot whose real Lambda value isn't
// known yet: a placeholder Lambda with entry -1 so its address is stable,
// overwritten in place by FillLambdaAddress once the entry ip is known. The
// placeholder bypasses the usual intern-by-value lookup and is never added
// to the intern index; FillLambdaAddress indexes the filled constant.
func (c *Compiler) ReserveLambdaAddress(arity int) memaddress.Address {
	idx := len(c.constants)
	c.constants = append(c.constants, value.ConstLambda(-1, arity))
	return memaddress.New(memaddress.Constant, idx)
}

func (c *Compiler) FillLambdaAddress(addr memaddress.Address, entry int) {
	idx := addr.Index()
	_, arity, _ := c.constants[idx].ToValue().LambdaEntry()
	filled := value.ConstLambda(entry, arity)
	c.constants[idx] = filled
	c.constIndex[constKey(filled)] = idx
}

func constKey(cst value.Constant) string {
	return fmt.Sprintf("%d:%s", cst.Kind(), cst.Display())
}

func (c *Compiler) GetSymbol(name string) (memaddress.Address, bool) {
	return c.frame.get(name)
}

func (c *Compiler) InsertSymbol(name string, addr memaddress.Address) {
	c.frame.insert(name, addr)
}

func (c *Compiler) RemoveLocalSymbol(name string) {
	c.frame.removeLocal(name)
}

func (c *Compiler) PushLoopJump(entryIP code.InstructionPtr, slots []memaddress.Address) {
	c.loopJumps = append(c.loopJumps, loopJump{entryIP: entryIP, slots: slots})
}

func (c *Compiler) PopLoopJump() {
	c.loopJumps = c.loopJumps[:len(c.loopJumps)-1]
}

func (c *Compiler) PeekLoopJump() (code.InstructionPtr, []memaddress.Address, bool) {
	if len(c.loopJumps) == 0 {
		return 0, nil, false
	}
	top := c.loopJumps[len(c.loopJumps)-1]
	return top.entryIP, top.slots, true
}

// CompileLambdaBody compiles body against a fresh frame whose local counter
// starts at len(argNames), so argument symbols occupy slots [0, arity), then
// emits a Return of the body's result. Used directly by defn (which manages
// its own skip-jump and constant reservation) and indirectly by CompileLambda
// (used by fn and short lambdas).
func (c *Compiler) CompileLambdaBody(argNames []string, body sexpr.SExpr) error {
	parent := c.frame
	c.frame = newChildFrame(parent, len(argNames))
	for i, name := range argNames {
		c.frame.insert(name, memaddress.NewLocalVar(i))
	}

	resultAddr, err := c.CompileExpr(body)
	c.frame = parent
	if err != nil {
		return err
	}
	c.Emit(code.NewReturn(resultAddr))
	return nil
}

// CompileLambda implements the fn lowering: jump over the body, record the
// entry ip right after the jump, intern the Lambda constant, compile the
// body, then patch the jump to land here.
func (c *Compiler) CompileLambda(argNames []string, body sexpr.SExpr) (memaddress.Address, error) {
	jumpPtr := c.Emit(code.NewJump(-1))
	entry := c.CurrentIP()
	lambdaAddr := c.InternConstant(value.ConstLambda(entry, len(argNames)))

	if err := c.CompileLambdaBody(argNames, body); err != nil {
		return memaddress.Address{}, err
	}
	c.FillJump(jumpPtr, c.CurrentIP())

	return lambdaAddr, nil
}
