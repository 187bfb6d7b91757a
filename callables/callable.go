// Package callables implements every operator the language exposes to user
// code: the special forms with a custom compilation strategy (if, let, fn,
// defn, loop/recur, do, def) and the built-in functions that compile down to
// an ordinary Call instruction (arithmetic, comparison, collections, casts,
// I/O).
//
// Neither half of this package imports the compiler or the VM. Instead each
// half depends only on the narrow interface it actually calls back into
// (CompileTarget, RuntimeTarget), which the compiler.Compiler and vm.Machine
// types satisfy structurally. That keeps the dependency graph one-way:
// compiler and vm both import callables, callables imports neither.
package callables

import (
	"bufio"
	"io"

	"miniclj/code"
	"miniclj/memaddress"
	"miniclj/sexpr"
	"miniclj/value"
)

// CompileTarget is the subset of compiler state a Callable's Compile hook
// needs: emitting instructions, interning constants, and touching the
// lexical scope and loop-jump stack.
type CompileTarget interface {
	CompileExpr(e sexpr.SExpr) (memaddress.Address, error)
	NewAddress(lifetime memaddress.Lifetime) memaddress.Address
	Emit(instr code.Instruction) code.InstructionPtr
	CurrentIP() code.InstructionPtr
	FillJump(ip, target code.InstructionPtr)
	InternConstant(c value.Constant) memaddress.Address
	GetSymbol(name string) (memaddress.Address, bool)
	InsertSymbol(name string, addr memaddress.Address)
	RemoveLocalSymbol(name string)
	PushLoopJump(entryIP code.InstructionPtr, slots []memaddress.Address)
	PopLoopJump()
	PeekLoopJump() (entryIP code.InstructionPtr, slots []memaddress.Address, ok bool)
	ReserveLambdaAddress(arity int) memaddress.Address
	FillLambdaAddress(addr memaddress.Address, entry int)
	CompileLambdaBody(argNames []string, body sexpr.SExpr) error
	CompileLambda(argNames []string, body sexpr.SExpr) (memaddress.Address, error)
}

// RuntimeTarget is the subset of VM state a Callable's Execute hook needs:
// invoking a user lambda (map/filter/reduce) and the injectable I/O ports
// (print/println/read).
type RuntimeTarget interface {
	ExecuteLambda(entry, arity int, args []value.Value) (value.Value, error)
	LookupCallable(name string) (Callable, bool)
	Stdout() io.Writer
	Stdin() *bufio.Reader
}

// Callable is implemented by every operator the compiler and VM know about.
type Callable interface {
	// Name is the operator's stable, user-facing identifier, e.g. "+", "fn".
	Name() string

	// CheckArity validates a static argument count. Most operators without
	// a fixed arity simply return nil.
	CheckArity(numArgs int) error

	// Compile lowers a call form's argument list to bytecode, returning the
	// address holding the call's result. Operators without a custom
	// compilation strategy call CompileOrdinaryCall.
	Compile(c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error)

	// GetAsAddress interns the operator itself as a first-class Callable
	// constant, for operators that may be passed as a value (e.g. to map,
	// filter, reduce). Special forms that only make sense as a call head
	// return false.
	GetAsAddress(c CompileTarget) (memaddress.Address, bool)

	// Execute runs the operator against already-evaluated argument values.
	// Special forms that the compiler always lowers away before execution
	// return a CompilerError if ever invoked.
	Execute(rt RuntimeTarget, args []value.Value) (value.Value, error)
}

// CompileOrdinaryCall implements the default operator-compilation strategy
// described by the operator-compilation contract: check arity, resolve the
// operator's own address, compile each argument, then emit a Call.
func CompileOrdinaryCall(self Callable, c CompileTarget, args []sexpr.SExpr) (memaddress.Address, error) {
	if err := self.CheckArity(len(args)); err != nil {
		return memaddress.Address{}, err
	}
	calleeAddr, ok := self.GetAsAddress(c)
	if !ok {
		panic("callable " + self.Name() + " has no custom Compile and no GetAsAddress")
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

// InternSelf is the default GetAsAddress body shared by every operator that
// may be passed around as a value: it interns a Callable constant carrying
// the operator's name.
func InternSelf(name string, c CompileTarget) (memaddress.Address, bool) {
	return c.InternConstant(value.ConstCallable(name)), true
}

// Registry maps operator names to their implementation. It is built once
// at startup and shared read-only between the compiler and the VM.
type Registry struct {
	byName map[string]Callable
}

// NewRegistry builds the registry holding every operator the language
// defines.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Callable)}
	for _, c := range allCallables() {
		r.byName[c.Name()] = c
	}
	return r
}

// Lookup resolves an operator by name.
func (r *Registry) Lookup(name string) (Callable, bool) {
	c, ok := r.byName[name]
	return c, ok
}

func allCallables() []Callable {
	return []Callable{
		Add{}, Sub{}, Mul{}, Div{},
		Eq{}, Ne{}, Gt{}, Lt{}, Ge{}, Le{},
		IsTrue{}, If{}, And{}, Or{},
		Def{}, Defn{}, Let{},
		Loop{}, Recur{},
		Fn{},
		Do{},
		First{}, Rest{}, Cons{}, Conj{}, Nth{}, Get{}, Count{}, IsEmpty{}, Del{},
		ListBuiltin{}, VectorBuiltin{}, SetBuiltin{}, HashMapBuiltin{},
		MapBuiltin{}, FilterBuiltin{}, ReduceBuiltin{},
		Range{},
		NumberCast{}, StringCast{}, Ord{}, Chr{},
		Print{}, Println{}, Read{},
	}
}
