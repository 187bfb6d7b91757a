// Package vm implements the virtual machine: a bytecode interpreter over the
// typed address space the compiler emits, with a reentrant execute loop that
// supports nested user-function calls.
package vm

import (
	"bufio"
	"io"
	"log/slog"

	"miniclj/callables"
	"miniclj/code"
	"miniclj/langerr"
	"miniclj/memaddress"
	"miniclj/value"
)

// Machine runs a compiled program: a constant pool and an instruction
// stream, plus a call registry for built-in operators. It satisfies
// callables.RuntimeTarget structurally, so the callables package never
// imports this one.
type Machine struct {
	registry     *callables.Registry
	constants    []value.Constant
	instructions code.Instructions

	root    *scope
	current *scope

	// maxDepth bounds nested execute_lambda recursion (map/filter/reduce
	// calling user functions, or ordinary user calls), turning runaway
	// user recursion without a recur into a typed error instead of a host
	// stack overflow.
	maxDepth int
	depth    int

	stdout io.Writer
	stdin  *bufio.Reader

	log *slog.Logger
}

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithStdout overrides the machine's print/println sink.
func WithStdout(w io.Writer) Option { return func(m *Machine) { m.stdout = w } }

// WithStdin overrides the machine's read source.
func WithStdin(r io.Reader) Option { return func(m *Machine) { m.stdin = bufio.NewReader(r) } }

// WithMaxDepth overrides the nested-call depth guard.
func WithMaxDepth(n int) Option { return func(m *Machine) { m.maxDepth = n } }

// WithLogger overrides the machine's diagnostic logger.
func WithLogger(l *slog.Logger) Option { return func(m *Machine) { m.log = l } }

// New builds a Machine over a compiled program.
func New(registry *callables.Registry, constants []value.Constant, instructions code.Instructions, opts ...Option) *Machine {
	root := newScope()
	m := &Machine{
		registry:     registry,
		constants:    constants,
		instructions: instructions,
		root:         root,
		current:      root,
		maxDepth:     100000,
		stdout:       io.Discard,
		stdin:        bufio.NewReader(io.MultiReader()),
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run executes the program from instruction 0 against the root scope. A
// Return surfacing from the top level is a compiler bug: top-level code
// never emits one.
func (m *Machine) Run() error {
	ret, err := m.innerExecute(0, m.root)
	if err != nil {
		return err
	}
	if ret != nil {
		return langerr.CompilerErr("top-level execution returned a value")
	}
	return nil
}

// innerExecute runs the instruction stream starting at entry against scope,
// until a Return is hit (whose address is returned) or the stream is
// exhausted (nil, nil).
func (m *Machine) innerExecute(entry int, sc *scope) (*memaddress.Address, error) {
	prev := m.current
	m.current = sc
	defer func() { m.current = prev }()

	ip := entry
	for ip < len(m.instructions) {
		instr := m.instructions[ip]
		switch instr.Kind {
		case code.KindCall:
			result, err := m.dispatchCall(instr)
			if err != nil {
				return nil, err
			}
			if err := m.storeAt(instr.Result, result); err != nil {
				return nil, err
			}
			ip++

		case code.KindReturn:
			addr := instr.Addr
			return &addr, nil

		case code.KindAssignment:
			v, err := m.load(instr.Addr)
			if err != nil {
				return nil, err
			}
			if err := m.storeAt(instr.Dst, v); err != nil {
				return nil, err
			}
			ip++

		case code.KindJump:
			ip = instr.Target

		case code.KindJumpOnTrue:
			take, err := m.decodeCond(instr.Addr)
			if err != nil {
				return nil, err
			}
			if take {
				ip = instr.Target
			} else {
				ip++
			}

		case code.KindJumpOnFalse:
			take, err := m.decodeCond(instr.Addr)
			if err != nil {
				return nil, err
			}
			if !take {
				ip = instr.Target
			} else {
				ip++
			}

		default:
			return nil, langerr.CompilerErr("unknown instruction kind")
		}
	}
	return nil, nil
}

func (m *Machine) decodeCond(addr memaddress.Address) (bool, error) {
	v, err := m.load(addr)
	if err != nil {
		return false, err
	}
	b, err := v.AsBool()
	if err != nil {
		return false, langerr.CompilerErr("jump condition is not a strict boolean: " + err.Error())
	}
	return b, nil
}

func (m *Machine) dispatchCall(instr code.Instruction) (value.Value, error) {
	callee, err := m.load(instr.Callable)
	if err != nil {
		return value.Nil, err
	}
	args := make([]value.Value, len(instr.Args))
	for i, a := range instr.Args {
		v, err := m.load(a)
		if err != nil {
			return value.Nil, err
		}
		args[i] = v
	}

	switch callee.Kind() {
	case value.KindCallable:
		name, _ := callee.CallableName()
		op, ok := m.registry.Lookup(name)
		if !ok {
			return value.Nil, langerr.NotACallable(callee.TypeStr())
		}
		return op.Execute(m, args)
	case value.KindLambda:
		entry, arity, _ := callee.LambdaEntry()
		return m.ExecuteLambda(entry, arity, args)
	default:
		return value.Nil, langerr.NotACallable(callee.TypeStr())
	}
}

// ExecuteLambda implements callables.RuntimeTarget: it's the call boundary
// both an ordinary user-function Call and map/filter/reduce go through.
func (m *Machine) ExecuteLambda(entry, arity int, args []value.Value) (value.Value, error) {
	if len(args) != arity {
		return value.Nil, langerr.WrongArityN("lambda", arity, len(args))
	}
	m.depth++
	defer func() { m.depth-- }()
	if m.depth > m.maxDepth {
		return value.Nil, langerr.CompilerErr("exceeded maximum call depth")
	}

	sc := newScope()
	for i, a := range args {
		sc.storeLocal(i, a)
	}

	retAddr, err := m.innerExecute(entry, sc)
	if err != nil {
		return value.Nil, err
	}
	if retAddr == nil {
		return value.Nil, langerr.CompilerErr("lambda body fell off the end without returning")
	}

	prev := m.current
	m.current = sc
	v, err := m.load(*retAddr)
	m.current = prev
	return v, err
}

// LookupCallable implements callables.RuntimeTarget for operators (map,
// filter, reduce) that invoke another built-in passed to them by name.
func (m *Machine) LookupCallable(name string) (callables.Callable, bool) {
	return m.registry.Lookup(name)
}

// Stdout implements callables.RuntimeTarget.
func (m *Machine) Stdout() io.Writer { return m.stdout }

// Stdin implements callables.RuntimeTarget.
func (m *Machine) Stdin() *bufio.Reader { return m.stdin }
