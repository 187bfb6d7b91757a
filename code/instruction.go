// Package code defines the bytecode instruction set produced by the
// compiler and consumed by the virtual machine.
//
// Unlike a stack machine's opcode-plus-operand-bytes encoding, this
// instruction set is address-based: every instruction names the memory
// addresses it reads from and writes to directly, so the VM never needs an
// implicit operand stack. There are exactly six instruction shapes.
package code

import (
	"fmt"
	"strings"

	"miniclj/memaddress"
)

// InstructionPtr is a zero-based index into an Instructions stream.
type InstructionPtr = int

// Kind tags which of the six instruction shapes an Instruction holds.
type Kind uint8

const (
	KindCall Kind = iota
	KindReturn
	KindAssignment
	KindJump
	KindJumpOnTrue
	KindJumpOnFalse
)

// Instruction is one bytecode operation. Only the fields relevant to Kind
// are meaningful; the zero value of the others is ignored.
type Instruction struct {
	Kind Kind

	// Call
	Callable memaddress.Address
	Args     []memaddress.Address
	Result   memaddress.Address

	// Return, Assignment (Src), JumpOnTrue/JumpOnFalse (Cond)
	Addr memaddress.Address

	// Assignment
	Dst memaddress.Address

	// Jump, JumpOnTrue, JumpOnFalse
	Target InstructionPtr
}

// NewCall builds a Call instruction.
func NewCall(callable memaddress.Address, args []memaddress.Address, result memaddress.Address) Instruction {
	return Instruction{Kind: KindCall, Callable: callable, Args: args, Result: result}
}

// NewReturn builds a Return instruction.
func NewReturn(addr memaddress.Address) Instruction {
	return Instruction{Kind: KindReturn, Addr: addr}
}

// NewAssignment builds an Assignment (mov) instruction.
func NewAssignment(src, dst memaddress.Address) Instruction {
	return Instruction{Kind: KindAssignment, Addr: src, Dst: dst}
}

// NewJump builds an unconditional Jump. target is a placeholder (typically
// -1) until fixed up by FillJump.
func NewJump(target InstructionPtr) Instruction {
	return Instruction{Kind: KindJump, Target: target}
}

// NewJumpOnTrue builds a JumpOnTrue instruction.
func NewJumpOnTrue(cond memaddress.Address, target InstructionPtr) Instruction {
	return Instruction{Kind: KindJumpOnTrue, Addr: cond, Target: target}
}

// NewJumpOnFalse builds a JumpOnFalse instruction.
func NewJumpOnFalse(cond memaddress.Address, target InstructionPtr) Instruction {
	return Instruction{Kind: KindJumpOnFalse, Addr: cond, Target: target}
}

// IsJump reports whether the instruction is one of the three jump variants,
// the only kinds FillJump may rewrite.
func (i Instruction) IsJump() bool {
	return i.Kind == KindJump || i.Kind == KindJumpOnTrue || i.Kind == KindJumpOnFalse
}

// String renders the instruction using the exact mnemonics of the bytecode
// text format (see the bytecode package for the file-level writer).
func (i Instruction) String() string {
	switch i.Kind {
	case KindCall:
		parts := make([]string, 0, len(i.Args)+3)
		parts = append(parts, "call", i.Callable.String())
		for _, a := range i.Args {
			parts = append(parts, a.String())
		}
		parts = append(parts, i.Result.String())
		return strings.Join(parts, " ")
	case KindReturn:
		return fmt.Sprintf("ret %s", i.Addr)
	case KindAssignment:
		return fmt.Sprintf("mov %s %s", i.Addr, i.Dst)
	case KindJump:
		return fmt.Sprintf("jmp %d", i.Target)
	case KindJumpOnTrue:
		return fmt.Sprintf("jmpT %s %d", i.Addr, i.Target)
	case KindJumpOnFalse:
		return fmt.Sprintf("jmpF %s %d", i.Addr, i.Target)
	default:
		return "???"
	}
}

// Instructions is the compiled program's flat instruction stream.
type Instructions []Instruction

// FillJump rewrites the target of the jump instruction at ip. It panics if
// the instruction at ip is not a jump, which would indicate a compiler bug
// rather than a user error.
func (ins Instructions) FillJump(ip InstructionPtr, target InstructionPtr) {
	if !ins[ip].IsJump() {
		panic(fmt.Sprintf("FillJump: instruction at %d is not a jump", ip))
	}
	i := ins[ip]
	i.Target = target
	ins[ip] = i
}

// String disassembles the stream, one instruction per line prefixed with its
// address, for the `inspect` CLI surface.
func (ins Instructions) String() string {
	var b strings.Builder
	for i, instr := range ins {
		fmt.Fprintf(&b, "%04d %s\n", i, instr)
	}
	return b.String()
}
