package code

import (
	"strings"
	"testing"

	"miniclj/memaddress"
)

func TestFillJump(t *testing.T) {
	ins := Instructions{NewJump(-1)}
	ins.FillJump(0, 5)
	if ins[0].Target != 5 {
		t.Errorf("Target = %d, want 5", ins[0].Target)
	}
}

func TestFillJumpPanicsOnNonJump(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic filling a non-jump instruction")
		}
	}()
	ins := Instructions{NewReturn(memaddress.New(memaddress.Temporal, 0))}
	ins.FillJump(0, 5)
}

func TestIsJump(t *testing.T) {
	jumpKinds := []Instruction{
		NewJump(0),
		NewJumpOnTrue(memaddress.New(memaddress.Temporal, 0), 0),
		NewJumpOnFalse(memaddress.New(memaddress.Temporal, 0), 0),
	}
	for _, i := range jumpKinds {
		if !i.IsJump() {
			t.Errorf("%v.IsJump() = false, want true", i)
		}
	}
	notJumps := []Instruction{
		NewReturn(memaddress.New(memaddress.Temporal, 0)),
		NewAssignment(memaddress.New(memaddress.Temporal, 0), memaddress.New(memaddress.GlobalVar, 0)),
	}
	for _, i := range notJumps {
		if i.IsJump() {
			t.Errorf("%v.IsJump() = true, want false", i)
		}
	}
}

func TestInstructionStringMnemonics(t *testing.T) {
	c := memaddress.New(memaddress.Constant, 0)
	g := memaddress.New(memaddress.GlobalVar, 1)
	temp := memaddress.New(memaddress.Temporal, 2)

	tests := []struct {
		instr  Instruction
		prefix string
	}{
		{NewCall(c, []memaddress.Address{g}, temp), "call "},
		{NewReturn(temp), "ret "},
		{NewAssignment(c, g), "mov "},
		{NewJump(3), "jmp 3"},
		{NewJumpOnTrue(c, 3), "jmpT "},
		{NewJumpOnFalse(c, 3), "jmpF "},
	}
	for _, tt := range tests {
		got := tt.instr.String()
		if !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("String() = %q, want prefix %q", got, tt.prefix)
		}
	}
}

func TestInstructionsStringNumbersLines(t *testing.T) {
	ins := Instructions{
		NewJump(1),
		NewReturn(memaddress.New(memaddress.Temporal, 0)),
	}
	out := ins.String()
	if !strings.HasPrefix(out, "0000 jmp 1\n0001 ret ") {
		t.Errorf("String() = %q, want lines prefixed with 0000/0001", out)
	}
}
