// Package bytecode implements the textual on-disk format for a compiled
// program: a constants section and an instructions section separated by a
// line containing exactly "***".
package bytecode

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"miniclj/code"
	"miniclj/memaddress"
	"miniclj/value"
)

const sectionSeparator = "***"

// Write serializes constants and instructions in the file format described
// by the bytecode text codec: constants first (one "<address> <printed>"
// line each), the "***" separator, then one instruction line per
// instruction using the mnemonics in code.Instruction.String.
func Write(w io.Writer, constants []value.Constant, instructions code.Instructions) error {
	bw := bufio.NewWriter(w)
	for i, c := range constants {
		addr := memaddress.New(memaddress.Constant, i)
		if _, err := fmt.Fprintf(bw, "%s %s\n", addr, c.Display()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, sectionSeparator); err != nil {
		return err
	}
	for _, instr := range instructions {
		if _, err := fmt.Fprintln(bw, instr.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses the file format written by Write back into constants and
// instructions.
func Read(r io.Reader) ([]value.Constant, code.Instructions, error) {
	scanner := bufio.NewScanner(r)

	var constants []value.Constant
	for scanner.Scan() {
		line := scanner.Text()
		if line == sectionSeparator {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := parseConstantLine(line)
		if err != nil {
			return nil, nil, err
		}
		constants = append(constants, c)
	}

	var instructions code.Instructions
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		instr, err := parseInstructionLine(line)
		if err != nil {
			return nil, nil, err
		}
		instructions = append(instructions, instr)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return constants, instructions, nil
}

func parseConstantLine(line string) (value.Constant, error) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) != 2 {
		return value.Constant{}, fmt.Errorf("bytecode: malformed constant line %q", line)
	}
	packed, err := strconv.Atoi(parts[0])
	if err != nil {
		return value.Constant{}, fmt.Errorf("bytecode: malformed constant address %q: %w", parts[0], err)
	}
	_ = memaddress.Unpack(packed) // the address itself is not checked; a constant's index is its line position
	return parseConstant(parts[1])
}

func parseConstant(text string) (value.Constant, error) {
	switch {
	case text == "nil":
		return value.NilConstant, nil
	case strings.HasPrefix(text, "\"") && strings.HasSuffix(text, "\"") && len(text) >= 2:
		return value.ConstString(text[1 : len(text)-1]), nil
	case strings.HasPrefix(text, "fn@"):
		fields := strings.Split(strings.TrimPrefix(text, "fn@"), "@")
		if len(fields) != 2 {
			return value.Constant{}, fmt.Errorf("bytecode: malformed lambda constant %q", text)
		}
		entry, err1 := strconv.Atoi(fields[0])
		arity, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return value.Constant{}, fmt.Errorf("bytecode: malformed lambda constant %q", text)
		}
		return value.ConstLambda(entry, arity), nil
	default:
		if r, ok := new(big.Rat).SetString(text); ok {
			return value.ConstNumber(value.NewNumber(r)), nil
		}
		// anything else must be an operator name
		return value.ConstCallable(text), nil
	}
}

func parseAddress(field string) (memaddress.Address, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return memaddress.Address{}, fmt.Errorf("bytecode: malformed address %q: %w", field, err)
	}
	return memaddress.Unpack(n), nil
}

func parseInstructionLine(line string) (code.Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return code.Instruction{}, fmt.Errorf("bytecode: empty instruction line")
	}
	switch fields[0] {
	case "call":
		if len(fields) < 3 {
			return code.Instruction{}, fmt.Errorf("bytecode: malformed call instruction %q", line)
		}
		callable, err := parseAddress(fields[1])
		if err != nil {
			return code.Instruction{}, err
		}
		result, err := parseAddress(fields[len(fields)-1])
		if err != nil {
			return code.Instruction{}, err
		}
		args := make([]memaddress.Address, 0, len(fields)-3)
		for _, f := range fields[2 : len(fields)-1] {
			a, err := parseAddress(f)
			if err != nil {
				return code.Instruction{}, err
			}
			args = append(args, a)
		}
		return code.NewCall(callable, args, result), nil

	case "ret":
		if len(fields) != 2 {
			return code.Instruction{}, fmt.Errorf("bytecode: malformed ret instruction %q", line)
		}
		addr, err := parseAddress(fields[1])
		if err != nil {
			return code.Instruction{}, err
		}
		return code.NewReturn(addr), nil

	case "mov":
		if len(fields) != 3 {
			return code.Instruction{}, fmt.Errorf("bytecode: malformed mov instruction %q", line)
		}
		src, err := parseAddress(fields[1])
		if err != nil {
			return code.Instruction{}, err
		}
		dst, err := parseAddress(fields[2])
		if err != nil {
			return code.Instruction{}, err
		}
		return code.NewAssignment(src, dst), nil

	case "jmp":
		if len(fields) != 2 {
			return code.Instruction{}, fmt.Errorf("bytecode: malformed jmp instruction %q", line)
		}
		target, err := strconv.Atoi(fields[1])
		if err != nil {
			return code.Instruction{}, err
		}
		return code.NewJump(target), nil

	case "jmpT", "jmpF":
		if len(fields) != 3 {
			return code.Instruction{}, fmt.Errorf("bytecode: malformed %s instruction %q", fields[0], line)
		}
		cond, err := parseAddress(fields[1])
		if err != nil {
			return code.Instruction{}, err
		}
		target, err := strconv.Atoi(fields[2])
		if err != nil {
			return code.Instruction{}, err
		}
		if fields[0] == "jmpT" {
			return code.NewJumpOnTrue(cond, target), nil
		}
		return code.NewJumpOnFalse(cond, target), nil

	default:
		return code.Instruction{}, fmt.Errorf("bytecode: unknown instruction mnemonic %q", fields[0])
	}
}
