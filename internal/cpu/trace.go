package cpu

import (
	"fmt"
	"strings"
)

// Disassemble decodes the instruction at address without executing it. It
// returns the assembly text and the instruction length in bytes. Unofficial
// opcodes are prefixed with '*'; unimplemented ones render as ".byte".
func (cpu *CPU) Disassemble(address uint16) (string, int) {
	mark, text, length := cpu.disassemble(address)
	if mark == '*' {
		return "*" + text, length
	}
	return text, length
}

func (cpu *CPU) disassemble(address uint16) (mark byte, text string, length int) {
	code := cpu.bus.LoadByte(address)
	op := opcodes[code]
	if op.exec == nil {
		return ' ', fmt.Sprintf(".byte $%02X", code), 1
	}

	mark = ' '
	if op.unofficial {
		mark = '*'
	}

	length = 1 + operandLength(op.mode)
	b1 := cpu.bus.LoadByte(address + 1)
	word := cpu.bus.LoadWord(address + 1)

	var operand string
	switch op.mode {
	case Implied:
	case Accumulator:
		operand = "A"
	case Immediate:
		operand = fmt.Sprintf("#$%02X", b1)
	case ZeroPage:
		operand = fmt.Sprintf("$%02X", b1)
	case ZeroPageX:
		operand = fmt.Sprintf("$%02X,X", b1)
	case ZeroPageY:
		operand = fmt.Sprintf("$%02X,Y", b1)
	case Relative:
		target := uint16(int32(address) + 2 + int32(int8(b1)))
		operand = fmt.Sprintf("$%04X", target)
	case Absolute:
		operand = fmt.Sprintf("$%04X", word)
	case AbsoluteX:
		operand = fmt.Sprintf("$%04X,X", word)
	case AbsoluteY:
		operand = fmt.Sprintf("$%04X,Y", word)
	case Indirect:
		operand = fmt.Sprintf("($%04X)", word)
	case IndexedIndirect:
		operand = fmt.Sprintf("($%02X,X)", b1)
	case IndirectIndexed:
		operand = fmt.Sprintf("($%02X),Y", b1)
	}

	text = op.name
	if operand != "" {
		text += " " + operand
	}
	return mark, text, length
}

// Trace returns a nestest-style line for the instruction at PC and the
// registers before it executes, e.g.
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD
func (cpu *CPU) Trace() string {
	mark, text, length := cpu.disassemble(cpu.PC)

	raw := make([]string, length)
	for i := range raw {
		raw[i] = fmt.Sprintf("%02X", cpu.bus.LoadByte(cpu.PC+uint16(i)))
	}

	return fmt.Sprintf("%04X  %-8s %c%-31s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		cpu.PC, strings.Join(raw, " "), mark, text, cpu.A, cpu.X, cpu.Y, cpu.P, cpu.S)
}
