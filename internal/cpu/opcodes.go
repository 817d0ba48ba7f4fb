package cpu

// opcode describes one entry of the decode table
type opcode struct {
	name       string
	mode       AddressingMode
	exec       func(*CPU, AddressingMode)
	unofficial bool
}

// opcodes maps every opcode byte to its instruction. Entries with a nil
// exec are not implemented and are fatal when decoded.
var opcodes [256]opcode

func def(code uint8, name string, mode AddressingMode, exec func(*CPU, AddressingMode)) {
	opcodes[code] = opcode{name: name, mode: mode, exec: exec}
}

func defUnofficial(code uint8, name string, mode AddressingMode, exec func(*CPU, AddressingMode)) {
	opcodes[code] = opcode{name: name, mode: mode, exec: exec, unofficial: true}
}

func init() {
	// Load/Store Instructions
	def(0xA9, "LDA", Immediate, (*CPU).lda)
	def(0xA5, "LDA", ZeroPage, (*CPU).lda)
	def(0xB5, "LDA", ZeroPageX, (*CPU).lda)
	def(0xAD, "LDA", Absolute, (*CPU).lda)
	def(0xBD, "LDA", AbsoluteX, (*CPU).lda)
	def(0xB9, "LDA", AbsoluteY, (*CPU).lda)
	def(0xA1, "LDA", IndexedIndirect, (*CPU).lda)
	def(0xB1, "LDA", IndirectIndexed, (*CPU).lda)

	def(0xA2, "LDX", Immediate, (*CPU).ldx)
	def(0xA6, "LDX", ZeroPage, (*CPU).ldx)
	def(0xB6, "LDX", ZeroPageY, (*CPU).ldx)
	def(0xAE, "LDX", Absolute, (*CPU).ldx)
	def(0xBE, "LDX", AbsoluteY, (*CPU).ldx)

	def(0xA0, "LDY", Immediate, (*CPU).ldy)
	def(0xA4, "LDY", ZeroPage, (*CPU).ldy)
	def(0xB4, "LDY", ZeroPageX, (*CPU).ldy)
	def(0xAC, "LDY", Absolute, (*CPU).ldy)
	def(0xBC, "LDY", AbsoluteX, (*CPU).ldy)

	def(0x85, "STA", ZeroPage, (*CPU).sta)
	def(0x95, "STA", ZeroPageX, (*CPU).sta)
	def(0x8D, "STA", Absolute, (*CPU).sta)
	def(0x9D, "STA", AbsoluteX, (*CPU).sta)
	def(0x99, "STA", AbsoluteY, (*CPU).sta)
	def(0x81, "STA", IndexedIndirect, (*CPU).sta)
	def(0x91, "STA", IndirectIndexed, (*CPU).sta)

	def(0x86, "STX", ZeroPage, (*CPU).stx)
	def(0x96, "STX", ZeroPageY, (*CPU).stx)
	def(0x8E, "STX", Absolute, (*CPU).stx)

	def(0x84, "STY", ZeroPage, (*CPU).sty)
	def(0x94, "STY", ZeroPageX, (*CPU).sty)
	def(0x8C, "STY", Absolute, (*CPU).sty)

	// Arithmetic Instructions
	def(0x69, "ADC", Immediate, (*CPU).adc)
	def(0x65, "ADC", ZeroPage, (*CPU).adc)
	def(0x75, "ADC", ZeroPageX, (*CPU).adc)
	def(0x6D, "ADC", Absolute, (*CPU).adc)
	def(0x7D, "ADC", AbsoluteX, (*CPU).adc)
	def(0x79, "ADC", AbsoluteY, (*CPU).adc)
	def(0x61, "ADC", IndexedIndirect, (*CPU).adc)
	def(0x71, "ADC", IndirectIndexed, (*CPU).adc)

	def(0xE9, "SBC", Immediate, (*CPU).sbc)
	def(0xE5, "SBC", ZeroPage, (*CPU).sbc)
	def(0xF5, "SBC", ZeroPageX, (*CPU).sbc)
	def(0xED, "SBC", Absolute, (*CPU).sbc)
	def(0xFD, "SBC", AbsoluteX, (*CPU).sbc)
	def(0xF9, "SBC", AbsoluteY, (*CPU).sbc)
	def(0xE1, "SBC", IndexedIndirect, (*CPU).sbc)
	def(0xF1, "SBC", IndirectIndexed, (*CPU).sbc)

	// Logical Instructions
	def(0x29, "AND", Immediate, (*CPU).and)
	def(0x25, "AND", ZeroPage, (*CPU).and)
	def(0x35, "AND", ZeroPageX, (*CPU).and)
	def(0x2D, "AND", Absolute, (*CPU).and)
	def(0x3D, "AND", AbsoluteX, (*CPU).and)
	def(0x39, "AND", AbsoluteY, (*CPU).and)
	def(0x21, "AND", IndexedIndirect, (*CPU).and)
	def(0x31, "AND", IndirectIndexed, (*CPU).and)

	def(0x09, "ORA", Immediate, (*CPU).ora)
	def(0x05, "ORA", ZeroPage, (*CPU).ora)
	def(0x15, "ORA", ZeroPageX, (*CPU).ora)
	def(0x0D, "ORA", Absolute, (*CPU).ora)
	def(0x1D, "ORA", AbsoluteX, (*CPU).ora)
	def(0x19, "ORA", AbsoluteY, (*CPU).ora)
	def(0x01, "ORA", IndexedIndirect, (*CPU).ora)
	def(0x11, "ORA", IndirectIndexed, (*CPU).ora)

	def(0x49, "EOR", Immediate, (*CPU).eor)
	def(0x45, "EOR", ZeroPage, (*CPU).eor)
	def(0x55, "EOR", ZeroPageX, (*CPU).eor)
	def(0x4D, "EOR", Absolute, (*CPU).eor)
	def(0x5D, "EOR", AbsoluteX, (*CPU).eor)
	def(0x59, "EOR", AbsoluteY, (*CPU).eor)
	def(0x41, "EOR", IndexedIndirect, (*CPU).eor)
	def(0x51, "EOR", IndirectIndexed, (*CPU).eor)

	def(0x24, "BIT", ZeroPage, (*CPU).bit)
	def(0x2C, "BIT", Absolute, (*CPU).bit)

	// Shift and Rotate Instructions
	def(0x0A, "ASL", Accumulator, (*CPU).asl)
	def(0x06, "ASL", ZeroPage, (*CPU).asl)
	def(0x16, "ASL", ZeroPageX, (*CPU).asl)
	def(0x0E, "ASL", Absolute, (*CPU).asl)
	def(0x1E, "ASL", AbsoluteX, (*CPU).asl)

	def(0x4A, "LSR", Accumulator, (*CPU).lsr)
	def(0x46, "LSR", ZeroPage, (*CPU).lsr)
	def(0x56, "LSR", ZeroPageX, (*CPU).lsr)
	def(0x4E, "LSR", Absolute, (*CPU).lsr)
	def(0x5E, "LSR", AbsoluteX, (*CPU).lsr)

	def(0x2A, "ROL", Accumulator, (*CPU).rol)
	def(0x26, "ROL", ZeroPage, (*CPU).rol)
	def(0x36, "ROL", ZeroPageX, (*CPU).rol)
	def(0x2E, "ROL", Absolute, (*CPU).rol)
	def(0x3E, "ROL", AbsoluteX, (*CPU).rol)

	def(0x6A, "ROR", Accumulator, (*CPU).ror)
	def(0x66, "ROR", ZeroPage, (*CPU).ror)
	def(0x76, "ROR", ZeroPageX, (*CPU).ror)
	def(0x6E, "ROR", Absolute, (*CPU).ror)
	def(0x7E, "ROR", AbsoluteX, (*CPU).ror)

	// Compare Instructions
	def(0xC9, "CMP", Immediate, (*CPU).cmp)
	def(0xC5, "CMP", ZeroPage, (*CPU).cmp)
	def(0xD5, "CMP", ZeroPageX, (*CPU).cmp)
	def(0xCD, "CMP", Absolute, (*CPU).cmp)
	def(0xDD, "CMP", AbsoluteX, (*CPU).cmp)
	def(0xD9, "CMP", AbsoluteY, (*CPU).cmp)
	def(0xC1, "CMP", IndexedIndirect, (*CPU).cmp)
	def(0xD1, "CMP", IndirectIndexed, (*CPU).cmp)

	def(0xE0, "CPX", Immediate, (*CPU).cpx)
	def(0xE4, "CPX", ZeroPage, (*CPU).cpx)
	def(0xEC, "CPX", Absolute, (*CPU).cpx)

	def(0xC0, "CPY", Immediate, (*CPU).cpy)
	def(0xC4, "CPY", ZeroPage, (*CPU).cpy)
	def(0xCC, "CPY", Absolute, (*CPU).cpy)

	// Increment/Decrement Instructions
	def(0xE6, "INC", ZeroPage, (*CPU).inc)
	def(0xF6, "INC", ZeroPageX, (*CPU).inc)
	def(0xEE, "INC", Absolute, (*CPU).inc)
	def(0xFE, "INC", AbsoluteX, (*CPU).inc)

	def(0xC6, "DEC", ZeroPage, (*CPU).dec)
	def(0xD6, "DEC", ZeroPageX, (*CPU).dec)
	def(0xCE, "DEC", Absolute, (*CPU).dec)
	def(0xDE, "DEC", AbsoluteX, (*CPU).dec)

	def(0xE8, "INX", Implied, (*CPU).inx)
	def(0xCA, "DEX", Implied, (*CPU).dex)
	def(0xC8, "INY", Implied, (*CPU).iny)
	def(0x88, "DEY", Implied, (*CPU).dey)

	// Transfer Instructions
	def(0xAA, "TAX", Implied, (*CPU).tax)
	def(0x8A, "TXA", Implied, (*CPU).txa)
	def(0xA8, "TAY", Implied, (*CPU).tay)
	def(0x98, "TYA", Implied, (*CPU).tya)
	def(0xBA, "TSX", Implied, (*CPU).tsx)
	def(0x9A, "TXS", Implied, (*CPU).txs)

	// Stack Instructions
	def(0x48, "PHA", Implied, (*CPU).pha)
	def(0x68, "PLA", Implied, (*CPU).pla)
	def(0x08, "PHP", Implied, (*CPU).php)
	def(0x28, "PLP", Implied, (*CPU).plp)

	// Flag Instructions
	def(0x18, "CLC", Implied, (*CPU).clc)
	def(0x38, "SEC", Implied, (*CPU).sec)
	def(0x58, "CLI", Implied, (*CPU).cli)
	def(0x78, "SEI", Implied, (*CPU).sei)
	def(0xB8, "CLV", Implied, (*CPU).clv)
	def(0xD8, "CLD", Implied, (*CPU).cld)
	def(0xF8, "SED", Implied, (*CPU).sed)

	// Jump and Subroutine Instructions
	def(0x4C, "JMP", Absolute, (*CPU).jmp)
	def(0x6C, "JMP", Indirect, (*CPU).jmp)
	def(0x20, "JSR", Absolute, (*CPU).jsr)
	def(0x60, "RTS", Implied, (*CPU).rts)
	def(0x40, "RTI", Implied, (*CPU).rti)
	def(0x00, "BRK", Implied, (*CPU).brk)

	// Branch Instructions
	def(0x90, "BCC", Relative, (*CPU).bcc)
	def(0xB0, "BCS", Relative, (*CPU).bcs)
	def(0xD0, "BNE", Relative, (*CPU).bne)
	def(0xF0, "BEQ", Relative, (*CPU).beq)
	def(0x10, "BPL", Relative, (*CPU).bpl)
	def(0x30, "BMI", Relative, (*CPU).bmi)
	def(0x50, "BVC", Relative, (*CPU).bvc)
	def(0x70, "BVS", Relative, (*CPU).bvs)

	def(0xEA, "NOP", Implied, (*CPU).nop)

	// --- Unofficial Opcodes ---

	for _, code := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		defUnofficial(code, "NOP", Implied, (*CPU).nop)
	}
	for _, code := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		defUnofficial(code, "NOP", Immediate, (*CPU).nop)
	}
	for _, code := range []uint8{0x04, 0x44, 0x64} {
		defUnofficial(code, "NOP", ZeroPage, (*CPU).nop)
	}
	for _, code := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		defUnofficial(code, "NOP", ZeroPageX, (*CPU).nop)
	}
	defUnofficial(0x0C, "NOP", Absolute, (*CPU).nop)
	for _, code := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		defUnofficial(code, "NOP", AbsoluteX, (*CPU).nop)
	}

	defUnofficial(0xA3, "LAX", IndexedIndirect, (*CPU).lax)
	defUnofficial(0xA7, "LAX", ZeroPage, (*CPU).lax)
	defUnofficial(0xAF, "LAX", Absolute, (*CPU).lax)
	defUnofficial(0xB3, "LAX", IndirectIndexed, (*CPU).lax)
	defUnofficial(0xB7, "LAX", ZeroPageY, (*CPU).lax)
	defUnofficial(0xBF, "LAX", AbsoluteY, (*CPU).lax)

	defUnofficial(0x83, "SAX", IndexedIndirect, (*CPU).sax)
	defUnofficial(0x87, "SAX", ZeroPage, (*CPU).sax)
	defUnofficial(0x8F, "SAX", Absolute, (*CPU).sax)
	defUnofficial(0x97, "SAX", ZeroPageY, (*CPU).sax)

	defUnofficial(0xEB, "SBC", Immediate, (*CPU).sbc)

	// The read-modify-write combinations share one addressing layout
	rmw := []struct {
		name string
		base uint8
		exec func(*CPU, AddressingMode)
	}{
		{"SLO", 0x00, (*CPU).slo},
		{"RLA", 0x20, (*CPU).rla},
		{"SRE", 0x40, (*CPU).sre},
		{"RRA", 0x60, (*CPU).rra},
		{"DCP", 0xC0, (*CPU).dcp},
		{"ISB", 0xE0, (*CPU).isb},
	}
	for _, op := range rmw {
		defUnofficial(op.base|0x03, op.name, IndexedIndirect, op.exec)
		defUnofficial(op.base|0x07, op.name, ZeroPage, op.exec)
		defUnofficial(op.base|0x0F, op.name, Absolute, op.exec)
		defUnofficial(op.base|0x13, op.name, IndirectIndexed, op.exec)
		defUnofficial(op.base|0x17, op.name, ZeroPageX, op.exec)
		defUnofficial(op.base|0x1B, op.name, AbsoluteY, op.exec)
		defUnofficial(op.base|0x1F, op.name, AbsoluteX, op.exec)
	}
}

// operandLength returns the number of operand bytes that follow an opcode
func operandLength(mode AddressingMode) int {
	switch mode {
	case Implied, Accumulator:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 1
	}
}
