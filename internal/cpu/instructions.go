package cpu

// Load operations
func (cpu *CPU) lda(mode AddressingMode) { cpu.A = cpu.setZN(cpu.load(mode)) }
func (cpu *CPU) ldx(mode AddressingMode) { cpu.X = cpu.setZN(cpu.load(mode)) }
func (cpu *CPU) ldy(mode AddressingMode) { cpu.Y = cpu.setZN(cpu.load(mode)) }

// Store operations
func (cpu *CPU) sta(mode AddressingMode) { cpu.store(mode, cpu.A) }
func (cpu *CPU) stx(mode AddressingMode) { cpu.store(mode, cpu.X) }
func (cpu *CPU) sty(mode AddressingMode) { cpu.store(mode, cpu.Y) }

// Arithmetic operations. The decimal flag is ignored: the NES CPU has no
// BCD unit.
func (cpu *CPU) adc(mode AddressingMode) { cpu.addWithCarry(cpu.load(mode)) }
func (cpu *CPU) sbc(mode AddressingMode) { cpu.subtractWithBorrow(cpu.load(mode)) }

func (cpu *CPU) addWithCarry(value uint8) {
	sum := uint16(cpu.A) + uint16(value) + uint16(cpu.carry())
	result := uint8(sum)

	// Overflow when both inputs share a sign that the result does not
	cpu.SetFlag(FlagOverflow, ^(cpu.A^value)&(cpu.A^result)&0x80 != 0)
	cpu.SetFlag(FlagCarry, sum > 0xFF)
	cpu.A = cpu.setZN(result)
}

func (cpu *CPU) subtractWithBorrow(value uint8) {
	diff := int16(cpu.A) - int16(value) - int16(1-cpu.carry())
	result := uint8(diff)

	cpu.SetFlag(FlagOverflow, (cpu.A^result)&(cpu.A^value)&0x80 != 0)
	cpu.SetFlag(FlagCarry, diff >= 0)
	cpu.A = cpu.setZN(result)
}

// Logical operations
func (cpu *CPU) and(mode AddressingMode) { cpu.A = cpu.setZN(cpu.A & cpu.load(mode)) }
func (cpu *CPU) ora(mode AddressingMode) { cpu.A = cpu.setZN(cpu.A | cpu.load(mode)) }
func (cpu *CPU) eor(mode AddressingMode) { cpu.A = cpu.setZN(cpu.A ^ cpu.load(mode)) }

func (cpu *CPU) bit(mode AddressingMode) {
	value := cpu.load(mode)
	cpu.SetFlag(FlagZero, cpu.A&value == 0)
	cpu.SetFlag(FlagOverflow, value&0x40 != 0)
	cpu.SetFlag(FlagNegative, value&0x80 != 0)
}

// Shift and rotate operations
func (cpu *CPU) asl(mode AddressingMode) { cpu.modify(mode, cpu.shiftLeft) }
func (cpu *CPU) lsr(mode AddressingMode) { cpu.modify(mode, cpu.shiftRight) }
func (cpu *CPU) rol(mode AddressingMode) { cpu.modify(mode, cpu.rotateLeft) }
func (cpu *CPU) ror(mode AddressingMode) { cpu.modify(mode, cpu.rotateRight) }

func (cpu *CPU) shiftLeft(value uint8) uint8 {
	cpu.SetFlag(FlagCarry, value&0x80 != 0)
	return cpu.setZN(value << 1)
}

func (cpu *CPU) shiftRight(value uint8) uint8 {
	cpu.SetFlag(FlagCarry, value&0x01 != 0)
	return cpu.setZN(value >> 1)
}

func (cpu *CPU) rotateLeft(value uint8) uint8 {
	carryIn := cpu.carry()
	cpu.SetFlag(FlagCarry, value&0x80 != 0)
	return cpu.setZN(value<<1 | carryIn)
}

func (cpu *CPU) rotateRight(value uint8) uint8 {
	carryIn := cpu.carry() << 7
	cpu.SetFlag(FlagCarry, value&0x01 != 0)
	return cpu.setZN(value>>1 | carryIn)
}

// Compare operations
func (cpu *CPU) cmp(mode AddressingMode) { cpu.compare(cpu.A, cpu.load(mode)) }
func (cpu *CPU) cpx(mode AddressingMode) { cpu.compare(cpu.X, cpu.load(mode)) }
func (cpu *CPU) cpy(mode AddressingMode) { cpu.compare(cpu.Y, cpu.load(mode)) }

// Increment and decrement operations
func (cpu *CPU) inc(mode AddressingMode) {
	cpu.modify(mode, func(v uint8) uint8 { return cpu.setZN(v + 1) })
}

func (cpu *CPU) dec(mode AddressingMode) {
	cpu.modify(mode, func(v uint8) uint8 { return cpu.setZN(v - 1) })
}

func (cpu *CPU) inx(AddressingMode) { cpu.X = cpu.setZN(cpu.X + 1) }
func (cpu *CPU) dex(AddressingMode) { cpu.X = cpu.setZN(cpu.X - 1) }
func (cpu *CPU) iny(AddressingMode) { cpu.Y = cpu.setZN(cpu.Y + 1) }
func (cpu *CPU) dey(AddressingMode) { cpu.Y = cpu.setZN(cpu.Y - 1) }

// Transfer operations
func (cpu *CPU) tax(AddressingMode) { cpu.X = cpu.setZN(cpu.A) }
func (cpu *CPU) txa(AddressingMode) { cpu.A = cpu.setZN(cpu.X) }
func (cpu *CPU) tay(AddressingMode) { cpu.Y = cpu.setZN(cpu.A) }
func (cpu *CPU) tya(AddressingMode) { cpu.A = cpu.setZN(cpu.Y) }
func (cpu *CPU) tsx(AddressingMode) { cpu.X = cpu.setZN(cpu.S) }
func (cpu *CPU) txs(AddressingMode) { cpu.S = cpu.X }

// Stack operations. Break and Unused only exist on the stack copy of P.
func (cpu *CPU) pha(AddressingMode) { cpu.pushByte(cpu.A) }
func (cpu *CPU) pla(AddressingMode) { cpu.A = cpu.setZN(cpu.popByte()) }
func (cpu *CPU) php(AddressingMode) { cpu.pushByte(cpu.P | FlagBreak | FlagUnused) }
func (cpu *CPU) plp(AddressingMode) { cpu.P = cpu.popByte()&^FlagBreak | FlagUnused }

// Flag operations
func (cpu *CPU) clc(AddressingMode) { cpu.SetFlag(FlagCarry, false) }
func (cpu *CPU) sec(AddressingMode) { cpu.SetFlag(FlagCarry, true) }
func (cpu *CPU) cli(AddressingMode) { cpu.SetFlag(FlagInterruptDisable, false) }
func (cpu *CPU) sei(AddressingMode) { cpu.SetFlag(FlagInterruptDisable, true) }
func (cpu *CPU) clv(AddressingMode) { cpu.SetFlag(FlagOverflow, false) }
func (cpu *CPU) cld(AddressingMode) { cpu.SetFlag(FlagDecimal, false) }
func (cpu *CPU) sed(AddressingMode) { cpu.SetFlag(FlagDecimal, true) }

// Jump and subroutine operations
func (cpu *CPU) jmp(mode AddressingMode) { cpu.PC = cpu.address(mode) }

func (cpu *CPU) jsr(mode AddressingMode) {
	target := cpu.address(mode)
	cpu.pushWord(cpu.PC - 1)
	cpu.PC = target
}

func (cpu *CPU) rts(AddressingMode) { cpu.PC = cpu.popWord() + 1 }

func (cpu *CPU) rti(AddressingMode) {
	cpu.P = cpu.popByte()&^FlagBreak | FlagUnused
	cpu.PC = cpu.popWord()
}

func (cpu *CPU) brk(AddressingMode) {
	cpu.PC++ // padding byte
	cpu.pushWord(cpu.PC)
	cpu.pushByte(cpu.P | FlagBreak | FlagUnused)
	cpu.SetFlag(FlagInterruptDisable, true)
	cpu.PC = cpu.bus.LoadWord(IRQVector)
}

// Branch operations
func (cpu *CPU) bcc(AddressingMode) { cpu.branch(!cpu.Flag(FlagCarry)) }
func (cpu *CPU) bcs(AddressingMode) { cpu.branch(cpu.Flag(FlagCarry)) }
func (cpu *CPU) bne(AddressingMode) { cpu.branch(!cpu.Flag(FlagZero)) }
func (cpu *CPU) beq(AddressingMode) { cpu.branch(cpu.Flag(FlagZero)) }
func (cpu *CPU) bpl(AddressingMode) { cpu.branch(!cpu.Flag(FlagNegative)) }
func (cpu *CPU) bmi(AddressingMode) { cpu.branch(cpu.Flag(FlagNegative)) }
func (cpu *CPU) bvc(AddressingMode) { cpu.branch(!cpu.Flag(FlagOverflow)) }
func (cpu *CPU) bvs(AddressingMode) { cpu.branch(cpu.Flag(FlagOverflow)) }

// nop consumes any operand bytes without touching the operand itself
func (cpu *CPU) nop(mode AddressingMode) {
	if mode != Implied {
		cpu.address(mode)
	}
}

// --- Unofficial Opcodes ---

func (cpu *CPU) lax(mode AddressingMode) {
	cpu.A = cpu.setZN(cpu.load(mode))
	cpu.X = cpu.A
}

func (cpu *CPU) sax(mode AddressingMode) { cpu.store(mode, cpu.A&cpu.X) }

func (cpu *CPU) dcp(mode AddressingMode) {
	value := cpu.modify(mode, func(v uint8) uint8 { return v - 1 })
	cpu.compare(cpu.A, value)
}

func (cpu *CPU) isb(mode AddressingMode) {
	cpu.subtractWithBorrow(cpu.modify(mode, func(v uint8) uint8 { return v + 1 }))
}

func (cpu *CPU) slo(mode AddressingMode) {
	cpu.A = cpu.setZN(cpu.A | cpu.modify(mode, cpu.shiftLeft))
}

func (cpu *CPU) rla(mode AddressingMode) {
	cpu.A = cpu.setZN(cpu.A & cpu.modify(mode, cpu.rotateLeft))
}

func (cpu *CPU) sre(mode AddressingMode) {
	cpu.A = cpu.setZN(cpu.A ^ cpu.modify(mode, cpu.shiftRight))
}

func (cpu *CPU) rra(mode AddressingMode) {
	cpu.addWithCarry(cpu.modify(mode, cpu.rotateRight))
}
