// Package cpu implements the 6502 CPU emulation for the NES.
package cpu

import (
	"fmt"
)

// Addressing modes
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

var modeNames = [...]string{
	Implied:         "Implied",
	Accumulator:     "Accumulator",
	Immediate:       "Immediate",
	ZeroPage:        "ZeroPage",
	ZeroPageX:       "ZeroPageX",
	ZeroPageY:       "ZeroPageY",
	Relative:        "Relative",
	Absolute:        "Absolute",
	AbsoluteX:       "AbsoluteX",
	AbsoluteY:       "AbsoluteY",
	Indirect:        "Indirect",
	IndexedIndirect: "IndexedIndirect",
	IndirectIndexed: "IndirectIndexed",
}

func (m AddressingMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("AddressingMode(%d)", int(m))
	}
	return modeNames[m]
}

// Status register bit masks
const (
	FlagCarry            uint8 = 0x01
	FlagZero             uint8 = 0x02
	FlagInterruptDisable uint8 = 0x04
	FlagDecimal          uint8 = 0x08
	FlagBreak            uint8 = 0x10
	FlagUnused           uint8 = 0x20
	FlagOverflow         uint8 = 0x40
	FlagNegative         uint8 = 0x80
)

const (
	// Stack base address
	stackBase = 0x0100

	// Interrupt vectors
	NMIVector   = 0xFFFA // declared for the PPU vblank interrupt; nothing raises it yet
	ResetVector = 0xFFFC
	IRQVector   = 0xFFFE

	// Power-up register values
	powerUpS = 0xFD
	powerUpP = 0x34
)

// Bus is the CPU's view of the address space
type Bus interface {
	LoadByte(address uint16) uint8
	StoreByte(address uint16, value uint8)
	LoadWord(address uint16) uint16
	LoadWordZeroPageWraparound(address uint8) uint16
}

// Registers holds the programmer-visible CPU state
type Registers struct {
	A  uint8  // Accumulator
	X  uint8  // X register
	Y  uint8  // Y register
	PC uint16 // Program counter
	S  uint8  // Stack pointer, offset into page 0x0100
	P  uint8  // Processor status
}

func (r Registers) String() string {
	return fmt.Sprintf("A=$%02X X=$%02X Y=$%02X PC=$%04X S=$%02X P=$%02X [%s]",
		r.A, r.X, r.Y, r.PC, r.S, r.P, flagsString(r.P))
}

// flagsString renders P as NV-BDIZC with clear flags shown as '-'
func flagsString(p uint8) string {
	const names = "NV-BDIZC"
	out := []byte("--------")
	for i := 0; i < 8; i++ {
		if p&(0x80>>i) != 0 && names[i] != '-' {
			out[i] = names[i]
		}
	}
	return string(out)
}

// CPU represents the 6502 processor used in the NES
type CPU struct {
	Registers

	bus Bus
}

// New creates a new CPU instance in its power-up state. PC stays 0 until
// Reset loads the reset vector.
func New(bus Bus) *CPU {
	return &CPU{
		Registers: Registers{S: powerUpS, P: powerUpP},
		bus:       bus,
	}
}

// Reset loads PC from the reset vector. No other register changes.
func (cpu *CPU) Reset() {
	cpu.PC = cpu.bus.LoadWord(ResetVector)
}

// Step executes exactly one instruction
func (cpu *CPU) Step() {
	opcode := cpu.fetch()
	cpu.Decode(opcode)
}

// Decode executes opcode with PC pointing just past it. Opcodes with no
// implementation panic with *UnimplementedOpcodeError.
func (cpu *CPU) Decode(opcode uint8) {
	op := &opcodes[opcode]
	if op.exec == nil {
		regs := cpu.Registers
		panic(&UnimplementedOpcodeError{Opcode: opcode, PC: cpu.PC - 1, Registers: regs})
	}
	op.exec(cpu, op.mode)
}

// Snapshot returns a copy of the registers
func (cpu *CPU) Snapshot() Registers {
	return cpu.Registers
}

// Flag reports whether every bit in mask is set in P
func (cpu *CPU) Flag(mask uint8) bool {
	return cpu.P&mask == mask
}

// SetFlag sets or clears the bits in mask
func (cpu *CPU) SetFlag(mask uint8, on bool) {
	if on {
		cpu.P |= mask
	} else {
		cpu.P &^= mask
	}
}

// carry returns the carry flag as 0 or 1
func (cpu *CPU) carry() uint8 {
	return cpu.P & FlagCarry
}

// setZN sets Zero and Negative from value and returns it
func (cpu *CPU) setZN(value uint8) uint8 {
	cpu.SetFlag(FlagZero, value == 0)
	cpu.SetFlag(FlagNegative, value&0x80 != 0)
	return value
}

// compare sets flags from reg - operand without storing the result
func (cpu *CPU) compare(reg, operand uint8) {
	diff := int(reg) - int(operand)
	cpu.SetFlag(FlagCarry, diff >= 0)
	cpu.setZN(uint8(diff))
}

func (cpu *CPU) fetch() uint8 {
	value := cpu.bus.LoadByte(cpu.PC)
	cpu.PC++
	return value
}

func (cpu *CPU) fetchWord() uint16 {
	value := cpu.bus.LoadWord(cpu.PC)
	cpu.PC += 2
	return value
}

// address consumes the operand bytes of mode and returns the effective address
func (cpu *CPU) address(mode AddressingMode) uint16 {
	switch mode {
	case Immediate:
		address := cpu.PC
		cpu.PC++
		return address
	case ZeroPage:
		return uint16(cpu.fetch())
	case ZeroPageX:
		return uint16(cpu.fetch() + cpu.X) // Wrap within zero page
	case ZeroPageY:
		return uint16(cpu.fetch() + cpu.Y)
	case Absolute:
		return cpu.fetchWord()
	case AbsoluteX:
		return cpu.fetchWord() + uint16(cpu.X)
	case AbsoluteY:
		return cpu.fetchWord() + uint16(cpu.Y)
	case Indirect: // Only used by JMP
		ptr := cpu.fetchWord()
		// The high byte is read from the start of the same page when the
		// pointer sits at xxFF.
		low := uint16(cpu.bus.LoadByte(ptr))
		high := uint16(cpu.bus.LoadByte(ptr&0xFF00 | uint16(uint8(ptr)+1)))
		return high<<8 | low
	case IndexedIndirect:
		return cpu.bus.LoadWordZeroPageWraparound(cpu.fetch() + cpu.X)
	case IndirectIndexed:
		return cpu.bus.LoadWordZeroPageWraparound(cpu.fetch()) + uint16(cpu.Y)
	}
	panic(fmt.Sprintf("cpu: addressing mode %v has no effective address", mode))
}

// load reads the operand of mode
func (cpu *CPU) load(mode AddressingMode) uint8 {
	switch mode {
	case Accumulator:
		return cpu.A
	case Immediate:
		return cpu.fetch()
	}
	return cpu.bus.LoadByte(cpu.address(mode))
}

// store writes value to the operand of mode. Immediate operands cannot be
// written and panic with *IllegalStoreError.
func (cpu *CPU) store(mode AddressingMode, value uint8) {
	switch mode {
	case Accumulator:
		cpu.A = value
		return
	case Immediate:
		panic(&IllegalStoreError{Mode: mode, PC: cpu.PC, Registers: cpu.Registers})
	}
	cpu.bus.StoreByte(cpu.address(mode), value)
}

// modify performs a read-modify-write on the operand of mode. The effective
// address is resolved once and op's result is written back and returned.
func (cpu *CPU) modify(mode AddressingMode, op func(uint8) uint8) uint8 {
	if mode == Accumulator {
		cpu.A = op(cpu.A)
		return cpu.A
	}
	address := cpu.address(mode)
	result := op(cpu.bus.LoadByte(address))
	cpu.bus.StoreByte(address, result)
	return result
}

// Stack operations
func (cpu *CPU) pushByte(value uint8) {
	cpu.bus.StoreByte(stackBase+uint16(cpu.S), value)
	cpu.S--
}

func (cpu *CPU) popByte() uint8 {
	cpu.S++
	return cpu.bus.LoadByte(stackBase + uint16(cpu.S))
}

func (cpu *CPU) pushWord(value uint16) {
	cpu.pushByte(uint8(value >> 8)) // High byte first
	cpu.pushByte(uint8(value))
}

func (cpu *CPU) popWord() uint16 {
	low := uint16(cpu.popByte())
	high := uint16(cpu.popByte())
	return high<<8 | low
}

// branch consumes the signed displacement and applies it when cond holds
func (cpu *CPU) branch(cond bool) {
	offset := int8(cpu.fetch())
	if cond {
		cpu.PC = uint16(int32(cpu.PC) + int32(offset))
	}
}
