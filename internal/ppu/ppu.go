// Package ppu implements the CPU-visible register file of the NES Picture
// Processing Unit (2C02). Only the eight ports and OAM are modelled; there
// is no pixel pipeline.
package ppu

// CPU-visible register addresses. The eight ports repeat every 8 bytes
// through 0x3FFF.
const (
	PPUCTRL   = 0x2000
	PPUMASK   = 0x2001
	PPUSTATUS = 0x2002
	OAMADDR   = 0x2003
	OAMDATA   = 0x2004
	PPUSCROLL = 0x2005
	PPUADDR   = 0x2006
	PPUDATA   = 0x2007

	// OAMDMA is the CPU address whose writes start a sprite DMA. It is
	// handled by the bus, not by the register file.
	OAMDMA = 0x4014
)

// Registers holds the last value of each port
type Registers struct {
	Ctrl    uint8 // $2000 - PPUCTRL
	Mask    uint8 // $2001 - PPUMASK
	Status  uint8 // $2002 - PPUSTATUS
	OAMAddr uint8 // $2003 - OAMADDR
	OAMData uint8 // $2004 - OAMDATA
	Scroll  uint8 // $2005 - PPUSCROLL
	Addr    uint8 // $2006 - PPUADDR
	Data    uint8 // $2007 - PPUDATA
}

// PPU represents the register file and sprite memory
type PPU struct {
	regs Registers
	oam  [256]uint8 // Object Attribute Memory
}

// New creates a new PPU instance with all registers cleared
func New() *PPU {
	return &PPU{}
}

// Reset clears the registers and OAM
func (p *PPU) Reset() {
	p.regs = Registers{}
	p.oam = [256]uint8{}
}

// ReadRegister reads from a PPU register (CPU $2000-$2007). Reads have no
// side effects.
func (p *PPU) ReadRegister(address uint16) uint8 {
	switch PPUCTRL | address&0x07 {
	case PPUSTATUS:
		return p.regs.Status
	case OAMDATA:
		return p.oam[p.regs.OAMAddr]
	case PPUDATA:
		return p.regs.Data
	default:
		// PPUCTRL, PPUMASK, OAMADDR, PPUSCROLL, PPUADDR - write only
		return 0
	}
}

// WriteRegister writes to a PPU register (CPU $2000-$2007)
func (p *PPU) WriteRegister(address uint16, value uint8) {
	switch PPUCTRL | address&0x07 {
	case PPUCTRL:
		p.regs.Ctrl = value
	case PPUMASK:
		p.regs.Mask = value
	case PPUSTATUS:
		// read only
	case OAMADDR:
		p.regs.OAMAddr = value
	case OAMDATA:
		p.regs.OAMData = value
		p.oam[p.regs.OAMAddr] = value
		p.regs.OAMAddr++
	case PPUSCROLL:
		p.regs.Scroll = value
	case PPUADDR:
		p.regs.Addr = value
	case PPUDATA:
		p.regs.Data = value
	}
}

// SetStatus sets PPUSTATUS, which the CPU cannot write
func (p *PPU) SetStatus(value uint8) {
	p.regs.Status = value
}

// Registers returns a copy of the register file
func (p *PPU) Registers() Registers {
	return p.regs
}

// OAM returns a copy of sprite memory
func (p *PPU) OAM() [256]uint8 {
	return p.oam
}
