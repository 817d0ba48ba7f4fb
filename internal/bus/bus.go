// Package bus implements the CPU address space: it routes every load and
// store to RAM, the video register file, or the cartridge mapper.
package bus

import (
	"coolnes/internal/cartridge"
	"coolnes/internal/memory"
	"coolnes/internal/ppu"
)

// Address space layout
const (
	ramEnd     = 0x2000 // RAM and its mirrors
	ppuEnd     = 0x4000 // video registers and their mirrors
	openBusEnd = 0x6000 // APU and I/O, not connected
)

// Bus connects the CPU to RAM, the video registers and the cartridge
type Bus struct {
	ram    *memory.RAM
	video  *ppu.PPU
	mapper cartridge.Mapper

	// Memory monitoring for debugging
	watchpoints map[uint16]uint8 // Address -> previous value
}

// New creates a bus that owns ram, video and mapper for its lifetime
func New(ram *memory.RAM, video *ppu.PPU, mapper cartridge.Mapper) *Bus {
	return &Bus{
		ram:         ram,
		video:       video,
		mapper:      mapper,
		watchpoints: make(map[uint16]uint8),
	}
}

// LoadByte reads one byte from the CPU address space
func (b *Bus) LoadByte(address uint16) uint8 {
	switch {
	case address < ramEnd:
		return b.ram.LoadByte(address)
	case address < ppuEnd:
		return b.video.ReadRegister(ppu.PPUCTRL + address&0x07)
	case address < openBusEnd:
		return 0
	default:
		return b.mapper.LoadPRG(address)
	}
}

// StoreByte writes one byte to the CPU address space. A write to 0x4014
// starts a sprite DMA from page value instead of being dispatched.
func (b *Bus) StoreByte(address uint16, value uint8) {
	if address == ppu.OAMDMA {
		b.oamDMA(value)
		return
	}

	switch {
	case address < ramEnd:
		b.ram.StoreByte(address, value)
	case address < ppuEnd:
		b.video.WriteRegister(ppu.PPUCTRL+address&0x07, value)
	case address < openBusEnd:
		// not connected
	default:
		b.mapper.StorePRG(address, value)
	}
}

// oamDMA copies page hh00-hhFF through the OAMDATA port
func (b *Bus) oamDMA(page uint8) {
	source := uint16(page) << 8
	for i := uint16(0); i < 256; i++ {
		b.StoreByte(ppu.OAMDATA, b.LoadByte(source+i))
	}
}

// LoadWord reads a little-endian word
func (b *Bus) LoadWord(address uint16) uint16 {
	lo := uint16(b.LoadByte(address))
	hi := uint16(b.LoadByte(address + 1))
	return hi<<8 | lo
}

// StoreWord writes a little-endian word
func (b *Bus) StoreWord(address uint16, value uint16) {
	b.StoreByte(address, uint8(value))
	b.StoreByte(address+1, uint8(value>>8))
}

// LoadWordZeroPageWraparound reads a pointer from the zero page. The high
// byte comes from (address+1)&0xFF, so a pointer at 0xFF wraps to 0x00.
func (b *Bus) LoadWordZeroPageWraparound(address uint8) uint16 {
	lo := uint16(b.LoadByte(uint16(address)))
	hi := uint16(b.LoadByte(uint16(address + 1)))
	return hi<<8 | lo
}

// Mapper returns the cartridge mapper
func (b *Bus) Mapper() cartridge.Mapper {
	return b.mapper
}

// Snapshot copies the video register file and decodes both pattern tables
// through the mapper's CHR port. Call it between CPU steps only.
func (b *Bus) Snapshot() ppu.Snapshot {
	snap := b.video.Snapshot()
	for table := range snap.PatternTables {
		snap.PatternTables[table] = ppu.DecodePatternTable(b.mapper.LoadCHR, table)
	}
	return snap
}
