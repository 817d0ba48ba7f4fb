package ppu

// Pattern table geometry: 256 tiles of 8x8 pixels laid out 16 tiles wide
const (
	PatternTableWidth  = 128
	PatternTableHeight = 128
)

// Snapshot is a read-only copy of video state handed to renderers between
// CPU steps.
type Snapshot struct {
	Registers     Registers
	OAM           [256]uint8
	PatternTables [2][PatternTableWidth * PatternTableHeight]uint8
}

// Snapshot copies the register file and OAM. Pattern tables are decoded by
// the caller, which owns the CHR port.
func (p *PPU) Snapshot() Snapshot {
	return Snapshot{Registers: p.regs, OAM: p.oam}
}

// DecodePatternTable turns the 256 tiles of pattern table 0 or 1 into 2-bit
// pixel indices. load reads CHR memory at PPU addresses 0x0000-0x1FFF.
func DecodePatternTable(load func(uint16) uint8, table int) [PatternTableWidth * PatternTableHeight]uint8 {
	var out [PatternTableWidth * PatternTableHeight]uint8
	base := uint16(table&1) * 0x1000

	for tile := uint16(0); tile < 256; tile++ {
		tileX := int(tile%16) * 8
		tileY := int(tile/16) * 8
		addr := base + tile*16

		for row := uint16(0); row < 8; row++ {
			lo := load(addr + row)
			hi := load(addr + row + 8)
			for col := 0; col < 8; col++ {
				shift := 7 - col
				pixel := (lo>>shift)&1 | ((hi>>shift)&1)<<1
				out[(tileY+int(row))*PatternTableWidth+tileX+col] = pixel
			}
		}
	}
	return out
}
