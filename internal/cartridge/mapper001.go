package cartridge

// SxROM implements mapper 1 (MMC1)
// Registers are loaded through a 5-bit serial port at 0x8000-0xFFFF:
// - bit 0 of each write is shifted in, LSB first
// - a write with bit 7 set resets the shift state and selects PRG mode 3
// - the fifth write commits to the register chosen by address bits 13-14
//
// PRG banks are 16KB, CHR banks are 4KB. An 8KB PRG-RAM sits at
// 0x6000-0x7FFF and 8KB of CHR-RAM replaces CHR ROM when the image has none.
type SxROM struct {
	img *Image

	shift      uint8
	shiftCount uint8

	control  uint8
	chrBank0 uint8
	chrBank1 uint8
	prgBank  uint8

	prgOffsets [2]int
	chrOffsets [2]int

	prgRAM [0x2000]uint8
	chrRAM []uint8
}

// NewSxROM creates a new MMC1 mapper in its power-on state
func NewSxROM(img *Image) *SxROM {
	m := &SxROM{img: img, control: 0x0C}
	if len(img.CHR) == 0 {
		m.chrRAM = make([]uint8, CHRBankSize)
	}
	m.updateOffsets()
	return m
}

func (m *SxROM) Name() string {
	return "SxROM"
}

func (m *SxROM) Image() *Image {
	return m.img
}

func (m *SxROM) LoadPRG(address uint16) uint8 {
	switch {
	case address >= 0x8000:
		slot := (address - 0x8000) / PRGBankSize
		offset := m.prgOffsets[slot] + int(address&0x3FFF)
		return m.img.PRG[offset]
	case address >= 0x6000:
		return m.prgRAM[address-0x6000]
	}
	return 0
}

func (m *SxROM) StorePRG(address uint16, value uint8) {
	switch {
	case address >= 0x8000:
		m.loadRegister(address, value)
	case address >= 0x6000:
		m.prgRAM[address-0x6000] = value
	}
}

func (m *SxROM) LoadCHR(address uint16) uint8 {
	address &= 0x1FFF
	if m.chrRAM != nil {
		return m.chrRAM[address]
	}
	slot := address / 0x1000
	return m.img.CHR[m.chrOffsets[slot]+int(address&0x0FFF)]
}

// StoreCHR writes CHR-RAM; it is ignored when the board carries CHR ROM.
func (m *SxROM) StoreCHR(address uint16, value uint8) {
	if m.chrRAM != nil {
		m.chrRAM[address&0x1FFF] = value
	}
}

func (m *SxROM) Mirroring() MirrorMode {
	switch m.control & 0x03 {
	case 0:
		return MirrorSingleScreen0
	case 1:
		return MirrorSingleScreen1
	case 2:
		return MirrorVertical
	default:
		return MirrorHorizontal
	}
}

func (m *SxROM) prgMode() uint8 {
	return (m.control >> 2) & 0x03
}

func (m *SxROM) chrMode() uint8 {
	return (m.control >> 4) & 0x01
}

func (m *SxROM) loadRegister(address uint16, value uint8) {
	if value&0x80 != 0 {
		m.shift = 0
		m.shiftCount = 0
		m.control |= 0x0C
		m.updateOffsets()
		return
	}

	m.shift |= (value & 0x01) << m.shiftCount
	m.shiftCount++
	if m.shiftCount < 5 {
		return
	}

	switch (address >> 13) & 0x03 {
	case 0:
		m.control = m.shift
	case 1:
		m.chrBank0 = m.shift
	case 2:
		m.chrBank1 = m.shift
	case 3:
		m.prgBank = m.shift & 0x0F
	}
	m.shift = 0
	m.shiftCount = 0
	m.updateOffsets()
}

// prgOffset returns the byte offset of 16KB bank n; negative n counts from the end
func (m *SxROM) prgOffset(n int) int {
	count := len(m.img.PRG) / PRGBankSize
	n %= count
	if n < 0 {
		n += count
	}
	return n * PRGBankSize
}

// chrOffset returns the byte offset of 4KB bank n
func (m *SxROM) chrOffset(n int) int {
	count := len(m.img.CHR) / 0x1000
	if count == 0 {
		return 0
	}
	return (n % count) * 0x1000
}

func (m *SxROM) updateOffsets() {
	switch m.prgMode() {
	case 0, 1:
		m.prgOffsets[0] = m.prgOffset(int(m.prgBank &^ 1))
		m.prgOffsets[1] = m.prgOffset(int(m.prgBank | 1))
	case 2:
		m.prgOffsets[0] = 0
		m.prgOffsets[1] = m.prgOffset(int(m.prgBank))
	case 3:
		m.prgOffsets[0] = m.prgOffset(int(m.prgBank))
		m.prgOffsets[1] = m.prgOffset(-1)
	}

	switch m.chrMode() {
	case 0:
		m.chrOffsets[0] = m.chrOffset(int(m.chrBank0 &^ 1))
		m.chrOffsets[1] = m.chrOffset(int(m.chrBank0 | 1))
	case 1:
		m.chrOffsets[0] = m.chrOffset(int(m.chrBank0))
		m.chrOffsets[1] = m.chrOffset(int(m.chrBank1))
	}
}
