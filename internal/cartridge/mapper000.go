package cartridge

// NROM implements mapper 0
// NROM has no bank switching:
// - 16KB PRG ROM is mirrored across 0x8000-0xFFFF
// - 32KB PRG ROM is mapped directly
// - CHR is read straight from the image
type NROM struct {
	img     *Image
	prgMask uint16
}

// NewNROM creates a new NROM mapper
func NewNROM(img *Image) *NROM {
	mask := uint16(0x3FFF)
	if len(img.PRG) > PRGBankSize {
		mask = 0x7FFF
	}
	return &NROM{img: img, prgMask: mask}
}

func (m *NROM) Name() string {
	return "NROM"
}

func (m *NROM) Image() *Image {
	return m.img
}

// LoadPRG reads PRG ROM. Addresses below 0x8000 read 0.
func (m *NROM) LoadPRG(address uint16) uint8 {
	if address < 0x8000 {
		return 0
	}
	offset := int(address & m.prgMask)
	if offset >= len(m.img.PRG) {
		return 0
	}
	return m.img.PRG[offset]
}

// StorePRG is a no-op: NROM has no registers and no PRG-RAM.
func (m *NROM) StorePRG(address uint16, value uint8) {}

func (m *NROM) LoadCHR(address uint16) uint8 {
	offset := int(address & 0x1FFF)
	if offset >= len(m.img.CHR) {
		return 0
	}
	return m.img.CHR[offset]
}

// StoreCHR is a no-op: CHR is ROM.
func (m *NROM) StoreCHR(address uint16, value uint8) {}

func (m *NROM) Mirroring() MirrorMode {
	return m.img.Header.Mirroring()
}
