package cartridge

// Conformance is a test board used to run CPU conformance ROMs. It behaves
// like NROM for PRG reads and exposes 8KB of scratch RAM at 0x6000-0x7FFF,
// which those ROMs use to report their status and result text.
type Conformance struct {
	nrom    *NROM
	scratch [0x2000]uint8
}

// NewConformance creates a conformance board for img regardless of the
// mapper number in its header.
func NewConformance(img *Image) *Conformance {
	return &Conformance{nrom: NewNROM(img)}
}

func (m *Conformance) Name() string {
	return "Conformance"
}

func (m *Conformance) Image() *Image {
	return m.nrom.img
}

func (m *Conformance) LoadPRG(address uint16) uint8 {
	if address >= 0x6000 && address < 0x8000 {
		return m.scratch[address-0x6000]
	}
	return m.nrom.LoadPRG(address)
}

func (m *Conformance) StorePRG(address uint16, value uint8) {
	if address >= 0x6000 && address < 0x8000 {
		m.scratch[address-0x6000] = value
	}
}

// LoadCHR always reads 0.
func (m *Conformance) LoadCHR(address uint16) uint8 {
	return 0
}

func (m *Conformance) StoreCHR(address uint16, value uint8) {}

func (m *Conformance) Mirroring() MirrorMode {
	return m.nrom.Mirroring()
}
