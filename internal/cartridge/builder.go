package cartridge

import (
	"fmt"
)

// ROMBuilder assembles small iNES images, mostly for tests and for the
// synthetic conformance programs the runner is checked against.
type ROMBuilder struct {
	prgBanks    uint8
	chrBanks    uint8
	mapper      uint8
	mirroring   MirrorMode
	trainer     bool
	code        map[uint16][]uint8
	chr         []uint8
	nmiVector   uint16
	resetVector uint16
	irqVector   uint16
}

// NewROMBuilder returns a builder for a 16KB PRG / 8KB CHR NROM image whose
// vectors all point at 0x8000.
func NewROMBuilder() *ROMBuilder {
	return &ROMBuilder{
		prgBanks:    1,
		chrBanks:    1,
		code:        make(map[uint16][]uint8),
		nmiVector:   0x8000,
		resetVector: 0x8000,
		irqVector:   0x8000,
	}
}

// WithPRGSize sets the PRG ROM size in 16KB units
func (b *ROMBuilder) WithPRGSize(banks uint8) *ROMBuilder {
	b.prgBanks = banks
	return b
}

// WithCHRSize sets the CHR ROM size in 8KB units (0 = CHR RAM)
func (b *ROMBuilder) WithCHRSize(banks uint8) *ROMBuilder {
	b.chrBanks = banks
	return b
}

// WithMapper sets the mapper number
func (b *ROMBuilder) WithMapper(n uint8) *ROMBuilder {
	b.mapper = n
	return b
}

// WithMirroring sets the header mirroring bits
func (b *ROMBuilder) WithMirroring(mode MirrorMode) *ROMBuilder {
	b.mirroring = mode
	return b
}

// WithTrainer adds an empty 512-byte trainer block
func (b *ROMBuilder) WithTrainer() *ROMBuilder {
	b.trainer = true
	return b
}

// WithCode places bytes at a CPU address in the last PRG bank window
// (0x8000-0xFFFF, folded onto the image size).
func (b *ROMBuilder) WithCode(address uint16, code ...uint8) *ROMBuilder {
	b.code[address] = append([]uint8(nil), code...)
	return b
}

// WithCHRData sets the leading CHR ROM contents
func (b *ROMBuilder) WithCHRData(data []uint8) *ROMBuilder {
	b.chr = data
	return b
}

// WithResetVector sets the word at 0xFFFC
func (b *ROMBuilder) WithResetVector(address uint16) *ROMBuilder {
	b.resetVector = address
	return b
}

// WithNMIVector sets the word at 0xFFFA
func (b *ROMBuilder) WithNMIVector(address uint16) *ROMBuilder {
	b.nmiVector = address
	return b
}

// WithIRQVector sets the word at 0xFFFE
func (b *ROMBuilder) WithIRQVector(address uint16) *ROMBuilder {
	b.irqVector = address
	return b
}

// Image builds the cartridge image
func (b *ROMBuilder) Image() (*Image, error) {
	if b.prgBanks == 0 {
		return nil, ErrNoPRG
	}

	size := int(b.prgBanks) * PRGBankSize
	prg := make([]uint8, size)
	window := size
	if window > 0x8000 {
		window = 0x8000
	}
	base := size - window

	for address, code := range b.code {
		if address < 0x8000 {
			return nil, fmt.Errorf("code at 0x%04X is outside PRG ROM", address)
		}
		offset := base + int(address-0x8000)%window
		if offset+len(code) > size {
			return nil, fmt.Errorf("code at 0x%04X overruns PRG ROM", address)
		}
		copy(prg[offset:], code)
	}

	putWord := func(offset int, v uint16) {
		prg[offset] = uint8(v)
		prg[offset+1] = uint8(v >> 8)
	}
	putWord(size-6, b.nmiVector)
	putWord(size-4, b.resetVector)
	putWord(size-2, b.irqVector)

	chr := make([]uint8, int(b.chrBanks)*CHRBankSize)
	copy(chr, b.chr)

	img := NewImage(prg, chr, b.mapper)
	switch b.mirroring {
	case MirrorVertical:
		img.Header.Flags6 |= 0x01
	case MirrorFourScreen:
		img.Header.Flags6 |= 0x08
	}
	return img, nil
}

// Build encodes the image as an iNES file
func (b *ROMBuilder) Build() ([]byte, error) {
	img, err := b.Image()
	if err != nil {
		return nil, err
	}
	data, err := img.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if !b.trainer {
		return data, nil
	}

	out := make([]byte, 0, len(data)+TrainerSize)
	out = append(out, data[:HeaderSize]...)
	out[6] |= 0x04
	out = append(out, make([]byte, TrainerSize)...)
	return append(out, data[HeaderSize:]...), nil
}
