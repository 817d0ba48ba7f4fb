// Package cartridge implements ROM loading and the mappers that translate
// CPU and PPU addresses into cartridge memory.
package cartridge

import (
	"bytes"
	"encoding/binary"
)

const (
	// HeaderSize is the size of the iNES header in bytes
	HeaderSize = 16

	// TrainerSize is the size of the optional trainer block
	TrainerSize = 512

	// PRGBankSize is the unit the header counts PRG ROM in (16KB)
	PRGBankSize = 0x4000

	// CHRBankSize is the unit the header counts CHR ROM in (8KB)
	CHRBankSize = 0x2000
)

// Magic is the iNES file signature
var Magic = [4]uint8{'N', 'E', 'S', 0x1A}

// MirrorMode represents nametable mirroring mode
type MirrorMode uint8

const (
	MirrorHorizontal MirrorMode = iota
	MirrorVertical
	MirrorSingleScreen0
	MirrorSingleScreen1
	MirrorFourScreen
)

func (m MirrorMode) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorSingleScreen0:
		return "single-screen 0"
	case MirrorSingleScreen1:
		return "single-screen 1"
	case MirrorFourScreen:
		return "four-screen"
	}
	return "unknown"
}

// Header is the 16-byte iNES header
type Header struct {
	Magic      [4]uint8
	PRGROMSize uint8 // in 16KB units
	CHRROMSize uint8 // in 8KB units
	Flags6     uint8
	Flags7     uint8
	PRGRAMSize uint8
	Flags9     uint8
	Flags10    uint8
	Padding    [5]uint8
}

// NewHeader builds a header for the given ROM sizes and mapper number.
func NewHeader(prgSize, chrSize int, mapper uint8) Header {
	return Header{
		Magic:      Magic,
		PRGROMSize: uint8(prgSize / PRGBankSize),
		CHRROMSize: uint8(chrSize / CHRBankSize),
		Flags6:     (mapper & 0x0F) << 4,
		Flags7:     mapper & 0xF0,
	}
}

// MapperNumber combines the two mapper nibbles from flags 6 and 7.
func (h Header) MapperNumber() uint8 {
	return (h.Flags7 & 0xF0) | (h.Flags6 >> 4)
}

// Mirroring decodes the hard-wired nametable layout.
func (h Header) Mirroring() MirrorMode {
	switch {
	case h.Flags6&0x08 != 0:
		return MirrorFourScreen
	case h.Flags6&0x01 != 0:
		return MirrorVertical
	default:
		return MirrorHorizontal
	}
}

// HasBattery reports whether PRG-RAM is battery backed.
func (h Header) HasBattery() bool {
	return h.Flags6&0x02 != 0
}

// HasTrainer reports whether a 512-byte trainer precedes PRG ROM.
func (h Header) HasTrainer() bool {
	return h.Flags6&0x04 != 0
}

// Image is a parsed cartridge: the header plus immutable PRG and CHR contents.
type Image struct {
	Header Header
	PRG    []uint8
	CHR    []uint8
}

// NewImage creates an image from raw ROM contents, deriving a header for
// the given mapper number.
func NewImage(prg, chr []uint8, mapper uint8) *Image {
	return &Image{
		Header: NewHeader(len(prg), len(chr), mapper),
		PRG:    prg,
		CHR:    chr,
	}
}

// MapperNumber returns the mapper number from the header.
func (img *Image) MapperNumber() uint8 {
	return img.Header.MapperNumber()
}

// MarshalBinary encodes the image back into iNES form. The trainer is not
// preserved.
func (img *Image) MarshalBinary() ([]byte, error) {
	header := img.Header
	header.Flags6 &^= 0x04

	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(img.PRG) + len(img.CHR))
	if err := binary.Write(&buf, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	buf.Write(img.PRG)
	buf.Write(img.CHR)
	return buf.Bytes(), nil
}
