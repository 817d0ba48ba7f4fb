package cartridge

// Mapper translates CPU-side PRG addresses and PPU-side CHR addresses into
// cartridge memory. Implementations may carry bank-switching state that is
// changed by PRG writes.
type Mapper interface {
	// Name returns the board family name, e.g. "NROM"
	Name() string

	// Image returns the cartridge image the mapper was built from
	Image() *Image

	LoadPRG(address uint16) uint8
	StorePRG(address uint16, value uint8)
	LoadCHR(address uint16) uint8
	StoreCHR(address uint16, value uint8)

	// Mirroring reports the current nametable layout
	Mirroring() MirrorMode
}

// CheckPRG reports a *PRGSizeError unless PRG ROM holds whole 16KB banks.
func CheckPRG(img *Image) error {
	if n := len(img.PRG); n == 0 || n%PRGBankSize != 0 {
		return &PRGSizeError{Size: n}
	}
	return nil
}

// Select builds the mapper named by the image header.
func Select(img *Image) (Mapper, error) {
	if err := CheckPRG(img); err != nil {
		return nil, err
	}
	switch n := img.MapperNumber(); n {
	case 0:
		return NewNROM(img), nil
	case 1:
		return NewSxROM(img), nil
	default:
		return nil, &UnsupportedMapperError{Number: n}
	}
}

// MustSelect is like Select but panics with the *UnsupportedMapperError or
// *PRGSizeError. It is used on the fatal path where an unsupported board
// cannot be recovered.
func MustSelect(img *Image) Mapper {
	m, err := Select(img)
	if err != nil {
		panic(err)
	}
	return m
}
