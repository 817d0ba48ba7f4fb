package cartridge

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when the file does not start with "NES\x1A"
	ErrBadMagic = errors.New("invalid iNES file: bad magic")

	// ErrTruncated is returned when the file ends before the sizes in its header say it should
	ErrTruncated = errors.New("invalid iNES file: truncated")

	// ErrNoPRG is returned when the header declares no PRG ROM
	ErrNoPRG = errors.New("invalid iNES file: PRG ROM size cannot be zero")
)

// LoadError wraps a loader failure with the path being read
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load cartridge: %v", e.Err)
	}
	return fmt.Sprintf("load cartridge %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// UnsupportedMapperError is raised when no mapper implements the number in
// the image header.
type UnsupportedMapperError struct {
	Number uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper %d", e.Number)
}

// PRGSizeError is returned when PRG ROM is empty or not a whole number of
// 16KB banks. Mappers index PRG in 16KB units.
type PRGSizeError struct {
	Size int
}

func (e *PRGSizeError) Error() string {
	return fmt.Sprintf("PRG ROM size %d is not a non-zero multiple of %d", e.Size, PRGBankSize)
}
