package cartridge

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
)

// LoadFromFile loads a cartridge image from an iNES file
func LoadFromFile(filename string) (*Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	defer file.Close()

	img, err := LoadFromReader(file)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = filename
		}
		return nil, err
	}
	return img, nil
}

// LoadFromBytes loads a cartridge image from an in-memory iNES file
func LoadFromBytes(data []byte) (*Image, error) {
	return LoadFromReader(bytes.NewReader(data))
}

// LoadFromReader loads a cartridge image from an io.Reader
func LoadFromReader(r io.Reader) (*Image, error) {
	var header Header
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, &LoadError{Err: readErr(err)}
	}

	if header.Magic != Magic {
		return nil, &LoadError{Err: ErrBadMagic}
	}

	if header.PRGROMSize == 0 {
		return nil, &LoadError{Err: ErrNoPRG}
	}

	if header.HasTrainer() {
		if _, err := io.CopyN(io.Discard, r, TrainerSize); err != nil {
			return nil, &LoadError{Err: readErr(err)}
		}
	}

	img := &Image{
		Header: header,
		PRG:    make([]uint8, int(header.PRGROMSize)*PRGBankSize),
		CHR:    make([]uint8, int(header.CHRROMSize)*CHRBankSize),
	}

	if _, err := io.ReadFull(r, img.PRG); err != nil {
		return nil, &LoadError{Err: readErr(err)}
	}
	if _, err := io.ReadFull(r, img.CHR); err != nil {
		return nil, &LoadError{Err: readErr(err)}
	}

	return img, nil
}

// readErr maps short reads onto ErrTruncated and passes anything else through
func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
