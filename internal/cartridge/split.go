package cartridge

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// SplitPRGName is the file Split writes PRG ROM to
	SplitPRGName = "rom.prg.bin"

	// SplitCHRName is the file Split writes CHR ROM to
	SplitCHRName = "rom.chr.bin"
)

// Split writes the PRG and CHR contents of an image to two raw files in dir.
// The CHR file is written even when empty so the pair always exists.
func Split(img *Image, dir string) (prgPath, chrPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("split: %w", err)
	}

	prgPath = filepath.Join(dir, SplitPRGName)
	if err := os.WriteFile(prgPath, img.PRG, 0o644); err != nil {
		return "", "", fmt.Errorf("split: write PRG: %w", err)
	}

	chrPath = filepath.Join(dir, SplitCHRName)
	if err := os.WriteFile(chrPath, img.CHR, 0o644); err != nil {
		return "", "", fmt.Errorf("split: write CHR: %w", err)
	}

	return prgPath, chrPath, nil
}
