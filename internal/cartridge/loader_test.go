package cartridge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromBytes_Valid(t *testing.T) {
	data, err := NewROMBuilder().
		WithPRGSize(2).
		WithCHRSize(1).
		WithMirroring(MirrorVertical).
		WithCode(0x8000, 0xA9, 0x42).
		WithCHRData([]uint8{0x11, 0x22}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	img, err := LoadFromBytes(data)
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}

	if len(img.PRG) != 0x8000 {
		t.Errorf("PRG size = %d, want %d", len(img.PRG), 0x8000)
	}
	if len(img.CHR) != 0x2000 {
		t.Errorf("CHR size = %d, want %d", len(img.CHR), 0x2000)
	}
	if img.PRG[0] != 0xA9 || img.PRG[1] != 0x42 {
		t.Errorf("PRG[0:2] = %02X %02X, want A9 42", img.PRG[0], img.PRG[1])
	}
	if img.CHR[1] != 0x22 {
		t.Errorf("CHR[1] = 0x%02X, want 0x22", img.CHR[1])
	}
	if img.Header.Mirroring() != MirrorVertical {
		t.Errorf("Mirroring = %v, want vertical", img.Header.Mirroring())
	}
	if img.PRG[0x7FFC] != 0x00 || img.PRG[0x7FFD] != 0x80 {
		t.Errorf("reset vector = %02X%02X, want 8000", img.PRG[0x7FFD], img.PRG[0x7FFC])
	}
}

func TestLoadFromBytes_SkipsTrainer(t *testing.T) {
	data, err := NewROMBuilder().WithTrainer().WithCode(0x8000, 0xEA, 0x4C).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(data) != HeaderSize+TrainerSize+PRGBankSize+CHRBankSize {
		t.Fatalf("file size = %d", len(data))
	}

	img, err := LoadFromBytes(data)
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	if !img.Header.HasTrainer() {
		t.Error("HasTrainer = false, want true")
	}
	if img.PRG[0] != 0xEA || img.PRG[1] != 0x4C {
		t.Errorf("PRG[0:2] = %02X %02X, want EA 4C", img.PRG[0], img.PRG[1])
	}
}

func TestHeader_Flags6(t *testing.T) {
	tests := []struct {
		flags6  uint8
		battery bool
		trainer bool
	}{
		{0x00, false, false},
		{0x02, true, false},
		{0x04, false, true},
		{0x17, true, true},
	}
	for _, tt := range tests {
		h := Header{Flags6: tt.flags6}
		if h.HasBattery() != tt.battery {
			t.Errorf("flags6 %02X: HasBattery = %v, want %v", tt.flags6, h.HasBattery(), tt.battery)
		}
		if h.HasTrainer() != tt.trainer {
			t.Errorf("flags6 %02X: HasTrainer = %v, want %v", tt.flags6, h.HasTrainer(), tt.trainer)
		}
	}
}

func TestLoadFromBytes_Errors(t *testing.T) {
	valid, err := NewROMBuilder().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	badMagic := append([]byte(nil), valid...)
	badMagic[3] = 0x1B

	noPRG := append([]byte(nil), valid...)
	noPRG[4] = 0

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"short header", valid[:10], ErrTruncated},
		{"bad magic", badMagic, ErrBadMagic},
		{"no PRG", noPRG, ErrNoPRG},
		{"short PRG", valid[:HeaderSize+100], ErrTruncated},
		{"short CHR", valid[:len(valid)-1], ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes(tt.data)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Errorf("err is %T, want *LoadError", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.nes")

	data, err := NewROMBuilder().WithMapper(1).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if img.MapperNumber() != 1 {
		t.Errorf("MapperNumber = %d, want 1", img.MapperNumber())
	}

	_, err = LoadFromFile(filepath.Join(dir, "missing.nes"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("missing file: err = %v, want *LoadError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want os.ErrNotExist", err)
	}

	if err := os.WriteFile(path, data[:20], 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFromFile(path)
	if !errors.As(err, &le) || le.Path != path {
		t.Errorf("truncated file: err = %v, want *LoadError with path %s", err, path)
	}
}

func TestHeader_MapperNumber(t *testing.T) {
	tests := []struct {
		flags6, flags7 uint8
		want           uint8
	}{
		{0x00, 0x00, 0},
		{0x10, 0x00, 1},
		{0x41, 0x00, 4},
		{0x10, 0x40, 0x41},
		{0xF0, 0xF0, 0xFF},
	}

	for _, tt := range tests {
		h := Header{Flags6: tt.flags6, Flags7: tt.flags7}
		if got := h.MapperNumber(); got != tt.want {
			t.Errorf("MapperNumber(flags6=%02X, flags7=%02X) = %d, want %d", tt.flags6, tt.flags7, got, tt.want)
		}
	}
}

func TestImage_MarshalBinaryRoundTrip(t *testing.T) {
	img := NewImage(make([]uint8, 0x4000), make([]uint8, 0x2000), 1)
	img.PRG[0x1234] = 0x56

	data, err := img.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if string(data[0:4]) != "NES\x1a" {
		t.Errorf("magic = %q", data[0:4])
	}

	back, err := LoadFromBytes(data)
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	if back.MapperNumber() != 1 || back.PRG[0x1234] != 0x56 {
		t.Errorf("round trip lost data: mapper %d, PRG[0x1234]=0x%02X", back.MapperNumber(), back.PRG[0x1234])
	}
}
