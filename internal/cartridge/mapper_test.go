package cartridge

import (
	"errors"
	"testing"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		mapper uint8
		want   string
	}{
		{0, "NROM"},
		{1, "SxROM"},
	}

	for _, tt := range tests {
		img := NewImage(make([]uint8, 0x4000), make([]uint8, 0x2000), tt.mapper)
		m, err := Select(img)
		if err != nil {
			t.Fatalf("Select(mapper %d) failed: %v", tt.mapper, err)
		}
		if m.Name() != tt.want {
			t.Errorf("Select(mapper %d).Name() = %q, want %q", tt.mapper, m.Name(), tt.want)
		}
		if m.Image() != img {
			t.Errorf("Select(mapper %d).Image() is not the source image", tt.mapper)
		}
	}
}

func TestSelect_Unsupported(t *testing.T) {
	img := NewImage(make([]uint8, 0x4000), nil, 4)

	_, err := Select(img)
	var ue *UnsupportedMapperError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *UnsupportedMapperError", err)
	}
	if ue.Number != 4 {
		t.Errorf("Number = %d, want 4", ue.Number)
	}
}

func TestMustSelect_Panics(t *testing.T) {
	img := NewImage(make([]uint8, 0x4000), nil, 2)

	defer func() {
		r := recover()
		if _, ok := r.(*UnsupportedMapperError); !ok {
			t.Errorf("recovered %v, want *UnsupportedMapperError", r)
		}
	}()
	MustSelect(img)
	t.Error("MustSelect did not panic")
}

func TestSelect_PRGSize(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		mapper uint8
	}{
		{"empty NROM", 0, 0},
		{"8KB NROM", 0x2000, 0},
		{"8KB SxROM", 0x2000, 1},
		{"24KB SxROM", 0x6000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(NewImage(make([]uint8, tt.size), nil, tt.mapper))
			var pe *PRGSizeError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v, want *PRGSizeError", err)
			}
			if pe.Size != tt.size {
				t.Errorf("Size = %d, want %d", pe.Size, tt.size)
			}
		})
	}
}

func TestMustSelect_PanicsOnPRGSize(t *testing.T) {
	defer func() {
		if _, ok := recover().(*PRGSizeError); !ok {
			t.Error("MustSelect did not panic with *PRGSizeError")
		}
	}()
	MustSelect(NewImage(make([]uint8, 0x2000), nil, 1))
}

func TestNROM_16KB(t *testing.T) {
	prg := make([]uint8, 0x4000)
	for i := range prg {
		prg[i] = uint8(i)
	}
	prg[0xDE] = 0xAD
	m := NewNROM(NewImage(prg, make([]uint8, 0x2000), 0))

	if got := m.LoadPRG(0x80DE); got != 0xAD {
		t.Errorf("LoadPRG(0x80DE) = 0x%02X, want 0xAD", got)
	}
	if got := m.LoadPRG(0xC0DE); got != 0xAD {
		t.Errorf("LoadPRG(0xC0DE) = 0x%02X, want 0xAD (mirror)", got)
	}
	if a, b := m.LoadPRG(0x8123), m.LoadPRG(0xC123); a != b {
		t.Errorf("mirror mismatch: 0x8123=0x%02X, 0xC123=0x%02X", a, b)
	}
}

func TestNROM_32KB(t *testing.T) {
	prg := make([]uint8, 0x8000)
	prg[0x00DE] = 0x11
	prg[0x40DE] = 0x22
	m := NewNROM(NewImage(prg, make([]uint8, 0x2000), 0))

	if got := m.LoadPRG(0x80DE); got != 0x11 {
		t.Errorf("LoadPRG(0x80DE) = 0x%02X, want 0x11", got)
	}
	if got := m.LoadPRG(0xC0DE); got != 0x22 {
		t.Errorf("LoadPRG(0xC0DE) = 0x%02X, want 0x22", got)
	}
}

func TestNROM_WritesIgnoredAndLowReadsZero(t *testing.T) {
	prg := make([]uint8, 0x4000)
	prg[0] = 0x77
	chr := make([]uint8, 0x2000)
	chr[0x10] = 0x99
	m := NewNROM(NewImage(prg, chr, 0))

	m.StorePRG(0x8000, 0x00)
	if got := m.LoadPRG(0x8000); got != 0x77 {
		t.Errorf("LoadPRG(0x8000) after write = 0x%02X, want 0x77", got)
	}

	m.StorePRG(0x6000, 0x55)
	if got := m.LoadPRG(0x6000); got != 0 {
		t.Errorf("LoadPRG(0x6000) = 0x%02X, want 0", got)
	}

	if got := m.LoadCHR(0x0010); got != 0x99 {
		t.Errorf("LoadCHR(0x0010) = 0x%02X, want 0x99", got)
	}
	m.StoreCHR(0x0010, 0x00)
	if got := m.LoadCHR(0x0010); got != 0x99 {
		t.Errorf("LoadCHR(0x0010) after write = 0x%02X, want 0x99", got)
	}
}

func TestNROM_Mirroring(t *testing.T) {
	img := NewImage(make([]uint8, 0x4000), nil, 0)
	img.Header.Flags6 |= 0x01
	if got := NewNROM(img).Mirroring(); got != MirrorVertical {
		t.Errorf("Mirroring = %v, want vertical", got)
	}
}

func TestConformance(t *testing.T) {
	prg := make([]uint8, 0x4000)
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	chr := make([]uint8, 0x2000)
	chr[0] = 0xFF
	m := NewConformance(NewImage(prg, chr, 4))

	if m.Name() != "Conformance" {
		t.Errorf("Name = %q", m.Name())
	}

	m.StorePRG(0x6000, 0x80)
	m.StorePRG(0x7FFF, 0x12)
	if got := m.LoadPRG(0x6000); got != 0x80 {
		t.Errorf("LoadPRG(0x6000) = 0x%02X, want 0x80", got)
	}
	if got := m.LoadPRG(0x7FFF); got != 0x12 {
		t.Errorf("LoadPRG(0x7FFF) = 0x%02X, want 0x12", got)
	}

	if got := m.LoadPRG(0xFFFD); got != 0x80 {
		t.Errorf("LoadPRG(0xFFFD) = 0x%02X, want 0x80", got)
	}
	m.StorePRG(0xFFFD, 0x00)
	if got := m.LoadPRG(0xFFFD); got != 0x80 {
		t.Errorf("PRG ROM write was not ignored: 0x%02X", got)
	}

	if got := m.LoadCHR(0x0000); got != 0 {
		t.Errorf("LoadCHR(0) = 0x%02X, want 0", got)
	}
}
