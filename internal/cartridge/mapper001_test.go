package cartridge

import (
	"testing"
)

// writeSerial loads a 5-bit value into an MMC1 register through the
// serial port, LSB first.
func writeSerial(m *SxROM, address uint16, value uint8) {
	for i := 0; i < 5; i++ {
		m.StorePRG(address, (value>>i)&1)
	}
}

// newMarkedSxROM builds an SxROM whose 16KB PRG banks start with their
// bank number and whose 4KB CHR banks start with 0x10+bank number.
func newMarkedSxROM(prgBanks, chrBanks int) *SxROM {
	prg := make([]uint8, prgBanks*PRGBankSize)
	for b := 0; b < prgBanks; b++ {
		prg[b*PRGBankSize] = uint8(b)
	}
	chr := make([]uint8, chrBanks*CHRBankSize)
	for b := 0; b < chrBanks*2; b++ {
		chr[b*0x1000] = 0x10 + uint8(b)
	}
	return NewSxROM(NewImage(prg, chr, 1))
}

func assertBanks(t *testing.T, m *SxROM, low, high uint8) {
	t.Helper()
	if got := m.LoadPRG(0x8000); got != low {
		t.Errorf("bank at 0x8000 = %d, want %d", got, low)
	}
	if got := m.LoadPRG(0xC000); got != high {
		t.Errorf("bank at 0xC000 = %d, want %d", got, high)
	}
}

func TestSxROM_PowerOn(t *testing.T) {
	m := newMarkedSxROM(4, 1)

	if m.control != 0x0C {
		t.Errorf("control = 0x%02X, want 0x0C", m.control)
	}
	assertBanks(t, m, 0, 3)
	if m.Mirroring() != MirrorSingleScreen0 {
		t.Errorf("Mirroring = %v, want single-screen 0", m.Mirroring())
	}
}

func TestSxROM_SerialProtocol(t *testing.T) {
	m := newMarkedSxROM(4, 1)

	// four writes do not commit
	for i := 0; i < 4; i++ {
		m.StorePRG(0xE000, 1)
	}
	assertBanks(t, m, 0, 3)
	if m.shiftCount != 4 {
		t.Fatalf("shiftCount = %d, want 4", m.shiftCount)
	}

	// fifth write commits bits 1,1,1,1,0 = 0x0F
	m.StorePRG(0xE000, 0)
	if m.prgBank != 0x0F {
		t.Errorf("prgBank = 0x%02X, want 0x0F", m.prgBank)
	}
	if m.shiftCount != 0 || m.shift != 0 {
		t.Errorf("shift state not cleared: shift=0x%02X count=%d", m.shift, m.shiftCount)
	}
}

func TestSxROM_ResetWrite(t *testing.T) {
	m := newMarkedSxROM(4, 1)
	writeSerial(m, 0x8000, 0x00)
	if m.prgMode() != 0 {
		t.Fatalf("prgMode = %d, want 0", m.prgMode())
	}

	m.StorePRG(0x8000, 1)
	m.StorePRG(0x8000, 1)
	m.StorePRG(0x9FFF, 0x80)

	if m.shiftCount != 0 || m.shift != 0 {
		t.Errorf("shift state not cleared: shift=0x%02X count=%d", m.shift, m.shiftCount)
	}
	if m.control&0x0C != 0x0C {
		t.Errorf("control = 0x%02X, want PRG mode 3", m.control)
	}

	writeSerial(m, 0xE000, 1)
	assertBanks(t, m, 1, 3)
}

func TestSxROM_PRGModes(t *testing.T) {
	tests := []struct {
		name      string
		control   uint8
		prgBank   uint8
		low, high uint8
	}{
		{"mode 0 even bank", 0x00, 2, 2, 3},
		{"mode 0 odd bank ignores bit 0", 0x00, 3, 2, 3},
		{"mode 1", 0x04, 1, 0, 1},
		{"mode 2 fixes first bank", 0x08, 2, 0, 2},
		{"mode 3 fixes last bank", 0x0C, 1, 1, 3},
		{"mode 3 bank wraps", 0x0C, 5, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMarkedSxROM(4, 1)
			writeSerial(m, 0x8000, tt.control)
			writeSerial(m, 0xE000, tt.prgBank)
			assertBanks(t, m, tt.low, tt.high)
		})
	}
}

func TestSxROM_CHRModes(t *testing.T) {
	m := newMarkedSxROM(2, 2)

	// 8KB mode ignores bit 0 of CHR bank 0
	writeSerial(m, 0x8000, 0x0C)
	writeSerial(m, 0xA000, 3)
	if got := m.LoadCHR(0x0000); got != 0x12 {
		t.Errorf("8KB mode LoadCHR(0x0000) = 0x%02X, want 0x12", got)
	}
	if got := m.LoadCHR(0x1000); got != 0x13 {
		t.Errorf("8KB mode LoadCHR(0x1000) = 0x%02X, want 0x13", got)
	}

	// 4KB mode uses both registers
	writeSerial(m, 0x8000, 0x1C)
	writeSerial(m, 0xC000, 1)
	if got := m.LoadCHR(0x0000); got != 0x13 {
		t.Errorf("4KB mode LoadCHR(0x0000) = 0x%02X, want 0x13", got)
	}
	if got := m.LoadCHR(0x1000); got != 0x11 {
		t.Errorf("4KB mode LoadCHR(0x1000) = 0x%02X, want 0x11", got)
	}

	m.StoreCHR(0x0000, 0xFF)
	if got := m.LoadCHR(0x0000); got != 0x13 {
		t.Errorf("CHR ROM write was not ignored: 0x%02X", got)
	}
}

func TestSxROM_CHRRAMAndPRGRAM(t *testing.T) {
	m := NewSxROM(NewImage(make([]uint8, 2*PRGBankSize), nil, 1))

	m.StoreCHR(0x1234, 0xAB)
	if got := m.LoadCHR(0x1234); got != 0xAB {
		t.Errorf("LoadCHR(0x1234) = 0x%02X, want 0xAB", got)
	}

	m.StorePRG(0x6000, 0xCD)
	m.StorePRG(0x7FFF, 0xEF)
	if got := m.LoadPRG(0x6000); got != 0xCD {
		t.Errorf("LoadPRG(0x6000) = 0x%02X, want 0xCD", got)
	}
	if got := m.LoadPRG(0x7FFF); got != 0xEF {
		t.Errorf("LoadPRG(0x7FFF) = 0x%02X, want 0xEF", got)
	}
}

func TestSxROM_Mirroring(t *testing.T) {
	tests := []struct {
		control uint8
		want    MirrorMode
	}{
		{0x0C, MirrorSingleScreen0},
		{0x0D, MirrorSingleScreen1},
		{0x0E, MirrorVertical},
		{0x0F, MirrorHorizontal},
	}

	for _, tt := range tests {
		m := newMarkedSxROM(2, 1)
		writeSerial(m, 0x8000, tt.control)
		if got := m.Mirroring(); got != tt.want {
			t.Errorf("control 0x%02X: Mirroring = %v, want %v", tt.control, got, tt.want)
		}
	}
}
