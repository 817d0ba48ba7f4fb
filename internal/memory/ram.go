// Package memory implements the console's internal work RAM.
package memory

const (
	// RAMSize is the physical size of the internal RAM (2KB).
	RAMSize = 0x800

	// ramMask folds any address in 0x0000-0x1FFF onto the physical store,
	// giving four mirrors of the same 2KB.
	ramMask = 0x07FF
)

// RAM represents the 2KB of internal work RAM
type RAM struct {
	mem [RAMSize]uint8
}

// NewRAM creates zero-filled RAM
func NewRAM() *RAM {
	return &RAM{}
}

// LoadByte reads a byte. The address is masked to 11 bits.
func (r *RAM) LoadByte(address uint16) uint8 {
	return r.mem[address&ramMask]
}

// StoreByte writes a byte. The address is masked to 11 bits.
func (r *RAM) StoreByte(address uint16, value uint8) {
	r.mem[address&ramMask] = value
}

// Clear zeroes the whole store.
func (r *RAM) Clear() {
	r.mem = [RAMSize]uint8{}
}

// FillPowerUpPattern fills RAM with a fixed, hardware-like power-up pattern.
// Real RAM comes up in a semi-random state; some programs only behave when
// the contents are not all zero.
func (r *RAM) FillPowerUpPattern() {
	for i := 0; i < RAMSize; i++ {
		switch {
		case i < 0x100:
			// alternating $00/$FF
			if i%2 == 0 {
				r.mem[i] = 0x00
			} else {
				r.mem[i] = 0xFF
			}
		case i < 0x200:
			if i%16 < 2 {
				r.mem[i] = 0xFF
			} else {
				r.mem[i] = 0x00
			}
		case i < 0x300:
			// checkerboard
			if (i/8)%2 == (i%8)/4 {
				r.mem[i] = 0xAA
			} else {
				r.mem[i] = 0x55
			}
		case i < 0x400:
			if i%8 == 0 {
				r.mem[i] = 0x00
			} else {
				r.mem[i] = 0xFF
			}
		default:
			switch i % 4 {
			case 0:
				r.mem[i] = 0x00
			case 1:
				r.mem[i] = 0xFF
			case 2:
				r.mem[i] = 0xAA
			case 3:
				r.mem[i] = 0x55
			}
		}
	}
}
