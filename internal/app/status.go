package app

import (
	"fmt"
	"strings"

	"coolnes/internal/bus"
)

// Conformance test ROMs report progress through cartridge RAM: a status
// byte at 0x6000, a three byte signature at 0x6001 and a zero-terminated
// message from 0x6004.
const (
	StatusAddress      = 0x6000
	StatusRunning      = 0x80
	StatusResetRequest = 0x81

	signatureAddress = 0x6001
	textAddress      = 0x6004
	textEnd          = 0x8000
)

var statusSignature = [3]uint8{0xDE, 0xB0, 0x61}

// StatusMonitor follows the status byte of a conformance ROM using a bus
// watchpoint
type StatusMonitor struct {
	bus         *bus.Bus
	history     []uint8
	seenRunning bool
}

// NewStatusMonitor starts watching the status byte. The value present at
// construction is the first history entry.
func NewStatusMonitor(b *bus.Bus) *StatusMonitor {
	b.AddWatchpoint(StatusAddress)
	return &StatusMonitor{
		bus:     b,
		history: []uint8{b.LoadByte(StatusAddress)},
	}
}

// Poll records status changes since the last call. It reports true when
// the ROM asked for a reset.
func (m *StatusMonitor) Poll() (resetRequested bool) {
	for _, ev := range m.bus.CheckWatchpoints() {
		if ev.Address != StatusAddress {
			continue
		}
		m.history = append(m.history, ev.Current)
		if ev.Current == StatusRunning {
			m.seenRunning = true
		}
		if ev.Current == StatusResetRequest && m.SignatureValid() {
			resetRequested = true
		}
	}
	return resetRequested
}

// SignatureValid reports whether the ROM has written the status signature
func (m *StatusMonitor) SignatureValid() bool {
	for i, want := range statusSignature {
		if m.bus.LoadByte(signatureAddress+uint16(i)) != want {
			return false
		}
	}
	return true
}

// Done reports whether the ROM has run and posted a final result
func (m *StatusMonitor) Done() bool {
	return m.seenRunning && m.SignatureValid() && m.Result() < StatusRunning
}

// Result returns the current status byte. Zero means passed once Done.
func (m *StatusMonitor) Result() uint8 {
	return m.bus.LoadByte(StatusAddress)
}

// History returns every distinct status value seen, oldest first
func (m *StatusMonitor) History() []uint8 {
	return append([]uint8(nil), m.history...)
}

// Text returns the message the ROM wrote after the signature
func (m *StatusMonitor) Text() string {
	var sb strings.Builder
	for addr := uint16(textAddress); addr < textEnd; addr++ {
		c := m.bus.LoadByte(addr)
		if c == 0 {
			break
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Summary is a short description for status lines, empty until the ROM
// signs its status area
func (m *StatusMonitor) Summary() string {
	if !m.SignatureValid() {
		return ""
	}
	switch status := m.Result(); {
	case status == StatusRunning:
		return "status $80 running"
	case status == StatusResetRequest:
		return "status $81 reset requested"
	case status == 0 && m.seenRunning:
		return "status $00 passed"
	case m.seenRunning:
		return fmt.Sprintf("status $%02X failed", status)
	default:
		return fmt.Sprintf("status $%02X", status)
	}
}
