package cpu

import (
	"testing"
)

// MockMemory implements Bus over a flat 64KB array for testing
type MockMemory struct {
	data       [0x10000]uint8 // 64KB address space
	readCount  map[uint16]int
	writeCount map[uint16]int
}

// NewMockMemory creates a new mock memory instance
func NewMockMemory() *MockMemory {
	return &MockMemory{
		readCount:  make(map[uint16]int),
		writeCount: make(map[uint16]int),
	}
}

func (m *MockMemory) LoadByte(address uint16) uint8 {
	m.readCount[address]++
	return m.data[address]
}

func (m *MockMemory) StoreByte(address uint16, value uint8) {
	m.writeCount[address]++
	m.data[address] = value
}

func (m *MockMemory) LoadWord(address uint16) uint16 {
	return uint16(m.LoadByte(address)) | uint16(m.LoadByte(address+1))<<8
}

func (m *MockMemory) LoadWordZeroPageWraparound(address uint8) uint16 {
	return uint16(m.LoadByte(uint16(address))) | uint16(m.LoadByte(uint16(address+1)))<<8
}

// SetBytes sets multiple bytes starting at the given address
func (m *MockMemory) SetBytes(address uint16, values ...uint8) {
	for i, value := range values {
		m.data[address+uint16(i)] = value
	}
}

// TotalWrites returns the number of stores seen since the last ClearCounts
func (m *MockMemory) TotalWrites() int {
	n := 0
	for _, c := range m.writeCount {
		n += c
	}
	return n
}

// ClearCounts resets all read/write counts
func (m *MockMemory) ClearCounts() {
	m.readCount = make(map[uint16]int)
	m.writeCount = make(map[uint16]int)
}

// CPUTestHelper provides common test utilities
type CPUTestHelper struct {
	CPU    *CPU
	Memory *MockMemory
}

// NewCPUTestHelper creates a new test helper
func NewCPUTestHelper() *CPUTestHelper {
	memory := NewMockMemory()
	return &CPUTestHelper{
		CPU:    New(memory),
		Memory: memory,
	}
}

// LoadProgram places code at address and points PC at it
func (h *CPUTestHelper) LoadProgram(address uint16, code ...uint8) {
	h.Memory.SetBytes(address, code...)
	h.CPU.PC = address
}

// Run executes n instructions
func (h *CPUTestHelper) Run(n int) {
	for i := 0; i < n; i++ {
		h.CPU.Step()
	}
}

// AssertRegisters checks A, X and Y
func (h *CPUTestHelper) AssertRegisters(t *testing.T, a, x, y uint8) {
	t.Helper()
	if h.CPU.A != a {
		t.Errorf("A = 0x%02X, want 0x%02X", h.CPU.A, a)
	}
	if h.CPU.X != x {
		t.Errorf("X = 0x%02X, want 0x%02X", h.CPU.X, x)
	}
	if h.CPU.Y != y {
		t.Errorf("Y = 0x%02X, want 0x%02X", h.CPU.Y, y)
	}
}

// AssertPC checks the program counter
func (h *CPUTestHelper) AssertPC(t *testing.T, pc uint16) {
	t.Helper()
	if h.CPU.PC != pc {
		t.Errorf("PC = 0x%04X, want 0x%04X", h.CPU.PC, pc)
	}
}

// AssertFlags checks each flag in want against P
func (h *CPUTestHelper) AssertFlags(t *testing.T, want map[uint8]bool) {
	t.Helper()
	names := map[uint8]string{
		FlagCarry: "C", FlagZero: "Z", FlagInterruptDisable: "I", FlagDecimal: "D",
		FlagBreak: "B", FlagUnused: "U", FlagOverflow: "V", FlagNegative: "N",
	}
	for mask, on := range want {
		if h.CPU.Flag(mask) != on {
			t.Errorf("flag %s = %v, want %v (P=0x%02X)", names[mask], !on, on, h.CPU.P)
		}
	}
}

// expectPanic runs fn and returns whatever it panicked with
func expectPanic(t *testing.T, fn func()) (recovered interface{}) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Errorf("expected panic, got none")
		}
	}()
	fn()
	return nil
}
