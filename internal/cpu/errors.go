package cpu

import (
	"fmt"
)

// UnimplementedOpcodeError is raised when the CPU fetches an opcode it
// cannot execute. It is fatal for the session.
type UnimplementedOpcodeError struct {
	Opcode    uint8
	PC        uint16 // address the opcode was fetched from
	Registers Registers
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode $%02X at $%04X: %v", e.Opcode, e.PC, e.Registers)
}

// IllegalStoreError is raised when an instruction tries to write to an
// operand that has no storage, such as an immediate value.
type IllegalStoreError struct {
	Mode      AddressingMode
	PC        uint16
	Registers Registers
}

func (e *IllegalStoreError) Error() string {
	return fmt.Sprintf("illegal store to %v operand at $%04X: %v", e.Mode, e.PC, e.Registers)
}
