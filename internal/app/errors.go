package app

import (
	"fmt"

	"coolnes/internal/cartridge"
	"coolnes/internal/cpu"
)

// ApplicationError represents application-specific errors
type ApplicationError struct {
	Component string
	Operation string
	Err       error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("%s error during %s: %v", e.Component, e.Operation, e.Err)
}

func (e *ApplicationError) Unwrap() error {
	return e.Err
}

// recoverFatal turns the typed panics raised by the core into an
// *ApplicationError stored in errp. Any other panic is re-raised. It must
// be deferred directly.
func recoverFatal(component, operation string, errp *error) {
	r := recover()
	if r == nil {
		return
	}

	switch r.(type) {
	case *cpu.UnimplementedOpcodeError, *cpu.IllegalStoreError, *cartridge.UnsupportedMapperError,
		*cartridge.PRGSizeError:
		*errp = &ApplicationError{Component: component, Operation: operation, Err: r.(error)}
	default:
		panic(r)
	}
}
