//go:build !statsview
// +build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch tells output how to build with the stats server. The returned
// function does nothing.
func Launch(output io.Writer, addr string) (stop func()) {
	fmt.Fprintln(output, "stats server not available: rebuild with -tags statsview")
	return func() {}
}

// Available reports whether the stats server was compiled in
func Available() bool {
	return false
}
