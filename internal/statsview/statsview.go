//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// sampleInterval is how often the charts poll the runtime, in milliseconds
const sampleInterval = 1000

// Launch starts the stats server on addr, or on Address when addr is empty,
// and announces its URL on output. The returned function shuts it down.
func Launch(output io.Writer, addr string) (stop func()) {
	if addr == "" {
		addr = Address
	}
	viewer.SetConfiguration(viewer.WithAddr(addr), viewer.WithInterval(sampleInterval))

	mgr := statsview.New()
	go mgr.Start()

	fmt.Fprintf(output, "runtime statistics at http://%s%s\n", addr, chartsPath)
	return mgr.Stop
}

// Available reports whether the stats server was compiled in
func Available() bool {
	return true
}
