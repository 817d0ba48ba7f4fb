// Package statsview serves live runtime statistics (heap and goroutine
// charts) of a running coolnes session over HTTP, using
// github.com/go-echarts/statsview. The server is compiled in only with the
// statsview build tag; other builds get a stub that reports how to enable
// it.
//
// With the default address the charts are at
//
//	http://localhost:12600/debug/statsview
//
// and the pprof endpoints at /debug/pprof/ on the same address.
package statsview
