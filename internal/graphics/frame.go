package graphics

import (
	"fmt"
	"image"
	"image/color"

	"coolnes/internal/cpu"
	"coolnes/internal/ppu"
)

// View geometry: both pattern tables side by side, with room for a text
// overlay beneath them.
const (
	ViewWidth     = 2 * ppu.PatternTableWidth
	ViewHeight    = ppu.PatternTableHeight
	OverlayHeight = 48
)

// Frame is an immutable copy of console state taken between CPU steps
type Frame struct {
	Number    uint64
	Steps     uint64
	CPU       cpu.Registers
	Video     ppu.Snapshot
	Board     string
	Mirroring string
	Status    string // conformance status, empty when not tracked
}

// Image renders both pattern tables into a ViewWidth x ViewHeight image
// using the grey ramp.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ViewWidth, ViewHeight))
	for table := range f.Video.PatternTables {
		offsetX := table * ppu.PatternTableWidth
		for i, pixel := range f.Video.PatternTables[table] {
			r, g, b := ppu.PixelRGB(pixel)
			x := offsetX + i%ppu.PatternTableWidth
			y := i / ppu.PatternTableWidth
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img
}

// StatusLine is the one-line summary shown by the terminal backend and the
// window overlay.
func (f *Frame) StatusLine() string {
	line := fmt.Sprintf("frame %d steps %d %v %s/%s", f.Number, f.Steps, f.CPU, f.Board, f.Mirroring)
	if f.Status != "" {
		line += " | " + f.Status
	}
	return line
}

// Overlay is the multi-line text drawn under the pattern tables
func (f *Frame) Overlay() string {
	text := fmt.Sprintf("frame %d  steps %d  %s/%s\n%v", f.Number, f.Steps, f.Board, f.Mirroring, f.CPU)
	if f.Status != "" {
		text += "\n" + f.Status
	}
	return text
}

// offerFrame hands a frame to a single-slot channel without blocking. An
// older undelivered frame is dropped so the consumer always sees the latest.
func offerFrame(frames chan *Frame, frame *Frame) {
	for {
		select {
		case frames <- frame:
			return
		default:
		}
		select {
		case <-frames:
		default:
		}
	}
}
