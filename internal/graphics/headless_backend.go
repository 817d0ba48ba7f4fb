package graphics

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// HeadlessBackend implements the Backend interface for headless operation
type HeadlessBackend struct {
	initialized bool
	config      Config
}

// HeadlessWindow implements the Window interface for headless operation.
// It optionally dumps every Nth frame as a PNG.
type HeadlessWindow struct {
	title      string
	width      int
	height     int
	running    bool
	frameCount int
	outputPath string
	interval   int
	scaler     draw.Scaler
	last       *Frame
	saved      []string
}

// NewHeadlessBackend creates a new headless graphics backend
func NewHeadlessBackend() Backend {
	return &HeadlessBackend{}
}

// Initialize initializes the headless backend
func (b *HeadlessBackend) Initialize(config Config) error {
	if b.initialized {
		return fmt.Errorf("headless backend already initialized")
	}

	if config.FramesDir != "" {
		if err := os.MkdirAll(config.FramesDir, 0o755); err != nil {
			return fmt.Errorf("failed to create frames directory: %w", err)
		}
	}

	b.config = config
	b.initialized = true

	return nil
}

// CreateWindow creates a headless "window" (no actual window)
func (b *HeadlessBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !b.initialized {
		return nil, fmt.Errorf("backend not initialized")
	}

	var scaler draw.Scaler = draw.NearestNeighbor
	if b.config.Filter == "linear" {
		scaler = draw.ApproxBiLinear
	}

	return &HeadlessWindow{
		title:      title,
		width:      width,
		height:     height,
		running:    true,
		outputPath: b.config.FramesDir,
		interval:   b.config.FrameInterval,
		scaler:     scaler,
	}, nil
}

// Cleanup releases all headless resources
func (b *HeadlessBackend) Cleanup() error {
	b.initialized = false
	return nil
}

// IsHeadless returns true (this is a headless backend)
func (b *HeadlessBackend) IsHeadless() bool {
	return true
}

// GetName returns the backend name
func (b *HeadlessBackend) GetName() string {
	return "Headless"
}

// HeadlessWindow implementation

// SetTitle sets the window title (for logging purposes)
func (w *HeadlessWindow) SetTitle(title string) {
	w.title = title
}

// GetSize returns window dimensions
func (w *HeadlessWindow) GetSize() (width, height int) {
	return w.width, w.height
}

// ShouldClose returns true if window should close
func (w *HeadlessWindow) ShouldClose() bool {
	return !w.running
}

// Paused is always false without user input
func (w *HeadlessWindow) Paused() bool {
	return false
}

// RenderFrame counts the frame and saves it when it falls on the interval
func (w *HeadlessWindow) RenderFrame(frame *Frame) error {
	w.frameCount++
	w.last = frame

	if w.outputPath == "" || w.interval <= 0 || w.frameCount%w.interval != 0 {
		return nil
	}
	return w.saveFrameAsPNG(frame, fmt.Sprintf("frame_%05d.png", w.frameCount))
}

// saveFrameAsPNG scales the pattern-table view by the integer factor that
// fits the window width and writes it to the output directory
func (w *HeadlessWindow) saveFrameAsPNG(frame *Frame, filename string) error {
	scale := w.width / ViewWidth
	if scale < 1 {
		scale = 1
	}
	src := frame.Image()
	dst := image.NewRGBA(image.Rect(0, 0, ViewWidth*scale, ViewHeight*scale))
	w.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	path := filepath.Join(w.outputPath, filename)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, dst); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	w.saved = append(w.saved, path)
	return nil
}

// Cleanup saves the last frame seen, if any, and releases window resources
func (w *HeadlessWindow) Cleanup() error {
	if !w.running {
		return nil
	}
	w.running = false

	if w.outputPath != "" && w.last != nil {
		return w.saveFrameAsPNG(w.last, "frame_final.png")
	}
	return nil
}

// GetFrameCount returns the current frame count
func (w *HeadlessWindow) GetFrameCount() int {
	return w.frameCount
}

// SavedFrames returns the paths written so far, oldest first
func (w *HeadlessWindow) SavedFrames() []string {
	return append([]string(nil), w.saved...)
}
