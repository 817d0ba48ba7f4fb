// Package graphics provides an abstraction layer for different rendering backends
package graphics

import (
	"fmt"
	"io"
)

// Backend represents a graphics rendering backend (Ebitengine, headless, terminal)
type Backend interface {
	// Initialize initializes the graphics backend
	Initialize(config Config) error

	// CreateWindow creates a window for rendering
	CreateWindow(title string, width, height int) (Window, error)

	// Cleanup releases all resources
	Cleanup() error

	// IsHeadless returns true if the backend never opens a window
	IsHeadless() bool

	// GetName returns the backend name for identification
	GetName() string
}

// Window receives frames from the emulation loop. RenderFrame, ShouldClose
// and Paused are safe to call from the goroutine that runs the CPU.
type Window interface {
	// SetTitle sets the window title
	SetTitle(title string)

	// GetSize returns window dimensions
	GetSize() (width, height int)

	// ShouldClose returns true once the user asked to quit
	ShouldClose() bool

	// Paused returns true while the user holds emulation
	Paused() bool

	// RenderFrame presents a frame. The window must not retain live
	// emulator state; frames are immutable copies.
	RenderFrame(frame *Frame) error

	// Cleanup releases window resources
	Cleanup() error
}

// LoopWindow is a Window whose event loop must own the main goroutine.
// Frames are delivered from another goroutine while Run blocks.
type LoopWindow interface {
	Window
	Run() error
}

// Config contains configuration for graphics backends
type Config struct {
	// Window configuration
	WindowTitle string
	Scale       int
	VSync       bool

	// Rendering configuration
	Filter string // "nearest", "linear"

	// Headless frame dumps
	FramesDir     string
	FrameInterval int // dump every Nth frame, 0 disables periodic dumps

	// Terminal output, os.Stdout when nil
	Output io.Writer

	Headless bool
}

// BackendType represents different graphics backend types
type BackendType string

const (
	BackendEbitengine BackendType = "ebitengine"
	BackendHeadless   BackendType = "headless"
	BackendTerminal   BackendType = "terminal"
)

// ParseBackendType validates a backend name from the command line or config
func ParseBackendType(name string) (BackendType, error) {
	switch t := BackendType(name); t {
	case BackendEbitengine, BackendHeadless, BackendTerminal:
		return t, nil
	default:
		return "", fmt.Errorf("unknown graphics backend %q (want ebitengine, headless or terminal)", name)
	}
}

// CreateBackend creates a graphics backend of the specified type
func CreateBackend(backendType BackendType) (Backend, error) {
	switch backendType {
	case BackendEbitengine:
		return NewEbitengineBackend(), nil
	case BackendHeadless:
		return NewHeadlessBackend(), nil
	case BackendTerminal:
		return NewTerminalBackend(), nil
	default:
		return nil, fmt.Errorf("unknown graphics backend %q", backendType)
	}
}

// WindowSize returns the window dimensions for a pattern-table view at the
// given scale, including the register overlay below the tables.
func WindowSize(scale int) (width, height int) {
	if scale < 1 {
		scale = 1
	}
	return ViewWidth * scale, (ViewHeight + OverlayHeight) * scale
}
