package graphics

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalBackend implements the Backend interface for terminal-based rendering
type TerminalBackend struct {
	initialized bool
	config      Config
}

// TerminalWindow prints a status line per frame. On a real terminal the
// line is redrawn in place and clipped to the terminal width; otherwise one
// line is appended every FrameInterval frames.
type TerminalWindow struct {
	title      string
	width      int
	height     int
	running    bool
	out        io.Writer
	fd         int
	isTTY      bool
	interval   int
	frameCount int
}

// NewTerminalBackend creates a new terminal graphics backend
func NewTerminalBackend() Backend {
	return &TerminalBackend{}
}

// Initialize initializes the terminal backend
func (b *TerminalBackend) Initialize(config Config) error {
	if b.initialized {
		return fmt.Errorf("terminal backend already initialized")
	}

	b.config = config
	b.initialized = true

	return nil
}

// CreateWindow creates a terminal "window"
func (b *TerminalBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !b.initialized {
		return nil, fmt.Errorf("backend not initialized")
	}

	out := b.config.Output
	if out == nil {
		out = os.Stdout
	}

	w := &TerminalWindow{
		title:    title,
		width:    width,
		height:   height,
		running:  true,
		out:      out,
		fd:       -1,
		interval: b.config.FrameInterval,
	}
	if f, ok := out.(*os.File); ok {
		w.fd = int(f.Fd())
		w.isTTY = term.IsTerminal(w.fd)
	}
	if w.interval <= 0 {
		w.interval = 1
	}

	return w, nil
}

// Cleanup releases all terminal resources
func (b *TerminalBackend) Cleanup() error {
	b.initialized = false
	return nil
}

// IsHeadless returns true: the terminal backend never opens a window
func (b *TerminalBackend) IsHeadless() bool {
	return true
}

// GetName returns the backend name
func (b *TerminalBackend) GetName() string {
	return "Terminal"
}

// TerminalWindow implementation

// SetTitle sets the window title (for terminal title)
func (w *TerminalWindow) SetTitle(title string) {
	w.title = title
	if w.isTTY {
		fmt.Fprintf(w.out, "\033]0;%s\007", title)
	}
}

// GetSize returns window dimensions
func (w *TerminalWindow) GetSize() (width, height int) {
	return w.width, w.height
}

// ShouldClose returns true if window should close
func (w *TerminalWindow) ShouldClose() bool {
	return !w.running
}

// Paused is always false; the terminal backend reads no input
func (w *TerminalWindow) Paused() bool {
	return false
}

// RenderFrame writes the frame's status line
func (w *TerminalWindow) RenderFrame(frame *Frame) error {
	w.frameCount++
	line := frame.StatusLine()

	if w.isTTY {
		if cols, _, err := term.GetSize(w.fd); err == nil && cols > 0 && len(line) >= cols {
			line = line[:cols-1]
		}
		_, err := fmt.Fprintf(w.out, "\r\033[K%s", line)
		return err
	}

	if w.frameCount%w.interval != 0 {
		return nil
	}
	_, err := fmt.Fprintln(w.out, line)
	return err
}

// Cleanup releases window resources
func (w *TerminalWindow) Cleanup() error {
	if w.running && w.isTTY {
		fmt.Fprintln(w.out)
	}
	w.running = false
	return nil
}
