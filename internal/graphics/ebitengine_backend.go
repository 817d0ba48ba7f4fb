//go:build !headless
// +build !headless

package graphics

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// screenScale is the logical magnification of the pattern-table view; it
// leaves enough width for the debug font overlay.
const screenScale = 2

// EbitengineBackend implements the Backend interface using Ebitengine
type EbitengineBackend struct {
	initialized bool
	config      Config
}

// EbitengineWindow implements the Window interface for Ebitengine. Frames
// arrive from the emulation goroutine through a single-slot channel.
type EbitengineWindow struct {
	title  string
	width  int
	height int
	game   *EbitengineGame
	frames chan *Frame
	closed atomic.Bool
	paused atomic.Bool
	vsync  bool
}

// EbitengineGame implements ebiten.Game for the pattern-table viewer
type EbitengineGame struct {
	window     *EbitengineWindow
	frameImage *ebiten.Image
	filter     ebiten.Filter
	last       *Frame
}

// NewEbitengineBackend creates a new Ebitengine graphics backend
func NewEbitengineBackend() Backend {
	return &EbitengineBackend{}
}

// Initialize initializes the Ebitengine backend
func (b *EbitengineBackend) Initialize(config Config) error {
	if b.initialized {
		return fmt.Errorf("Ebitengine backend already initialized")
	}

	b.config = config
	b.initialized = true

	return nil
}

// CreateWindow creates an Ebitengine window. The window opens when Run is
// called on the main goroutine.
func (b *EbitengineBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !b.initialized {
		return nil, fmt.Errorf("backend not initialized")
	}

	if b.config.Headless {
		return nil, fmt.Errorf("cannot create window in headless mode")
	}

	window := &EbitengineWindow{
		title:  title,
		width:  width,
		height: height,
		frames: make(chan *Frame, 1),
		vsync:  b.config.VSync,
	}

	filter := ebiten.FilterNearest
	if b.config.Filter == "linear" {
		filter = ebiten.FilterLinear
	}

	window.game = &EbitengineGame{
		window: window,
		filter: filter,
	}

	return window, nil
}

// Cleanup releases all Ebitengine resources
func (b *EbitengineBackend) Cleanup() error {
	b.initialized = false
	return nil
}

// IsHeadless returns true if running in headless mode
func (b *EbitengineBackend) IsHeadless() bool {
	return b.config.Headless
}

// GetName returns the backend name
func (b *EbitengineBackend) GetName() string {
	return "Ebitengine"
}

// EbitengineWindow implementation

// SetTitle sets the window title
func (w *EbitengineWindow) SetTitle(title string) {
	w.title = title
	ebiten.SetWindowTitle(title)
}

// GetSize returns window dimensions
func (w *EbitengineWindow) GetSize() (width, height int) {
	return w.width, w.height
}

// ShouldClose returns true once Escape was pressed or the window closed
func (w *EbitengineWindow) ShouldClose() bool {
	return w.closed.Load()
}

// Paused reports whether P has toggled emulation off
func (w *EbitengineWindow) Paused() bool {
	return w.paused.Load()
}

// RenderFrame queues a frame for the next Update, replacing any frame
// still waiting. It never blocks the emulation goroutine.
func (w *EbitengineWindow) RenderFrame(frame *Frame) error {
	if w.closed.Load() {
		return nil
	}
	offerFrame(w.frames, frame)
	return nil
}

// Cleanup asks the game loop to terminate
func (w *EbitengineWindow) Cleanup() error {
	w.closed.Store(true)
	return nil
}

// Run starts the Ebitengine game loop. It must be called from the main
// goroutine and returns when the window closes.
func (w *EbitengineWindow) Run() error {
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(w.vsync)

	err := ebiten.RunGame(w.game)
	w.closed.Store(true)
	return err
}

// EbitengineGame implementation

// Update implements ebiten.Game.Update
func (g *EbitengineGame) Update() error {
	if g.window.closed.Load() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.window.closed.Store(true)
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.window.paused.Store(!g.window.paused.Load())
	}

	select {
	case frame := <-g.window.frames:
		g.last = frame
		if g.frameImage == nil {
			g.frameImage = ebiten.NewImage(ViewWidth, ViewHeight)
		}
		g.frameImage.WritePixels(frame.Image().Pix)
	default:
	}

	return nil
}

// Draw implements ebiten.Game.Draw
func (g *EbitengineGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0, G: 0, B: 0, A: 255})

	if g.frameImage == nil {
		ebitenutil.DebugPrint(screen, "waiting for first frame")
		return
	}

	op := &ebiten.DrawImageOptions{Filter: g.filter}
	op.GeoM.Scale(screenScale, screenScale)
	screen.DrawImage(g.frameImage, op)

	text := g.last.Overlay()
	if g.window.paused.Load() {
		text += "  [paused]"
	}
	ebitenutil.DebugPrintAt(screen, text, 4, ViewHeight*screenScale+4)
}

// Layout implements ebiten.Game.Layout. The logical screen is fixed and
// Ebitengine scales it to the window.
func (g *EbitengineGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ViewWidth * screenScale, (ViewHeight + OverlayHeight) * screenScale
}
