package app

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"coolnes/internal/cpu"
	"coolnes/internal/graphics"
)

// loopThreshold is how many consecutive steps may leave PC unchanged
// before the program is considered stuck
const loopThreshold = 100

// StopReason tells why a session ended
type StopReason int

const (
	StopMaxSteps StopReason = iota
	StopConformance
	StopLoop
	StopCancelled
	StopWindowClosed
	StopFatal
)

var stopReasonNames = [...]string{
	StopMaxSteps:     "step limit reached",
	StopConformance:  "conformance result posted",
	StopLoop:         "stuck in a loop",
	StopCancelled:    "cancelled",
	StopWindowClosed: "window closed",
	StopFatal:        "fatal CPU condition",
}

func (r StopReason) String() string {
	if int(r) < len(stopReasonNames) {
		return stopReasonNames[r]
	}
	return "unknown"
}

// RunResult summarises a finished session
type RunResult struct {
	Reason    StopReason
	Steps     uint64
	Frames    uint64
	Registers cpu.Registers

	// Conformance status, valid when StatusSigned is true
	StatusSigned  bool
	Status        uint8
	StatusText    string
	StatusHistory []uint8
}

// Passed reports whether a conformance ROM posted a zero result
func (r RunResult) Passed() bool {
	return r.Reason == StopConformance && r.StatusSigned && r.Status == 0
}

// Runner drives a Console one batch of steps per frame
type Runner struct {
	console  *Console
	cfg      EmulationConfig
	window   graphics.Window
	monitor  *StatusMonitor
	logger   *log.Logger
	tracer   *log.Logger
	interval time.Duration

	steps       uint64
	frames      uint64
	lastPC      uint16
	pcStayCount int
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithWindow delivers a frame to w after every batch of steps
func WithWindow(w graphics.Window) RunnerOption {
	return func(r *Runner) { r.window = w }
}

// WithTrace logs one trace line per instruction to w
func WithTrace(w io.Writer) RunnerOption {
	return func(r *Runner) { r.tracer = log.New(w, "", 0) }
}

// WithLogger replaces the default stderr logger
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// WithFrameRate limits batches to fps per second. Zero runs unthrottled.
func WithFrameRate(fps int) RunnerOption {
	return func(r *Runner) {
		if fps > 0 {
			r.interval = time.Second / time.Duration(fps)
		}
	}
}

// NewRunner creates a runner for console. The conformance status byte is
// always monitored; ROMs that never sign it are unaffected.
func NewRunner(console *Console, cfg EmulationConfig, opts ...RunnerOption) *Runner {
	r := &Runner{
		console: console,
		cfg:     cfg,
		monitor: NewStatusMonitor(console.Bus),
		logger:  log.New(os.Stderr, "[runner] ", log.LstdFlags),
		lastPC:  console.CPU.PC,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cfg.StepsPerFrame <= 0 {
		r.cfg.StepsPerFrame = DefaultStepsPerFrame
	}
	return r
}

// Monitor returns the conformance status monitor
func (r *Runner) Monitor() *StatusMonitor {
	return r.monitor
}

// Run steps the CPU until a stop condition or ctx is done. Fatal CPU
// conditions end the session with an *ApplicationError; the partial
// result is still returned.
func (r *Runner) Run(ctx context.Context) (result RunResult, err error) {
	defer func() {
		if err != nil {
			result.Reason = StopFatal
		}
		result = r.result(result.Reason)
	}()
	defer recoverFatal("runner", "step", &err)

	var ticker *time.Ticker
	if r.interval > 0 {
		ticker = time.NewTicker(r.interval)
		defer ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			result.Reason = StopCancelled
			return result, nil
		default:
		}

		if r.window != nil && r.window.ShouldClose() {
			result.Reason = StopWindowClosed
			return result, nil
		}

		if r.window == nil || !r.window.Paused() {
			if reason, stop := r.runBatch(); stop {
				result.Reason = reason
				r.present()
				return result, nil
			}
			r.present()
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
			case <-ticker.C:
			}
		} else if r.window != nil && r.window.Paused() {
			time.Sleep(16 * time.Millisecond)
		}
	}
}

// runBatch executes up to StepsPerFrame instructions
func (r *Runner) runBatch() (StopReason, bool) {
	c := r.console.CPU

	for i := 0; i < r.cfg.StepsPerFrame; i++ {
		if r.cfg.MaxSteps > 0 && r.steps >= r.cfg.MaxSteps {
			return StopMaxSteps, true
		}

		if r.tracer != nil {
			r.tracer.Println(c.Trace())
		}

		c.Step()
		r.steps++

		if r.monitor.Poll() {
			r.logger.Printf("reset requested at step %d", r.steps)
			c.Reset()
		}
		if r.monitor.Done() {
			r.logger.Printf("conformance status $%02X after %d steps", r.monitor.Result(), r.steps)
			return StopConformance, true
		}

		if r.detectInfiniteLoop(c.PC) && r.cfg.StopOnLoop {
			return StopLoop, true
		}
	}
	return 0, false
}

// detectInfiniteLoop reports true once PC has stayed put for loopThreshold
// steps, as a jump or branch to itself does
func (r *Runner) detectInfiniteLoop(pc uint16) bool {
	if pc == r.lastPC {
		r.pcStayCount++
		if r.pcStayCount == loopThreshold {
			r.logger.Printf("CPU stuck at PC=$%04X for %d steps", pc, r.pcStayCount)
		}
	} else {
		r.pcStayCount = 0
	}
	r.lastPC = pc
	return r.pcStayCount >= loopThreshold
}

// present delivers the current state to the window, if any
func (r *Runner) present() {
	r.frames++
	if r.window == nil {
		return
	}
	frame := r.console.Frame(r.frames, r.steps, r.monitor.Summary())
	if err := r.window.RenderFrame(frame); err != nil {
		r.logger.Printf("render error: %v", err)
	}
}

func (r *Runner) result(reason StopReason) RunResult {
	res := RunResult{
		Reason:        reason,
		Steps:         r.steps,
		Frames:        r.frames,
		Registers:     r.console.CPU.Snapshot(),
		StatusSigned:  r.monitor.SignatureValid(),
		StatusHistory: r.monitor.History(),
	}
	if res.StatusSigned {
		res.Status = r.monitor.Result()
		res.StatusText = r.monitor.Text()
	}
	return res
}
