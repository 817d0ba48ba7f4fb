// Package main implements the coolnes executable.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"coolnes/internal/app"
	"coolnes/internal/cartridge"
	"coolnes/internal/graphics"
	"coolnes/internal/statsview"
	"coolnes/internal/version"
)

// frameRate paces the runner when a window is showing frames
const frameRate = 60

type outcome struct {
	result app.RunResult
	err    error
}

func main() {
	os.Exit(run())
}

// run executes one session and returns the process exit code. Deferred
// cleanup runs before main exits.
func run() int {
	var (
		romFile     = flag.String("rom", "", "Path to iNES ROM file")
		configFile  = flag.String("config", "", "Path to configuration file (default ~/.coolnes.toml)")
		backend     = flag.String("backend", "", "Renderer: ebitengine, headless or terminal")
		conformance = flag.Bool("conformance", false, "Use the conformance board regardless of the ROM header")
		maxSteps    = flag.Uint64("max-steps", 0, "Stop after this many instructions (0 = unlimited)")
		trace       = flag.Bool("trace", false, "Log one trace line per instruction to stdout")
		splitDir    = flag.String("split", "", "Write the ROM's PRG and CHR data to this directory and exit")
		stats       = flag.Bool("statsview", false, "Serve runtime statistics (requires -tags statsview)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		version.PrintBuildInfo(os.Stdout)
		return 0
	}

	log.SetPrefix("[coolnes] ")

	configPath := *configFile
	if configPath == "" {
		configPath = app.GetDefaultConfigPath()
	}
	config := app.NewConfig()
	if err := config.LoadFromFile(configPath); err != nil {
		log.Printf("could not load config from %s, using defaults: %v", configPath, err)
		config = app.NewConfig()
	}

	// Flags override the config file only when given explicitly
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			config.Video.Backend = *backend
		case "conformance":
			config.Emulation.Conformance = *conformance
		case "max-steps":
			config.Emulation.MaxSteps = *maxSteps
		case "trace":
			config.Debug.Trace = *trace
		case "statsview":
			config.Debug.Statsview = *stats
		}
	})

	if *romFile == "" {
		flag.Usage()
		return 2
	}

	img, err := cartridge.LoadFromFile(*romFile)
	if err != nil {
		log.Printf("Failed to load ROM: %v", err)
		return 1
	}
	log.Printf("loaded %s: %dKB PRG, %dKB CHR, mapper %d, %v mirroring, battery %t",
		filepath.Base(*romFile), len(img.PRG)/1024, len(img.CHR)/1024, img.MapperNumber(),
		img.Header.Mirroring(), img.Header.HasBattery())

	if *splitDir != "" {
		prgPath, chrPath, err := cartridge.Split(img, *splitDir)
		if err != nil {
			log.Printf("Failed to split ROM: %v", err)
			return 1
		}
		fmt.Println(prgPath)
		fmt.Println(chrPath)
		return 0
	}

	if config.Debug.Statsview {
		if statsview.Available() {
			stopStats := statsview.Launch(os.Stderr, config.Debug.StatsviewAddr)
			defer stopStats()
		} else {
			log.Printf("statsview requested but not built in: rebuild with -tags statsview")
		}
	}

	console, err := app.NewConsole(img, config.Emulation)
	if err != nil {
		log.Printf("Failed to create console: %v", err)
		return 1
	}

	gfx, window, err := openWindow(config, "coolnes - "+filepath.Base(*romFile))
	if err != nil {
		log.Printf("Failed to open renderer: %v", err)
		return 1
	}
	defer gfx.Cleanup()

	opts := []app.RunnerOption{app.WithWindow(window)}
	if config.Debug.Trace {
		opts = append(opts, app.WithTrace(os.Stdout))
	}
	if !gfx.IsHeadless() {
		opts = append(opts, app.WithFrameRate(frameRate))
	}
	runner := app.NewRunner(console, config.Emulation, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var out outcome
	if lw, ok := window.(graphics.LoopWindow); ok {
		done := make(chan outcome, 1)
		go func() {
			result, err := runner.Run(ctx)
			if ctx.Err() != nil || err != nil {
				lw.Cleanup()
			}
			done <- outcome{result, err}
		}()
		windowErr := lw.Run()
		out = <-done
		if windowErr != nil && out.err == nil {
			out.err = fmt.Errorf("window: %w", windowErr)
		}
	} else {
		out.result, out.err = runner.Run(ctx)
	}

	if err := window.Cleanup(); err != nil {
		log.Printf("window cleanup error: %v", err)
	}

	return report(out)
}

// openWindow creates the configured renderer. A window backend that cannot
// be created falls back to headless, as on machines without a display.
func openWindow(config *app.Config, title string) (graphics.Backend, graphics.Window, error) {
	backendType, err := graphics.ParseBackendType(config.Video.Backend)
	if err != nil {
		return nil, nil, err
	}

	gfxConfig := graphics.Config{
		WindowTitle:   title,
		Scale:         config.Video.Scale,
		VSync:         config.Video.VSync,
		Filter:        config.Video.Filter,
		FramesDir:     config.Video.FramesDir,
		FrameInterval: config.Video.FrameInterval,
		Headless:      backendType != graphics.BackendEbitengine,
	}
	width, height := graphics.WindowSize(config.Video.Scale)

	gfx, err := graphics.CreateBackend(backendType)
	if err == nil {
		err = gfx.Initialize(gfxConfig)
	}
	var window graphics.Window
	if err == nil {
		window, err = gfx.CreateWindow(title, width, height)
	}
	if err == nil {
		log.Printf("using %s backend", gfx.GetName())
		return gfx, window, nil
	}

	if backendType == graphics.BackendHeadless {
		return nil, nil, fmt.Errorf("headless backend: %w", err)
	}
	log.Printf("%s backend failed (%v), falling back to headless mode", backendType, err)
	config.Video.Backend = string(graphics.BackendHeadless)
	return openWindow(config, title)
}

// report prints the session outcome and returns the exit code: non-zero on
// a fatal CPU condition, a window failure or a failed conformance result
func report(out outcome) int {
	res := out.result
	if out.err != nil {
		log.Printf("%v\nstopped after %d steps", out.err, res.Steps)
		return 1
	}

	log.Printf("stopped: %v after %d steps, %d frames", res.Reason, res.Steps, res.Frames)
	log.Printf("registers: %v", res.Registers)

	if !res.StatusSigned {
		return 0
	}
	log.Printf("conformance status $%02X, history % X", res.Status, res.StatusHistory)
	if res.StatusText != "" {
		fmt.Print(res.StatusText)
	}
	if res.Reason == app.StopConformance && !res.Passed() {
		return 1
	}
	return 0
}

func printUsage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "coolnes - NES CPU core")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "  coolnes -rom <file> [options]")
	fmt.Fprintln(w, "  coolnes -rom <file> -split <dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OPTIONS:")
	flag.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "EXAMPLES:")
	fmt.Fprintln(w, "  coolnes -rom game.nes                                 # pattern-table viewer")
	fmt.Fprintln(w, "  coolnes -rom official_only.nes -backend headless      # run a conformance ROM")
	fmt.Fprintln(w, "  coolnes -rom prog.nes -backend headless -trace -max-steps 9000 > trace.log")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "WINDOW KEYS:")
	fmt.Fprintln(w, "  P       - Pause / resume")
	fmt.Fprintln(w, "  Escape  - Quit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CONFIGURATION:")
	fmt.Fprintf(w, "  Config file: %s\n", app.GetDefaultConfigPath())
}
