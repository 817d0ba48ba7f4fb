// Package app provides configuration management and session wiring for the
// NES CPU core.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration
type Config struct {
	Video     VideoConfig     `toml:"video"`
	Emulation EmulationConfig `toml:"emulation"`
	Debug     DebugConfig     `toml:"debug"`

	// Internal state
	configPath string
	loaded     bool
}

// VideoConfig contains renderer configuration
type VideoConfig struct {
	Backend       string `toml:"backend"` // "ebitengine", "headless", "terminal"
	Scale         int    `toml:"scale"`
	VSync         bool   `toml:"vsync"`
	Filter        string `toml:"filter"` // "nearest", "linear"
	FramesDir     string `toml:"frames_dir"`
	FrameInterval int    `toml:"frame_interval"` // headless/terminal: output every Nth frame
}

// EmulationConfig contains session configuration
type EmulationConfig struct {
	Conformance   bool   `toml:"conformance"` // force the conformance board
	MaxSteps      uint64 `toml:"max_steps"`   // 0 runs until stopped
	StepsPerFrame int    `toml:"steps_per_frame"`
	RAMInit       string `toml:"ram_init"` // "zero", "pattern"
	StopOnLoop    bool   `toml:"stop_on_loop"`
}

// DebugConfig contains debugging and diagnostics configuration
type DebugConfig struct {
	Trace         bool   `toml:"trace"`
	Statsview     bool   `toml:"statsview"`
	StatsviewAddr string `toml:"statsview_addr"`
}

// Defaults
const (
	DefaultBackend       = "ebitengine"
	DefaultScale         = 3
	DefaultFilter        = "nearest"
	DefaultFramesDir     = "frames"
	DefaultFrameInterval = 60
	DefaultStepsPerFrame = 8000
	DefaultRAMInit       = "zero"

	maxScale = 8
)

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Video: VideoConfig{
			Backend:       DefaultBackend,
			Scale:         DefaultScale,
			VSync:         true,
			Filter:        DefaultFilter,
			FramesDir:     DefaultFramesDir,
			FrameInterval: DefaultFrameInterval,
		},
		Emulation: EmulationConfig{
			StepsPerFrame: DefaultStepsPerFrame,
			RAMInit:       DefaultRAMInit,
			StopOnLoop:    true,
		},
		Debug: DebugConfig{},
	}
}

// LoadFromFile loads configuration from a TOML file on top of the current
// values. A missing file leaves the defaults in place.
func (c *Config) LoadFromFile(path string) error {
	c.configPath = path

	md, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	for _, key := range md.Undecoded() {
		log.Printf("[CONFIG] ignoring unknown key %q in %s", key.String(), path)
	}

	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	c.loaded = true
	return nil
}

// SaveToFile saves configuration to a TOML file
func (c *Config) SaveToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	c.configPath = path
	return nil
}

// validate clamps out-of-range values back to defaults. Only an unknown
// backend is reported, since silently swapping renderers would surprise.
func (c *Config) validate() error {
	switch c.Video.Backend {
	case "ebitengine", "headless", "terminal":
	default:
		return &ConfigError{Field: "video.backend", Value: c.Video.Backend, Err: errors.New("unknown backend")}
	}

	if c.Video.Scale < 1 || c.Video.Scale > maxScale {
		c.Video.Scale = DefaultScale
	}

	if c.Video.Filter != "nearest" && c.Video.Filter != "linear" {
		c.Video.Filter = DefaultFilter
	}

	if c.Video.FrameInterval < 0 {
		c.Video.FrameInterval = DefaultFrameInterval
	}

	if c.Emulation.StepsPerFrame <= 0 {
		c.Emulation.StepsPerFrame = DefaultStepsPerFrame
	}

	if c.Emulation.RAMInit != "zero" && c.Emulation.RAMInit != "pattern" {
		c.Emulation.RAMInit = DefaultRAMInit
	}

	return nil
}

// IsLoaded returns true if configuration was loaded from file
func (c *Config) IsLoaded() bool {
	return c.loaded
}

// GetConfigPath returns the path the configuration was read from
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// GetDefaultConfigPath returns the default configuration file path,
// ~/.coolnes.toml, falling back to the working directory without a home.
func GetDefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".coolnes.toml"
	}
	return filepath.Join(home, ".coolnes.toml")
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field string
	Value interface{}
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field '%s' with value '%v': %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
