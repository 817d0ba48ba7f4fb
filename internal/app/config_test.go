package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coolnes.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	c := NewConfig()

	if c.Video.Backend != "ebitengine" {
		t.Errorf("Backend = %q, want ebitengine", c.Video.Backend)
	}
	if c.Video.Scale != DefaultScale || c.Video.Filter != "nearest" || !c.Video.VSync {
		t.Errorf("unexpected video defaults: %+v", c.Video)
	}
	if c.Emulation.StepsPerFrame != DefaultStepsPerFrame || c.Emulation.MaxSteps != 0 {
		t.Errorf("unexpected emulation defaults: %+v", c.Emulation)
	}
	if c.Emulation.RAMInit != "zero" || !c.Emulation.StopOnLoop || c.Emulation.Conformance {
		t.Errorf("unexpected emulation defaults: %+v", c.Emulation)
	}
	if c.Debug.Trace || c.Debug.Statsview {
		t.Errorf("debug options should default off: %+v", c.Debug)
	}
	if err := c.validate(); err != nil {
		t.Errorf("defaults fail validation: %v", err)
	}
}

func TestConfig_LoadMissingFileKeepsDefaults(t *testing.T) {
	c := NewConfig()
	path := filepath.Join(t.TempDir(), "absent.toml")

	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile(missing) = %v, want nil", err)
	}
	if c.IsLoaded() {
		t.Error("IsLoaded() = true for a missing file")
	}
	if c.GetConfigPath() != path {
		t.Errorf("GetConfigPath() = %q, want %q", c.GetConfigPath(), path)
	}
	if *c != *withPath(NewConfig(), path) {
		t.Errorf("config changed: %+v", c)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("loading a missing config should not create it")
	}
}

func withPath(c *Config, path string) *Config {
	c.configPath = path
	return c
}

func TestConfig_LoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[video]
backend = "headless"
scale = 20
filter = "cubic"
frames_dir = "out"

[emulation]
max_steps = 5000
ram_init = "pattern"
steps_per_frame = -1

[debug]
trace = true
`)

	c := NewConfig()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if !c.IsLoaded() {
		t.Error("IsLoaded() = false")
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"backend", c.Video.Backend, "headless"},
		{"scale clamped", c.Video.Scale, DefaultScale},
		{"filter clamped", c.Video.Filter, "nearest"},
		{"frames dir", c.Video.FramesDir, "out"},
		{"vsync kept", c.Video.VSync, true},
		{"max steps", c.Emulation.MaxSteps, uint64(5000)},
		{"ram init", c.Emulation.RAMInit, "pattern"},
		{"steps per frame clamped", c.Emulation.StepsPerFrame, DefaultStepsPerFrame},
		{"stop on loop kept", c.Emulation.StopOnLoop, true},
		{"trace", c.Debug.Trace, true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestConfig_LoadMalformed(t *testing.T) {
	path := writeConfig(t, "[video\nbackend = ")

	c := NewConfig()
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("LoadFromFile(malformed) = nil, want error")
	}
	if c.IsLoaded() {
		t.Error("IsLoaded() = true after a parse error")
	}
}

func TestConfig_UnknownBackend(t *testing.T) {
	path := writeConfig(t, "[video]\nbackend = \"sdl2\"\n")

	err := NewConfig().LoadFromFile(path)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("LoadFromFile error = %v, want *ConfigError", err)
	}
	if cfgErr.Field != "video.backend" || cfgErr.Value != "sdl2" {
		t.Errorf("ConfigError = %+v", cfgErr)
	}
	if !strings.Contains(err.Error(), "video.backend") {
		t.Errorf("error %q does not name the field", err)
	}
}

func TestConfig_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "coolnes.toml")

	saved := NewConfig()
	saved.Video.Backend = "terminal"
	saved.Emulation.Conformance = true
	saved.Emulation.MaxSteps = 123456
	saved.Debug.StatsviewAddr = "localhost:9999"
	if err := saved.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded := NewConfig()
	if err := loaded.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.Video != saved.Video || loaded.Emulation != saved.Emulation || loaded.Debug != saved.Debug {
		t.Errorf("reloaded config differs:\n got %+v\nwant %+v", loaded, saved)
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	if path := GetDefaultConfigPath(); filepath.Base(path) != ".coolnes.toml" {
		t.Errorf("GetDefaultConfigPath() = %q", path)
	}
}
