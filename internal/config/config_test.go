package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Year != 2023 {
		t.Errorf("expected Year=2023, got %d", cfg.Year)
	}
	if cfg.Cubes != (CubesConfig{Red: 12, Green: 13, Blue: 14}) {
		t.Errorf("unexpected default bag %+v", cfg.Cubes)
	}
	if cfg.Execution.Workers != 4 {
		t.Errorf("expected Workers=4, got %d", cfg.Execution.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("AOC_SESSION", "")
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_DB", "")
	t.Setenv("AOC_YEAR", "")
	t.Setenv("AOC_LOG_LEVEL", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".advent", "config.yaml")

	cfg := DefaultConfig()
	cfg.Year = 2022
	cfg.Cubes.Red = 20
	cfg.Execution.Workers = 2

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Year != 2022 {
		t.Errorf("expected Year=2022, got %d", loaded.Year)
	}
	if loaded.Cubes.Red != 20 {
		t.Errorf("expected Cubes.Red=20, got %d", loaded.Cubes.Red)
	}
	if loaded.Execution.Workers != 2 {
		t.Errorf("expected Workers=2, got %d", loaded.Execution.Workers)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("AOC_YEAR", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Year != 2023 {
		t.Errorf("expected default year, got %d", cfg.Year)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("year: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cubes:\n  red: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cubes.Red != 1 || cfg.Cubes.Green != 13 {
		t.Errorf("unexpected cubes %+v", cfg.Cubes)
	}
	if cfg.Inputs.Dir != filepath.Join("data", "input") {
		t.Errorf("inputs dir default lost: %q", cfg.Inputs.Dir)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"year", func(c *Config) { c.Year = 2014 }},
		{"workers", func(c *Config) { c.Execution.Workers = 0 }},
		{"cubes", func(c *Config) { c.Cubes.Blue = -1 }},
		{"inputs", func(c *Config) { c.Inputs.Dir = "" }},
		{"store path", func(c *Config) { c.Store.Path = "" }},
		{"log level", func(c *Config) { c.Logging.Level = "trace" }},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Store.Enabled = false
	cfg.Store.Path = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled store should not need a path: %v", err)
	}
}

func TestConfig_Helpers(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.GetExecutionTimeout(); got != time.Minute {
		t.Errorf("GetExecutionTimeout = %v, want 1m", got)
	}
	cfg.Execution.Timeout = "garbage"
	if got := cfg.GetExecutionTimeout(); got != time.Minute {
		t.Errorf("GetExecutionTimeout fallback = %v, want 1m", got)
	}
	if got := cfg.GetSessionTimeout(); got != 30*time.Second {
		t.Errorf("GetSessionTimeout = %v, want 30s", got)
	}
	if cfg.Session.HasToken() {
		t.Error("default session should have no token")
	}

	ws := t.TempDir()
	cfg.Resolve(ws)
	if cfg.Inputs.Dir != filepath.Join(ws, "data", "input") {
		t.Errorf("Resolve inputs = %q", cfg.Inputs.Dir)
	}
	if cfg.Store.Path != filepath.Join(ws, ".advent", "history.db") {
		t.Errorf("Resolve store = %q", cfg.Store.Path)
	}
	if DefaultPath(ws) != filepath.Join(ws, ".advent", "config.yaml") {
		t.Errorf("DefaultPath = %q", DefaultPath(ws))
	}
}
