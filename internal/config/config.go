package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all advent configuration.
type Config struct {
	// Puzzle year used when talking to the puzzle site.
	Year int `yaml:"year"`

	// Where day inputs live on disk.
	Inputs InputsConfig `yaml:"inputs"`

	// Puzzle site session (input download, puzzle pages)
	Session SessionConfig `yaml:"session"`

	// Answer history database
	Store StoreConfig `yaml:"store"`

	// Solver execution settings
	Execution ExecutionConfig `yaml:"execution"`

	// Day 2 bag contents
	Cubes CubesConfig `yaml:"cubes"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// InputsConfig locates puzzle inputs.
type InputsConfig struct {
	Dir string `yaml:"dir"`
}

// CubesConfig is the bag the day 2 games are checked against.
type CubesConfig struct {
	Red   int `yaml:"red"`
	Green int `yaml:"green"`
	Blue  int `yaml:"blue"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Year: 2023,

		Inputs: InputsConfig{
			Dir: filepath.Join("data", "input"),
		},

		Session: DefaultSessionConfig(),

		Store: StoreConfig{
			Enabled: true,
			Path:    filepath.Join(".advent", "history.db"),
		},

		Execution: ExecutionConfig{
			Workers: 4,
			Timeout: "1m",
		},

		Cubes: CubesConfig{
			Red:   12,
			Green: 13,
			Blue:  14,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns the config location inside a workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, ".advent", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Missing file: defaults plus environment
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if token := os.Getenv("AOC_SESSION"); token != "" {
		c.Session.Token = token
	}
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		c.Inputs.Dir = dir
	}
	if path := os.Getenv("AOC_DB"); path != "" {
		c.Store.Path = path
	}
	if year := os.Getenv("AOC_YEAR"); year != "" {
		if y, err := strconv.Atoi(year); err == nil {
			c.Year = y
		}
	}
	if level := os.Getenv("AOC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Resolve makes relative paths absolute against the workspace directory.
func (c *Config) Resolve(workspace string) {
	if workspace == "" {
		return
	}
	if c.Inputs.Dir != "" && !filepath.IsAbs(c.Inputs.Dir) {
		c.Inputs.Dir = filepath.Join(workspace, c.Inputs.Dir)
	}
	if c.Store.Path != "" && !filepath.IsAbs(c.Store.Path) {
		c.Store.Path = filepath.Join(workspace, c.Store.Path)
	}
}

// GetExecutionTimeout returns the per-run timeout as a duration.
func (c *Config) GetExecutionTimeout() time.Duration {
	d, err := time.ParseDuration(c.Execution.Timeout)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// GetSessionTimeout returns the HTTP timeout for the puzzle site.
func (c *Config) GetSessionTimeout() time.Duration {
	d, err := time.ParseDuration(c.Session.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// ValidLogLevels lists accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("invalid year %d: puzzles start in 2015", c.Year)
	}
	if c.Execution.Workers < 1 {
		return fmt.Errorf("execution.workers must be at least 1, got %d", c.Execution.Workers)
	}
	if c.Cubes.Red < 0 || c.Cubes.Green < 0 || c.Cubes.Blue < 0 {
		return fmt.Errorf("cube counts must not be negative: %+v", c.Cubes)
	}
	if c.Inputs.Dir == "" {
		return fmt.Errorf("inputs.dir must not be empty")
	}
	if c.Store.Enabled && c.Store.Path == "" {
		return fmt.Errorf("store.path must be set when the store is enabled")
	}
	return c.Logging.Validate()
}
