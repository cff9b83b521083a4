package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level,omitempty"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format,omitempty"` // json, text
}

// Validate checks level and format.
func (c LoggingConfig) Validate() error {
	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Level, ValidLogLevels)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.Format)
	}
	return nil
}
