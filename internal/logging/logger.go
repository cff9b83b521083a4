// Package logging builds the zap loggers used across advent.
// Each subsystem logs through a named child logger for its Category, and
// loggers travel through context.Context so solvers need no globals.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"advent/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot  Category = "boot"  // Startup, config loading
	CategorySolve Category = "solve" // Solver runs
	CategoryStore Category = "store" // Answer history database
	CategoryFetch Category = "fetch" // Puzzle site requests
	CategoryWatch Category = "watch" // Input file watcher
)

// New builds a logger writing to stderr.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	return NewWithWriter(cfg, verbose, zapcore.Lock(os.Stderr))
}

// NewWithWriter builds a logger writing to w. Verbose forces debug level.
func NewWithWriter(cfg config.LoggingConfig, verbose bool, w io.Writer) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "", "text":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}

// For returns the child logger for a category.
func For(logger *zap.Logger, category Category) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.Named(string(category))
}

type loggerKey struct{}

// WithLogger returns a new context carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext extracts the logger from ctx, or a no-op logger if none was set.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}
