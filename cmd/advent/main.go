package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"advent/internal/config"
	"advent/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	timeout    time.Duration

	// Loaded by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent of Code 2023 solvers",
	Long: `advent solves Advent of Code puzzles from local or downloaded inputs.

Inputs are read from the path given on the command line, then from
<inputs.dir>/<DD>.txt, and finally downloaded from the puzzle site when a
session token is configured (AOC_SESSION).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvironment()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadEnvironment resolves the workspace, loads config and builds the logger.
func loadEnvironment() error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}
	workspace = ws

	path := configPath
	if path == "" {
		path = config.DefaultPath(ws)
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	loaded.Resolve(ws)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg = loaded

	logger, err = logging.New(cfg.Logging, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logging.For(logger, logging.CategoryBoot).Debug("config loaded",
		zap.String("path", path),
		zap.String("workspace", ws),
		zap.Int("year", cfg.Year),
		zap.String("inputs", cfg.Inputs.Dir))
	return nil
}

func resolveWorkspace() (string, error) {
	if workspace != "" {
		return workspace, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine workspace: %w", err)
	}
	return wd, nil
}

// commandContext returns a context that carries the logger and is cancelled
// on SIGINT/SIGTERM.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	return logging.WithLogger(ctx, logger), stop
}

// runTimeout is --timeout when given, otherwise execution.timeout.
func runTimeout(cmd *cobra.Command) time.Duration {
	if cmd.Flags().Changed("timeout") && timeout > 0 {
		return timeout
	}
	if cfg == nil {
		return time.Minute
	}
	return cfg.GetExecutionTimeout()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.advent/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Solve timeout")

	// Per-day commands
	for _, cmd := range dayCommands() {
		rootCmd.AddCommand(cmd)
	}

	solveCmd.Flags().IntVar(&partFlag, "part", 0, "Print only part 1 or 2")
	solveCmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Render a styled table")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum runs to list (0 = all)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 250*time.Millisecond, "Quiet period before re-solving")
	puzzleCmd.Flags().IntVar(&puzzleWidth, "width", 80, "Word wrap width")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(puzzleCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
