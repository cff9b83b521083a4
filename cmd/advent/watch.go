package main

import (
	"context"
	"fmt"
	"time"

	"advent/internal/logging"
	"advent/internal/puzzle"
	"advent/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchDebounce time.Duration

// watchCmd re-solves a day whenever its input changes
var watchCmd = &cobra.Command{
	Use:   "watch <day> [input]",
	Short: "Re-solve a day whenever its input file changes",
	Long: `Solves the day once, then watches the input file and solves again after
every change until interrupted (Ctrl+C).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	ctx, stop := commandContext(cmd)
	defer stop()

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	solver, err := reg.Get(day)
	if err != nil {
		return err
	}

	_, path, err := resolveInput(ctx, day, args[1:])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	log := logging.For(logger, logging.CategoryWatch)

	solveOnce := func(ctx context.Context) {
		input, err := puzzle.ReadInput(path)
		if err != nil {
			fmt.Fprintln(errOut, "Error:", err)
			return
		}
		runCtx, cancel := context.WithTimeout(ctx, runTimeout(cmd))
		defer cancel()
		ans, elapsed, err := solve(runCtx, solver, input)
		if err != nil {
			fmt.Fprintf(errOut, "Error: day %d: %v\n", day, err)
			return
		}
		recordRun(runCtx, ans, input, elapsed)
		if err := printAnswer(out, errOut, solver.Title(), ans, elapsed); err != nil {
			log.Warn("failed to print answer", zap.Error(err))
		}
	}

	w, err := watch.New(path, watchDebounce, solveOnce)
	if err != nil {
		return err
	}

	solveOnce(ctx)
	fmt.Fprintf(errOut, "Watching %s (Ctrl+C to stop)\n", path)
	return w.Run(logging.WithLogger(ctx, logger))
}
