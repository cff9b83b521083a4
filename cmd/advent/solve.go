package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"advent/internal/calibration"
	"advent/internal/config"
	"advent/internal/cubes"
	"advent/internal/fetch"
	"advent/internal/logging"
	"advent/internal/puzzle"
	"advent/internal/schematic"
	"advent/internal/scratchcards"
	"advent/internal/store"
	"advent/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	partFlag   int
	prettyFlag bool
)

// solveCmd solves a day given by number
var solveCmd = &cobra.Command{
	Use:   "solve <day> [input]",
	Short: "Solve a day by number",
	Long: `Solves one day and prints part 1 and part 2, one per line.

Example:
  advent solve 3 data/input/03.txt
  advent solve 3 --part 2`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDay(args[0])
		if err != nil {
			return err
		}
		return runDay(cmd, day, args[1:])
	},
}

// buildRegistry wires every solver with the configured options.
func buildRegistry(c *config.Config) (*puzzle.Registry, error) {
	opts := puzzle.Options{Workers: c.Execution.Workers}
	bag := cubes.Set{Red: int64(c.Cubes.Red), Green: int64(c.Cubes.Green), Blue: int64(c.Cubes.Blue)}
	return puzzle.NewRegistry(
		calibration.New(opts),
		cubes.New(opts, bag),
		schematic.New(opts),
		scratchcards.New(opts),
	)
}

// dayCommands creates day1..dayN, one per registered solver.
func dayCommands() []*cobra.Command {
	reg, err := buildRegistry(config.DefaultConfig())
	if err != nil {
		panic(err)
	}

	var cmds []*cobra.Command
	for _, s := range reg.Solvers() {
		day := s.Day()
		cmd := &cobra.Command{
			Use:   fmt.Sprintf("day%d [input]", day),
			Short: fmt.Sprintf("Day %d: %s", day, s.Title()),
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDay(cmd, day, args)
			},
		}
		cmd.Flags().IntVar(&partFlag, "part", 0, "Print only part 1 or 2")
		cmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Render a styled table")
		cmds = append(cmds, cmd)
	}
	return cmds
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 25 {
		return 0, fmt.Errorf("invalid day %q: want 1-25", s)
	}
	return day, nil
}

// runDay solves one day and prints the result.
func runDay(cmd *cobra.Command, day int, args []string) error {
	if partFlag < 0 || partFlag > 2 {
		return fmt.Errorf("--part must be 1 or 2, got %d", partFlag)
	}

	ctx, stop := commandContext(cmd)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout(cmd))
	defer cancel()

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	solver, err := reg.Get(day)
	if err != nil {
		return err
	}

	input, _, err := resolveInput(ctx, day, args)
	if err != nil {
		return err
	}

	ans, elapsed, err := solve(ctx, solver, input)
	if err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}
	recordRun(ctx, ans, input, elapsed)

	return printAnswer(cmd.OutOrStdout(), cmd.ErrOrStderr(), solver.Title(), ans, elapsed)
}

func solve(ctx context.Context, s puzzle.Solver, input string) (puzzle.Answer, time.Duration, error) {
	log := logging.For(logger, logging.CategorySolve)
	start := time.Now()
	ans, err := s.Solve(logging.WithLogger(ctx, log), input)
	elapsed := time.Since(start)
	if err != nil {
		log.Debug("solve failed", zap.Int("day", s.Day()), zap.Error(err))
		return puzzle.Answer{}, elapsed, err
	}
	log.Debug("solved",
		zap.Int("day", s.Day()),
		zap.Int64("part1", ans.Part1),
		zap.Int64("part2", ans.Part2),
		zap.Duration("elapsed", elapsed))
	return ans, elapsed, nil
}

// printAnswer writes the answer to w. A part without an answer prints as
// "-" with its reason on errOut, or fails when it is the part asked for.
func printAnswer(w, errOut io.Writer, title string, ans puzzle.Answer, elapsed time.Duration) error {
	if prettyFlag {
		_, err := fmt.Fprintln(w, ui.RenderAnswers([]ui.Row{{
			Day:      ans.Day,
			Title:    title,
			Part1:    ans.Part1,
			Part2:    ans.Part2,
			Part1Err: ans.Part1Err,
			Part2Err: ans.Part2Err,
			Duration: elapsed,
		}}))
		return err
	}
	if partFlag != 0 {
		if err := ans.Err(partFlag); err != nil {
			return fmt.Errorf("day %d part %d: %w", ans.Day, partFlag, err)
		}
		_, err := fmt.Fprintln(w, ans.Part(partFlag))
		return err
	}
	for part := 1; part <= 2; part++ {
		if err := ans.Err(part); err != nil {
			fmt.Fprintf(errOut, "day %d part %d: %v\n", ans.Day, part, err)
			if _, err := fmt.Fprintln(w, "-"); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, ans.Part(part)); err != nil {
			return err
		}
	}
	return nil
}

// resolveInput returns the input text and where it came from: the explicit
// path, the inputs directory, or a download cached into the inputs directory.
func resolveInput(ctx context.Context, day int, args []string) (string, string, error) {
	if len(args) > 0 && args[0] != "" {
		input, err := puzzle.ReadInput(args[0])
		return input, args[0], err
	}

	path := puzzle.InputPath(cfg.Inputs.Dir, day)
	input, err := puzzle.ReadInput(path)
	if err == nil {
		return input, path, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", "", err
	}
	if !cfg.Session.HasToken() {
		return "", "", fmt.Errorf("no input for day %d at %s: %w", day, path, fetch.ErrNoSession)
	}

	logging.For(logger, logging.CategoryFetch).Info("downloading input",
		zap.Int("day", day), zap.String("path", path))
	input, err = fetch.New(cfg).SaveInput(ctx, day, path)
	if err != nil {
		return "", "", fmt.Errorf("failed to download input for day %d: %w", day, err)
	}
	return input, path, nil
}

// recordRun stores a successful run. Store failures are logged, not returned.
func recordRun(ctx context.Context, ans puzzle.Answer, input string, elapsed time.Duration) {
	log := logging.For(logger, logging.CategoryStore)

	st, err := store.OpenConfig(cfg.Store)
	if errors.Is(err, store.ErrDisabled) {
		return
	}
	if err != nil {
		log.Warn("history unavailable", zap.Error(err))
		return
	}
	defer st.Close()

	_, err = st.Record(logging.WithLogger(ctx, logger), store.Run{
		Day:         ans.Day,
		Part1:       ans.Part1,
		Part2:       ans.Part2,
		InputSHA256: store.Digest(input),
		Duration:    elapsed,
	})
	if err != nil {
		log.Warn("failed to record run", zap.Error(err))
	}
}
