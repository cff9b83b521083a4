package main

import (
	"context"
	"fmt"

	"advent/internal/puzzle"
	"advent/internal/ui"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// allCmd solves every registered day
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every day concurrently and print a table",
	Args:  cobra.NoArgs,
	RunE:  runAll,
}

func runAll(cmd *cobra.Command, args []string) error {
	ctx, stop := commandContext(cmd)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout(cmd))
	defer cancel()

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	solvers := reg.Solvers()
	rows := make([]ui.Row, len(solvers))
	answers := make([]*puzzle.Answer, len(solvers))
	inputs := make([]string, len(solvers))

	// Per-day failures end up in the table, so the group itself never fails.
	var g errgroup.Group
	g.SetLimit(cfg.Execution.Workers)
	for i, s := range solvers {
		g.Go(func() error {
			rows[i] = ui.Row{Day: s.Day(), Title: s.Title()}
			input, _, err := resolveInput(ctx, s.Day(), nil)
			if err != nil {
				rows[i].Err = err
				return nil
			}
			ans, elapsed, err := solve(ctx, s, input)
			rows[i].Duration = elapsed
			if err != nil {
				rows[i].Err = err
				return nil
			}
			rows[i].Part1, rows[i].Part2 = ans.Part1, ans.Part2
			rows[i].Part1Err, rows[i].Part2Err = ans.Part1Err, ans.Part2Err
			answers[i] = &ans
			inputs[i] = input
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, row := range rows {
		if row.Err != nil {
			failed++
			continue
		}
		recordRun(ctx, *answers[i], inputs[i], row.Duration)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderAnswers(rows))
	if failed > 0 {
		return fmt.Errorf("%d of %d days failed", failed, len(rows))
	}
	return nil
}
