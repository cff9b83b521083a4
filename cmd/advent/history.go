package main

import (
	"fmt"

	"advent/internal/store"
	"advent/internal/ui"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists recorded runs
var historyCmd = &cobra.Command{
	Use:   "history [day]",
	Short: "List recorded runs, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	day := 0
	if len(args) == 1 {
		d, err := parseDay(args[0])
		if err != nil {
			return err
		}
		day = d
	}

	ctx, stop := commandContext(cmd)
	defer stop()

	st, err := store.OpenConfig(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.History(ctx, day, historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	rows := make([]ui.HistoryRow, len(runs))
	for i, r := range runs {
		rows[i] = ui.HistoryRow{
			ID:       r.ID,
			Day:      r.Day,
			Part1:    r.Part1,
			Part2:    r.Part2,
			Duration: r.Duration,
			SolvedAt: r.SolvedAt,
			Input:    r.InputSHA256,
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderHistory(rows))
	return nil
}
