package main

import (
	"fmt"
	"strings"

	"advent/internal/fetch"
	"advent/internal/puzzle"
	"advent/internal/ui"

	"github.com/spf13/cobra"
)

var puzzleWidth int

// fetchCmd downloads a personal input
var fetchCmd = &cobra.Command{
	Use:   "fetch <day>",
	Short: "Download the personal input for a day into the inputs directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

// puzzleCmd shows a puzzle description
var puzzleCmd = &cobra.Command{
	Use:   "puzzle <day>",
	Short: "Show the puzzle description in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPuzzle,
}

func runFetch(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	ctx, stop := commandContext(cmd)
	defer stop()

	path := puzzle.InputPath(cfg.Inputs.Dir, day)
	input, err := fetch.New(cfg).SaveInput(ctx, day, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved day %d input (%d lines) to %s\n", day, len(puzzle.Lines(input)), path)
	return nil
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	ctx, stop := commandContext(cmd)
	defer stop()

	page, err := fetch.New(cfg).Puzzle(ctx, day)
	if err != nil {
		return err
	}

	md := page.Markdown
	if len(page.Answers) > 0 {
		md += "\n\n---\n\nYour answers: " + strings.Join(page.Answers, ", ")
	}
	out, err := ui.RenderMarkdown(md, puzzleWidth)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
