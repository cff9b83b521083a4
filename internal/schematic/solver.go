package schematic

import (
	"context"

	"advent/internal/logging"
	"advent/internal/puzzle"

	"go.uber.org/zap"
)

// Solver answers day 3.
type Solver struct {
	opts puzzle.Options
}

// New returns a day 3 solver.
func New(opts puzzle.Options) *Solver {
	return &Solver{opts: opts}
}

func (s *Solver) Day() int      { return 3 }
func (s *Solver) Title() string { return "Gear Ratios" }

// Solve returns the part number sum and the gear ratio sum.
func (s *Solver) Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	scan, err := ScanGrid(ctx, g, s.opts.EffectiveWorkers())
	if err != nil {
		return puzzle.Answer{}, err
	}
	adjacency := scan.Adjacency()

	logging.FromContext(ctx).Debug("schematic scanned",
		zap.Int("rows", g.Height()),
		zap.Int("cols", g.Width()),
		zap.Int("symbols", len(scan.Symbols)),
		zap.Int("tokens", len(scan.Tokens)),
		zap.Int("adjacent_cells", len(adjacency)))

	part1, err := MatchSum(scan.Tokens, adjacency)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part2, err := GearRatioSum(scan)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: s.Day(), Part1: part1, Part2: part2}, nil
}
