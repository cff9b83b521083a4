package calibration

import (
	"context"
	"errors"
	"fmt"

	"advent/internal/logging"
	"advent/internal/puzzle"

	"go.uber.org/zap"
)

// Solver answers day 1.
type Solver struct {
	opts puzzle.Options
}

// New returns a day 1 solver.
func New(opts puzzle.Options) *Solver {
	return &Solver{opts: opts}
}

func (s *Solver) Day() int      { return 1 }
func (s *Solver) Title() string { return "Trebuchet?!" }

// Sum adds the calibration value of every non-blank line.
func (s *Solver) Sum(ctx context.Context, input string, spelled bool) (int64, error) {
	lines := puzzle.NonBlankLines(input)
	values, err := puzzle.Map(ctx, lines, s.opts.EffectiveWorkers(), func(l puzzle.Line) (int64, error) {
		v, err := Value(l.Text, spelled)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", l.Number, err)
		}
		return v, nil
	})
	if err != nil {
		return 0, err
	}
	return puzzle.Sum(values)
}

// Solve returns the digit-only sum and the sum with spelled digits.
//
// A line holding only spelled digits is valid for part 2 but not part 1.
// Part 2 is still answered and Part1Err carries the ErrNoDigit.
func (s *Solver) Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	log := logging.FromContext(ctx)

	part2, err := s.Sum(ctx, input, true)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans := puzzle.Answer{Day: s.Day(), Part2: part2}
	ans.Part1, err = s.Sum(ctx, input, false)
	if errors.Is(err, ErrNoDigit) {
		log.Debug("part 1 has no answer", zap.Error(err))
		ans.Part1, ans.Part1Err = 0, err
	} else if err != nil {
		return puzzle.Answer{}, err
	}
	return ans, nil
}
