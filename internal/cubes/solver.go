package cubes

import (
	"context"
	"fmt"

	"advent/internal/puzzle"
)

// DefaultBag is the bag the elf asks about.
var DefaultBag = Set{Red: 12, Green: 13, Blue: 14}

// Solver answers day 2.
type Solver struct {
	opts puzzle.Options
	bag  Set
}

// New returns a day 2 solver checking games against bag.
func New(opts puzzle.Options, bag Set) *Solver {
	return &Solver{opts: opts, bag: bag}
}

func (s *Solver) Day() int      { return 2 }
func (s *Solver) Title() string { return "Cube Conundrum" }

// Parse reads every non-blank line as a game.
func (s *Solver) Parse(ctx context.Context, input string) ([]Game, error) {
	return puzzle.Map(ctx, puzzle.NonBlankLines(input), s.opts.EffectiveWorkers(), func(l puzzle.Line) (Game, error) {
		g, err := ParseGame(l.Text)
		if err != nil {
			return Game{}, fmt.Errorf("line %d: %w", l.Number, err)
		}
		return g, nil
	})
}

// Solve returns the sum of possible game ids and the sum of minimum bag powers.
func (s *Solver) Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	games, err := s.Parse(ctx, input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	var ids, powers []int64
	for _, g := range games {
		if g.Possible(s.bag) {
			ids = append(ids, g.ID)
		}
		m := g.MinimumBag()
		p, err := puzzle.MulChecked(m.Red, m.Green)
		if err == nil {
			p, err = puzzle.MulChecked(p, m.Blue)
		}
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("game %d: %w", g.ID, err)
		}
		powers = append(powers, p)
	}

	part1, err := puzzle.Sum(ids)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part2, err := puzzle.Sum(powers)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: s.Day(), Part1: part1, Part2: part2}, nil
}
