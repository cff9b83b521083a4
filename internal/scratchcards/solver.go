package scratchcards

import (
	"context"
	"fmt"

	"advent/internal/puzzle"
)

// Solver answers day 4.
type Solver struct {
	opts puzzle.Options
}

// New returns a day 4 solver.
func New(opts puzzle.Options) *Solver {
	return &Solver{opts: opts}
}

func (s *Solver) Day() int      { return 4 }
func (s *Solver) Title() string { return "Scratchcards" }

// Parse reads every non-blank line as a card, in pile order.
func (s *Solver) Parse(ctx context.Context, input string) ([]Card, error) {
	return puzzle.Map(ctx, puzzle.NonBlankLines(input), s.opts.EffectiveWorkers(), func(l puzzle.Line) (Card, error) {
		c, err := ParseCard(l.Text)
		if err != nil {
			return Card{}, fmt.Errorf("line %d: %w", l.Number, err)
		}
		return c, nil
	})
}

// Copies returns how many instances of each card end up in the pile. Every
// card starts with one copy and a card with m matches adds its copies to the
// next m cards. Wins never reach past the last card.
func Copies(cards []Card) ([]int64, error) {
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		end := min(i+c.Matches(), len(cards)-1)
		for j := i + 1; j <= end; j++ {
			n, err := puzzle.AddChecked(copies[j], copies[i])
			if err != nil {
				return nil, fmt.Errorf("card %d copies: %w", cards[j].ID, err)
			}
			copies[j] = n
		}
	}
	return copies, nil
}

// Solve returns the total points and the total number of cards.
func (s *Solver) Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	cards, err := s.Parse(ctx, input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	points := make([]int64, len(cards))
	for i, c := range cards {
		if points[i], err = c.Points(); err != nil {
			return puzzle.Answer{}, err
		}
	}
	part1, err := puzzle.Sum(points)
	if err != nil {
		return puzzle.Answer{}, err
	}
	copies, err := Copies(cards)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part2, err := puzzle.Sum(copies)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Day: s.Day(), Part1: part1, Part2: part2}, nil
}
