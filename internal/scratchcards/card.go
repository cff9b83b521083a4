// Package scratchcards scores piles of scratchcards.
package scratchcards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent/internal/puzzle"
)

// ErrMalformedCard is returned for lines that do not follow
// "Card <id>: <numbers> | <numbers>".
var ErrMalformedCard = errors.New("malformed card")

// Card lists the winning numbers and the numbers the card holder has.
type Card struct {
	ID      int64
	Winning []int64
	Have    []int64
}

// Matches counts the numbers held that are also winning numbers.
func (c Card) Matches() int {
	winning := make(map[int64]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	matches := 0
	for _, n := range c.Have {
		if _, ok := winning[n]; ok {
			matches++
			delete(winning, n)
		}
	}
	return matches
}

// Points is 2^(matches-1), or zero without matches. More than 63 matches
// does not fit in an int64 and returns puzzle.ErrOverflow.
func (c Card) Points() (int64, error) {
	m := c.Matches()
	if m == 0 {
		return 0, nil
	}
	if m-1 >= 63 {
		return 0, fmt.Errorf("%w: card %d scores 2^%d", puzzle.ErrOverflow, c.ID, m-1)
	}
	return int64(1) << (m - 1), nil
}

// ParseCard parses one line of the pile.
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedCard, line)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Card")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing \"Card\" prefix in %q", ErrMalformedCard, line)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return Card{}, fmt.Errorf("%w: bad card id %q", ErrMalformedCard, strings.TrimSpace(idText))
	}

	winningText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: card %d has no '|'", ErrMalformedCard, id)
	}
	winning, err := parseNumbers(winningText)
	if err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}
	have, err := parseNumbers(haveText)
	if err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}
	return Card{ID: id, Winning: winning, Have: have}, nil
}

func parseNumbers(text string) ([]int64, error) {
	fields := strings.Fields(text)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrMalformedCard, f)
		}
		out = append(out, n)
	}
	return out, nil
}
