// Package cubes plays the cube conundrum: games of handfuls drawn from a bag
// of red, green and blue cubes.
package cubes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedGame is returned for lines that do not follow
// "Game <id>: <n> <colour>, ...; ...".
var ErrMalformedGame = errors.New("malformed game")

// Set counts cubes by colour. It is used both for a single handful and
// for the contents of a bag.
type Set struct {
	Red   int64
	Green int64
	Blue  int64
}

// Fits reports whether every colour of s is available in bag.
func (s Set) Fits(bag Set) bool {
	return s.Red <= bag.Red && s.Green <= bag.Green && s.Blue <= bag.Blue
}

// Power is red * green * blue.
func (s Set) Power() int64 {
	return s.Red * s.Green * s.Blue
}

// Game is one line of the record.
type Game struct {
	ID    int64
	Draws []Set
}

// Possible reports whether all draws could have come from bag.
func (g Game) Possible(bag Set) bool {
	for _, d := range g.Draws {
		if !d.Fits(bag) {
			return false
		}
	}
	return true
}

// MinimumBag is the smallest bag that makes the game possible.
func (g Game) MinimumBag() Set {
	var m Set
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// ParseGame parses a single record line.
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedGame, line)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing \"Game\" prefix in %q", ErrMalformedGame, line)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return Game{}, fmt.Errorf("%w: bad game id %q", ErrMalformedGame, idText)
	}

	game := Game{ID: id}
	for _, handful := range strings.Split(body, ";") {
		draw, err := parseSet(handful)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		game.Draws = append(game.Draws, draw)
	}
	return game, nil
}

func parseSet(text string) (Set, error) {
	var s Set
	for _, part := range strings.Split(text, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return Set{}, fmt.Errorf("%w: bad draw %q", ErrMalformedGame, strings.TrimSpace(part))
		}
		n, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil || n < 0 {
			return Set{}, fmt.Errorf("%w: bad count %q", ErrMalformedGame, fields[0])
		}
		switch fields[1] {
		case "red":
			s.Red = n
		case "green":
			s.Green = n
		case "blue":
			s.Blue = n
		default:
			return Set{}, fmt.Errorf("%w: unknown colour %q", ErrMalformedGame, fields[1])
		}
	}
	return s, nil
}
