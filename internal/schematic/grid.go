package schematic

import (
	"errors"
	"fmt"

	"advent/internal/puzzle"
)

var (
	// ErrMalformedGrid is returned for empty input or rows of unequal length.
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrParseOverflow is returned when a digit run does not fit in an int64.
	ErrParseOverflow = errors.New("number token overflows int64")
)

// Position is a cell address. Col and Row are zero-based.
type Position struct {
	Col int
	Row int
}

// Grid is an immutable rectangular block of characters.
type Grid struct {
	rows  [][]rune
	width int
}

// ParseGrid splits text into rows and checks that the result is rectangular.
// Width is measured in characters, not bytes.
func ParseGrid(text string) (*Grid, error) {
	lines := puzzle.Lines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedGrid)
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}

	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: row 1 is empty", ErrMalformedGrid)
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedGrid, i+1, len(row), width)
		}
	}

	return &Grid{rows: rows, width: width}, nil
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Position) bool {
	return p.Col >= 0 && p.Col < g.width && p.Row >= 0 && p.Row < len(g.rows)
}

// At returns the character at p. p must be inside the grid.
func (g *Grid) At(p Position) rune {
	return g.rows[p.Row][p.Col]
}
