package schematic

import (
	"fmt"
	"strconv"
)

// NumberToken is a maximal run of ASCII digits in one row. Start and End
// are inclusive column indexes.
type NumberToken struct {
	Value int64
	Row   int
	Start int
	End   int
}

// Cells returns the positions the token occupies.
func (t NumberToken) Cells() []Position {
	cells := make([]Position, 0, t.End-t.Start+1)
	for x := t.Start; x <= t.End; x++ {
		cells = append(cells, Position{Col: x, Row: t.Row})
	}
	return cells
}

// AdjacentTo reports whether any cell of the token is in set.
func (t NumberToken) AdjacentTo(set AdjacencySet) bool {
	for x := t.Start; x <= t.End; x++ {
		if set.Contains(Position{Col: x, Row: t.Row}) {
			return true
		}
	}
	return false
}

// Touches reports whether p is within one king move of the token.
func (t NumberToken) Touches(p Position) bool {
	return p.Row >= t.Row-1 && p.Row <= t.Row+1 && p.Col >= t.Start-1 && p.Col <= t.End+1
}

// ExtractTokens scans one row left to right.
func ExtractTokens(row string, rowIndex int) ([]NumberToken, error) {
	return extractTokens([]rune(row), rowIndex)
}

func extractTokens(row []rune, y int) ([]NumberToken, error) {
	var tokens []NumberToken
	x := 0
	for x < len(row) {
		if !isDigit(row[x]) {
			x++
			continue
		}
		start := x
		for x < len(row) && isDigit(row[x]) {
			x++
		}
		digits := string(row[start:x])
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrParseOverflow, digits, y+1, start+1)
		}
		tokens = append(tokens, NumberToken{Value: v, Row: y, Start: start, End: x - 1})
	}
	return tokens, nil
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
