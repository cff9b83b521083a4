package schematic

import "unicode"

// IsSymbol reports whether c marks a part. Periods are empty cells.
func IsSymbol(c rune) bool {
	return c != '.' && !isAlphanumeric(c)
}

// isAlphanumeric follows the Unicode Alphabetic property, which adds the
// Other_Alphabetic marks (vowel signs and the like) to the letters.
func isAlphanumeric(c rune) bool {
	return unicode.IsLetter(c) || unicode.Is(unicode.Other_Alphabetic, c) || unicode.IsNumber(c)
}

// Symbols returns every symbol position in row-major order.
func (g *Grid) Symbols() []Position {
	var out []Position
	for y, row := range g.rows {
		out = append(out, symbolsInRow(row, y)...)
	}
	return out
}

func symbolsInRow(row []rune, y int) []Position {
	var out []Position
	for x, c := range row {
		if IsSymbol(c) {
			out = append(out, Position{Col: x, Row: y})
		}
	}
	return out
}
