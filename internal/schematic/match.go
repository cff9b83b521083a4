package schematic

import (
	"context"

	"advent/internal/puzzle"
)

// MatchSum adds the value of every token adjacent to set. A token is
// counted once no matter how many of its cells are adjacent.
func MatchSum(tokens []NumberToken, set AdjacencySet) (int64, error) {
	var sum int64
	for _, t := range tokens {
		if !t.AdjacentTo(set) {
			continue
		}
		var err error
		if sum, err = puzzle.AddChecked(sum, t.Value); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// PartNumberSum is the part 1 answer for a schematic.
func PartNumberSum(gridText string) (int64, error) {
	g, err := ParseGrid(gridText)
	if err != nil {
		return 0, err
	}
	scan, err := ScanGrid(context.Background(), g, 1)
	if err != nil {
		return 0, err
	}
	return MatchSum(scan.Tokens, scan.Adjacency())
}

// GearRatioSum adds, for every '*' touching exactly two tokens, the
// product of those tokens.
func GearRatioSum(scan *Scan) (int64, error) {
	byRow := make(map[int][]NumberToken)
	for _, t := range scan.Tokens {
		byRow[t.Row] = append(byRow[t.Row], t)
	}

	var sum int64
	for _, p := range scan.Symbols {
		if scan.Grid.At(p) != '*' {
			continue
		}
		var touching []NumberToken
		for y := p.Row - 1; y <= p.Row+1; y++ {
			for _, t := range byRow[y] {
				if t.Touches(p) {
					touching = append(touching, t)
				}
			}
		}
		if len(touching) != 2 {
			continue
		}
		ratio, err := puzzle.MulChecked(touching[0].Value, touching[1].Value)
		if err != nil {
			return 0, err
		}
		if sum, err = puzzle.AddChecked(sum, ratio); err != nil {
			return 0, err
		}
	}
	return sum, nil
}
