package schematic

import (
	"context"

	"advent/internal/puzzle"
)

// Scan is the per-grid result of locating symbols and number tokens.
type Scan struct {
	Grid    *Grid
	Symbols []Position
	Tokens  []NumberToken
}

type rowScan struct {
	symbols []Position
	tokens  []NumberToken
}

// ScanGrid locates symbols and tokens row by row on up to workers
// goroutines and concatenates the results in row order.
func ScanGrid(ctx context.Context, g *Grid, workers int) (*Scan, error) {
	indexes := make([]int, g.Height())
	for i := range indexes {
		indexes[i] = i
	}

	rows, err := puzzle.Map(ctx, indexes, workers, func(y int) (rowScan, error) {
		tokens, err := extractTokens(g.rows[y], y)
		if err != nil {
			return rowScan{}, err
		}
		return rowScan{symbols: symbolsInRow(g.rows[y], y), tokens: tokens}, nil
	})
	if err != nil {
		return nil, err
	}

	scan := &Scan{Grid: g}
	for _, r := range rows {
		scan.Symbols = append(scan.Symbols, r.symbols...)
		scan.Tokens = append(scan.Tokens, r.tokens...)
	}
	return scan, nil
}

// Adjacency builds the adjacency set for the scanned symbols.
func (s *Scan) Adjacency() AdjacencySet {
	return BuildAdjacency(s.Symbols, s.Grid.Width()-1, s.Grid.Height()-1)
}
