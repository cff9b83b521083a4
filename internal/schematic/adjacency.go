package schematic

// AdjacencySet holds every cell within one king move of a symbol.
type AdjacencySet map[Position]struct{}

// BuildAdjacency marks each symbol and its eight neighbours, dropping cells
// outside [0, maxCol] x [0, maxRow].
func BuildAdjacency(symbols []Position, maxCol, maxRow int) AdjacencySet {
	set := make(AdjacencySet, len(symbols)*9)
	for _, s := range symbols {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				p := Position{Col: s.Col + dx, Row: s.Row + dy}
				if p.Col < 0 || p.Col > maxCol || p.Row < 0 || p.Row > maxRow {
					continue
				}
				set[p] = struct{}{}
			}
		}
	}
	return set
}

// Contains reports membership.
func (s AdjacencySet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}
