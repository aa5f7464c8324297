package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells,
// according to the grid's connectivity (including its corner-cutting rule).
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) || seen[gg.index(x, y)] {
				continue
			}
			comps = append(comps, gg.flood(x, y, seen))
		}
	}

	return comps
}

// ComponentOf returns the component containing (x,y), or nil for a wall.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (gg *GridGraph) ComponentOf(x, y int) ([]int, error) {
	if !gg.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	if !gg.Walkable(x, y) {
		return nil, nil
	}

	return gg.flood(x, y, make([]bool, gg.Width*gg.Height)), nil
}

// flood collects the component of (x,y) by BFS, marking seen.
func (gg *GridGraph) flood(x, y int, seen []bool) []int {
	i0 := gg.index(x, y)
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		gg.EachNeighbor(gg.cell(ux, uy), func(c Cell) {
			vi := gg.index(c.X, c.Y)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		})
	}

	return queue
}
