package gridgraph

import (
	"fmt"
	"math"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Orthogonal offsets first so Conn8 can check corners by index.
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = append(offsets, [2]int{1, -1}, [2]int{1, 1}, [2]int{-1, 1}, [2]int{-1, -1})
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		opts:            opts,
		neighborOffsets: offsets,
	}, nil
}

// FromStrings builds a grid from text rows: '#' is a wall (0), '.' is open
// floor (1) and the digits '0'..'9' set the cell value directly.
func FromStrings(rows []string, opts GridOptions) (*GridGraph, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for x, r := range row {
			switch {
			case r == '#':
				values[y] = append(values[y], 0)
			case r == '.':
				values[y] = append(values[y], 1)
			case r >= '0' && r <= '9':
				values[y] = append(values[y], int(r-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, r, x, y)
			}
		}
	}

	return NewGridGraph(values, opts)
}

// Options returns the options the grid was built with.
func (gg *GridGraph) Options() GridOptions { return gg.opts }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.opts.PassThreshold
}

// CellAt returns the cell at (x,y), or ErrOutOfBounds.
func (gg *GridGraph) CellAt(x, y int) (Cell, error) {
	if !gg.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}

	return gg.cell(x, y), nil
}

// MustCell is CellAt for coordinates known to be valid; it panics otherwise.
func (gg *GridGraph) MustCell(x, y int) Cell {
	c, err := gg.CellAt(x, y)
	if err != nil {
		panic(err)
	}

	return c
}

// NeighborOffsets returns the precomputed neighbor offsets slice:
// orthogonal offsets first, then diagonals under Conn8.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// EachNeighbor calls visit for every walkable neighbor of c. Walls and
// off-grid slots are skipped. Under Conn8, a diagonal step past a blocked
// orthogonal cell is skipped unless CornerCutting is set.
// Its signature matches astar.EachNeighbor[Cell].
func (gg *GridGraph) EachNeighbor(c Cell, visit func(Cell)) {
	for i, d := range gg.neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !gg.Walkable(nx, ny) {
			continue
		}
		if i >= 4 && !gg.opts.CornerCutting && (!gg.Walkable(c.X+d[0], c.Y) || !gg.Walkable(c.X, c.Y+d[1])) {
			continue
		}
		visit(gg.cell(nx, ny))
	}
}

// Cost returns the cost of stepping from a to b: the Euclidean step length
// (1 or √2), multiplied by b's value when the grid is Weighted.
func (gg *GridGraph) Cost(a, b Cell) float64 {
	step := math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
	if gg.opts.Weighted {
		return step * float64(b.Value)
	}

	return step
}

// Heuristic returns the tightest admissible heuristic for the grid's
// connectivity: Manhattan for Conn4, Octile for Conn8. Weighted grids keep the
// same estimate, which stays admissible while walkable values are ≥ 1.
func (gg *GridGraph) Heuristic() func(a, b Cell) float64 {
	if gg.opts.Conn == Conn8 {
		return Octile
	}

	return Manhattan
}

func (gg *GridGraph) cell(x, y int) Cell {
	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
