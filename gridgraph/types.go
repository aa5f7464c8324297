// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/wayfind.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBadGlyph indicates an unknown character in a text grid.
	ErrBadGlyph = errors.New("gridgraph: unknown grid glyph")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// ParseConnectivity maps 4 or 8 to a Connectivity.
func ParseConnectivity(n int) (Connectivity, error) {
	switch n {
	case 0, 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	default:
		return 0, fmt.Errorf("gridgraph: connectivity must be 4 or 8, got %d", n)
	}
}

// Cell represents a single grid cell with its coordinates and stored value.
// Cells are comparable and usable directly as search nodes.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y)
}

// Position implements astar.Positioner.
func (c Cell) Position() (x, y float64) {
	return float64(c.X), float64(c.Y)
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// GridOptions contains tunable parameters for grid traversal.
type GridOptions struct {
	// PassThreshold specifies the minimum cell value considered walkable.
	PassThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Weighted multiplies each step's length by the destination cell value,
	// turning values into terrain costs.
	Weighted bool
	// CornerCutting lets diagonal moves slip between two blocked orthogonal cells.
	CornerCutting bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassThreshold=1 (values ≥1 are walkable), Conn=Conn4, unweighted steps,
// no corner cutting.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built,
// so concurrent searches may share it.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	opts            GridOptions
	neighborOffsets [][2]int
}
