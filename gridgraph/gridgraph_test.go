package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_CopiesInput ensures later mutation of the source slice is not observed.
func TestNewGridGraph_CopiesInput(t *testing.T) {
	src := [][]int{{1, 1}, {1, 1}}
	gg, err := gridgraph.NewGridGraph(src, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	src[0][0] = 0
	assert.True(t, gg.Walkable(0, 0))
}

func TestFromStrings(t *testing.T) {
	gg, err := gridgraph.FromStrings([]string{
		".#3",
		"0..",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.Equal(t, [][]int{{1, 0, 3}, {0, 1, 1}}, gg.CellValues)

	_, err = gridgraph.FromStrings([]string{"..x"}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrBadGlyph)

	_, err = gridgraph.FromStrings([]string{"...", ".."}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestParseConnectivity(t *testing.T) {
	c, err := gridgraph.ParseConnectivity(4)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn4, c)

	c, err = gridgraph.ParseConnectivity(8)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn8, c)

	c, err = gridgraph.ParseConnectivity(0)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Conn4, c)

	_, err = gridgraph.ParseConnectivity(6)
	assert.Error(t, err)
}

//----------------------------------------------------------------------------//
// Bounds and cells
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 1, 0},
		{1, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

func TestWalkable_Threshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.PassThreshold = 2
	gg, err := gridgraph.NewGridGraph([][]int{{0, 1, 2, 3}}, opts)
	require.NoError(t, err)

	assert.False(t, gg.Walkable(0, 0))
	assert.False(t, gg.Walkable(1, 0))
	assert.True(t, gg.Walkable(2, 0))
	assert.True(t, gg.Walkable(3, 0))
	assert.False(t, gg.Walkable(4, 0))
}

func TestCellAt(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 5}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	c, err := gg.CellAt(1, 0)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{X: 1, Y: 0, Value: 5}, c)
	x, y := c.Position()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, "(1,0)", c.String())

	_, err = gg.CellAt(2, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	assert.Panics(t, func() { gg.MustCell(-1, 0) })
}

func TestCoordinate_RoundTrip(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	x, y := gg.Coordinate(4)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

func neighbors(gg *gridgraph.GridGraph, c gridgraph.Cell) [][2]int {
	var out [][2]int
	gg.EachNeighbor(c, func(n gridgraph.Cell) { out = append(out, [2]int{n.X, n.Y}) })

	return out
}

func TestEachNeighbor_Conn4(t *testing.T) {
	gg, err := gridgraph.FromStrings([]string{
		"...",
		".#.",
		"...",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	// Corner sees two neighbors; the wall in the middle never shows up.
	assert.ElementsMatch(t, [][2]int{{1, 0}, {0, 1}}, neighbors(gg, gg.MustCell(0, 0)))
	assert.ElementsMatch(t, [][2]int{{0, 0}, {2, 0}}, neighbors(gg, gg.MustCell(1, 0)))
}

func TestEachNeighbor_Conn8CornerCutting(t *testing.T) {
	rows := []string{
		"..",
		"#.",
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.FromStrings(rows, opts)
	require.NoError(t, err)

	// (0,0)->(1,1) passes the wall at (0,1): blocked without corner cutting.
	assert.ElementsMatch(t, [][2]int{{1, 0}}, neighbors(gg, gg.MustCell(0, 0)))

	opts.CornerCutting = true
	gg, err = gridgraph.FromStrings(rows, opts)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][2]int{{1, 0}, {1, 1}}, neighbors(gg, gg.MustCell(0, 0)))
}

func TestEachNeighbor_Conn8Open(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.FromStrings([]string{"...", "...", "..."}, opts)
	require.NoError(t, err)

	assert.Len(t, neighbors(gg, gg.MustCell(1, 1)), 8)
	assert.Len(t, gg.NeighborOffsets(), 8)
}

//----------------------------------------------------------------------------//
// Costs and heuristics
//----------------------------------------------------------------------------//

func TestCost(t *testing.T) {
	gg, err := gridgraph.FromStrings([]string{"13", "11"}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	a, b, d := gg.MustCell(0, 0), gg.MustCell(1, 0), gg.MustCell(1, 1)

	assert.Equal(t, 1.0, gg.Cost(a, b))
	assert.InDelta(t, math.Sqrt2, gg.Cost(a, d), 1e-12)

	opts := gridgraph.DefaultGridOptions()
	opts.Weighted = true
	gw, err := gridgraph.FromStrings([]string{"13", "11"}, opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, gw.Cost(gw.MustCell(0, 0), gw.MustCell(1, 0)))
	assert.Equal(t, 1.0, gw.Cost(gw.MustCell(1, 0), gw.MustCell(1, 1)))
}

func TestHeuristics(t *testing.T) {
	a := gridgraph.Cell{X: 0, Y: 0}
	b := gridgraph.Cell{X: 3, Y: 1}

	assert.Equal(t, 4.0, gridgraph.Manhattan(a, b))
	assert.Equal(t, 3.0, gridgraph.Chebyshev(a, b))
	assert.InDelta(t, 3+(math.Sqrt2-1), gridgraph.Octile(a, b), 1e-12)
	assert.Equal(t, 0.0, gridgraph.Octile(b, b))
}

func TestHeuristic_ByConnectivity(t *testing.T) {
	a := gridgraph.Cell{X: 0, Y: 0}
	b := gridgraph.Cell{X: 2, Y: 2}

	gg, err := gridgraph.FromStrings([]string{"."}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 4.0, gg.Heuristic()(a, b))

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err = gridgraph.FromStrings([]string{"."}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Sqrt2, gg.Heuristic()(a, b), 1e-12)
}
