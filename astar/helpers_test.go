package astar_test

import (
	"maps"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/gridgraph"
)

// grid builds a GridGraph from text rows, failing the test on error.
func grid(t testing.TB, conn gridgraph.Connectivity, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = conn
	gg, err := gridgraph.FromStrings(rows, opts)
	require.NoError(t, err)

	return gg
}

// randomWeighted builds an n×n weighted grid with values in 1..9 and about
// a fifth of the cells walled off. Start and goal corners are kept open.
func randomWeighted(t testing.TB, n int, seed int64, conn gridgraph.Connectivity) *gridgraph.GridGraph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			if rng.Intn(5) > 0 {
				values[y][x] = 1 + rng.Intn(9)
			}
		}
	}
	values[0][0], values[n-1][n-1] = 1, 1

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = conn
	opts.Weighted = true
	gg, err := gridgraph.NewGridGraph(values, opts)
	require.NoError(t, err)

	return gg
}

// bfsDistance is an independent unit-cost shortest path oracle for Conn4 grids.
func bfsDistance(gg *gridgraph.GridGraph, from, to gridgraph.Cell) (int, bool) {
	dist := map[gridgraph.Cell]int{from: 0}
	queue := []gridgraph.Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == to {
			return dist[c], true
		}
		gg.EachNeighbor(c, func(n gridgraph.Cell) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[c] + 1
				queue = append(queue, n)
			}
		})
	}

	return 0, false
}

// edges is a small explicit digraph over string nodes.
type edges map[string]map[string]float64

func (g edges) each(n string, visit func(string)) {
	for _, to := range sortedKeys(g[n]) {
		visit(to)
	}
}

func (g edges) cost(a, b string) float64 { return g[a][b] }

func sortedKeys(m map[string]float64) []string {
	return slices.Sorted(maps.Keys(m))
}
