package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wayfind/dijkstra"
	"github.com/katalvlaran/wayfind/gridgraph"
)

// ExampleDistances counts the cells a unit can reach within three steps.
func ExampleDistances() {
	gg, _ := gridgraph.FromStrings([]string{
		"....",
		".##.",
		"....",
	}, gridgraph.DefaultGridOptions())

	tree, err := dijkstra.Distances(context.Background(), gg.MustCell(0, 0), gg.EachNeighbor, gg.Cost,
		dijkstra.WithMaxDistance(3), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("reachable:", len(tree.Dist))
	path, _ := tree.PathTo(gg.MustCell(3, 0))
	fmt.Println("to (3,0):", path)
	// Output:
	// reachable: 7
	// to (3,0): [(0,0) (1,0) (2,0) (3,0)]
}

// ExampleFind finds the cheapest route when no heuristic is available.
func ExampleFind() {
	fares := map[string]map[string]float64{
		"home":    {"station": 2, "airport": 30},
		"station": {"airport": 12},
	}
	each := func(n string, visit func(string)) {
		for _, to := range []string{"airport", "station"} {
			if _, ok := fares[n][to]; ok {
				visit(to)
			}
		}
	}
	cost := func(a, b string) float64 { return fares[a][b] }

	res, _ := dijkstra.Find(context.Background(), "home", "airport", each, cost)
	fmt.Println(res.Path, res.TotalCost)
	// Output:
	// [home station airport] 14
}
