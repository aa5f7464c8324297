// Package wayfind is an A* pathfinding toolkit for grids and other implicit
// graphs: the caller supplies neighbors, edge costs and a heuristic, and gets
// back the cheapest path with search diagnostics.
//
// What is in the box?
//
//	• astar    : the search engine: options, budgets, stepper, observers
//	• dijkstra : uniform-cost search and single-source distance trees
//	• gridgraph: 2D grid adapter: walls, 4/8 connectivity, grid heuristics
//	• telemetry: slog, Prometheus and OpenTelemetry observers
//	• nodeid   : dense integer identities for caller-owned nodes
//	• pq       : binary-heap and linear-scan priority queues
//	• ledger   : cost-so-far and predecessor bookkeeping, path rebuild
//
// The wayfind command (cmd/wayfind) solves YAML scenarios from the shell.
//
// Quick start:
//
//	gg, _ := gridgraph.FromStrings([]string{
//		"....",
//		".##.",
//		"....",
//	}, gridgraph.DefaultGridOptions())
//
//	res, err := astar.Find(ctx, gg.MustCell(0, 0), gg.MustCell(3, 2),
//		gg.EachNeighbor, gg.Cost, gg.Heuristic())
//	if err != nil {
//		log.Fatal(err) // misconfiguration only
//	}
//	if res.Found {
//		fmt.Println(res.TotalCost, res.Path)
//	}
//
// Searches never mutate caller nodes and keep all state per call, so an
// astar.Engine may be shared across goroutines.
package wayfind
