// Package dijkstra provides uniform-cost search over implicit graphs.
//
// Overview:
//
//   - Find is A* with the zero heuristic: it returns the same optimal path
//     cost as astar.Find with any admissible heuristic, and serves as the
//     reference implementation for it.
//   - Distances computes the cheapest cost from one source to every reachable
//     node, optionally with predecessors for path recovery. Grid tools use it
//     to answer "what can this unit reach within N steps".
//
// When to use:
//
//   - No useful heuristic exists for the node type.
//   - A whole reachability map is needed rather than one path.
//
// Key features:
//
//   - ReturnPath: keep a predecessor map so Tree.PathTo can rebuild paths.
//   - MaxDistance: stop exploring once the next node lies beyond the cap.
//   - InfEdgeThreshold: treat any edge with cost ≥ threshold as impassable.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), V and E counting reachable nodes and edges.
//   - Space: O(V + E); lazy decrease-key keeps up to E heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilNeighbors, ErrNilCost: missing callbacks.
//   - ErrNegativeWeight: a negative edge cost was met during exploration.
//   - ErrBadMaxDistance, ErrBadInfThreshold: raised via panic by the
//     option constructors, since they signal programmer error.
//
// Example:
//
//	tree, err := dijkstra.Distances(ctx, gg.MustCell(0, 0), gg.EachNeighbor, gg.Cost,
//	    dijkstra.WithMaxDistance(6), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(tree.Dist), "cells within 6 steps")
package dijkstra
