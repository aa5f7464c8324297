// Package astar implements A* best-first search over caller-defined graphs.
//
// What:
//
//   - The graph is never materialized. The caller supplies three callbacks:
//     EachNeighbor (walkable neighbors of a node), CostFunc (edge cost) and
//     Heuristic (estimated remaining cost). Memory stays proportional to the
//     part of the graph the search touches.
//   - Nodes are opaque comparable values. Each search assigns them dense IDs
//     (package nodeid), keeps cost-so-far and history in a ledger (package
//     ledger) and orders the frontier with a priority queue (package pq).
//
// Algorithm:
//
//  1. Assign identities to start and goal.
//  2. Seed cost-so-far[start] = 0 with no predecessor.
//  3. Push start with priority 0.
//  4. Pop the cheapest entry; stop if it is the goal; otherwise, for every
//     neighbor whose candidate cost g(current)+cost(current, neighbor) is
//     strictly lower than its recorded cost (or that has none), record the
//     cost and predecessor and push it with priority g + h(neighbor, goal).
//  5. An empty frontier means the goal is unreachable.
//
// Entries made stale by a later, cheaper route are skipped when popped
// (lazy decrease-key).
//
// Defaults:
//
//   - A nil CostFunc or Heuristic falls back to Euclidean distance, which
//     requires the node type to implement Positioner.
//   - Negative and NaN costs or estimates are clamped to 0. A +Inf edge cost
//     makes the edge impassable.
//
// Results:
//
//   - Result.Found distinguishes a path from "no path". Not finding a path is
//     a normal outcome and never an error; errors only report misconfiguration
//     (ErrNilNeighbors, ErrNoCostFunc, ErrNoHeuristic, ErrOptionViolation).
//   - Debug always carries Elapsed, HighWaterMark, NodesConsidered, Expanded,
//     Iterations and Stop; StepCost and Considered are opt-in.
//
// Budgets:
//
//   - WithMaxIterations, WithTimeBudget and context cancellation end a search
//     early. It then reports Found == false with Debug.Stop explaining why.
//
// Ties:
//
//   - Entries with equal priority are popped in whatever order the queue
//     strategy yields. Both strategies are deterministic, so identical inputs
//     give identical paths, but the two strategies may pick different
//     equal-cost paths.
//
// Concurrency:
//
//   - A search runs synchronously on the caller's goroutine. Engines are
//     immutable and may be shared; per-search state is never shared, so
//     independent searches can run in parallel on a read-only graph.
//
// Example:
//
//	res, err := astar.Find(ctx, start, goal, grid.EachNeighbor, nil, nil)
//	if err != nil {
//	    return err
//	}
//	if !res.Found {
//	    // the agent has no route
//	}
package astar
