// Package gridgraph exposes a 2D grid of integer cells to the search engine
// as an implicit graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable PassThreshold.
//     Cells with value ≥ PassThreshold are walkable; the rest are walls.
//   - EachNeighbor enumerates walkable neighbors under Conn4 or Conn8
//     connectivity, skipping walls and out-of-bounds slots.
//   - Cost, Manhattan, Octile and Chebyshev provide edge costs and admissible
//     heuristics matching the connectivity.
//   - ConnectedComponents groups walkable cells into regions, which tells
//     whether a goal is reachable before searching.
//
// Why:
//
//   - Game maps: move agents across tiles while avoiding obstacles.
//   - The engine stays geometry-agnostic; this package is the only place that
//     knows about rows, columns and diagonals.
//
// Complexity:
//
//   - EachNeighbor:        O(d) per call, d = 4 or 8.
//   - ConnectedComponents: O(W×H×d) time, O(W×H) memory.
//
// Options:
//
//   - GridOptions.PassThreshold: minimum value of a walkable cell (default 1).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.Weighted: scale step cost by the destination cell value.
//   - GridOptions.CornerCutting: allow diagonal moves past blocked corners.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrBadGlyph: FromStrings met a character it cannot map.
package gridgraph
