package astar

import "math"

// Positioner is implemented by nodes that live on a 2D plane. Nodes that
// implement it get Euclidean cost and heuristic defaults.
type Positioner interface {
	Position() (x, y float64)
}

// Euclidean returns the straight-line distance between a and b.
// It is admissible for any graph whose edge costs are at least the
// straight-line distance between their endpoints.
func Euclidean[N Positioner](a, b N) float64 {
	ax, ay := a.Position()
	bx, by := b.Position()

	return math.Hypot(ax-bx, ay-by)
}

// Zero is the heuristic that always returns 0. With it, A* expands nodes in
// the same order of cost as Dijkstra's algorithm.
func Zero[N any](_, _ N) float64 { return 0 }

// euclideanOf builds the Euclidean default for a node type known only as N.
// It returns false if sample does not implement Positioner. When N is an
// interface type, a pair where either node lacks a position yields missing
// instead of a distance.
func euclideanOf[N any](sample N, missing float64) (func(a, b N) float64, bool) {
	if _, ok := any(sample).(Positioner); !ok {
		return nil, false
	}

	return func(a, b N) float64 {
		pa, ok := any(a).(Positioner)
		if !ok {
			return missing
		}
		pb, ok := any(b).(Positioner)
		if !ok {
			return missing
		}

		return Euclidean(pa, pb)
	}, true
}

// sanitize clamps negative and NaN values to 0. +Inf is kept.
func sanitize(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}

	return v
}
