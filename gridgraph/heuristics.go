package gridgraph

import "math"

// Manhattan is |dx| + |dy|. Admissible on unit-cost Conn4 grids.
func Manhattan(a, b Cell) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Octile is the exact unobstructed distance on a Conn8 grid with diagonal
// cost √2: max(dx,dy) + (√2-1)·min(dx,dy).
func Octile(a, b Cell) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))

	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// Chebyshev is max(|dx|, |dy|). Admissible on Conn8 grids for any diagonal cost ≥ 1.
func Chebyshev(a, b Cell) float64 {
	return math.Max(math.Abs(float64(a.X-b.X)), math.Abs(float64(a.Y-b.Y)))
}
