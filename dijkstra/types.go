package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilNeighbors indicates that no neighbor enumerator was supplied.
	ErrNilNeighbors = errors.New("dijkstra: neighbor enumerator is nil")

	// ErrNilCost indicates that no edge cost function was supplied.
	ErrNilCost = errors.New("dijkstra: cost function is nil")

	// ErrNegativeWeight indicates that a negative edge cost was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadWeight indicates that an edge cost was NaN.
	ErrBadWeight = errors.New("dijkstra: edge weight is NaN")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures Distances.
//
// ReturnPath       – if true, Tree.Prev is filled; otherwise it is nil.
// MaxDistance      – nodes farther than this are not settled. Must be ≥ 0.
// InfEdgeThreshold – edges with cost ≥ this threshold are skipped. Must be > 0.
// CapacityHint     – expected number of reachable nodes; 0 means no hint.
type Options struct {
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	CapacityHint     int
}

// Option represents a functional option for configuring Distances.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not settled.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which edges are
// non-traversable. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithCapacityHint pre-sizes internal storage.
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.CapacityHint = n
		}
	}
}

// DefaultOptions returns the defaults:
//   - ReturnPath:       false
//   - MaxDistance:      +Inf (explore everything reachable)
//   - InfEdgeThreshold: +Inf (only +Inf edges are impassable)
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Tree is a shortest-path tree rooted at Source.
type Tree[N comparable] struct {
	Source N
	// Dist maps every settled node to its cheapest cost from Source.
	Dist map[N]float64
	// Prev maps every settled node except Source to its predecessor
	// (Options.ReturnPath only).
	Prev map[N]N
}
