package astar

import (
	"context"
	"time"

	"github.com/katalvlaran/wayfind/pq"
)

// Summary is the node-type-free digest of a finished search handed to Observers.
type Summary struct {
	Found           bool
	TotalCost       float64
	PathLen         int
	Started         time.Time
	Elapsed         time.Duration
	HighWaterMark   int
	NodesConsidered int
	Expanded        int
	Iterations      int
	Stop            StopReason
	Strategy        pq.Strategy
}

// Observer receives a Summary after every search. Implementations must be
// safe for concurrent use when one Engine serves several goroutines.
type Observer interface {
	ObserveSearch(ctx context.Context, s Summary)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, s Summary)

// ObserveSearch calls f(ctx, s).
func (f ObserverFunc) ObserveSearch(ctx context.Context, s Summary) { f(ctx, s) }
