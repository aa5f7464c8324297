package astar

import (
	"context"
	"fmt"
)

// Engine binds a validated Options value to a node type. It holds no
// per-search state, so one Engine may run searches from many goroutines
// at once as long as the graph is not mutated during a search.
type Engine[N comparable] struct {
	opts    Options
	nodeKey func(N) string
}

// New validates opts and returns an Engine.
// Returns ErrOptionViolation if any option was invalid.
func New[N comparable](opts ...Option) (*Engine[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	e := &Engine[N]{opts: cfg}
	if cfg.nodeKey != nil {
		fn, ok := cfg.nodeKey.(func(N) string)
		if !ok {
			return nil, fmt.Errorf("%w: node key %T does not match node type", ErrOptionViolation, cfg.nodeKey)
		}
		e.nodeKey = fn
	}

	return e, nil
}

// Options returns a copy of the engine configuration.
func (e *Engine[N]) Options() Options { return e.opts }

// Find searches for the cheapest path from start to goal.
//
// each enumerates walkable neighbors. cost and h may be nil, in which case the
// Euclidean distance between node positions is used (start must implement
// Positioner). If N is an interface type, edges touching a node without a
// position are impassable under the default cost and that node's default
// heuristic is 0. The error is non-nil only for misconfiguration; an unreachable
// goal, an exhausted budget or a canceled ctx all yield Found == false.
//
// Complexity with the heap frontier: O(E log E) time, O(V + E) memory, where
// V and E count the nodes and edges actually touched.
func (e *Engine[N]) Find(
	ctx context.Context,
	start, goal N,
	each EachNeighbor[N],
	cost CostFunc[N],
	h Heuristic[N],
) (Result[N], error) {
	r, err := e.newRunner(ctx, start, goal, each, cost, h)
	if err != nil {
		return Result[N]{}, err
	}
	for !r.advance().done {
	}

	return r.finish(), nil
}

// Find runs a single search with a throwaway Engine built from opts.
func Find[N comparable](
	ctx context.Context,
	start, goal N,
	each EachNeighbor[N],
	cost CostFunc[N],
	h Heuristic[N],
	opts ...Option,
) (Result[N], error) {
	e, err := New[N](opts...)
	if err != nil {
		return Result[N]{}, err
	}

	return e.Find(ctx, start, goal, each, cost, h)
}
