package astar

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/wayfind/ledger"
	"github.com/katalvlaran/wayfind/nodeid"
	"github.com/katalvlaran/wayfind/pq"
)

// checkEvery is how many frontier pops pass between clock and context checks.
const checkEvery = 64

// frontierItem is what the queue stores: the node and the g-cost it was pushed with.
type frontierItem struct {
	id nodeid.ID
	g  float64
}

// outcome describes one call to runner.advance.
type outcome struct {
	current  nodeid.ID
	popped   bool
	expanded bool
	done     bool
}

// runner holds the mutable state of a single search.
type runner[N comparable] struct {
	ctx  context.Context
	opts Options

	each EachNeighbor[N]
	cost CostFunc[N]
	h    Heuristic[N]

	ids  *nodeid.Registry[N]
	book *ledger.Ledger
	open pq.Queue[frontierItem]

	goal    N
	startID nodeid.ID
	goalID  nodeid.ID

	started time.Time
	debug   Debug[N]
	found   bool
	done    bool
}

// newRunner validates the callbacks, resolves defaults and seeds the search.
func (e *Engine[N]) newRunner(
	ctx context.Context,
	start, goal N,
	each EachNeighbor[N],
	cost CostFunc[N],
	h Heuristic[N],
) (*runner[N], error) {
	if each == nil {
		return nil, ErrNilNeighbors
	}
	if cost == nil {
		fn, ok := euclideanOf(start, math.Inf(1))
		if !ok {
			return nil, ErrNoCostFunc
		}
		cost = fn
	}
	if h == nil {
		fn, ok := euclideanOf(start, 0)
		if !ok {
			return nil, ErrNoHeuristic
		}
		h = fn
	}
	if ctx == nil {
		ctx = context.Background()
	}

	open, err := pq.New[frontierItem](e.opts.Strategy, e.opts.CapacityHint)
	if err != nil {
		return nil, err
	}

	idOpts := []nodeid.Option[N]{nodeid.WithCapacity[N](e.opts.CapacityHint)}
	if e.nodeKey != nil {
		idOpts = append(idOpts, nodeid.WithKey(e.nodeKey))
	}

	r := &runner[N]{
		ctx:     ctx,
		opts:    e.opts,
		each:    each,
		cost:    cost,
		h:       h,
		ids:     nodeid.New(idOpts...),
		book:    ledger.New(e.opts.CapacityHint),
		open:    open,
		goal:    goal,
		started: time.Now(),
	}
	r.init(start)

	return r, nil
}

// init assigns identities to start and goal, seeds the ledger and pushes the
// start node with priority 0.
func (r *runner[N]) init(start N) {
	r.startID = r.ids.IDOf(start)
	r.goalID = r.ids.IDOf(r.goal)

	r.book.Seed(r.startID)
	r.push(0, frontierItem{id: r.startID, g: 0})
	r.consider(start)
}

// advance performs one frontier pop: budget checks, goal test and expansion.
func (r *runner[N]) advance() outcome {
	if r.done {
		return outcome{done: true}
	}
	if reason, stop := r.overBudget(); stop {
		return r.stop(reason)
	}

	item, ok := r.open.Pop()
	if !ok {
		return r.stop(StopExhausted)
	}
	r.debug.Iterations++

	// Lazy decrease-key: an entry pushed before a cheaper route was found is stale.
	if g, _ := r.book.Cost(item.id); item.g > g {
		return outcome{current: item.id, popped: true}
	}

	if item.id == r.goalID {
		r.found = true
		out := r.stop(StopGoal)
		out.current, out.popped = item.id, true

		return out
	}

	r.expand(item)

	return outcome{current: item.id, popped: true, expanded: true}
}

// expand relaxes every neighbor of the popped node.
func (r *runner[N]) expand(item frontierItem) {
	r.debug.Expanded++
	current, _ := r.ids.Node(item.id)

	r.each(current, func(next N) {
		nextID := r.ids.IDOf(next)
		if nextID == item.id {
			return
		}

		step := sanitize(r.cost(current, next))
		if math.IsInf(step, 1) {
			return
		}
		candidate := item.g + step
		if !r.book.Relax(nextID, item.id, candidate) {
			return
		}

		r.push(candidate+sanitize(r.h(next, r.goal)), frontierItem{id: nextID, g: candidate})
		r.consider(next)
	})
}

// push enqueues an entry and tracks the frontier high-water mark.
func (r *runner[N]) push(priority float64, item frontierItem) {
	r.open.Push(priority, item)
	if n := r.open.Len(); n > r.debug.HighWaterMark {
		r.debug.HighWaterMark = n
	}
}

// consider counts a node as considered and optionally records it.
func (r *runner[N]) consider(n N) {
	r.debug.NodesConsidered++
	if r.opts.TrackConsidered {
		r.debug.Considered = append(r.debug.Considered, n)
	}
}

// overBudget checks the iteration cap on every pop, and the context and the
// time budget every checkEvery pops.
func (r *runner[N]) overBudget() (StopReason, bool) {
	if r.opts.MaxIterations > 0 && r.debug.Iterations >= r.opts.MaxIterations {
		return StopIterationBudget, true
	}
	if r.debug.Iterations%checkEvery != 0 {
		return 0, false
	}
	if r.ctx.Err() != nil {
		return StopCanceled, true
	}
	if r.opts.TimeBudget > 0 && time.Since(r.started) >= r.opts.TimeBudget {
		return StopTimeBudget, true
	}

	return 0, false
}

// stop marks the search as finished.
func (r *runner[N]) stop(reason StopReason) outcome {
	r.done = true
	r.debug.Stop = reason

	return outcome{done: true}
}

// finish builds the Result and reports it to the logger and observer.
// It must be called once, after advance reported done.
func (r *runner[N]) finish() Result[N] {
	r.debug.Elapsed = time.Since(r.started)
	res := Result[N]{Debug: r.debug}

	if r.found {
		ids, err := r.book.Path(r.goalID)
		if err == nil {
			res.Found = true
			res.Path = r.ids.Nodes(ids)
			res.TotalCost, _ = r.book.Cost(r.goalID)
			if r.opts.TrackStepCost {
				res.Debug.StepCost, _ = r.book.StepCosts(r.goalID)
			}
		} else if r.opts.Logger != nil {
			r.opts.Logger.LogAttrs(r.ctx, slog.LevelError, "astar: path reconstruction failed",
				slog.String("error", err.Error()))
		}
	}

	r.report(res)

	return res
}

// report logs the search digest and notifies the observer.
func (r *runner[N]) report(res Result[N]) {
	s := Summary{
		Found:           res.Found,
		TotalCost:       res.TotalCost,
		PathLen:         len(res.Path),
		Started:         r.started,
		Elapsed:         res.Debug.Elapsed,
		HighWaterMark:   res.Debug.HighWaterMark,
		NodesConsidered: res.Debug.NodesConsidered,
		Expanded:        res.Debug.Expanded,
		Iterations:      res.Debug.Iterations,
		Stop:            res.Debug.Stop,
		Strategy:        r.opts.Strategy,
	}

	if r.opts.Logger != nil {
		r.opts.Logger.LogAttrs(r.ctx, slog.LevelDebug, "astar: search finished",
			slog.Bool("found", s.Found),
			slog.Float64("cost", s.TotalCost),
			slog.Int("path_len", s.PathLen),
			slog.Int("considered", s.NodesConsidered),
			slog.Int("expanded", s.Expanded),
			slog.Int("high_water", s.HighWaterMark),
			slog.Duration("elapsed", s.Elapsed),
			slog.String("stop", s.Stop.String()),
			slog.String("strategy", s.Strategy.String()),
		)
	}
	if r.opts.Observer != nil {
		r.opts.Observer.ObserveSearch(r.ctx, s)
	}
}
