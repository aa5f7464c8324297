// Package astar defines the call contract, options and result types of the
// A* search engine.
package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/wayfind/pq"
)

// Sentinel errors. They report misconfiguration only; an unreachable goal is
// a normal Result with Found == false, never an error.
var (
	// ErrNilNeighbors indicates that no neighbor enumerator was supplied.
	ErrNilNeighbors = errors.New("astar: neighbor enumerator is nil")

	// ErrNoCostFunc indicates a nil cost function for a node type that does not
	// implement Positioner, so the Euclidean default cannot apply.
	ErrNoCostFunc = errors.New("astar: nil cost function and node has no position")

	// ErrNoHeuristic indicates a nil heuristic for a node type that does not
	// implement Positioner, so the Euclidean default cannot apply.
	ErrNoHeuristic = errors.New("astar: nil heuristic and node has no position")

	// ErrOptionViolation is returned by New when an Option received an invalid value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// EachNeighbor calls visit once per walkable neighbor of n. Blocked or absent
// neighbor slots are simply not visited.
type EachNeighbor[N any] func(n N, visit func(N))

// CostFunc returns the cost of the edge from a to b. Negative and NaN values
// are clamped to 0; +Inf marks the edge as impassable.
type CostFunc[N any] func(a, b N) float64

// Heuristic estimates the remaining cost from n to goal. It must be
// non-negative and, for optimal paths, must never overestimate (admissible).
// Admissibility is not verified: an overestimating heuristic yields a valid
// but possibly more expensive path. Negative and NaN values are clamped to 0.
type Heuristic[N any] func(n, goal N) float64

// StopReason tells why a search stopped.
type StopReason int

const (
	// StopGoal means the goal was popped from the frontier.
	StopGoal StopReason = iota
	// StopExhausted means the frontier ran empty before reaching the goal.
	StopExhausted
	// StopIterationBudget means Options.MaxIterations frontier pops were used up.
	StopIterationBudget
	// StopTimeBudget means Options.TimeBudget elapsed.
	StopTimeBudget
	// StopCanceled means the context was canceled or its deadline passed.
	StopCanceled
)

// String returns a short lower-case name, suitable for labels.
func (s StopReason) String() string {
	switch s {
	case StopGoal:
		return "goal"
	case StopExhausted:
		return "exhausted"
	case StopIterationBudget:
		return "iteration_budget"
	case StopTimeBudget:
		return "time_budget"
	case StopCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("StopReason(%d)", int(s))
	}
}

// Debug carries diagnostics collected during one search.
type Debug[N any] struct {
	// Elapsed is the wall time spent inside the search.
	Elapsed time.Duration
	// HighWaterMark is the largest frontier size observed, sampled after each
	// push, so it is the true maximum.
	HighWaterMark int
	// NodesConsidered counts the start node plus every successful relaxation.
	NodesConsidered int
	// Expanded counts nodes whose neighbors were enumerated.
	Expanded int
	// Iterations counts frontier pops, stale entries included.
	Iterations int
	// StepCost holds the cumulative cost at each path step
	// (Options.TrackStepCost, found results only).
	StepCost []float64
	// Considered lists the start node and every relaxed node in relaxation
	// order; a node appears again each time a cheaper route to it is found
	// (Options.TrackConsidered only).
	Considered []N
	// Stop tells why the search ended.
	Stop StopReason
}

// Result is the outcome of one search. When Found is false, Path is nil and
// TotalCost is 0; Debug is always populated.
type Result[N any] struct {
	Found     bool
	Path      []N
	TotalCost float64
	Debug     Debug[N]
}

// Options configures an Engine.
type Options struct {
	// Strategy selects the frontier queue. Default pq.StrategyHeap.
	Strategy pq.Strategy

	// TrackStepCost fills Debug.StepCost on found results.
	TrackStepCost bool

	// TrackConsidered fills Debug.Considered. Costs memory proportional to the
	// number of relaxations.
	TrackConsidered bool

	// MaxIterations caps frontier pops; 0 means no cap.
	MaxIterations int

	// TimeBudget caps wall time per search; 0 means no cap.
	TimeBudget time.Duration

	// CapacityHint pre-sizes per-search storage; 0 means no hint.
	CapacityHint int

	// Logger receives one Debug record per finished search.
	Logger *slog.Logger

	// Observer, if non-nil, is notified once per finished search.
	Observer Observer

	// nodeKey holds a func(N) string set by WithNodeKey; checked in New.
	nodeKey any

	// err records the first invalid option.
	err error
}

// Option is a functional option for New and Find.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - heap frontier
//   - no step-cost or considered tracking
//   - no iteration or time budget
//   - a logger that discards output, no observer
func DefaultOptions() Options {
	return Options{
		Strategy: pq.StrategyHeap,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// WithQueueStrategy selects the frontier queue implementation.
func WithQueueStrategy(s pq.Strategy) Option {
	return func(o *Options) {
		if s != pq.StrategyHeap && s != pq.StrategyLinear {
			o.fail(fmt.Errorf("%w: %w: %v", ErrOptionViolation, pq.ErrUnknownStrategy, s))
			return
		}
		o.Strategy = s
	}
}

// WithTrackStepCost enables Debug.StepCost.
func WithTrackStepCost() Option {
	return func(o *Options) { o.TrackStepCost = true }
}

// WithTrackConsidered enables Debug.Considered.
func WithTrackConsidered() Option {
	return func(o *Options) { o.TrackConsidered = true }
}

// WithMaxIterations stops a search after n frontier pops and reports it as
// not found with StopIterationBudget. n == 0 disables the cap; n < 0 is invalid.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxIterations = n
	}
}

// WithTimeBudget stops a search once d has elapsed and reports it as not
// found with StopTimeBudget. d == 0 disables the cap; d < 0 is invalid.
func WithTimeBudget(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.fail(fmt.Errorf("%w: TimeBudget cannot be negative (%s)", ErrOptionViolation, d))
			return
		}
		o.TimeBudget = d
	}
}

// WithCapacityHint pre-sizes the per-search registry, ledger and frontier.
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.CapacityHint = n
		}
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs an Observer notified after every search.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithNodeKey keys nodes by fn instead of by value, for node types that carry
// an externally meaningful identifier. N must match the Engine's node type,
// otherwise New reports ErrOptionViolation.
func WithNodeKey[N any](fn func(N) string) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		o.nodeKey = fn
	}
}

// fail keeps the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
