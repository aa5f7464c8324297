package astar

import "context"

// Snapshot exposes the state of a search after one Stepper.Step call.
type Snapshot[N any] struct {
	// Current is the node popped by this step; valid when Popped is true.
	Current N
	// Popped is false when the step only detected termination.
	Popped bool
	// Expanded reports whether Current's neighbors were enumerated
	// (false for stale entries and for the goal).
	Expanded bool
	// FrontierSize is the queue length after the step.
	FrontierSize int
	// StepIndex counts Step calls that popped a frontier entry.
	StepIndex int
	// Done and Found mirror the final Result once the search ended.
	Done  bool
	Found bool
	// Path is set on the step that reached the goal.
	Path []N
}

// Stepper drives a search one frontier pop at a time, for debugging tools and
// visualizers. It runs the exact algorithm of Engine.Find.
type Stepper[N comparable] struct {
	r      *runner[N]
	steps  int
	result Result[N]
}

// NewStepper prepares a step-by-step search. The arguments follow Engine.Find.
func (e *Engine[N]) NewStepper(
	ctx context.Context,
	start, goal N,
	each EachNeighbor[N],
	cost CostFunc[N],
	h Heuristic[N],
) (*Stepper[N], error) {
	r, err := e.newRunner(ctx, start, goal, each, cost, h)
	if err != nil {
		return nil, err
	}

	return &Stepper[N]{r: r}, nil
}

// Step advances the search by one frontier pop. Calling Step after the
// search is done returns the final snapshot again.
func (s *Stepper[N]) Step() Snapshot[N] {
	if s.r.done {
		return s.snapshot(outcome{done: true})
	}

	out := s.r.advance()
	if out.popped {
		s.steps++
	}
	if out.done {
		s.result = s.r.finish()
	}

	return s.snapshot(out)
}

// Done reports whether the search has ended.
func (s *Stepper[N]) Done() bool { return s.r.done }

// Result returns the final result once Done is true.
func (s *Stepper[N]) Result() (Result[N], bool) {
	if !s.r.done {
		return Result[N]{}, false
	}

	return s.result, true
}

// Run steps until the search ends and returns its result.
func (s *Stepper[N]) Run() Result[N] {
	for !s.r.done {
		s.Step()
	}

	return s.result
}

func (s *Stepper[N]) snapshot(out outcome) Snapshot[N] {
	snap := Snapshot[N]{
		Popped:       out.popped,
		Expanded:     out.expanded,
		FrontierSize: s.r.open.Len(),
		StepIndex:    s.steps,
		Done:         s.r.done,
	}
	if out.popped {
		snap.Current, _ = s.r.ids.Node(out.current)
	}
	if s.r.done {
		snap.Found = s.result.Found
		if out.popped && s.result.Found {
			snap.Path = s.result.Path
		}
	}

	return snap
}
