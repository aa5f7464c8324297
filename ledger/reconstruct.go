package ledger

import (
	"fmt"

	"github.com/katalvlaran/wayfind/nodeid"
)

// Path walks history from goal back to the root and returns the IDs in
// root…goal order. The result always starts with the node whose predecessor
// is nodeid.None and ends with goal.
//
// Complexity: O(path length).
func (l *Ledger) Path(goal nodeid.ID) ([]nodeid.ID, error) {
	if !l.Known(goal) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownNode, goal)
	}

	path := []nodeid.ID{goal}
	for cur := goal; ; {
		prev := l.prev[cur]
		if prev == nodeid.None {
			break
		}
		if !l.Known(prev) || len(path) > l.size {
			return nil, fmt.Errorf("%w: from id %d", ErrBrokenChain, goal)
		}
		path = append(path, prev)
		cur = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// StepCosts returns the cumulative cost at every step of Path(goal), in the
// same order. The first element is the root's cost (0 for a seeded start).
func (l *Ledger) StepCosts(goal nodeid.ID) ([]float64, error) {
	path, err := l.Path(goal)
	if err != nil {
		return nil, err
	}

	costs := make([]float64, len(path))
	for i, id := range path {
		costs[i] = l.cost[id]
	}

	return costs, nil
}
