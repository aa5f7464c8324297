package ledger

import "github.com/katalvlaran/wayfind/nodeid"

// Ledger holds cost-so-far and history for one search.
// The zero value is an empty, usable ledger.
type Ledger struct {
	cost  []float64
	prev  []nodeid.ID
	known []bool
	size  int // number of IDs with a recorded cost
}

// New returns an empty Ledger with room for capHint nodes.
func New(capHint int) *Ledger {
	if capHint < 0 {
		capHint = 0
	}

	return &Ledger{
		cost:  make([]float64, 0, capHint),
		prev:  make([]nodeid.ID, 0, capHint),
		known: make([]bool, 0, capHint),
	}
}

// Seed records start as the search root: cost 0, no predecessor.
func (l *Ledger) Seed(start nodeid.ID) {
	l.set(start, nodeid.None, 0)
}

// Relax records cost as the cost of reaching to via from, but only if to has no
// recorded cost yet or cost is strictly lower than the recorded one.
// It reports whether the ledger changed.
func (l *Ledger) Relax(to, from nodeid.ID, cost float64) bool {
	if old, ok := l.Cost(to); ok && cost >= old {
		return false
	}
	l.set(to, from, cost)

	return true
}

// Cost returns the cheapest known cost of id.
func (l *Ledger) Cost(id nodeid.ID) (float64, bool) {
	if !l.Known(id) {
		return 0, false
	}

	return l.cost[id], true
}

// Prev returns the recorded predecessor of id; nodeid.None for the start node.
func (l *Ledger) Prev(id nodeid.ID) (nodeid.ID, bool) {
	if !l.Known(id) {
		return nodeid.None, false
	}

	return l.prev[id], true
}

// Known reports whether id has a recorded cost.
func (l *Ledger) Known(id nodeid.ID) bool {
	return id >= 0 && int(id) < len(l.known) && l.known[id]
}

// Len returns the number of nodes with a recorded cost.
func (l *Ledger) Len() int { return l.size }

// Reset forgets all records while keeping allocated memory.
func (l *Ledger) Reset() {
	l.cost = l.cost[:0]
	l.prev = l.prev[:0]
	l.known = l.known[:0]
	l.size = 0
}

// set stores a record, growing the slices up to id.
func (l *Ledger) set(id, from nodeid.ID, cost float64) {
	if id < 0 {
		return
	}
	for int(id) >= len(l.known) {
		l.cost = append(l.cost, 0)
		l.prev = append(l.prev, nodeid.None)
		l.known = append(l.known, false)
	}
	if !l.known[id] {
		l.known[id] = true
		l.size++
	}
	l.cost[id] = cost
	l.prev[id] = from
}
