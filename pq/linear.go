package pq

// Linear is an unordered queue with a cached minimum. See the package
// documentation for its cost model; prefer Heap unless profiling says otherwise.
// The zero value is an empty, usable queue.
type Linear[T any] struct {
	items []entry[T]
	// min is the index of the smallest entry, or -1 when unknown.
	min    int
	primed bool
}

// NewLinear returns an empty Linear with room for capHint entries.
func NewLinear[T any](capHint int) *Linear[T] {
	return &Linear[T]{items: make([]entry[T], 0, capHint), min: -1, primed: true}
}

// Push appends v. If the minimum is cached and priority does not exceed it,
// the new entry becomes the cached minimum. O(1).
func (l *Linear[T]) Push(priority float64, v T) {
	l.prime()
	l.items = append(l.items, entry[T]{priority: priority, value: v})
	last := len(l.items) - 1

	switch {
	case last == 0:
		l.min = 0
	case l.min >= 0 && priority <= l.items[l.min].priority:
		l.min = last
	}
}

// Pop removes the minimum entry. O(1) with a cached minimum, else O(n).
func (l *Linear[T]) Pop() (T, bool) {
	i, ok := l.minIndex()
	if !ok {
		var zero T
		return zero, false
	}

	v := l.items[i].value
	last := len(l.items) - 1
	l.items[i] = l.items[last]
	l.items[last] = entry[T]{}
	l.items = l.items[:last]
	l.min = -1

	return v, true
}

// Peek returns the minimum entry without removing it, caching its position.
func (l *Linear[T]) Peek() (T, bool) {
	i, ok := l.minIndex()
	if !ok {
		var zero T
		return zero, false
	}

	return l.items[i].value, true
}

// Len returns the number of queued entries.
func (l *Linear[T]) Len() int { return len(l.items) }

// Reset empties the queue, keeping its storage.
func (l *Linear[T]) Reset() {
	clear(l.items)
	l.items = l.items[:0]
	l.min = -1
	l.primed = true
}

// minIndex returns the cached minimum, rescanning when it is unknown.
func (l *Linear[T]) minIndex() (int, bool) {
	l.prime()
	if len(l.items) == 0 {
		return 0, false
	}
	if l.min >= 0 {
		return l.min, true
	}

	best := 0
	for i := 1; i < len(l.items); i++ {
		if l.items[i].priority < l.items[best].priority {
			best = i
		}
	}
	l.min = best

	return best, true
}

// prime makes the zero value usable.
func (l *Linear[T]) prime() {
	if !l.primed {
		l.min = -1
		l.primed = true
	}
}
