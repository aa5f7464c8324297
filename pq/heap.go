package pq

import "container/heap"

// Heap is a binary min-heap. The zero value is an empty, usable queue.
type Heap[T any] struct {
	items entries[T]
}

// NewHeap returns an empty Heap with room for capHint entries.
func NewHeap[T any](capHint int) *Heap[T] {
	return &Heap[T]{items: make(entries[T], 0, capHint)}
}

// Push inserts v with the given priority. O(log n).
func (h *Heap[T]) Push(priority float64, v T) {
	heap.Push(&h.items, entry[T]{priority: priority, value: v})
}

// Pop removes the minimum entry. O(log n).
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return heap.Pop(&h.items).(entry[T]).value, true
}

// Peek returns the minimum entry without removing it. O(1).
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.items[0].value, true
}

// PeekPriority returns the smallest queued priority.
func (h *Heap[T]) PeekPriority() (float64, bool) {
	if len(h.items) == 0 {
		return 0, false
	}

	return h.items[0].priority, true
}

// Len returns the number of queued entries.
func (h *Heap[T]) Len() int { return len(h.items) }

// Reset empties the heap, keeping its storage.
func (h *Heap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

// entries implements heap.Interface ordered by ascending priority.
type entries[T any] []entry[T]

func (e entries[T]) Len() int           { return len(e) }
func (e entries[T]) Less(i, j int) bool { return e[i].priority < e[j].priority }
func (e entries[T]) Swap(i, j int)      { e[i], e[j] = e[j], e[i] }

// Push is called by heap.Push; x must be an entry[T].
func (e *entries[T]) Push(x any) { *e = append(*e, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last element.
func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[T]{} // drop payload reference
	*e = old[:n-1]

	return item
}
