package pq

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned by New for an unsupported Strategy.
var ErrUnknownStrategy = errors.New("pq: unknown queue strategy")

// Queue is a min-priority queue of payloads of type T.
type Queue[T any] interface {
	// Push inserts v with the given priority.
	Push(priority float64, v T)
	// Pop removes and returns the payload with the smallest priority.
	// It returns false if the queue is empty.
	Pop() (T, bool)
	// Peek returns the payload with the smallest priority without removing it.
	Peek() (T, bool)
	// Len returns the number of queued entries.
	Len() int
	// Reset empties the queue, keeping its storage.
	Reset()
}

// Strategy selects a Queue implementation.
type Strategy int

const (
	// StrategyHeap selects the binary min-heap.
	StrategyHeap Strategy = iota
	// StrategyLinear selects the lazy linear scan with cached minimum.
	StrategyLinear
)

// String returns the strategy name used in flags and scenario files.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyLinear:
		return "linear"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "heap" or "linear" to a Strategy. An empty name selects the heap.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "heap":
		return StrategyHeap, nil
	case "linear":
		return StrategyLinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// New returns an empty queue of the given strategy, pre-sized for capHint entries.
func New[T any](s Strategy, capHint int) (Queue[T], error) {
	if capHint < 0 {
		capHint = 0
	}
	switch s {
	case StrategyHeap:
		return NewHeap[T](capHint), nil
	case StrategyLinear:
		return NewLinear[T](capHint), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

// entry is one (priority, payload) pair.
type entry[T any] struct {
	priority float64
	value    T
}
