// Package pq provides the min-priority queues that order the search frontier.
//
// Two strategies implement the same Queue interface:
//
//   - Heap (StrategyHeap, default): a binary min-heap on container/heap.
//     Push and Pop cost O(log n). This is the safe choice for any frontier size.
//
//   - Linear (StrategyLinear): an unordered slice with a cached minimum.
//     Push is O(1); a new entry whose priority is ≤ the cached minimum becomes
//     the new minimum without a scan. Pop is O(1) while the minimum is cached and
//     O(n) when it has to rescan. Every Pop invalidates the cache, so a frontier
//     that keeps growing between pops degrades to O(n) per Pop. Use it only for
//     small frontiers (short-radius 2D grid searches) after profiling.
//
// Ordering contract:
//
//   - Pop and Peek always return the entry with the numerically smallest priority.
//   - Ties are broken deterministically within one strategy, but Heap and Linear
//     may pick different entries among equal priorities. Callers must not assume
//     FIFO (or any other) order among ties.
//
// Neither queue is safe for concurrent use.
package pq
