// Package ledger records the per-search bookkeeping of a best-first search:
// the cheapest known cost from the start to every discovered node (cost-so-far)
// and the predecessor that produced that cost (history).
//
// Invariants:
//
//   - A stored cost is only ever replaced by a strictly cheaper one (Relax).
//   - History[n] always names the predecessor that produced Cost[n].
//   - The start node has cost 0 and no predecessor (nodeid.None).
//
// Storage is arena-style: costs and predecessors live in slices indexed by the
// dense IDs handed out by package nodeid, so lookups are O(1) without hashing.
//
// Path reconstruction walks History backwards from a goal to the start and
// reverses the result. StepCosts produces the matching cumulative costs.
//
// A Ledger is not safe for concurrent use; every search owns one.
package ledger
