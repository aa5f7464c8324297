// Package nodeid assigns stable, per-search identities to caller-owned nodes.
//
// What:
//
//   - Registry maps every node seen during one search to a dense integer ID.
//   - IDs are handed out from a monotonically increasing counter, starting at 0.
//   - The same node always maps to the same ID for the lifetime of the Registry.
//
// Why:
//
//   - Nodes belong to the caller and may carry no intrinsic unique key.
//   - Dense IDs let the ledger keep cost and history in slices instead of maps.
//   - Identity lives next to the search; caller nodes are never mutated.
//
// Keys:
//
//   - By default a node is its own key (N must be comparable).
//   - WithKey(fn) or a node type implementing Keyer switches to string keys, for
//     callers that already own externally meaningful identifiers. Two nodes with
//     the same key share one ID, so the key must be injective.
//
// Complexity:
//
//   - IDOf / Lookup: O(1) amortized (one map access).
//   - Node:          O(1).
//   - Memory:        O(V) for V distinct nodes seen.
//
// Thread safety:
//
//   - A Registry is not safe for concurrent use. Each search owns its own.
package nodeid
