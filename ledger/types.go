package ledger

import "errors"

// Sentinel errors for path reconstruction.
var (
	// ErrUnknownNode indicates the requested node has no recorded cost.
	ErrUnknownNode = errors.New("ledger: node has no recorded cost")

	// ErrBrokenChain indicates the predecessor chain never reaches a root,
	// which means the history contains a cycle.
	ErrBrokenChain = errors.New("ledger: predecessor chain does not terminate")
)
