package nodeid

// ID identifies a node within one search. IDs are dense: the n-th distinct
// node seen receives ID n-1.
type ID int

// None marks the absence of a node, e.g. the predecessor of the start node.
const None ID = -1

// Valid reports whether id refers to an allocated node.
func (id ID) Valid() bool { return id >= 0 }

// Keyer is implemented by node types that carry their own stable key.
// When N implements Keyer and no explicit key function is configured,
// the Registry keys nodes by NodeKey().
type Keyer interface {
	NodeKey() string
}

// Options configures a Registry.
type Options[N comparable] struct {
	// Key, if non-nil, derives the identity key of a node.
	Key func(N) string

	// CapacityHint pre-sizes internal storage. Zero means no hint.
	CapacityHint int
}

// Option is a functional option for New.
type Option[N comparable] func(*Options[N])

// WithKey keys nodes by fn(node) instead of by the node value itself.
func WithKey[N comparable](fn func(N) string) Option[N] {
	return func(o *Options[N]) {
		o.Key = fn
	}
}

// WithCapacity pre-sizes the registry for about n nodes. Negative values are ignored.
func WithCapacity[N comparable](n int) Option[N] {
	return func(o *Options[N]) {
		if n > 0 {
			o.CapacityHint = n
		}
	}
}
