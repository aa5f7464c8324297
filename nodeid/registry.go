package nodeid

// Registry assigns IDs to nodes. The zero value is not usable; call New.
type Registry[N comparable] struct {
	key    func(N) string
	byNode map[N]ID
	byKey  map[string]ID
	nodes  []N
}

// New returns an empty Registry. If no key function is given and N implements
// Keyer, nodes are keyed by their NodeKey.
func New[N comparable](opts ...Option[N]) *Registry[N] {
	var cfg Options[N]
	for _, opt := range opts {
		opt(&cfg)
	}

	key := cfg.Key
	if key == nil {
		var zero N
		if _, ok := any(zero).(Keyer); ok {
			key = func(n N) string { return any(n).(Keyer).NodeKey() }
		}
	}

	r := &Registry[N]{
		key:   key,
		nodes: make([]N, 0, cfg.CapacityHint),
	}
	if key != nil {
		r.byKey = make(map[string]ID, cfg.CapacityHint)
	} else {
		r.byNode = make(map[N]ID, cfg.CapacityHint)
	}

	return r
}

// IDOf returns the ID of n, allocating the next ID on first sight.
// Repeated calls with the same node return the same ID.
func (r *Registry[N]) IDOf(n N) ID {
	if id, ok := r.Lookup(n); ok {
		return id
	}

	id := ID(len(r.nodes))
	r.nodes = append(r.nodes, n)
	if r.key != nil {
		r.byKey[r.key(n)] = id
	} else {
		r.byNode[n] = id
	}

	return id
}

// Lookup returns the ID of n without allocating one.
func (r *Registry[N]) Lookup(n N) (ID, bool) {
	var (
		id ID
		ok bool
	)
	if r.key != nil {
		id, ok = r.byKey[r.key(n)]
	} else {
		id, ok = r.byNode[n]
	}

	return id, ok
}

// Node returns the node first registered under id.
func (r *Registry[N]) Node(id ID) (N, bool) {
	if id < 0 || int(id) >= len(r.nodes) {
		var zero N
		return zero, false
	}

	return r.nodes[id], true
}

// Nodes resolves ids in order. Unknown IDs are skipped.
func (r *Registry[N]) Nodes(ids []ID) []N {
	out := make([]N, 0, len(ids))
	for _, id := range ids {
		if n, ok := r.Node(id); ok {
			out = append(out, n)
		}
	}

	return out
}

// Len returns the number of IDs allocated so far.
func (r *Registry[N]) Len() int { return len(r.nodes) }

// Reset forgets every identity while keeping allocated memory.
// The next IDOf call starts again from ID 0.
func (r *Registry[N]) Reset() {
	var zero N
	for i := range r.nodes {
		r.nodes[i] = zero
	}
	r.nodes = r.nodes[:0]
	clear(r.byNode)
	clear(r.byKey)
}
