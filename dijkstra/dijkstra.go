package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/ledger"
	"github.com/katalvlaran/wayfind/nodeid"
	"github.com/katalvlaran/wayfind/pq"
)

// checkEvery is how many heap pops pass between context checks.
const checkEvery = 64

// Find returns the cheapest path from start to goal by uniform-cost search.
// It is astar.Find with the zero heuristic and accepts the same options.
func Find[N comparable](
	ctx context.Context,
	start, goal N,
	each astar.EachNeighbor[N],
	cost astar.CostFunc[N],
	opts ...astar.Option,
) (astar.Result[N], error) {
	return astar.Find(ctx, start, goal, each, cost, astar.Zero[N], opts...)
}

// item is a heap entry: node identity and the distance it was pushed with.
type item struct {
	id   nodeid.ID
	dist float64
}

// Distances computes the cheapest cost from source to every node reachable
// through each, settling nodes in order of increasing distance.
//
// Returns ErrNilNeighbors or ErrNilCost for missing callbacks,
// ErrNegativeWeight if any explored edge is negative, and ctx.Err() if ctx
// ends before exploration completes.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances[N comparable](
	ctx context.Context,
	source N,
	each astar.EachNeighbor[N],
	cost astar.CostFunc[N],
	opts ...Option,
) (Tree[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if each == nil {
		return Tree[N]{}, ErrNilNeighbors
	}
	if cost == nil {
		return Tree[N]{}, ErrNilCost
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ids := nodeid.New(nodeid.WithCapacity[N](cfg.CapacityHint))
	book := ledger.New(cfg.CapacityHint)
	open := pq.NewHeap[item](cfg.CapacityHint)
	settled := make([]bool, 0, cfg.CapacityHint)

	src := ids.IDOf(source)
	book.Seed(src)
	open.Push(0, item{id: src})

	for pops := 0; open.Len() > 0; pops++ {
		if pops%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Tree[N]{}, err
			}
		}

		it, _ := open.Pop()
		// Skip stale entries (lazy decrease-key).
		if d, _ := book.Cost(it.id); it.dist > d {
			continue
		}
		// Heap order means nothing cheaper remains.
		if it.dist > cfg.MaxDistance {
			break
		}
		for int(it.id) >= len(settled) {
			settled = append(settled, false)
		}
		settled[it.id] = true

		current, _ := ids.Node(it.id)
		var failure error
		each(current, func(next N) {
			if failure != nil {
				return
			}
			w := cost(current, next)
			if math.IsNaN(w) {
				failure = fmt.Errorf("%w: %v→%v", ErrBadWeight, current, next)
				return
			}
			if w < 0 {
				failure = fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight, current, next, w)
				return
			}
			if w >= cfg.InfEdgeThreshold {
				return
			}
			nextID := ids.IDOf(next)
			if nd := it.dist + w; book.Relax(nextID, it.id, nd) {
				open.Push(nd, item{id: nextID, dist: nd})
			}
		})
		if failure != nil {
			return Tree[N]{}, failure
		}
	}

	return buildTree(source, ids, book, settled, cfg.ReturnPath), nil
}

// buildTree exports settled nodes from the dense ledger into maps.
func buildTree[N comparable](source N, ids *nodeid.Registry[N], book *ledger.Ledger, settled []bool, withPrev bool) Tree[N] {
	t := Tree[N]{Source: source, Dist: make(map[N]float64, len(settled))}
	if withPrev {
		t.Prev = make(map[N]N, len(settled))
	}

	for i, ok := range settled {
		if !ok {
			continue
		}
		id := nodeid.ID(i)
		n, _ := ids.Node(id)
		t.Dist[n], _ = book.Cost(id)
		if !withPrev {
			continue
		}
		if p, _ := book.Prev(id); p.Valid() {
			t.Prev[n], _ = ids.Node(p)
		}
	}

	return t
}

// PathTo rebuilds the path from Source to target. It reports false when
// target was not settled or the tree was built without ReturnPath.
func (t Tree[N]) PathTo(target N) ([]N, bool) {
	if _, ok := t.Dist[target]; !ok {
		return nil, false
	}
	if target == t.Source {
		return []N{target}, true
	}
	if t.Prev == nil {
		return nil, false
	}

	path := []N{target}
	for cur := target; cur != t.Source; {
		p, ok := t.Prev[cur]
		if !ok || len(path) > len(t.Dist) {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
