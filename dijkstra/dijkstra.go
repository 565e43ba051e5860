package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/replan/graph"
)

// Dijkstra computes shortest distances from source to every vertex of g it
// can reach.
//
// Returns:
//
//   - dist: distance from source per vertex; absent vertices read +Inf
//     through ValueMap.Get.
//   - prev: predecessor map if ReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u. With
//     Reverse, u is the next hop from v toward source.
//   - err:  ErrNilGraph, ErrVertexNotFound, or a wrapped ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V comparable](g graph.Graph[V], source V, opts ...Option) (graph.ValueMap[V], map[V]V, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	r := &runner[V]{
		g:       g,
		options: cfg,
		dist:    graph.NewValueMap[V](0),
		visited: make(map[V]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[V]V)
	}

	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the vertex sequence source → … → target from a prev map
// returned with WithReturnPath. It returns nil if target was not reached.
// For a Reverse run the result lists the walk from source back to target;
// reverse it with graph.Reverse to obtain the forward route.
func PathTo[V comparable](prev map[V]V, source, target V) []V {
	if target == source {
		return []V{source}
	}
	if _, ok := prev[target]; !ok {
		return nil
	}
	path := []V{target}
	seen := map[V]bool{target: true}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || seen[p] {
			return nil
		}
		seen[p] = true
		path = append(path, p)
		cur = p
	}

	return graph.Reverse(path)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	g       graph.Graph[V]
	options Options
	dist    graph.ValueMap[V]
	prev    map[V]V
	visited map[V]bool
	pq      nodePQ[V]
}

// init seeds the source at distance zero.
func (r *runner[V]) init(source V) {
	r.dist.Set(source, 0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{id: source, dist: 0})
}

// process settles vertices in order of increasing distance until the heap
// is empty or the frontier passes MaxDistance.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V])
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbour of the settled vertex u.
func (r *runner[V]) relax(u V) error {
	var neighbors []V
	if r.options.Reverse {
		neighbors = r.g.Predecessors(u)
	} else {
		neighbors = r.g.Successors(u)
	}

	du := r.dist.Get(u)
	for _, v := range neighbors {
		var w float64
		if r.options.Reverse {
			w = r.g.Cost(v, u)
		} else {
			w = r.g.Cost(u, v)
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, v, w)
		}
		if math.IsInf(w, 1) || w >= r.options.InfEdgeThreshold {
			continue
		}

		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist.Get(v) {
			continue
		}
		r.dist.Set(v, nd)
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem[V]{id: v, dist: nd})
	}

	return nil
}

// nodeItem is one heap entry: a vertex and a tentative distance.
type nodeItem[V comparable] struct {
	id   V
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ[V comparable] []*nodeItem[V]

func (pq nodePQ[V]) Len() int            { return len(pq) }
func (pq nodePQ[V]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[V]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[V]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[V])) }
func (pq *nodePQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
