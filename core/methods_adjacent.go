package core

import (
	"sort"

	"github.com/katalvlaran/replan/graph"
)

var _ graph.Graph[string] = (*Graph)(nil)

// Successors returns the IDs reachable by one outgoing edge from id, in
// ascending order. Blocked edges are included; their Cost is +Inf.
// Unknown vertices have no successors.
func (g *Graph) Successors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.out[id])
}

// Predecessors returns the IDs with an outgoing edge into id, in ascending
// order.
func (g *Graph) Predecessors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.in[id])
}

// Cost returns the traversal cost of from → to, or +Inf if the vertices are
// not adjacent.
func (g *Graph) Cost(from, to string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.out[from][to]
	if !ok {
		return graph.Inf
	}

	return g.costOf(e.Weight)
}

// Degree returns the number of distinct outgoing and incoming neighbours.
func (g *Graph) Degree(id string) (out, in int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}

	return len(g.out[id]), len(g.in[id]), nil
}

func sortedKeys(row map[string]*Edge) []string {
	if len(row) == 0 {
		return nil
	}
	ids := make([]string, 0, len(row))
	for id := range row {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
