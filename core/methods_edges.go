package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/replan/graph"
)

// checkWeight validates w against the graph's weight policy. Caller holds mu.
func (g *Graph) checkWeight(w float64) error {
	if math.IsNaN(w) || w < 0 {
		return ErrNegativeWeight
	}
	if !g.weighted && w != 0 && !math.IsInf(w, 1) {
		return ErrBadWeight
	}

	return nil
}

// costOf maps a stored weight to a traversal cost. Caller holds mu.
func (g *Graph) costOf(w float64) float64 {
	if g.weighted || math.IsInf(w, 1) {
		return w
	}

	return 1
}

// AddEdge connects from → to (and to → from on undirected graphs) with
// weight w, creating missing endpoints.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrNegativeWeight / ErrBadWeight per the weight policy.
//   - ErrEdgeExists if the pair is already connected; use SetWeight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if err := g.checkWeight(w); err != nil {
		return fmt.Errorf("AddEdge(%s→%s): %w", from, to, err)
	}
	if _, ok := g.out[from][to]; ok {
		return ErrEdgeExists
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	e := &Edge{From: from, To: to, Weight: w, Directed: g.directed}
	g.out[from][to] = e
	g.in[to][from] = e
	if !g.directed {
		g.out[to][from] = e
		g.in[from][to] = e
	}
	g.edges++

	return nil
}

// RemoveEdge deletes the edge between from and to. On undirected graphs
// either endpoint order works.
func (g *Graph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrVertexNotFound
	}
	e, ok := g.out[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.out[from], to)
	delete(g.in[to], from)
	if !e.Directed {
		delete(g.out[to], from)
		delete(g.in[from], to)
	}
	g.edges--

	return nil
}

// HasEdge reports whether from → to is traversable in the adjacency,
// blocked (+Inf) edges included.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.out[from][to]

	return ok
}

// Edge returns the stored edge reachable as from → to.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[from]; !ok {
		return nil, ErrVertexNotFound
	}
	e, ok := g.out[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// SetWeight changes the weight of the edge between from and to and returns
// the resulting traversal-cost changes: one for a directed edge, two for an
// undirected one (one per direction), none if the cost did not change.
//
// The returned slice is meant to be handed to a planner's ApplyChanges.
func (g *Graph) SetWeight(from, to string, w float64) ([]graph.EdgeChange[string], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return nil, ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return nil, ErrVertexNotFound
	}
	e, ok := g.out[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	if err := g.checkWeight(w); err != nil {
		return nil, fmt.Errorf("SetWeight(%s→%s): %w", from, to, err)
	}

	oldCost, newCost := g.costOf(e.Weight), g.costOf(w)
	e.Weight = w
	if oldCost == newCost {
		return nil, nil
	}

	changes := []graph.EdgeChange[string]{{From: from, To: to, Old: oldCost, New: newCost}}
	if !e.Directed && from != to {
		changes = append(changes, graph.EdgeChange[string]{From: to, To: from, Old: oldCost, New: newCost})
	}

	return changes, nil
}

// Edges returns every stored edge once, ordered by (From, To).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, g.edges)
	seen := make(map[*Edge]struct{}, g.edges)
	for _, row := range g.out {
		for _, e := range row {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|, counting an undirected edge once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
