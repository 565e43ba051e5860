package graph

import (
	"errors"
	"math"
)

// Inf is the cost sentinel for unreachable vertices and impassable edges.
var Inf = math.Inf(1)

// ErrInvalidVertex indicates that a vertex unknown to the Graph was passed
// to a planner. Planners never substitute a default for it.
var ErrInvalidVertex = errors.New("graph: invalid vertex")

// Graph is the read-only view of the traversable space a planner searches.
//
// Successors(v) lists every w with an edge v→w, Predecessors(v) every u
// with an edge u→v. Cost(a, b) is the current cost of the edge a→b and
// must be ≥ 0; it returns +Inf when the edge is impassable or a and b are
// not adjacent. HasVertex reports membership for boundary validation.
//
// Implementations may change costs over time; a planner observes those
// changes only through the change notifications its caller forwards.
type Graph[V comparable] interface {
	Successors(v V) []V
	Predecessors(v V) []V
	Cost(from, to V) float64
	HasVertex(v V) bool
}

// Heuristic estimates the remaining cost from a to b.
type Heuristic[V comparable] interface {
	Estimate(a, b V) float64
}

// HeuristicFunc adapts an ordinary function to the Heuristic interface.
type HeuristicFunc[V comparable] func(a, b V) float64

// Estimate calls f(a, b).
func (f HeuristicFunc[V]) Estimate(a, b V) float64 { return f(a, b) }

// Zero returns the heuristic that always estimates 0. It is trivially
// admissible and consistent; with it A* degenerates to Dijkstra.
func Zero[V comparable]() Heuristic[V] {
	return HeuristicFunc[V](func(V, V) float64 { return 0 })
}

// EdgeChange describes one observed change of the cost of edge From→To.
type EdgeChange[V comparable] struct {
	From V
	To   V
	Old  float64
	New  float64
}

// Increased reports whether the change made the edge more expensive.
func (c EdgeChange[V]) Increased() bool { return c.New > c.Old }
