// Package core defines the central Graph, Vertex, and Edge types.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates AddEdge was called for an endpoint pair that
	// already has an edge. Cost changes go through SetWeight.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrBadWeight indicates a weight other than 0 or +Inf on an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrNegativeWeight indicates a negative or NaN weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// Metadata stores arbitrary key-value data (grid coordinates, labels) and
// is shared, not deep-copied, by Clone.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// An undirected edge is stored once and reachable from both endpoints, so
// a weight change applies to both traversal directions.
type Edge struct {
	From     string
	To       string
	Weight   float64
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way (true) or two-way (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows arbitrary non-negative edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// out[from][to] and in[to][from] point at the same *Edge; for undirected
// edges the mirrored pairs out[to][from] and in[from][to] do as well.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowLoops bool

	vertices map[string]*Vertex
	out      map[string]map[string]*Edge
	in       map[string]map[string]*Edge
	edges    int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, and without loops.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		out:      make(map[string]map[string]*Edge),
		in:       make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether arbitrary edge weights are permitted.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Directed reports whether new edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
