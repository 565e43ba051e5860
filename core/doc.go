// Package core provides a thread-safe, in-memory weighted graph keyed by
// string vertex IDs. It is the general-purpose Graph collaborator for the
// planners in this module: *Graph implements graph.Graph[string].
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unit-cost edges (WithWeighted)
//   - Self-loops (WithLoops)
//   - O(1) edge lookup in both directions via twin adjacency maps:
//     out[from][to] and in[to][from] share one *Edge
//   - Live cost updates (SetWeight) reported as graph.EdgeChange values,
//     ready to forward to dstarlite.Planner.ApplyChanges
//
// Costs:
//
//	Weighted graphs use Edge.Weight as the traversal cost. Unweighted graphs
//	charge 1 per hop; their edges carry Weight 0 (open) or +Inf (blocked).
//	+Inf is always accepted and marks a blocked edge that keeps its place in
//	the adjacency, so an obstacle can later be cleared incrementally.
//	Negative and NaN weights are rejected with ErrNegativeWeight: the graph,
//	not the planner, is responsible for keeping costs non-negative.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) error                 // O(1)
//	RemoveEdge(from, to string) error                         // O(1)
//	SetWeight(from, to string, w float64) ([]EdgeChange, error) // O(1)
//
//	// graph.Graph[string]
//	Successors(id) []string    // sorted
//	Predecessors(id) []string  // sorted
//	Cost(from, to) float64     // +Inf when not adjacent
//
//	// Enumeration and copies
//	Vertices() []string, Edges() []*Edge, Clone(), CloneEmpty()
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge
//	ErrEdgeExists      – AddEdge over an existing edge (use SetWeight)
//	ErrBadWeight       – non-unit weight on an unweighted graph
//	ErrNegativeWeight  – negative or NaN weight
//	ErrLoopNotAllowed  – self-loop when loops are disabled
//
// Concurrency: all methods take the graph's RWMutex. Planners read the
// graph without holding it across calls, so cost updates must still be
// serialized with replanning by the caller.
package core
