// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over any graph.Graph with non-negative costs.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from one source vertex to every
//     reachable vertex in O((V + E) log V) time.
//   - It uses a lazy decrease-key min-heap: improved distances are pushed as
//     new entries and stale entries are skipped when popped.
//   - It needs no heuristic and no vertex enumeration, which makes it the
//     independent oracle the incremental planners are checked against.
//
// Key features:
//
//   - ReturnPath: also return a predecessor map; PathTo rebuilds a path.
//   - MaxDistance: stop once the frontier exceeds a cost cap.
//   - InfEdgeThreshold: treat costs ≥ threshold as walls. +Inf costs are
//     always walls.
//   - Reverse: follow Predecessors instead of Successors, yielding the
//     cost-to-source of every vertex. With the goal as source this equals
//     the goal distance a D*-Lite planner converges to.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        g is nil.
//   - ErrVertexNotFound:  the source is not in g.
//   - ErrNegativeWeight:  a negative or NaN cost was met during relaxation.
//   - ErrBadMaxDistance:  (panic) WithMaxDistance got a negative value.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold got a non-positive value.
//
// Thread safety:
//
//   - Dijkstra only reads g. Concurrent mutation of g must be synchronized
//     by the caller.
package dijkstra
