// Package astar implements one-shot A* search over any graph.Graph.
//
// Search expands vertices in order of f = g + h, where g is the cost from
// the start and h a Heuristic estimate to the goal. Equal f values are
// broken by insertion order, which keeps results deterministic for a given
// graph and heuristic.
//
// With an admissible and consistent heuristic the returned path is
// optimal. With graph.Zero the search degenerates to Dijkstra.
//
// An unreachable goal is not an error: Search returns an empty Path and a
// Cost of +Inf. Errors are reserved for:
//
//   - graph.ErrInvalidVertex (wrapped): start or goal not in the graph.
//   - ctx.Err(): the context given with WithContext was cancelled.
//   - ErrBudgetExhausted: WithMaxExpansions was reached first.
//
// Search is the baseline the incremental dstarlite planner is measured
// against; it recomputes from scratch every time it is called.
package astar
