// Package graph defines the narrow capability sets the search engines in
// this module consume, plus the small value types they share.
//
// What:
//
//   - Graph[V]: successors, predecessors, a non-negative edge cost and a
//     membership test. Any comparable type can be a vertex (grid cells,
//     string IDs, packed integers).
//   - Heuristic[V]: an estimate of remaining cost between two vertices.
//     Implementations handed to astar or dstarlite must be admissible and
//     consistent; this is a caller obligation and is never checked.
//   - ValueMap[V]: vertex → cost map whose unassigned entries read as +Inf.
//   - EdgeChange[V]: one observed edge-cost change, the unit in which world
//     updates are reported to an incremental planner.
//
// Why:
//
//   - astar, dstarlite and dijkstra share one vocabulary, so a grid map, a
//     road network in core.Graph or an ad-hoc adjacency closure can be
//     planned over without adapters.
//
// Costs:
//
//   - Cost(a, b) must be ≥ 0 for adjacent a, b. +Inf marks an impassable
//     edge (an observed obstacle); a non-adjacent pair also reports +Inf.
//   - Negative costs must be rejected by the Graph implementation before
//     they reach a planner; the planners do not guarantee correctness on
//     them.
//
// Errors:
//
//   - ErrInvalidVertex: a vertex not present in the Graph was passed to a
//     planner API. Planners wrap it with the offending call for context.
package graph
