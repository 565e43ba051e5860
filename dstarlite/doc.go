// Package dstarlite implements the D*-Lite incremental planner (Koenig &
// Likhachev, 2002, optimized version).
//
// A Planner searches backwards from the goal and keeps, per vertex:
//
//   - g:   the accepted cost-to-goal estimate,
//   - rhs: a one-step lookahead, min over successors of c(s,s') + g(s').
//
// A vertex is consistent when g == rhs, overconsistent when g > rhs and
// underconsistent when g < rhs. The priority queue holds exactly the
// inconsistent vertices, keyed by
//
//	key(s) = [min(g,rhs) + h(start,s) + Km, min(g,rhs)]
//
// Lifecycle:
//
//	p, _ := dstarlite.New(g, h, start, goal)
//	_ = p.ComputeShortestPath()         // initial search
//	next, _ := p.Step()                 // move one vertex
//	_ = p.ApplyChanges(changes)         // report observed cost changes
//	_ = p.ComputeShortestPath()         // repair only what changed
//
// Costs reported to FlagChange/ApplyChanges must already be visible in the
// Graph: the planner reads current costs from it while repairing. Changes
// must be batched between ComputeShortestPath calls; the planner holds no
// locks and is not safe for concurrent use.
//
// Start moves are absorbed by the Km offset (UpdateStart), so queued keys
// never need to be recomputed wholesale.
//
// An unreachable goal is a value, not an error: Plan returns an empty path
// and Cost reports +Inf. Errors are limited to invalid vertices
// (graph.ErrInvalidVertex), cancellation (ctx.Err()), an exhausted
// expansion budget (ErrBudgetExhausted) and ErrStalled.
package dstarlite
