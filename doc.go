// Package replan is a toolkit for incremental shortest-path replanning,
// the kind a mobile robot needs when its map changes under it.
//
// What is in the box?
//
//   - graph      the Graph and Heuristic interfaces every planner searches
//   - keyqueue   indexed min-heap over two-component keys
//   - astar      one-shot A* (baseline and oracle)
//   - dstarlite  incremental D*-Lite: plan once, repair after edge changes
//   - core       thread-safe string-keyed weighted graph
//   - gridgraph  2-D cost grids with Manhattan/Octile/Euclidean heuristics
//   - bfs        hop-count traversal and reachability
//   - dijkstra   exhaustive single-source costs (test oracle)
//   - builder    deterministic graph fixtures
//   - navigator  sense → repair → move loop over a partially known grid
//   - scenario   HCL scenario files for the navigator
//
// The navsim command under cmd/navsim runs a scenario file end to end.
//
// Quick start
//
//	g := core.NewGraph(core.WithWeighted())
//	_ = g.AddEdge("dock", "hall", 1)
//	_ = g.AddEdge("hall", "lab", 1)
//	p, _ := dstarlite.New[string](g, nil, "dock", "lab")
//	path, _ := p.Path()
//	changes, _ := g.SetWeight("hall", "lab", graph.Inf)
//	_ = p.ApplyChanges(changes)
//	path, _ = p.Path() // repaired, not recomputed
package replan
