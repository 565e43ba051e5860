// Package bfs provides breadth-first search over a graph.Graph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Edges whose current cost is +Inf are impassable and never followed.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering,
//     MaxDepth limit, and reverse traversal over predecessors.
//
// Why
//
//   - Cheap reachability: a planner's goal is unreachable exactly when
//     BFS from the start never reaches it.
//   - Connected regions of an occupancy grid.
//
// Determinism
//
//	BFS enqueues neighbors in the order Successors returns them, so the
//	visit sequence is reproducible whenever the graph's order is.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
