// Package gridgraph treats a 2D cost grid (an occupancy map) as a graph
// of cells that the planners in this module can search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]float64 grid. Negative values are
//     obstacles; other values are extra traversal cost.
//   - Moving between adjacent cells A and B costs step×(1+(a+b)/2), where
//     step is 1 orthogonally and √2 diagonally; +Inf if either is an obstacle.
//   - SetCell, Block and Unblock mutate the grid and return the edge cost
//     changes to forward to an incremental planner.
//   - Manhattan, Octile and Euclidean heuristics.
//   - ConnectedComponents of free cells and BreachPath, the fewest
//     obstacles to clear so that two cells connect.
//   - ToCoreGraph converts to a *core.Graph.
//
// Complexity:
//
//   - Successors, Predecessors, Cost: O(d), d = 4 or 8.
//   - SetCell: O(d).
//   - ConnectedComponents, BreachPath: O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph: O(W×H×d), Memory: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrBadValue: a NaN or infinite cell value.
package gridgraph
