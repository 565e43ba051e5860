package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/replan/graph"
)

// Manhattan estimates |dx|+|dy|. Admissible and consistent on Conn4 grids,
// where every move costs at least 1.
var Manhattan = graph.HeuristicFunc[Cell](func(a, b Cell) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
})

// Octile estimates max(dx,dy) + (√2-1)·min(dx,dy), the free-grid distance
// under Conn8. Admissible and consistent on Conn8 grids.
var Octile = graph.HeuristicFunc[Cell](func(a, b Cell) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}
	return float64(hi) + (math.Sqrt2-1)*float64(lo)
})

// Euclidean estimates the straight-line distance. Admissible under either
// connectivity, weaker than the matching Manhattan or Octile.
var Euclidean = graph.HeuristicFunc[Cell](func(a, b Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
})

// HeuristicFor returns Manhattan for Conn4 and Octile for Conn8.
func HeuristicFor(conn Connectivity) graph.Heuristic[Cell] {
	if conn == Conn8 {
		return Octile
	}
	return Manhattan
}

// DefaultHeuristic returns HeuristicFor(gg.Conn).
func (gg *GridGraph) DefaultHeuristic() graph.Heuristic[Cell] {
	return HeuristicFor(gg.Conn)
}

// HeuristicByName maps "manhattan", "octile", "euclidean" and "zero" to a
// heuristic. The empty name selects HeuristicFor(conn).
func HeuristicByName(name string, conn Connectivity) (graph.Heuristic[Cell], error) {
	switch name {
	case "":
		return HeuristicFor(conn), nil
	case "manhattan":
		return Manhattan, nil
	case "octile":
		return Octile, nil
	case "euclidean":
		return Euclidean, nil
	case "zero":
		return graph.Zero[Cell](), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}
