package graph

// PathCost sums Cost over consecutive vertices of path. A single-vertex
// path costs 0; an empty path, meaning "no path", costs +Inf, as does a
// path crossing an impassable edge.
func PathCost[V comparable](g Graph[V], path []V) float64 {
	if len(path) == 0 {
		return Inf
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		c := g.Cost(path[i-1], path[i])
		if c == Inf {
			return Inf
		}
		total += c
	}
	return total
}

// Reverse reverses path in place and returns it.
func Reverse[V any](path []V) []V {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Validate returns ErrInvalidVertex if any of vs is not part of g.
func Validate[V comparable](g Graph[V], vs ...V) error {
	for _, v := range vs {
		if !g.HasVertex(v) {
			return ErrInvalidVertex
		}
	}
	return nil
}
