package gridgraph

import "github.com/katalvlaran/replan/bfs"

// ConnectedComponents finds all contiguous regions of free cells
// (value ≥ 0), according to gg.Conn connectivity.
// Returns a slice of components; each component lists its cells in BFS
// order from the component's first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Cell

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c0 := Cell{X: x, Y: y}
			if gg.Blocked(c0) || seen[gg.index(c0)] {
				continue
			}
			// BFS to collect component
			queue := []Cell{c0}
			seen[gg.index(c0)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range gg.neighbors(queue[qi]) {
					if gg.Blocked(n) || seen[gg.index(n)] {
						continue
					}
					seen[gg.index(n)] = true
					queue = append(queue, n)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether free cells a and b lie in the same component.
// It is false if either is blocked or out of bounds.
func (gg *GridGraph) Connected(a, b Cell) bool {
	if gg.Blocked(a) || gg.Blocked(b) {
		return false
	}
	res, err := bfs.BFS[Cell](gg, a)
	return err == nil && res.Reached(b)
}
