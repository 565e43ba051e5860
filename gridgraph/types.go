package gridgraph

import "strconv"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// Obstacle is the value Block stores. Any negative value is an obstacle.
const Obstacle = -1.0

// Cell is a grid coordinate: column X, row Y. It is the vertex type of
// GridGraph.
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y", the vertex ID used by ToCoreGraph.
func (c Cell) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a 2D cost grid as a graph of cells.
// Width and Height define dimensions; values[y][x] holds the cell value:
// negative for an obstacle, otherwise the extra traversal cost of the cell.
// neighborOffsets is precomputed for efficient adjacency lookups.
//
// A GridGraph is not safe for concurrent mutation.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	values          [][]float64
	neighborOffsets [][2]int
}
