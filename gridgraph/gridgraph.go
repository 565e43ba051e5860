package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/replan/core"
	"github.com/katalvlaran/replan/graph"
)

var _ graph.Graph[Cell] = (*GridGraph)(nil)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed values[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadValue for NaN or ±Inf.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]float64, h)
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			if !finite(v) {
				return nil, fmt.Errorf("gridgraph: cell %d,%d: %w", x, y, ErrBadValue)
			}
		}
		cells[y] = make([]float64, w)
		copy(cells[y], row)
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		values:          cells,
		neighborOffsets: offsets,
	}, nil
}

// NewFreeGrid returns a width×height grid with every cell free at value 0.
func NewFreeGrid(width, height int, opts GridOptions) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]float64, height)
	for y := range values {
		values[y] = make([]float64, width)
	}
	return NewGridGraph(values, opts)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// HasVertex is InBounds under the graph.Graph name.
func (gg *GridGraph) HasVertex(c Cell) bool { return gg.InBounds(c) }

// NeighborOffsets returns the precomputed neighbor offsets {dx, dy}.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Value returns the stored value of c.
func (gg *GridGraph) Value(c Cell) (float64, error) {
	if !gg.InBounds(c) {
		return 0, fmt.Errorf("gridgraph: value of %v: %w", c, ErrOutOfBounds)
	}
	return gg.values[c.Y][c.X], nil
}

// Blocked reports whether c is an obstacle. Out-of-bounds cells are blocked.
func (gg *GridGraph) Blocked(c Cell) bool {
	return !gg.InBounds(c) || gg.values[c.Y][c.X] < 0
}

// neighbors lists the in-bounds topological neighbors of c, obstacles
// included, in offset order.
func (gg *GridGraph) neighbors(c Cell) []Cell {
	if !gg.InBounds(c) {
		return nil
	}
	out := make([]Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if gg.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Successors returns the in-bounds neighbors of c. Obstacles stay listed;
// their edges cost +Inf so a later Unblock can restore them.
func (gg *GridGraph) Successors(c Cell) []Cell { return gg.neighbors(c) }

// Predecessors equals Successors: grid adjacency is symmetric.
func (gg *GridGraph) Predecessors(c Cell) []Cell { return gg.neighbors(c) }

// Cost returns step×(1+(va+vb)/2) for adjacent cells a and b, with step 1
// orthogonally and √2 diagonally. It returns +Inf if either cell is an
// obstacle, out of bounds, or the two are not adjacent under gg.Conn.
func (gg *GridGraph) Cost(a, b Cell) float64 {
	if !gg.InBounds(a) || !gg.InBounds(b) {
		return graph.Inf
	}
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > 1 || dy > 1 || dx+dy == 0 {
		return graph.Inf
	}
	step := 1.0
	if dx+dy == 2 {
		if gg.Conn != Conn8 {
			return graph.Inf
		}
		step = math.Sqrt2
	}
	va, vb := gg.values[a.Y][a.X], gg.values[b.Y][b.X]
	if va < 0 || vb < 0 {
		return graph.Inf
	}
	return step * (1 + (va+vb)/2)
}

// SetCell stores v at c and returns the cost change of every edge into or
// out of c whose cost actually changed. The result can be passed straight
// to dstarlite.Planner.ApplyChanges.
func (gg *GridGraph) SetCell(c Cell, v float64) ([]graph.EdgeChange[Cell], error) {
	if !gg.InBounds(c) {
		return nil, fmt.Errorf("gridgraph: set %v: %w", c, ErrOutOfBounds)
	}
	if !finite(v) {
		return nil, fmt.Errorf("gridgraph: set %v: %w", c, ErrBadValue)
	}
	ns := gg.neighbors(c)
	old := make([]float64, len(ns))
	for i, n := range ns {
		old[i] = gg.Cost(c, n)
	}
	gg.values[c.Y][c.X] = v

	var changes []graph.EdgeChange[Cell]
	for i, n := range ns {
		nw := gg.Cost(c, n)
		if nw == old[i] {
			continue
		}
		changes = append(changes,
			graph.EdgeChange[Cell]{From: c, To: n, Old: old[i], New: nw},
			graph.EdgeChange[Cell]{From: n, To: c, Old: old[i], New: nw},
		)
	}
	return changes, nil
}

// Block marks c as an obstacle.
func (gg *GridGraph) Block(c Cell) ([]graph.EdgeChange[Cell], error) {
	return gg.SetCell(c, Obstacle)
}

// Unblock frees c at value 0.
func (gg *GridGraph) Unblock(c Cell) ([]graph.EdgeChange[Cell], error) {
	return gg.SetCell(c, 0)
}

// Clone returns a deep copy of gg.
func (gg *GridGraph) Clone() *GridGraph {
	cells := make([][]float64, gg.Height)
	for y := range cells {
		cells[y] = make([]float64, gg.Width)
		copy(cells[y], gg.values[y])
	}
	return &GridGraph{
		Width:           gg.Width,
		Height:          gg.Height,
		Conn:            gg.Conn,
		values:          cells,
		neighborOffsets: gg.neighborOffsets,
	}
}

// Values returns a copy of the grid, indexed [y][x].
func (gg *GridGraph) Values() [][]float64 {
	return gg.Clone().values
}

// ToCoreGraph converts the GridGraph into a weighted, undirected *core.Graph.
// Each cell becomes a vertex with ID Cell.String() and metadata {x,y,value}.
// Each adjacent pair is joined once with weight Cost(a,b); pairs touching an
// obstacle get +Inf so the edge can later be reopened with SetWeight.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			_ = g.AddVertex(c.String())
			v, _ := g.Vertex(c.String())
			v.Metadata["x"] = x
			v.Metadata["y"] = y
			v.Metadata["value"] = gg.values[y][x]
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			for _, n := range gg.neighbors(c) {
				if gg.index(n) < gg.index(c) {
					continue
				}
				_ = g.AddEdge(c.String(), n.String(), gg.Cost(c, n))
			}
		}
	}

	return g
}

// index maps c to a row-major index: y*Width + x.
func (gg *GridGraph) index(c Cell) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row-major index back to a Cell.
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
