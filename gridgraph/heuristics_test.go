package gridgraph_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/replan/dijkstra"
	"github.com/katalvlaran/replan/graph"
	"github.com/katalvlaran/replan/gridgraph"
)

// TestHeuristicValues checks the closed forms.
func TestHeuristicValues(t *testing.T) {
	a, b := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 4}
	if got := gridgraph.Manhattan(a, b); got != 7 {
		t.Errorf("Manhattan = %v; want 7", got)
	}
	if got, want := gridgraph.Octile(a, b), 4+3*(math.Sqrt2-1); math.Abs(got-want) > 1e-12 {
		t.Errorf("Octile = %v; want %v", got, want)
	}
	if got := gridgraph.Euclidean(a, b); got != 5 {
		t.Errorf("Euclidean = %v; want 5", got)
	}
}

// TestHeuristicByName covers every name and the default selection.
func TestHeuristicByName(t *testing.T) {
	g4, g8 := gridgraph.Conn4, gridgraph.Conn8
	a, b := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 1}

	cases := []struct {
		conn gridgraph.Connectivity
		name string
		want float64
	}{
		{g4, "", 2},
		{g8, "", math.Sqrt2},
		{g4, "manhattan", 2},
		{g4, "octile", math.Sqrt2},
		{g4, "euclidean", math.Sqrt2},
		{g4, "zero", 0},
	}
	for _, tc := range cases {
		h, err := gridgraph.HeuristicByName(tc.name, tc.conn)
		if err != nil {
			t.Fatalf("HeuristicByName(%q) error: %v", tc.name, err)
		}
		if got := h.Estimate(a, b); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("HeuristicByName(%q).Estimate = %v; want %v", tc.name, got, tc.want)
		}
	}
	if _, err := gridgraph.HeuristicByName("chebyshev", g4); !errors.Is(err, gridgraph.ErrUnknownHeuristic) {
		t.Errorf("unknown name error = %v; want ErrUnknownHeuristic", err)
	}
}

// TestDefaultHeuristicAdmissible compares the default heuristic against
// exact Dijkstra distances to the goal on random cost grids.
func TestDefaultHeuristicAdmissible(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		values := make([][]float64, 12)
		for y := range values {
			values[y] = make([]float64, 12)
			for x := range values[y] {
				switch k := r.Intn(10); {
				case k == 0:
					values[y][x] = gridgraph.Obstacle
				case k < 3:
					values[y][x] = float64(k)
				}
			}
		}
		goal := gridgraph.Cell{X: 11, Y: 11}
		values[goal.Y][goal.X] = 0
		gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{Conn: conn})
		if err != nil {
			t.Fatalf("NewGridGraph error: %v", err)
		}
		dist, _, err := dijkstra.Dijkstra[gridgraph.Cell](gg, goal)
		if err != nil {
			t.Fatalf("Dijkstra error: %v", err)
		}
		h := gg.DefaultHeuristic()
		for y := 0; y < gg.Height; y++ {
			for x := 0; x < gg.Width; x++ {
				c := gridgraph.Cell{X: x, Y: y}
				d := dist.Get(c)
				if d == graph.Inf {
					continue
				}
				if est := h.Estimate(c, goal); est > d+1e-9 {
					t.Errorf("Conn%v: h(%v) = %v > true distance %v", conn, c, est, d)
				}
			}
		}
	}
}
