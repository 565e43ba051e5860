package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/replan/gridgraph"
)

var wallGrid = [][]float64{
	{0, 0, -1, 0},
	{0, 0, -1, 0},
	{0, 0, -1, 0},
}

// TestConnectedComponents checks counts under both connectivities.
func TestConnectedComponents(t *testing.T) {
	cases := []struct {
		name string
		grid [][]float64
		conn gridgraph.Connectivity
		want []int // component sizes in discovery order
	}{
		{"Wall", wallGrid, gridgraph.Conn4, []int{6, 3}},
		{"DiagonalConn4", [][]float64{{0, -1}, {-1, 0}}, gridgraph.Conn4, []int{1, 1}},
		{"DiagonalConn8", [][]float64{{0, -1}, {-1, 0}}, gridgraph.Conn8, []int{2}},
		{"AllBlocked", [][]float64{{-1, -1}}, gridgraph.Conn4, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := gridgraph.NewGridGraph(tc.grid, gridgraph.GridOptions{Conn: tc.conn})
			if err != nil {
				t.Fatalf("NewGridGraph error: %v", err)
			}
			comps := gg.ConnectedComponents()
			if len(comps) != len(tc.want) {
				t.Fatalf("got %d components; want %d", len(comps), len(tc.want))
			}
			for i, comp := range comps {
				if len(comp) != tc.want[i] {
					t.Errorf("component %d size = %d; want %d", i, len(comp), tc.want[i])
				}
			}
		})
	}
}

// TestConnected checks reachability across and around a wall.
func TestConnected(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(wallGrid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	if !gg.Connected(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 2}) {
		t.Errorf("cells on the same side should be connected")
	}
	if gg.Connected(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 0}) {
		t.Errorf("cells across the wall should not be connected")
	}
	if gg.Connected(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 0}) {
		t.Errorf("an obstacle is never connected")
	}
	if _, err := gg.Unblock(gridgraph.Cell{X: 2, Y: 1}); err != nil {
		t.Fatalf("Unblock error: %v", err)
	}
	if !gg.Connected(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 0}) {
		t.Errorf("opening the wall should connect both sides")
	}
}
