package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/replan/bfs"
	"github.com/katalvlaran/replan/core"
)

// ExampleBFS finds the fewest-hop route through a small undirected graph.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddEdge("gate", "lobby", 0)
	_ = g.AddEdge("lobby", "stairs", 0)
	_ = g.AddEdge("stairs", "roof", 0)
	_ = g.AddEdge("lobby", "lift", 0)
	_ = g.AddEdge("lift", "roof", 0)

	res, _ := bfs.BFS[string](g, "gate")
	path, _ := res.PathTo("roof")
	fmt.Println(path, res.Depth["roof"])
	// Output:
	// [gate lobby lift roof] 3
}
