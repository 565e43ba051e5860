package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/replan/core"
	"github.com/katalvlaran/replan/dijkstra"
)

// ExampleDijkstra shows distances and path reconstruction on a small
// directed graph.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 1)
	_ = g.AddEdge("B", "D", 3)
	_ = g.AddEdge("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra[string](g, "A", dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[D]=%g path=%v\n", dist.Get("D"), dijkstra.PathTo(prev, "A", "D"))
	// Output: dist[D]=5 path=[A B D]
}
