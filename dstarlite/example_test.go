package dstarlite_test

import (
	"fmt"

	"github.com/katalvlaran/replan/core"
	"github.com/katalvlaran/replan/dstarlite"
	"github.com/katalvlaran/replan/graph"
)

// ExamplePlanner_ApplyChanges blocks the cheap edge after the first plan
// and repairs the route incrementally.
func ExamplePlanner_ApplyChanges() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("dock", "hall", 1)
	_ = g.AddEdge("hall", "lab", 1)
	_ = g.AddEdge("dock", "yard", 2)
	_ = g.AddEdge("yard", "lab", 2)

	p, err := dstarlite.New[string](g, nil, "dock", "lab")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := p.Path()
	fmt.Println(path, p.Cost())

	changes, _ := g.SetWeight("hall", "lab", graph.Inf)
	_ = p.ApplyChanges(changes)
	path, _ = p.Path()
	fmt.Println(path, p.Cost())
	// Output:
	// [dock hall lab] 2
	// [dock yard lab] 4
}
