package astar_test

import (
	"testing"

	"github.com/katalvlaran/replan/astar"
	"github.com/katalvlaran/replan/builder"
	"github.com/katalvlaran/replan/core"
)

func BenchmarkSearchGrid50(b *testing.B) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(1, 4)},
		builder.Grid(50, 50),
	)
	if err != nil {
		b.Fatal(err)
	}
	start, goal := builder.GridID(0, 0), builder.GridID(49, 49)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search[string](g, nil, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}
