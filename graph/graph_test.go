package graph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/replan/graph"
)

// arcs is a minimal directed Graph[int] used to exercise the helpers.
type arcs map[int]map[int]float64

func (a arcs) Successors(v int) []int {
	var out []int
	for w := range a[v] {
		out = append(out, w)
	}
	return out
}

func (a arcs) Predecessors(v int) []int {
	var out []int
	for u, nb := range a {
		if _, ok := nb[v]; ok {
			out = append(out, u)
		}
	}
	return out
}

func (a arcs) Cost(from, to int) float64 {
	if c, ok := a[from][to]; ok {
		return c
	}
	return graph.Inf
}

func (a arcs) HasVertex(v int) bool {
	if _, ok := a[v]; ok {
		return true
	}
	return len(a.Predecessors(v)) > 0
}

func TestValueMap_DefaultsToInf(t *testing.T) {
	m := graph.NewValueMap[string](0)
	assert.True(t, math.IsInf(m.Get("A"), 1))
	assert.False(t, m.Finite("A"))

	m.Set("A", 2.5)
	assert.Equal(t, 2.5, m.Get("A"))
	assert.True(t, m.Finite("A"))

	m.Set("A", graph.Inf)
	assert.True(t, math.IsInf(m.Get("A"), 1))
	assert.Len(t, m, 0, "storing +Inf must forget the vertex")
}

func TestPathCost(t *testing.T) {
	g := arcs{1: {2: 1.5}, 2: {3: 2}, 3: {4: graph.Inf}}

	assert.Equal(t, 3.5, graph.PathCost[int](g, []int{1, 2, 3}))
	assert.Equal(t, 0.0, graph.PathCost[int](g, []int{2}))
	assert.True(t, math.IsInf(graph.PathCost[int](g, nil), 1))
	assert.True(t, math.IsInf(graph.PathCost[int](g, []int{1, 2, 3, 4}), 1))
	assert.True(t, math.IsInf(graph.PathCost[int](g, []int{1, 3}), 1), "non-adjacent hop")
}

func TestValidate(t *testing.T) {
	g := arcs{1: {2: 1}}
	require.NoError(t, graph.Validate[int](g, 1, 2))
	err := graph.Validate[int](g, 1, 7)
	assert.True(t, errors.Is(err, graph.ErrInvalidVertex))
}

func TestHeuristicFuncAndZero(t *testing.T) {
	h := graph.HeuristicFunc[int](func(a, b int) float64 { return float64(b - a) })
	assert.Equal(t, 3.0, h.Estimate(1, 4))
	assert.Equal(t, 0.0, graph.Zero[int]().Estimate(1, 4))
}

func TestReverseAndEdgeChange(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, graph.Reverse([]int{1, 2, 3}))
	assert.Empty(t, graph.Reverse([]int{}))

	up := graph.EdgeChange[int]{From: 1, To: 2, Old: 1, New: graph.Inf}
	down := graph.EdgeChange[int]{From: 1, To: 2, Old: graph.Inf, New: 1}
	assert.True(t, up.Increased())
	assert.False(t, down.Increased())
}
