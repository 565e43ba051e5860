package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/replan/bfs"
	"github.com/katalvlaran/replan/core"
	"github.com/katalvlaran/replan/graph"
)

// chain builds the directed chain A→B→C→D plus A→C.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "C"}} {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e[0], e[1], err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[string](nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := chain(t)
	if _, err := bfs.BFS[string](g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS[string](g, "A", bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_Depths checks hop counts, order and path reconstruction.
func TestBFS_Depths(t *testing.T) {
	res, err := bfs.BFS[string](chain(t), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	path, err := res.PathTo("D")
	if err != nil {
		t.Fatalf("PathTo(D): %v", err)
	}
	if want := []string{"A", "C", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(D) = %v; want %v", path, want)
	}
	if p, err := res.PathTo("A"); err != nil || !reflect.DeepEqual(p, []string{"A"}) {
		t.Errorf("PathTo(A) = %v, %v; want [A]", p, err)
	}
}

// TestBFS_SkipsImpassable treats +Inf edges as absent.
func TestBFS_SkipsImpassable(t *testing.T) {
	g := chain(t)
	if _, err := g.SetWeight("C", "D", graph.Inf); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}
	res, err := bfs.BFS[string](g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reached("D") {
		t.Errorf("D reached across an impassable edge")
	}
	if _, err := res.PathTo("D"); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("PathTo(D) error = %v; want ErrNotReached", err)
	}
}

// TestBFS_Reverse walks predecessors.
func TestBFS_Reverse(t *testing.T) {
	res, err := bfs.BFS[string](chain(t), "D", bfs.WithReverse[string]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantDepth := map[string]int{"D": 0, "C": 1, "B": 2, "A": 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	path, err := res.PathTo("A")
	if err != nil {
		t.Fatalf("PathTo(A): %v", err)
	}
	if want := []string{"D", "C", "A"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(A) = %v; want %v", path, want)
	}
}

// TestBFS_Options covers MaxDepth, filtering, OnVisit and cancellation.
func TestBFS_Options(t *testing.T) {
	g := chain(t)

	res, err := bfs.BFS[string](g, "A", bfs.WithMaxDepth[string](1))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached("D") || !res.Reached("C") {
		t.Errorf("MaxDepth(1) reached %v", res.Order)
	}

	res, err = bfs.BFS[string](g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS[string](g, "A", bfs.WithOnVisit(func(v string, _ int) error {
		if v == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit error = %v; want stop", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS[string](g, "A", bfs.WithContext[string](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled BFS error = %v; want context.Canceled", err)
	}
}
