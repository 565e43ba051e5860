package bfs

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/replan/graph"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph graph.Graph[V]
	opts  Options[V]
	ctx   context.Context
	queue []queueItem[V]
	res   *Result[V]
}

// BFS runs breadth-first search on g starting from start. Only edges with
// a finite cost are followed, so an impassable edge counts as absent.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or any
// OnVisit error.
func BFS[V comparable](g graph.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &walker[V]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &Result[V]{
			Start:  start,
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}
	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

// enqueue marks v reached at depth d with the given parent.
func (w *walker[V]) enqueue(v V, d int, parent V) {
	w.res.Depth[v] = d
	if d > 0 {
		w.res.Parent[v] = parent
	}
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors enqueues each unseen neighbor reachable over a finite
// edge, honoring the filter and MaxDepth.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	neighbors := w.graph.Successors(item.v)
	if w.opts.Reverse {
		neighbors = w.graph.Predecessors(item.v)
	}
	for _, nbr := range neighbors {
		if w.res.Reached(nbr) || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		c := w.graph.Cost(item.v, nbr)
		if w.opts.Reverse {
			c = w.graph.Cost(nbr, item.v)
		}
		if math.IsInf(c, 1) {
			continue
		}
		w.enqueue(nbr, next, item.v)
	}
}
