package astar

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/replan/graph"
	"github.com/katalvlaran/replan/keyqueue"
)

// Search runs A* from start to goal over g guided by h.
//
// The open set is a keyqueue.Queue keyed by (f, insertion sequence), so a
// cheaper route to an open vertex repositions it in place instead of
// leaving a stale duplicate behind. Relaxation only accepts strict
// improvements.
func Search[V comparable](g graph.Graph[V], h graph.Heuristic[V], start, goal V, opts ...Option) (Result[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result[V]{Cost: graph.Inf}, fmt.Errorf("astar: nil graph: %w", graph.ErrInvalidVertex)
	}
	if err := graph.Validate(g, start, goal); err != nil {
		return Result[V]{Cost: graph.Inf}, fmt.Errorf("astar: search %v→%v: %w", start, goal, err)
	}
	if h == nil {
		h = graph.Zero[V]()
	}
	if start == goal {
		return Result[V]{Path: []V{start}, Cost: 0}, nil
	}

	s := &search[V]{
		g:        g,
		h:        h,
		goal:     goal,
		open:     keyqueue.New[V](64),
		gScore:   graph.NewValueMap[V](64),
		cameFrom: make(map[V]V),
		closed:   make(map[V]bool),
	}
	s.gScore.Set(start, 0)
	s.push(start)

	for s.open.Len() > 0 {
		if err := cfg.Ctx.Err(); err != nil {
			return Result[V]{Cost: graph.Inf, Expanded: s.expanded}, err
		}
		if cfg.MaxExpansions > 0 && s.expanded >= cfg.MaxExpansions {
			return Result[V]{Cost: graph.Inf, Expanded: s.expanded}, ErrBudgetExhausted
		}

		u, _, _ := s.open.Pop()
		if u == goal {
			return Result[V]{
				Path:     s.reconstruct(start),
				Cost:     s.gScore.Get(goal),
				Expanded: s.expanded,
			}, nil
		}
		s.closed[u] = true
		s.expanded++
		s.expand(u)
	}

	klog.Warningf("astar: no path found from %v to %v after %d expansions", start, goal, s.expanded)

	return Result[V]{Cost: graph.Inf, Expanded: s.expanded}, nil
}

// search holds the mutable state of one Search call.
type search[V comparable] struct {
	g        graph.Graph[V]
	h        graph.Heuristic[V]
	goal     V
	open     *keyqueue.Queue[V]
	gScore   graph.ValueMap[V]
	cameFrom map[V]V
	closed   map[V]bool
	seq      float64
	expanded int
}

// push (re)queues v with its current f value and a fresh sequence number.
func (s *search[V]) push(v V) {
	f := s.gScore.Get(v) + s.h.Estimate(v, s.goal)
	s.seq++
	s.open.Update(v, keyqueue.Key{K1: f, K2: s.seq})
}

func (s *search[V]) expand(u V) {
	gu := s.gScore.Get(u)
	klog.V(4).Infof("astar: expand %v g=%g open=%d", u, gu, s.open.Len())
	for _, v := range s.g.Successors(u) {
		if s.closed[v] {
			continue
		}
		c := s.g.Cost(u, v)
		if c == graph.Inf {
			continue
		}
		if tentative := gu + c; tentative < s.gScore.Get(v) {
			s.gScore.Set(v, tentative)
			s.cameFrom[v] = u
			s.push(v)
		}
	}
}

func (s *search[V]) reconstruct(start V) []V {
	path := []V{s.goal}
	for cur := s.goal; cur != start; {
		cur = s.cameFrom[cur]
		path = append(path, cur)
	}

	return graph.Reverse(path)
}
