package dstarlite

import (
	"errors"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/replan/graph"
)

// Plan drives the start to the goal on the current graph: repair, step to
// the best successor, UpdateStart, repeat. The returned path lists every
// vertex visited, beginning with the start as it was when Plan was called.
//
// If the goal is unreachable Plan returns an empty path and a nil error.
// Plan moves the planner's start; it ends at the goal.
func (p *Planner[V]) Plan() ([]V, error) {
	if err := p.ComputeShortestPath(); err != nil {
		return nil, err
	}
	path := []V{p.start}
	visited := map[V]bool{p.start: true}
	for p.start != p.goal {
		next, err := p.Step()
		if errors.Is(err, ErrNoPath) {
			klog.Warningf("dstarlite: no path from %v to %v", p.start, p.goal)
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if visited[next] {
			return nil, ErrStalled
		}
		visited[next] = true
		path = append(path, next)
	}

	return path, nil
}

// Step repairs the plan and moves the start one vertex along it, returning
// the new start. At the goal it returns the goal without moving. If the
// goal is unreachable it returns the unchanged start and ErrNoPath.
func (p *Planner[V]) Step() (V, error) {
	if p.start == p.goal {
		return p.goal, nil
	}
	if err := p.ComputeShortestPath(); err != nil {
		return p.start, err
	}
	if p.rhs.Get(p.start) == graph.Inf {
		return p.start, ErrNoPath
	}
	next, c := p.bestSuccessor(p.start)
	if c == graph.Inf {
		return p.start, ErrNoPath
	}
	if err := p.UpdateStart(next); err != nil {
		return p.start, err
	}

	return next, nil
}

// Path repairs the plan and returns the current best route from start to
// goal without moving the start. Unreachable goals yield an empty path.
func (p *Planner[V]) Path() ([]V, error) {
	if err := p.ComputeShortestPath(); err != nil {
		return nil, err
	}
	if p.rhs.Get(p.start) == graph.Inf {
		return nil, nil
	}

	path := []V{p.start}
	visited := map[V]bool{p.start: true}
	for cur := p.start; cur != p.goal; {
		next, c := p.bestSuccessor(cur)
		if c == graph.Inf || visited[next] {
			return nil, ErrStalled
		}
		visited[next] = true
		path = append(path, next)
		cur = next
	}

	return path, nil
}

// bestSuccessor returns argmin over successors s' of c(s,s') + g(s'),
// keeping the first on ties.
func (p *Planner[V]) bestSuccessor(s V) (V, float64) {
	var best V
	bestCost := graph.Inf
	for _, sp := range p.g.Successors(s) {
		if c := p.g.Cost(s, sp) + p.gv.Get(sp); c < bestCost {
			best, bestCost = sp, c
		}
	}
	return best, bestCost
}

// The value accessors below are total: a vertex the graph does not contain
// was never reached, so it reads as g = rhs = +Inf and is consistent.

// G returns the accepted cost-to-goal estimate of v.
func (p *Planner[V]) G(v V) float64 { return p.gv.Get(v) }

// RHS returns the one-step lookahead value of v.
func (p *Planner[V]) RHS(v V) float64 { return p.rhs.Get(v) }

// Consistent reports whether g(v) == rhs(v).
func (p *Planner[V]) Consistent(v V) bool { return p.gv.Get(v) == p.rhs.Get(v) }

// Km returns the accumulated heuristic offset.
func (p *Planner[V]) Km() float64 { return p.km }

// Start returns the current start vertex.
func (p *Planner[V]) Start() V { return p.start }

// Goal returns the goal vertex.
func (p *Planner[V]) Goal() V { return p.goal }

// Cost returns g(start): the optimal remaining cost after a completed
// ComputeShortestPath, +Inf if the goal is unreachable.
func (p *Planner[V]) Cost() float64 { return p.gv.Get(p.start) }

// Expansions returns the number of vertices processed over the planner's
// lifetime.
func (p *Planner[V]) Expansions() int { return p.expansions }

// LastExpansions returns the vertices processed by the most recent
// ComputeShortestPath call.
func (p *Planner[V]) LastExpansions() int { return p.lastExpansions }

// QueueLen returns the number of inconsistent vertices.
func (p *Planner[V]) QueueLen() int { return p.queue.Len() }
