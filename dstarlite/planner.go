package dstarlite

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/replan/graph"
	"github.com/katalvlaran/replan/keyqueue"
)

// Planner is a D*-Lite search instance. It owns its g/rhs tables, its
// queue and Km; nothing is shared between planners.
type Planner[V comparable] struct {
	g     graph.Graph[V]
	h     graph.Heuristic[V]
	opts  Options
	start V
	goal  V

	gv    graph.ValueMap[V]
	rhs   graph.ValueMap[V]
	km    float64
	queue *keyqueue.Queue[V]

	expansions     int // lifetime
	lastExpansions int // most recent ComputeShortestPath call
}

// New creates a planner for start → goal. Nothing is searched until
// ComputeShortestPath (or Plan/Path/Step) is called.
//
// A nil h is treated as graph.Zero. h must be admissible and consistent
// for the results to be optimal; this is not checked.
func New[V comparable](g graph.Graph[V], h graph.Heuristic[V], start, goal V, opts ...Option) (*Planner[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, fmt.Errorf("dstarlite: nil graph: %w", graph.ErrInvalidVertex)
	}
	if err := graph.Validate(g, start, goal); err != nil {
		return nil, fmt.Errorf("dstarlite: new planner %v→%v: %w", start, goal, err)
	}
	if h == nil {
		h = graph.Zero[V]()
	}

	p := &Planner[V]{
		g:     g,
		h:     h,
		opts:  cfg,
		start: start,
		goal:  goal,
		gv:    graph.NewValueMap[V](64),
		rhs:   graph.NewValueMap[V](64),
		queue: keyqueue.New[V](64),
	}
	p.rhs.Set(goal, 0)
	p.queue.Update(goal, keyqueue.Key{K1: h.Estimate(start, goal), K2: 0})

	return p, nil
}

// calculateKey returns [min(g,rhs) + h(start,s) + Km, min(g,rhs)].
func (p *Planner[V]) calculateKey(s V) keyqueue.Key {
	m := min(p.gv.Get(s), p.rhs.Get(s))
	return keyqueue.Key{K1: m + p.h.Estimate(p.start, s) + p.km, K2: m}
}

// updateVertex reconciles u's queue membership with its consistency: an
// inconsistent vertex is queued (or re-keyed), a consistent one dropped.
func (p *Planner[V]) updateVertex(u V) {
	if p.gv.Get(u) != p.rhs.Get(u) {
		p.queue.Update(u, p.calculateKey(u))
		return
	}
	p.queue.Remove(u)
}

// ComputeShortestPath repairs g until start is consistent and no queued
// key orders before start's key. It returns ctx.Err() or
// ErrBudgetExhausted if stopped early; in both cases every processed
// vertex was fully processed and a later call resumes the search.
func (p *Planner[V]) ComputeShortestPath() error {
	p.lastExpansions = 0
	for p.queue.Len() > 0 &&
		(p.queue.TopKey().Less(p.calculateKey(p.start)) || p.rhs.Get(p.start) != p.gv.Get(p.start)) {
		u, _ := p.queue.Top()
		kOld := p.queue.TopKey()

		if err := p.opts.Ctx.Err(); err != nil {
			return err
		}
		if p.opts.MaxExpansions > 0 && p.lastExpansions >= p.opts.MaxExpansions {
			return ErrBudgetExhausted
		}
		p.lastExpansions++
		p.expansions++

		kNew := p.calculateKey(u)
		switch gu, ru := p.gv.Get(u), p.rhs.Get(u); {
		case kOld.Less(kNew):
			p.queue.Update(u, kNew)
		case gu > ru:
			klog.V(4).Infof("dstarlite: overconsistent %v g=%g rhs=%g key=%v", u, gu, ru, kNew)
			p.gv.Set(u, ru)
			p.queue.Remove(u)
			for _, s := range p.g.Predecessors(u) {
				if s != p.goal {
					p.rhs.Set(s, min(p.rhs.Get(s), p.g.Cost(s, u)+ru))
				}
				p.updateVertex(s)
			}
		default:
			klog.V(4).Infof("dstarlite: underconsistent %v g=%g rhs=%g key=%v", u, gu, ru, kNew)
			p.gv.Set(u, graph.Inf)
			for _, s := range p.predsAndSelf(u) {
				if s != p.goal && p.rhs.Get(s) == p.g.Cost(s, u)+gu {
					p.rhs.Set(s, p.lookahead(s))
				}
				p.updateVertex(s)
			}
		}
	}

	klog.V(2).Infof("dstarlite: replanned start=%v cost=%g expansions=%d queue=%d km=%g",
		p.start, p.gv.Get(p.start), p.lastExpansions, p.queue.Len(), p.km)

	return nil
}

// lookahead is min over successors s' of c(s,s') + g(s').
func (p *Planner[V]) lookahead(s V) float64 {
	best := graph.Inf
	for _, sp := range p.g.Successors(s) {
		best = min(best, p.g.Cost(s, sp)+p.gv.Get(sp))
	}
	return best
}

// predsAndSelf returns Pred(u) ∪ {u} without duplicates.
func (p *Planner[V]) predsAndSelf(u V) []V {
	preds := p.g.Predecessors(u)
	out := make([]V, 0, len(preds)+1)
	seen := make(map[V]struct{}, len(preds)+1)
	for _, s := range preds {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if _, dup := seen[u]; !dup {
		out = append(out, u)
	}
	return out
}

// FlagChange records that the cost of edge u→v changed from costOld to
// costNew. The graph must already report costNew.
func (p *Planner[V]) FlagChange(u, v V, costOld, costNew float64) error {
	if err := graph.Validate(p.g, u, v); err != nil {
		return fmt.Errorf("dstarlite: flag change %v→%v: %w", u, v, err)
	}
	if u != p.goal {
		gv := p.gv.Get(v)
		switch {
		case costOld > costNew:
			p.rhs.Set(u, min(p.rhs.Get(u), costNew+gv))
		case p.rhs.Get(u) == costOld+gv:
			p.rhs.Set(u, p.lookahead(u))
		}
	}
	p.updateVertex(u)

	return nil
}

// ApplyChanges calls FlagChange for every change in order. It stops at the
// first invalid vertex; earlier changes stay applied.
func (p *Planner[V]) ApplyChanges(changes []graph.EdgeChange[V]) error {
	for _, c := range changes {
		if err := p.FlagChange(c.From, c.To, c.Old, c.New); err != nil {
			return err
		}
	}
	if len(changes) > 0 {
		klog.V(2).Infof("dstarlite: flagged %d edge changes", len(changes))
	}
	return nil
}

// UpdateStart moves the start to s, adding h(oldStart, s) to Km.
func (p *Planner[V]) UpdateStart(s V) error {
	if !p.g.HasVertex(s) {
		return fmt.Errorf("dstarlite: update start %v: %w", s, graph.ErrInvalidVertex)
	}
	p.km += p.h.Estimate(p.start, s)
	p.start = s

	return nil
}
