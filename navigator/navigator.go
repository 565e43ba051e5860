package navigator

import (
	"errors"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/replan/dstarlite"
	"github.com/katalvlaran/replan/graph"
	"github.com/katalvlaran/replan/gridgraph"
)

// Navigator moves a robot from start to goal, replanning as it senses.
type Navigator struct {
	world    *gridgraph.GridGraph
	belief   *gridgraph.GridGraph
	planner  *dstarlite.Planner[gridgraph.Cell]
	opts     Options
	pos      gridgraph.Cell
	goal     gridgraph.Cell
	steps    int
	maxSteps int
	trace    Trace

	// move number whose events were applied, -1 before the first
	eventsAt int
}

// New builds a navigator on a copy of world. The belief starts as the
// world with every hidden cell reported free.
func New(world *gridgraph.GridGraph, start, goal gridgraph.Cell, opts ...Option) (*Navigator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if world == nil {
		return nil, errors.New("navigator: nil world")
	}
	if !world.InBounds(start) || !world.InBounds(goal) {
		return nil, fmt.Errorf("navigator: %v→%v: %w", start, goal, gridgraph.ErrOutOfBounds)
	}
	if world.Blocked(start) || world.Blocked(goal) {
		return nil, fmt.Errorf("navigator: %v→%v: %w", start, goal, ErrBlockedEndpoint)
	}
	for _, ev := range cfg.Events {
		for _, c := range append(append([]gridgraph.Cell(nil), ev.Block...), ev.Clear...) {
			if !world.InBounds(c) {
				return nil, fmt.Errorf("navigator: event at step %d: %v: %w", ev.Step, c, gridgraph.ErrOutOfBounds)
			}
		}
	}

	n := &Navigator{
		world:    world.Clone(),
		belief:   world.Clone(),
		opts:     cfg,
		pos:      start,
		goal:     goal,
		trace:    Trace{Path: []gridgraph.Cell{start}},
		eventsAt: -1,
	}
	for _, c := range cfg.Hidden {
		if _, err := n.belief.Unblock(c); err != nil {
			return nil, fmt.Errorf("navigator: hidden cell: %w", err)
		}
	}

	h := cfg.Heuristic
	if h == nil {
		h = world.DefaultHeuristic()
	}
	p, err := dstarlite.New[gridgraph.Cell](n.belief, h, start, goal, cfg.PlannerOptions...)
	if err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}
	n.planner = p

	n.maxSteps = cfg.MaxSteps
	if n.maxSteps == 0 {
		n.maxSteps = 4 * world.Width * world.Height
	}

	return n, nil
}

// Sense compares the belief with the world inside the sensor radius,
// corrects the belief and returns the edge cost changes that caused.
// The changes are not forwarded to the planner; Step does that.
func (n *Navigator) Sense() ([]graph.EdgeChange[gridgraph.Cell], error) {
	r := n.opts.SensorRadius
	var changes []graph.EdgeChange[gridgraph.Cell]
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c := gridgraph.Cell{X: n.pos.X + dx, Y: n.pos.Y + dy}
			if !n.world.InBounds(c) {
				continue
			}
			wv, _ := n.world.Value(c)
			bv, _ := n.belief.Value(c)
			if wv == bv {
				continue
			}
			ch, err := n.belief.SetCell(c, wv)
			if err != nil {
				return changes, err
			}
			klog.V(3).Infof("navigator: sensed %v: %g → %g", c, bv, wv)
			n.trace.Revealed++
			changes = append(changes, ch...)
		}
	}
	return changes, nil
}

// applyEvents applies the events due before move number n.steps, once.
func (n *Navigator) applyEvents() error {
	if n.eventsAt == n.steps {
		return nil
	}
	n.eventsAt = n.steps
	for _, ev := range n.opts.Events {
		if ev.Step != n.steps {
			continue
		}
		for _, c := range ev.Block {
			if c == n.pos {
				klog.Warningf("navigator: event at step %d would block the robot at %v; skipped", ev.Step, c)
				continue
			}
			if _, err := n.world.Block(c); err != nil {
				return err
			}
		}
		for _, c := range ev.Clear {
			if _, err := n.world.Unblock(c); err != nil {
				return err
			}
		}
		klog.V(2).Infof("navigator: step %d: event blocked %d, cleared %d", ev.Step, len(ev.Block), len(ev.Clear))
	}
	return nil
}

// Step applies due events, senses, repairs the plan and moves one cell.
// It returns the new position. At the goal it returns the goal without
// moving. If the goal is unreachable on the belief the robot stays put
// and the error wraps ErrNoPath.
//
// When the planner runs out of its expansion budget the robot also stays
// put, Trace().Paused grows and the error is nil; the next Step resumes
// the repair where it stopped.
func (n *Navigator) Step() (gridgraph.Cell, error) {
	if n.pos == n.goal {
		return n.goal, nil
	}
	if err := n.applyEvents(); err != nil {
		return n.pos, err
	}
	changes, err := n.Sense()
	if err != nil {
		return n.pos, err
	}
	if len(changes) > 0 {
		if err := n.planner.ApplyChanges(changes); err != nil {
			return n.pos, err
		}
		n.trace.Replans++
	}

	next, err := n.planner.Step()
	n.trace.Expansions += n.planner.LastExpansions()
	if errors.Is(err, dstarlite.ErrBudgetExhausted) {
		n.trace.Paused++
		klog.V(2).Infof("navigator: step %d: planner paused at %v after %d expansions",
			n.steps, n.pos, n.planner.LastExpansions())
		return n.pos, nil
	}
	if errors.Is(err, dstarlite.ErrNoPath) {
		klog.Warningf("navigator: no path from %v to %v after %d steps", n.pos, n.goal, n.steps)
		return n.pos, fmt.Errorf("%w: from %v to %v", ErrNoPath, n.pos, n.goal)
	}
	if err != nil {
		return n.pos, err
	}

	n.trace.Cost += n.world.Cost(n.pos, next)
	n.trace.Path = append(n.trace.Path, next)
	klog.V(2).Infof("navigator: step %d: %v → %v (%d changes, %d expansions)",
		n.steps, n.pos, next, len(changes), n.planner.LastExpansions())
	n.pos = next
	n.steps++

	return next, nil
}

// Run steps until the goal is reached. Moves and paused Step calls
// together count against the step limit. On ErrNoPath or ErrStepLimit the
// returned trace covers the moves made so far.
func (n *Navigator) Run() (Trace, error) {
	for n.pos != n.goal {
		if n.steps+n.trace.Paused >= n.maxSteps {
			return n.Trace(), fmt.Errorf("%w: %d", ErrStepLimit, n.maxSteps)
		}
		if _, err := n.Step(); err != nil {
			return n.Trace(), err
		}
	}
	klog.V(2).Infof("navigator: reached %v in %d steps, cost %g, %d replans",
		n.goal, n.steps, n.trace.Cost, n.trace.Replans)

	return n.Trace(), nil
}

// Trace returns a copy of the run so far.
func (n *Navigator) Trace() Trace {
	t := n.trace
	t.Path = append([]gridgraph.Cell(nil), n.trace.Path...)
	return t
}

// Position returns the robot's cell.
func (n *Navigator) Position() gridgraph.Cell { return n.pos }

// Goal returns the goal cell.
func (n *Navigator) Goal() gridgraph.Cell { return n.goal }

// Steps returns the number of moves made.
func (n *Navigator) Steps() int { return n.steps }

// World returns the ground-truth grid, events applied.
func (n *Navigator) World() *gridgraph.GridGraph { return n.world }

// Belief returns the grid the planner searches.
func (n *Navigator) Belief() *gridgraph.GridGraph { return n.belief }

// Planner exposes the underlying D*-Lite planner.
func (n *Navigator) Planner() *dstarlite.Planner[gridgraph.Cell] { return n.planner }
