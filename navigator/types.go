package navigator

import (
	"errors"

	"github.com/katalvlaran/replan/dstarlite"
	"github.com/katalvlaran/replan/graph"
	"github.com/katalvlaran/replan/gridgraph"
)

var (
	// ErrNoPath indicates the goal became unreachable on the belief map.
	ErrNoPath = errors.New("navigator: goal unreachable")

	// ErrBlockedEndpoint indicates the start or goal is an obstacle.
	ErrBlockedEndpoint = errors.New("navigator: start or goal is blocked")

	// ErrStepLimit indicates Run hit the step limit before the goal.
	ErrStepLimit = errors.New("navigator: step limit reached")
)

// Event changes the world before the robot's move number Step (0 is the
// first move). Block cells become obstacles, Clear cells become free.
type Event struct {
	Step  int
	Block []gridgraph.Cell
	Clear []gridgraph.Cell
}

// Trace records a run.
type Trace struct {
	Path       []gridgraph.Cell // every visited cell, start first
	Cost       float64          // sum of world edge costs travelled
	Replans    int              // steps whose sensing changed the belief
	Expansions int              // planner expansions over the run
	Revealed   int              // cells whose belief was corrected
	Paused     int              // Step calls cut short by the expansion budget
}

// Options configures a Navigator.
type Options struct {
	Hidden         []gridgraph.Cell
	SensorRadius   int
	Events         []Event
	Heuristic      graph.Heuristic[gridgraph.Cell] // nil: world.DefaultHeuristic()
	MaxSteps       int                             // 0: 4 × width × height
	PlannerOptions []dstarlite.Option
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns a sensor radius of 1 and no hidden cells or events.
func DefaultOptions() Options {
	return Options{SensorRadius: 1}
}

// WithHidden marks cells whose true value the robot only learns by
// sensing. Until then the belief holds them free at value 0.
func WithHidden(cells ...gridgraph.Cell) Option {
	return func(o *Options) { o.Hidden = append(o.Hidden, cells...) }
}

// WithSensorRadius sets the Chebyshev radius the robot senses around
// itself. Panics if r < 1: the robot must at least see its neighbors.
func WithSensorRadius(r int) Option {
	if r < 1 {
		panic("navigator: sensor radius must be ≥ 1")
	}
	return func(o *Options) { o.SensorRadius = r }
}

// WithEvents schedules world changes. Panics on a negative step.
func WithEvents(events ...Event) Option {
	for _, ev := range events {
		if ev.Step < 0 {
			panic("navigator: event step must be ≥ 0")
		}
	}
	return func(o *Options) { o.Events = append(o.Events, events...) }
}

// WithHeuristic overrides the planner heuristic. Panics on nil.
func WithHeuristic(h graph.Heuristic[gridgraph.Cell]) Option {
	if h == nil {
		panic("navigator: nil heuristic")
	}
	return func(o *Options) { o.Heuristic = h }
}

// WithMaxSteps bounds Run. Panics if n < 0; 0 selects the default.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic("navigator: max steps must be ≥ 0")
	}
	return func(o *Options) { o.MaxSteps = n }
}

// WithPlannerOptions forwards options to dstarlite.New.
func WithPlannerOptions(opts ...dstarlite.Option) Option {
	return func(o *Options) { o.PlannerOptions = append(o.PlannerOptions, opts...) }
}
