package astar

import (
	"context"
	"errors"
)

// ErrBudgetExhausted is returned when WithMaxExpansions stops the search
// before the goal was settled.
var ErrBudgetExhausted = errors.New("astar: expansion budget exhausted")

// Result contains the outcome of a search.
type Result[V comparable] struct {
	// Path lists start … goal, or is empty if the goal is unreachable.
	Path []V
	// Cost is the sum of edge costs along Path, +Inf if Path is empty.
	Cost float64
	// Expanded counts vertices moved to the closed set.
	Expanded int
}

// Found reports whether a path was produced.
func (r Result[V]) Found() bool { return len(r.Path) > 0 }

// Options defines parameters for the search.
type Options struct {
	Ctx           context.Context
	MaxExpansions int // 0 means unlimited
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithContext makes the search abort with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("astar: nil context")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithMaxExpansions caps the number of expanded vertices. Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic("astar: negative expansion budget")
	}
	return func(o *Options) { o.MaxExpansions = n }
}

// DefaultOptions returns an unlimited, uncancellable configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
