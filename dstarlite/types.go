package dstarlite

import (
	"context"
	"errors"
)

var (
	// ErrBudgetExhausted is returned by ComputeShortestPath when the
	// per-call expansion budget ran out. The planner stays resumable.
	ErrBudgetExhausted = errors.New("dstarlite: expansion budget exhausted")

	// ErrNoPath is returned by Step when the goal is unreachable from the
	// current start.
	ErrNoPath = errors.New("dstarlite: goal unreachable")

	// ErrStalled is returned when greedy path extraction revisits a vertex,
	// which can only happen with zero-cost cycles or an inconsistent
	// heuristic.
	ErrStalled = errors.New("dstarlite: path extraction revisited a vertex")
)

// Options configures a Planner.
type Options struct {
	Ctx           context.Context
	MaxExpansions int // per ComputeShortestPath call; 0 means unlimited
}

// Option is a functional option for New.
type Option func(*Options)

// WithContext makes ComputeShortestPath stop with ctx.Err() once ctx is
// done. The check runs before each vertex is processed.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("dstarlite: nil context")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithMaxExpansions bounds the work of a single ComputeShortestPath call.
// Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic("dstarlite: negative expansion budget")
	}
	return func(o *Options) { o.MaxExpansions = n }
}

// DefaultOptions returns an unlimited, uncancellable configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
