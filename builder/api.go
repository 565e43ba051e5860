// SPDX-License-Identifier: MIT
// Package: replan/builder
//
// api.go - thin public entry-point for the builder package.

package builder

import (
	"fmt"

	"github.com/katalvlaran/replan/core"
)

// Constructor adds a topology to g using the resolved builder configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts and applies every constructor
// in order. The first failing constructor aborts the build.
//
// Example:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 9)},
//	    builder.RandomSparse(50, 0.1),
//	)
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
