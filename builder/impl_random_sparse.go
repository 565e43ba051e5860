// SPDX-License-Identifier: MIT
// Package: replan/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n, p) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/replan/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse adds n vertices and includes each candidate edge with
// probability p: ordered pairs on directed graphs, unordered pairs
// otherwise. Self-loops are candidates only if the graph allows them.
//
// An RNG (WithSeed/WithRand) is required for 0 < p < 1. Pairs are visited
// in (i asc, j asc) order, so a fixed seed yields a fixed graph.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(methodRandomSparse, g, n, cfg.idFn); err != nil {
			return err
		}

		weighted, directed, loops := g.Weighted(), g.Directed(), g.Looped()
		pick := func() bool {
			switch {
			case p == probMax:
				return true
			case p == probMin:
				return false
			}
			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			j0 := i + 1
			if directed {
				j0 = 0
			} else if loops {
				j0 = i
			}
			for j := j0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !pick() {
					continue
				}
				v := cfg.idFn(j)
				w := cfg.weight(weighted)
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}
