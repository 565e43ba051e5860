package builder

import (
	"fmt"

	"github.com/katalvlaran/replan/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the ring 0 – 1 – … – (n-1) – 0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodCycle, g, n, cfg.idFn); err != nil {
			return err
		}

		weighted := g.Weighted()
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			w := cfg.weight(weighted)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
