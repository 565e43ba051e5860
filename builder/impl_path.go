package builder

import (
	"fmt"

	"github.com/katalvlaran/replan/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the chain 0 – 1 – … – (n-1). Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodPath, g, n, cfg.idFn); err != nil {
			return err
		}

		weighted := g.Weighted()
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			w := cfg.weight(weighted)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}

// addVertices inserts idFn(0)…idFn(n-1).
func addVertices(method string, g *core.Graph, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
