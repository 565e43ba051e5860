package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/replan/graph"
)

// BreachPath finds a route from src to dst that crosses the fewest
// obstacle cells. Entering a free cell costs 0, entering an obstacle 1.
// It returns the route (src and dst included) and the number of obstacles
// it crosses, which is 0 exactly when Connected(src, dst) holds for free
// endpoints. A blocked src does not count; a blocked dst does.
//
// Behavior:
//  1. Validate both cells.
//  2. 0-1 BFS from src: zero-cost moves at the front of the deque,
//     unit-cost moves at the back.
//  3. Stop when dst is popped.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) BreachPath(src, dst Cell) (path []Cell, cleared int, err error) {
	if !gg.InBounds(src) || !gg.InBounds(dst) {
		return nil, 0, fmt.Errorf("gridgraph: breach %v→%v: %w", src, dst, ErrOutOfBounds)
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dist[gg.index(src)] = 0
	dq.PushFront(gg.index(src))
	target := gg.index(dst)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == target {
			break
		}
		for _, nb := range gg.neighbors(gg.Coordinate(u)) {
			v := gg.index(nb)
			step := 0
			if gg.Blocked(nb) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	return graph.Reverse(path), dist[target], nil
}
