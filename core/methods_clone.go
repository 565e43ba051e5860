package core

// CloneEmpty returns a new graph with the same flags and vertices but no
// edges. Vertex metadata maps are shared.
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		out:        make(map[string]map[string]*Edge, len(g.vertices)),
		in:         make(map[string]map[string]*Edge, len(g.vertices)),
	}
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
		c.out[id] = make(map[string]*Edge)
		c.in[id] = make(map[string]*Edge)
	}

	return c
}

// Clone returns a deep copy of the graph structure. Edges are copied, so
// SetWeight on the clone leaves the original untouched.
func (g *Graph) Clone() *Graph {
	c := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	copies := make(map[*Edge]*Edge, g.edges)
	for from, row := range g.out {
		for to, e := range row {
			ce, ok := copies[e]
			if !ok {
				cp := *e
				ce = &cp
				copies[e] = ce
			}
			c.out[from][to] = ce
			c.in[to][from] = ce
		}
	}
	c.edges = g.edges

	return c
}
