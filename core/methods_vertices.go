package core

import "sort"

// AddVertex inserts a new vertex with the given ID if it does not already exist.
//
// Returns ErrEmptyVertexID if id == "". Calling AddVertex on an existing
// vertex is a no-op and returns nil.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// ensureVertex creates vertex id and its adjacency rows. Caller holds mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.out[id] = make(map[string]*Edge)
	g.in[id] = make(map[string]*Edge)
}

// HasVertex reports whether the vertex with the given ID exists.
// Returns false for the empty ID.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the stored vertex so callers can read or annotate its
// Metadata.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes the vertex and every edge touching it.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	seen := make(map[*Edge]struct{})
	for to, e := range g.out[id] {
		delete(g.in[to], id)
		seen[e] = struct{}{}
	}
	for from, e := range g.in[id] {
		delete(g.out[from], id)
		seen[e] = struct{}{}
	}
	g.edges -= len(seen)
	delete(g.out, id)
	delete(g.in, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
