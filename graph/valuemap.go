package graph

// ValueMap maps vertices to costs. A vertex that was never assigned a
// finite value reads as +Inf; storing +Inf removes the entry, so the map
// only ever holds finite values.
type ValueMap[V comparable] map[V]float64

// NewValueMap returns an empty ValueMap with room for n vertices.
func NewValueMap[V comparable](n int) ValueMap[V] {
	return make(ValueMap[V], n)
}

// Get returns the value of v, or +Inf if v has none.
func (m ValueMap[V]) Get(v V) float64 {
	if x, ok := m[v]; ok {
		return x
	}
	return Inf
}

// Set assigns x to v. Assigning +Inf forgets v.
func (m ValueMap[V]) Set(v V, x float64) {
	if x == Inf {
		delete(m, v)
		return
	}
	m[v] = x
}

// Finite reports whether v holds a finite value.
func (m ValueMap[V]) Finite(v V) bool {
	_, ok := m[v]
	return ok
}
