package keyqueue

import (
	"container/heap"
	"errors"
)

// ErrDuplicate indicates Insert was called for a vertex already queued.
var ErrDuplicate = errors.New("keyqueue: vertex already queued")

// entry is one heap slot. index is maintained by Swap/Push/Pop.
type entry[V comparable] struct {
	vertex V
	key    Key
	index  int
}

// entries implements heap.Interface. Callers go through Queue.
type entries[V comparable] []*entry[V]

func (es entries[V]) Len() int           { return len(es) }
func (es entries[V]) Less(i, j int) bool { return es[i].key.Less(es[j].key) }
func (es entries[V]) Swap(i, j int) {
	es[i], es[j] = es[j], es[i]
	es[i].index = i
	es[j].index = j
}

func (es *entries[V]) Push(x any) {
	e := x.(*entry[V])
	e.index = len(*es)
	*es = append(*es, e)
}

func (es *entries[V]) Pop() any {
	old := *es
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // avoid memory leak
	e.index = -1
	*es = old[:n-1]
	return e
}

// Queue is an indexed min-heap of vertices keyed by Key.
type Queue[V comparable] struct {
	heap  entries[V]
	index map[V]*entry[V]
}

// New returns an empty Queue sized for about n vertices.
func New[V comparable](n int) *Queue[V] {
	return &Queue[V]{
		heap:  make(entries[V], 0, n),
		index: make(map[V]*entry[V], n),
	}
}

// Len returns the number of queued vertices.
func (q *Queue[V]) Len() int { return len(q.heap) }

// Contains reports whether v is queued.
func (q *Queue[V]) Contains(v V) bool {
	_, ok := q.index[v]
	return ok
}

// Key returns the key v is queued with.
func (q *Queue[V]) Key(v V) (Key, bool) {
	e, ok := q.index[v]
	if !ok {
		return InfKey, false
	}
	return e.key, true
}

// Insert queues v with key k. It fails with ErrDuplicate if v is queued.
func (q *Queue[V]) Insert(v V, k Key) error {
	if _, ok := q.index[v]; ok {
		return ErrDuplicate
	}
	e := &entry[V]{vertex: v, key: k}
	heap.Push(&q.heap, e)
	q.index[v] = e
	return nil
}

// Update sets the key of v to k, queueing v if it is absent. The new key
// may be larger or smaller than the old one.
func (q *Queue[V]) Update(v V, k Key) {
	e, ok := q.index[v]
	if !ok {
		e = &entry[V]{vertex: v, key: k}
		heap.Push(&q.heap, e)
		q.index[v] = e
		return
	}
	e.key = k
	heap.Fix(&q.heap, e.index)
}

// Remove drops v from the queue. Absent vertices are ignored.
func (q *Queue[V]) Remove(v V) {
	e, ok := q.index[v]
	if !ok {
		return
	}
	heap.Remove(&q.heap, e.index)
	delete(q.index, v)
}

// Top returns the vertex with the smallest key, or false if empty.
func (q *Queue[V]) Top() (V, bool) {
	if len(q.heap) == 0 {
		var zero V
		return zero, false
	}
	return q.heap[0].vertex, true
}

// TopKey returns the smallest key, or InfKey if the queue is empty.
func (q *Queue[V]) TopKey() Key {
	if len(q.heap) == 0 {
		return InfKey
	}
	return q.heap[0].key
}

// Pop removes and returns the vertex with the smallest key.
func (q *Queue[V]) Pop() (V, Key, bool) {
	if len(q.heap) == 0 {
		var zero V
		return zero, InfKey, false
	}
	e := heap.Pop(&q.heap).(*entry[V])
	delete(q.index, e.vertex)
	return e.vertex, e.key, true
}

// Clear empties the queue, keeping allocated capacity.
func (q *Queue[V]) Clear() {
	for i := range q.heap {
		q.heap[i] = nil
	}
	q.heap = q.heap[:0]
	clear(q.index)
}
