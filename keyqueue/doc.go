// Package keyqueue provides the priority queue behind incremental
// best-first search: a binary min-heap over vertices ordered by a
// two-component lexicographic Key, with a vertex → heap-index side table.
//
// Operations:
//
//	Insert(v, k)  add v; ErrDuplicate if v is already queued     O(log n)
//	Update(v, k)  insert v or move it to key k (up or down)      O(log n)
//	Remove(v)     drop v, no-op when absent                      O(log n)
//	Contains(v)                                                   O(1)
//	Top()/TopKey() minimum vertex / key without removal           O(1)
//	Pop()         remove and return the minimum                  O(log n)
//
// Membership is by vertex, never by key, so a vertex cannot be queued
// twice. Keys compare as (a1,b1) < (a2,b2) iff a1 < a2, or a1 == a2 and
// b1 < b2; no further tie-break is applied.
//
// A Queue is not safe for concurrent use.
package keyqueue
