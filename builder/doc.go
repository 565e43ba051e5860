// Package builder provides reusable “functional-options”-style graph
// fixtures for the planners and their tests.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme and weight function.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – SymbolNumberIDFn:  prefixed decimals ("v0","v1",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//   - Constructors:
//     – Grid(rows, cols):  4-connected lattice with "r,c" IDs.
//     – Path(n), Cycle(n): chains and rings.
//     – RandomSparse(n,p): Erdős–Rényi G(n,p), seeded for reproducibility.
//
// Guarantees:
//
//   - Determinism: the same options and seed produce the same graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors for invalid build parameters wrap the sentinels in
//     errors.go with a method tag, e.g. "Grid: rows=0 …: builder: parameter
//     too small".
package builder
