// Package matrix offers gonum interop for core.Graph.
//
// The matrix package provides:
//
//   - Dense converters (ToDense, WeightedDense, FromDense) between a Graph's
//     adjacency and gonum's *mat.Dense, for handing graphs to linear-algebra
//     routines.
//   - ToSimple and ToWeightedSimple, which export a Graph as a gonum
//     graph/simple graph so the gonum graph algorithms can run on it.
//   - Degrees, the per-node out-degree computed as A·1.
//
// Dense matrices cost O(V²) memory; they suit small or dense graphs.
//
// See the examples in this package and core for usage patterns.
package matrix
