// Package builder provides deterministic topology generators for core.Graph.
//
// Each generator (Path, Cycle, Complete, Star, Wheel, Grid) is a Topology: a
// validated edge list plus a node count. Build feeds a Topology into
// core.FromEdgeList, so every generated graph is symmetric; BuildWeighted
// additionally records one mirrored weight per generated pair.
//
// Node numbering is fixed and documented per generator:
//
//	Path(n)      0–1–…–(n-1)
//	Cycle(n)     Path(n) plus (n-1)–0
//	Complete(n)  every pair i<j
//	Star(n)      hub 0, leaves 1..n-1
//	Wheel(n)     rim Cycle(n-1) on 0..n-2, hub n-1
//	Grid(r, c)   node r·cols+c, row-major
//
// Guarantees:
//
//   - Pairs are emitted in a stable order for a given parameter set.
//   - Invalid sizes return ErrTooFewVertices wrapped with the generator name.
//   - Generators never panic.
package builder
