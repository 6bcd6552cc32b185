// Package core provides a generic, index-addressed in-memory Graph container
// with conversions between three common representations: adjacency list,
// dense adjacency matrix, and edge list.
//
// A Graph[L, W] owns:
//
//   - a fixed node count n; nodes are the indices [0, n)
//   - one ordered neighbor set per node (the primary representation)
//   - an append-only sequence of node labels of type L
//   - an append-only sequence of directional Edge[W] weight records
//
// Construction (exactly one per instance):
//
//	New[L, W]()                       // zero nodes
//	NewSized[L, W](n)                 // n nodes, no edges
//	FromAdjacencyMatrix[L, W](m)      // dense N×N input, never mirrored
//	FromEdgeList[L, W](pairs, n)      // sparse input, always mirrored
//
// Mutation:
//
//	AddEdge(source, dest) error       // one arc; ErrUnknownNode outside [0, n)
//	AddNodeLabels(labels...)          // batch append
//	AddEdgeWeight(pair, w)            // two mirrored records, no dedup
//
// Query:
//
//	NumberOfNodes() int
//	NodeLabels() []L                  // copy
//	Neighbors(node) []int             // ascending; empty for unknown node
//	EdgeList() []Pair                 // each undirected pair once
//	EdgeWeight(u, v) (W, error)       // earliest record; ErrWeightNotFound on miss
//	AdjacencyMatrix() [][]int         // fresh 0/1 matrix
//
// Directedness is a documented policy (WithDirected), not an enforced one:
// undirected graphs are produced by inserting both directions, which
// FromEdgeList does automatically.
//
// Graph performs no locking. Share an instance across goroutines only
// with external synchronization.
package core
