// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Node count, labels, and neighbor queries.
//
// Determinism:
//   - Neighbors() returns indices in ascending order.
//   - NodeLabels() preserves insertion order across batches.
//
// AI-Hints (file):
//   - Neighbors() never fails; an unknown index yields an empty slice.
//   - Label count is not tied to node count; the container does not check it.
package core

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// NumberOfNodes returns the node count fixed at construction.
// Complexity: O(1).
func (g *Graph[L, W]) NumberOfNodes() int {
	return g.numberOfNodes
}

// AddNodeLabels appends every label, in order, to the label sequence.
// Successive calls accumulate.
// Complexity: O(len(labels)) amortized.
func (g *Graph[L, W]) AddNodeLabels(labels ...L) {
	g.labels = append(g.labels, labels...)
}

// NodeLabels returns a copy of the label sequence.
// Complexity: O(len(labels)).
func (g *Graph[L, W]) NodeLabels() []L {
	return slices.Clone(g.labels)
}

// Neighbors returns the neighbor indices of node in ascending order.
//
// Behavior highlights:
//   - Returns a fresh slice; mutating it does not affect the graph.
//   - Returns an empty, non-nil slice if node is not in [0, n).
//
// Complexity: O(d).
func (g *Graph[L, W]) Neighbors(node int) []int {
	if !g.hasNode(node) {
		return []int{}
	}
	set := g.adjacency[node]
	out := make([]int, 0, set.Len())
	set.Scan(func(nbr int) bool {
		out = append(out, nbr)
		return true
	})

	return out
}

// IsolatedNodes returns, in ascending order, every node with no incoming
// and no outgoing arc. Self-loops count as incident.
// Complexity: O(V + E).
func (g *Graph[L, W]) IsolatedNodes() []int {
	touched := bitset.New(uint(g.numberOfNodes))
	for i, set := range g.adjacency {
		set.Scan(func(nbr int) bool {
			touched.Set(uint(i))
			touched.Set(uint(nbr))
			return true
		})
	}

	out := make([]int, 0)
	for i := 0; i < g.numberOfNodes; i++ {
		if !touched.Test(uint(i)) {
			out = append(out, i)
		}
	}

	return out
}

// hasNode reports whether node is a key of the adjacency structure.
func (g *Graph[L, W]) hasNode(node int) bool {
	return node >= 0 && node < g.numberOfNodes
}
