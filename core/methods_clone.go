// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copies of graph instances.

package core

import (
	"slices"

	"github.com/tidwall/btree"
)

// Clone returns a deep copy of the Graph: policy, node count, adjacency,
// labels, and weight records. Mutating either graph never affects the other.
//
// Labels are copied by value; if L holds pointers, the pointees are shared.
// Complexity: O(V + E + R).
func (g *Graph[L, W]) Clone() *Graph[L, W] {
	clone := &Graph[L, W]{
		directed:      g.directed,
		numberOfNodes: g.numberOfNodes,
		adjacency:     make([]*btree.Set[int], len(g.adjacency)),
		labels:        slices.Clone(g.labels),
		weights:       slices.Clone(g.weights),
	}
	for i, set := range g.adjacency {
		dst := new(btree.Set[int])
		set.Scan(func(j int) bool {
			dst.Insert(j)
			return true
		})
		clone.adjacency[i] = dst
	}

	return clone
}
