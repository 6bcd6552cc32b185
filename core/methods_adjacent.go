// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Dense adjacency materialization and symmetry checks.
//
// Determinism:
//   - AdjacencyMatrix() is a pure function of the adjacency sets.
package core

// AdjacencyMatrix materializes a fresh N×N 0/1 matrix: entry (i, j) is 1 iff j is
// a neighbor of i. The result does not alias graph state.
// Complexity: O(N² + E).
func (g *Graph[L, W]) AdjacencyMatrix() [][]int {
	n := g.numberOfNodes
	flat := make([]int, n*n) // one backing array for all rows
	out := make([][]int, n)
	for i := range out {
		out[i] = flat[i*n : (i+1)*n : (i+1)*n]
		g.adjacency[i].Scan(func(j int) bool {
			out[i][j] = 1
			return true
		})
	}

	return out
}

// IsSymmetric reports whether every arc i → j has its mirror j → i.
// Graphs built by FromEdgeList are always symmetric.
// Complexity: O(E·log d).
func (g *Graph[L, W]) IsSymmetric() bool {
	symmetric := true
	for i, set := range g.adjacency {
		set.Scan(func(j int) bool {
			symmetric = g.adjacency[j].Contains(i)
			return symmetric
		})
		if !symmetric {
			return false
		}
	}

	return true
}
