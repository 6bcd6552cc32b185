// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion, weight records, and edge-list enumeration.
// Determinism:
//   - EdgeList() visits sources ascending, then neighbors ascending.
//   - EdgeWeight() returns the earliest matching record.
// AI-HINT (file):
//   - AddEdge is one-directional; call it twice with swapped endpoints for an undirected edge.
//   - AddEdgeWeight always stores two mirrored records and never deduplicates.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// AddEdge inserts dest into the neighbor set of source.
//
// Inserting an existing arc is a no-op (set semantics).
//
// Errors:
//   - ErrUnknownNode if source or dest lies outside [0, n).
//
// Complexity: O(log d).
func (g *Graph[L, W]) AddEdge(source, dest int) error {
	if !g.hasNode(source) {
		return fmt.Errorf("AddEdge(%d, %d): source: %w", source, dest, ErrUnknownNode)
	}
	if !g.hasNode(dest) {
		return fmt.Errorf("AddEdge(%d, %d): dest: %w", source, dest, ErrUnknownNode)
	}
	g.adjacency[source].Insert(dest)

	return nil
}

// HasEdge reports whether the arc source → dest exists.
// Complexity: O(log d).
func (g *Graph[L, W]) HasEdge(source, dest int) bool {
	if !g.hasNode(source) {
		return false
	}

	return g.adjacency[source].Contains(dest)
}

// EdgeCount returns the number of stored arcs.
// A symmetric undirected edge counts twice, a self-loop once.
// Complexity: O(V).
func (g *Graph[L, W]) EdgeCount() int {
	total := 0
	for _, set := range g.adjacency {
		total += set.Len()
	}

	return total
}

// AddEdgeWeight appends the mirrored records (u, v, weight) and (v, u, weight).
//
// The pair is not validated and not deduplicated: repeating a pair appends new
// records, and EdgeWeight keeps returning the earliest one.
// Complexity: O(1) amortized.
func (g *Graph[L, W]) AddEdgeWeight(p Pair, weight W) {
	g.weights = append(g.weights,
		NewEdge(p.From, p.To, weight),
		NewEdge(p.To, p.From, weight),
	)
}

// EdgeWeight returns the weight of the first record connecting node1 and node2
// in either orientation.
//
// Errors:
//   - ErrWeightNotFound (with the zero W) if no record matches.
//
// Complexity: O(R) where R is the number of weight records.
func (g *Graph[L, W]) EdgeWeight(node1, node2 int) (W, error) {
	for _, e := range g.weights {
		if e.matches(node1, node2) {
			return e.weight, nil
		}
	}
	var zero W

	return zero, fmt.Errorf("EdgeWeight(%d, %d): %w", node1, node2, ErrWeightNotFound)
}

// Edges returns a copy of the weight records in insertion order.
// Complexity: O(R).
func (g *Graph[L, W]) Edges() []Edge[W] {
	out := make([]Edge[W], len(g.weights))
	copy(out, g.weights)

	return out
}

// EdgeList returns the connections of the graph as (From, To) pairs.
//
// Undirected graphs report each unordered pair exactly once, normalized so
// From <= To. An arc present in only one direction is still reported once,
// so asymmetric adjacency never yields doubles or drops.
// Directed graphs report every arc as stored.
//
// The result is ordered by From, then To.
// Complexity: O(E·log E).
func (g *Graph[L, W]) EdgeList() []Pair {
	out := make([]Pair, 0)
	for i, set := range g.adjacency {
		set.Scan(func(j int) bool {
			switch {
			case g.directed || j >= i:
				out = append(out, Pair{From: i, To: j})
			case !g.adjacency[j].Contains(i):
				// j < i and the reverse arc is absent: node j never reported it.
				out = append(out, Pair{From: j, To: i})
			}
			return true
		})
	}
	if !g.directed {
		// late normalized pairs from one-way arcs land out of order.
		slices.SortFunc(out, comparePairs)
	}

	return out
}

// comparePairs orders pairs by From, then To.
func comparePairs(a, b Pair) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}

	return cmp.Compare(a.To, b.To)
}
