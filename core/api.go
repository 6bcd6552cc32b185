// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors. Exactly one constructor builds each Graph instance.
// Policy:
//   - Every constructor seeds the adjacency structure with one empty set per node,
//     so every index in [0, n) is a queryable key from the start.
//   - Constructors never mirror matrix input; FromEdgeList always mirrors.
// AI-HINT (file):
//   - Use FromEdgeList for undirected input; it inserts u→v and v→u for every pair.
//   - Use FromAdjacencyMatrix when the matrix already encodes the direction(s) you want.

package core

import (
	"fmt"

	"github.com/tidwall/btree"
)

// New creates an empty Graph with zero nodes.
// Complexity: O(len(opts)).
func New[L any, W any](opts ...Option) *Graph[L, W] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &Graph[L, W]{directed: c.directed}
}

// NewSized creates a Graph with n nodes and no edges.
//
// Unlike a bare node count, the adjacency structure is fully seeded, so AddEdge
// accepts any source in [0, n) immediately.
//
// Errors:
//   - ErrNegativeNodeCount if n < 0.
//
// Complexity: O(n).
func NewSized[L any, W any](n int, opts ...Option) (*Graph[L, W], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewSized(%d): %w", n, ErrNegativeNodeCount)
	}
	g := New[L, W](opts...)
	g.seed(n)

	return g, nil
}

// FromAdjacencyMatrix creates a Graph from a dense N×N matrix.
//
// Node count is len(m). For every (i, j) with m[i][j] != 0, j is added to the
// neighbor set of i. The mirror (j, i) is NOT added: an asymmetric matrix yields
// a directed adjacency.
//
// Errors:
//   - ErrNonSquare if any row length differs from len(m).
//
// Complexity: O(N² + E·log d).
func FromAdjacencyMatrix[L any, W any, T Entry](m [][]T, opts ...Option) (*Graph[L, W], error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("FromAdjacencyMatrix: row %d has %d entries, want %d: %w",
				i, len(row), n, ErrNonSquare)
		}
	}

	g := New[L, W](opts...)
	g.seed(n)
	for i, row := range m {
		for j, v := range row {
			if v != 0 {
				g.adjacency[i].Insert(j)
			}
		}
	}

	return g, nil
}

// FromEdgeList creates a Graph with n nodes from a sparse list of pairs.
//
// For each pair (u, v) both u→v and v→u are inserted, so the resulting
// adjacency is always symmetric regardless of input orientation.
//
// Errors:
//   - ErrNegativeNodeCount if n < 0.
//   - ErrUnknownNode if any endpoint lies outside [0, n); no partial graph is returned.
//
// Complexity: O(n + E·log d).
func FromEdgeList[L any, W any](edges []Pair, n int, opts ...Option) (*Graph[L, W], error) {
	g, err := NewSized[L, W](n, opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range edges {
		if err = g.AddEdge(p.From, p.To); err != nil {
			return nil, fmt.Errorf("FromEdgeList: pair (%d, %d): %w", p.From, p.To, err)
		}
		if err = g.AddEdge(p.To, p.From); err != nil {
			return nil, fmt.Errorf("FromEdgeList: pair (%d, %d): %w", p.From, p.To, err)
		}
	}

	return g, nil
}

// seed allocates n empty neighbor sets.
func (g *Graph[L, W]) seed(n int) {
	g.numberOfNodes = n
	g.adjacency = make([]*btree.Set[int], n)
	for i := range g.adjacency {
		g.adjacency[i] = new(btree.Set[int])
	}
}

// Directed reports the construction-time directedness policy.
// Complexity: O(1).
func (g *Graph[L, W]) Directed() bool {
	return g.directed
}
