// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types of graphlib.
//
// This file declares Edge, Pair, Graph, Option, the Entry constraint,
// the sentinel errors, and the Default alias.
//
// Errors:
//
//	ErrUnknownNode       - node index is not a key of the adjacency structure.
//	ErrWeightNotFound    - no weight record exists for the requested pair.
//	ErrNegativeNodeCount - a constructor received n < 0.
//	ErrNonSquare         - an adjacency matrix row length differs from the row count.
package core

import (
	"errors"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates an operation referenced a node index outside [0, n).
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrWeightNotFound indicates EdgeWeight found no record for the pair in either orientation.
	ErrWeightNotFound = errors.New("core: edge weight not found")

	// ErrNegativeNodeCount indicates a constructor was asked for a negative node count.
	ErrNegativeNodeCount = errors.New("core: negative node count")

	// ErrNonSquare indicates a dense adjacency matrix with a row of the wrong length.
	ErrNonSquare = errors.New("core: adjacency matrix is not square")
)

// Entry bounds the element type of a dense adjacency matrix.
// Any non-zero entry is treated as "connected".
type Entry interface {
	constraints.Integer | constraints.Float
}

// Edge is a directional weight record: node1 → node2 carrying weight.
//
// An undirected weighted connection is stored as two mirrored Edge records.
// The zero Edge is (0, 0, zero W).
type Edge[W any] struct {
	node1  int
	node2  int
	weight W
}

// Pair is a single (From, To) element of an edge list.
type Pair struct {
	From int
	To   int
}

// Option configures a Graph at construction time.
type Option func(c *config)

// config holds construction-time policy flags.
type config struct {
	directed bool // edge list enumeration reports arcs, not undirected pairs
}

// WithDirected marks the graph as directed (true) or undirected (false, default).
//
// The flag only changes how EdgeList enumerates connections: a directed graph
// reports every arc, an undirected graph reports every unordered pair once.
// Constructors and mutators behave identically under both policies.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// Graph is a fixed-size, index-addressed graph container.
//
// Nodes are the half-open range [0, NumberOfNodes()). L is the node label type,
// W the edge weight type. Graph is not safe for concurrent mutation; callers
// that share an instance across goroutines must synchronize externally.
type Graph[L any, W any] struct {
	directed bool

	// numberOfNodes is fixed at construction.
	numberOfNodes int

	// adjacency[i] is the ordered neighbor set of node i; len(adjacency) == numberOfNodes.
	adjacency []*btree.Set[int]

	// labels are appended in batches; labels[i] is conventionally the label of node i.
	labels []L

	// weights is append-only; each AddEdgeWeight contributes two mirrored records.
	weights []Edge[W]
}

// Default is a Graph with integer labels and integer weights.
type Default = Graph[int, int]
