// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// api.go — Topology type and the Build entry points.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

// Topology generates an edge list over a fixed number of nodes.
type Topology func() (pairs []core.Pair, n int, err error)

// Build materializes t as an undirected core.Graph via core.FromEdgeList.
// Complexity: O(n + E·log d).
func Build[L, W any](t Topology, opts ...core.Option) (*core.Graph[L, W], error) {
	pairs, n, err := t()
	if err != nil {
		return nil, err
	}
	g, err := core.FromEdgeList[L, W](pairs, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}

// BuildWeighted is Build plus one AddEdgeWeight per generated pair, in
// generation order, with the weight chosen by weightOf.
// Complexity: O(n + E·log d).
func BuildWeighted[L, W any](t Topology, weightOf func(p core.Pair) W, opts ...core.Option) (*core.Graph[L, W], error) {
	pairs, n, err := t()
	if err != nil {
		return nil, err
	}
	g, err := core.FromEdgeList[L, W](pairs, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildWeighted: %w", err)
	}
	for _, p := range pairs {
		g.AddEdgeWeight(p, weightOf(p))
	}

	return g, nil
}

// ConstantWeight returns a weightOf function that assigns w to every pair.
func ConstantWeight[W any](w W) func(core.Pair) W {
	return func(core.Pair) W { return w }
}

// tooFew wraps ErrTooFewVertices with generator context.
func tooFew(method string, got, minimum int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, minimum, ErrTooFewVertices)
}
