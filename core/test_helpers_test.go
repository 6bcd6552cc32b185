// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlib/core"
)

// Common node indices used across core tests.
const (
	Node0 = 0
	Node1 = 1
	Node2 = 2
	Node3 = 3

	NodeMissing  = 42
	NodeNegative = -1
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight3 = 3
	Weight5 = 5
	Weight7 = 7
)

// PathMatrix is the 3-node path 0–1–2 as a symmetric 0/1 matrix.
var PathMatrix = [][]int{
	{0, 1, 0},
	{1, 0, 1},
	{0, 1, 0},
}

// PathEdges is the 3-node path 0–1–2 as an edge list.
var PathEdges = []core.Pair{{From: Node0, To: Node1}, {From: Node1, To: Node2}}

// MustPath builds the 3-node path from PathEdges.
func MustPath(t testing.TB, opts ...core.Option) *core.Graph[string, int] {
	t.Helper()
	g, err := core.FromEdgeList[string, int](PathEdges, 3, opts...)
	require.NoError(t, err, "FromEdgeList(PathEdges, 3)")

	return g
}
