// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlib/builder"
	"github.com/katalvlaran/graphlib/core"
)

func TestGenerators_Shape(t *testing.T) {
	cases := []struct {
		name      string
		topo      builder.Topology
		wantNodes int
		wantEdges int
	}{
		{"Path1", builder.Path(1), 1, 0},
		{"Path4", builder.Path(4), 4, 3},
		{"Cycle5", builder.Cycle(5), 5, 5},
		{"Complete5", builder.Complete(5), 5, 10},
		{"Star6", builder.Star(6), 6, 5},
		{"Wheel5", builder.Wheel(5), 5, 8},
		{"Grid2x3", builder.Grid(2, 3), 6, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build[string, int](tc.topo)
			require.NoError(t, err)
			require.Equal(t, tc.wantNodes, g.NumberOfNodes())
			require.Len(t, g.EdgeList(), tc.wantEdges)
			require.True(t, g.IsSymmetric(), "generated graphs are undirected")
		})
	}
}

func TestGenerators_TooFew(t *testing.T) {
	for name, topo := range map[string]builder.Topology{
		"Path0":     builder.Path(0),
		"Cycle2":    builder.Cycle(2),
		"Complete0": builder.Complete(0),
		"Star1":     builder.Star(1),
		"Wheel3":    builder.Wheel(3),
		"Grid0x3":   builder.Grid(0, 3),
	} {
		_, err := builder.Build[string, int](topo)
		require.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestCycle_Order(t *testing.T) {
	pairs, n, err := builder.Cycle(3)()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []core.Pair{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, pairs)
}

func TestWheel_Hub(t *testing.T) {
	g, err := builder.Build[string, int](builder.Wheel(5))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, g.Neighbors(4), "hub is the last node")
	require.Equal(t, []int{1, 3, 4}, g.Neighbors(0))
}

func TestGrid_RowMajor(t *testing.T) {
	g, err := builder.Build[string, int](builder.Grid(2, 3))
	require.NoError(t, err)
	// 0 1 2
	// 3 4 5
	require.Equal(t, []int{1, 3, 5}, g.Neighbors(4))
	require.Equal(t, []int{1, 3}, g.Neighbors(0))
}

func TestBuildWeighted(t *testing.T) {
	g, err := builder.BuildWeighted[string, float64](builder.Star(3), builder.ConstantWeight(1.5))
	require.NoError(t, err)
	require.Len(t, g.Edges(), 4, "two mirrored records per generated pair")

	w, err := g.EdgeWeight(2, 0)
	require.NoError(t, err)
	require.Equal(t, 1.5, w)

	g2, err := builder.BuildWeighted[string, int](builder.Path(3), func(p core.Pair) int { return p.From + 10 })
	require.NoError(t, err)
	w2, err := g2.EdgeWeight(1, 2)
	require.NoError(t, err)
	require.Equal(t, 11, w2)

	_, err = builder.BuildWeighted[string, int](builder.Path(0), builder.ConstantWeight(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuild_DirectedPolicy(t *testing.T) {
	g, err := builder.Build[string, int](builder.Path(3), core.WithDirected(true))
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.Len(t, g.EdgeList(), 4, "directed policy reports both mirrored arcs")
}
