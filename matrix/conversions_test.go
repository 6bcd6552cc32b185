package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphlib/core"
	"github.com/katalvlaran/graphlib/matrix"
)

// pathGraph builds the undirected path 0–1–2.
func pathGraph(t *testing.T, opts ...core.Option) *core.Graph[string, int] {
	t.Helper()
	g, err := core.FromEdgeList[string, int]([]core.Pair{{From: 0, To: 1}, {From: 1, To: 2}}, 3, opts...)
	require.NoError(t, err)

	return g
}

func TestToDense(t *testing.T) {
	d, err := matrix.ToDense(pathGraph(t))
	require.NoError(t, err)

	want := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
	})
	require.True(t, mat.Equal(want, d), "dense adjacency mirrors AdjacencyMatrix")
}

func TestToDense_Errors(t *testing.T) {
	_, err := matrix.ToDense[string, int](nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	_, err = matrix.ToDense(core.New[string, int]())
	require.ErrorIs(t, err, matrix.ErrEmptyGraph)
}

func TestFromDense_RoundTrip(t *testing.T) {
	g := pathGraph(t)
	d, err := matrix.ToDense(g)
	require.NoError(t, err)

	back, err := matrix.FromDense[string, int](d)
	require.NoError(t, err)
	require.Equal(t, g.AdjacencyMatrix(), back.AdjacencyMatrix())
	require.Equal(t, g.EdgeList(), back.EdgeList())
}

func TestFromDense_Errors(t *testing.T) {
	_, err := matrix.FromDense[string, int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromDense[string, int](mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestFromDense_Transposed(t *testing.T) {
	// One-way arc 0 → 1; the transpose view flips it to 1 → 0.
	d := mat.NewDense(2, 2, []float64{0, 1, 0, 0})
	g, err := matrix.FromDense[int, int](d.T(), core.WithDirected(true))
	require.NoError(t, err)
	require.Equal(t, []core.Pair{{From: 1, To: 0}}, g.EdgeList())
}

func TestWeightedDense(t *testing.T) {
	g := pathGraph(t)
	g.AddEdgeWeight(core.Pair{From: 0, To: 1}, 4)

	d, err := matrix.WeightedDense(g, func(w int) float64 { return float64(w) })
	require.NoError(t, err)
	require.Equal(t, 4.0, d.At(0, 1))
	require.Equal(t, 4.0, d.At(1, 0))
	require.Equal(t, 0.0, d.At(1, 2), "arc without a weight record reads as 0")
	require.Equal(t, 0.0, d.At(0, 2), "absent arc reads as 0")
}

func TestDegrees(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.AddEdge(2, 2))

	deg, err := matrix.Degrees(g)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 2}, deg)

	_, err = matrix.Degrees(core.New[string, int]())
	require.ErrorIs(t, err, matrix.ErrEmptyGraph)
}

func TestToSimple_Undirected(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.AddEdge(0, 0)) // dropped: simple graphs hold no self-loops

	sg, err := matrix.ToSimple(g)
	require.NoError(t, err)
	ug, ok := sg.(graph.Undirected)
	require.True(t, ok, "undirected policy yields a gonum Undirected graph")

	require.Equal(t, 3, ug.Nodes().Len())
	require.True(t, ug.HasEdgeBetween(0, 1))
	require.True(t, ug.HasEdgeBetween(2, 1))
	require.False(t, ug.HasEdgeBetween(0, 2))
	require.Nil(t, ug.Edge(0, 0))
}

func TestToSimple_Directed(t *testing.T) {
	g, err := core.FromAdjacencyMatrix[int, int]([][]int{
		{0, 1},
		{0, 0},
	}, core.WithDirected(true))
	require.NoError(t, err)

	sg, err := matrix.ToSimple(g)
	require.NoError(t, err)
	dg, ok := sg.(graph.Directed)
	require.True(t, ok, "directed policy yields a gonum Directed graph")
	require.True(t, dg.HasEdgeFromTo(0, 1))
	require.False(t, dg.HasEdgeFromTo(1, 0))

	_, err = matrix.ToSimple[int, int](nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestToWeightedSimple(t *testing.T) {
	g := pathGraph(t)
	g.AddEdgeWeight(core.Pair{From: 0, To: 1}, 2)
	g.AddEdgeWeight(core.Pair{From: 2, To: 1}, 9)

	wg, err := matrix.ToWeightedSimple(g, func(w int) float64 { return float64(w) }, 0, -1)
	require.NoError(t, err)

	w, ok := wg.Weight(1, 0)
	require.True(t, ok)
	require.Equal(t, 2.0, w)
	w, ok = wg.Weight(1, 2)
	require.True(t, ok)
	require.Equal(t, 9.0, w)
	w, ok = wg.Weight(0, 2)
	require.False(t, ok)
	require.Equal(t, -1.0, w, "absent pairs report the absent weight")
}

func TestToWeightedSimple_MissingWeight(t *testing.T) {
	g := pathGraph(t)
	g.AddEdgeWeight(core.Pair{From: 0, To: 1}, 2)

	_, err := matrix.ToWeightedSimple(g, func(w int) float64 { return float64(w) }, 0, 0)
	require.ErrorIs(t, err, matrix.ErrMissingWeight)
}
