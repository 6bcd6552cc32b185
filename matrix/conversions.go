// SPDX-License-Identifier: MIT
// Package matrix provides converters between core.Graph and gonum's
// dense matrices and graph/simple graphs.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphlib/core"
)

// ToDense returns the 0/1 adjacency of g as an N×N *mat.Dense.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
// Time Complexity: O(V² + E)
func ToDense[L, W any](g *core.Graph[L, W]) (*mat.Dense, error) {
	if err := validateGraph(g); err != nil {
		return nil, validatorErrorf("ToDense", err)
	}
	n := g.NumberOfNodes()
	d := mat.NewDense(n, n, nil)
	for i, row := range g.AdjacencyMatrix() {
		for j, v := range row {
			if v != 0 {
				d.Set(i, j, 1)
			}
		}
	}

	return d, nil
}

// WeightedDense returns an N×N *mat.Dense whose (i, j) entry is
// weightOf(g.EdgeWeight(i, j)) when the arc i → j exists and a weight record
// is found, and 0 otherwise.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
// Time Complexity: O(V² + E·R)
func WeightedDense[L, W any](g *core.Graph[L, W], weightOf func(W) float64) (*mat.Dense, error) {
	if err := validateGraph(g); err != nil {
		return nil, validatorErrorf("WeightedDense", err)
	}
	n := g.NumberOfNodes()
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for _, j := range g.Neighbors(i) {
			w, err := g.EdgeWeight(i, j)
			if err != nil {
				continue // unweighted arc reads as 0
			}
			d.Set(i, j, weightOf(w))
		}
	}

	return d, nil
}

// FromDense builds a Graph from a square gonum matrix; every non-zero entry
// becomes an arc. The matrix is read verbatim and never mirrored.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Time Complexity: O(V² + E·log d)
func FromDense[L, W any](m mat.Matrix, opts ...core.Option) (*core.Graph[L, W], error) {
	n, err := validateSquare(m)
	if err != nil {
		return nil, validatorErrorf("FromDense", err)
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}

	return core.FromAdjacencyMatrix[L, W](rows, opts...)
}

// Degrees returns the out-degree of every node, computed as A·1 over the
// dense adjacency. Self-loops count once.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
// Time Complexity: O(V²)
func Degrees[L, W any](g *core.Graph[L, W]) ([]int, error) {
	a, err := ToDense(g)
	if err != nil {
		return nil, validatorErrorf("Degrees", err)
	}
	n := g.NumberOfNodes()
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	var deg mat.VecDense
	deg.MulVec(a, mat.NewVecDense(n, ones))

	out := make([]int, n)
	for i := range out {
		out[i] = int(deg.AtVec(i))
	}

	return out, nil
}

// ToSimple exports g as a gonum graph/simple graph with one node per index.
//
// Undirected graphs yield *simple.UndirectedGraph, directed graphs yield
// *simple.DirectedGraph. Self-loops are skipped because simple graphs
// reject them.
//
// Errors: ErrGraphNil.
// Time Complexity: O(V + E)
func ToSimple[L, W any](g *core.Graph[L, W]) (graph.Graph, error) {
	if g == nil {
		return nil, validatorErrorf("ToSimple", ErrGraphNil)
	}
	var out graph.NodeAdder
	var setEdge func(e graph.Edge)
	if g.Directed() {
		dg := simple.NewDirectedGraph()
		out, setEdge = dg, dg.SetEdge
	} else {
		ug := simple.NewUndirectedGraph()
		out, setEdge = ug, ug.SetEdge
	}
	for i := 0; i < g.NumberOfNodes(); i++ {
		out.AddNode(simple.Node(i))
	}
	for _, p := range arcs(g) {
		setEdge(simple.Edge{F: simple.Node(p.From), T: simple.Node(p.To)})
	}

	return out.(graph.Graph), nil
}

// ToWeightedSimple is ToSimple for weighted gonum graphs. Every exported arc
// must carry a weight record; weightOf converts it to float64.
//
// self and absent are the gonum weights reported for a node to itself and
// for non-adjacent pairs.
//
// Errors: ErrGraphNil, ErrMissingWeight.
// Time Complexity: O(V + E·R)
func ToWeightedSimple[L, W any](g *core.Graph[L, W], weightOf func(W) float64, self, absent float64) (graph.Weighted, error) {
	if g == nil {
		return nil, validatorErrorf("ToWeightedSimple", ErrGraphNil)
	}
	var out graph.NodeAdder
	var setEdge func(e graph.WeightedEdge)
	if g.Directed() {
		dg := simple.NewWeightedDirectedGraph(self, absent)
		out, setEdge = dg, dg.SetWeightedEdge
	} else {
		ug := simple.NewWeightedUndirectedGraph(self, absent)
		out, setEdge = ug, ug.SetWeightedEdge
	}
	for i := 0; i < g.NumberOfNodes(); i++ {
		out.AddNode(simple.Node(i))
	}
	for _, p := range arcs(g) {
		w, err := g.EdgeWeight(p.From, p.To)
		if err != nil {
			return nil, validatorErrorf("ToWeightedSimple", fmt.Errorf("arc (%d, %d): %w", p.From, p.To, ErrMissingWeight))
		}
		setEdge(simple.WeightedEdge{F: simple.Node(p.From), T: simple.Node(p.To), W: weightOf(w)})
	}

	return out.(graph.Weighted), nil
}

// arcs returns the connections of g that a simple graph can hold:
// EdgeList without self-loops.
func arcs[L, W any](g *core.Graph[L, W]) []core.Pair {
	all := g.EdgeList()
	out := all[:0]
	for _, p := range all {
		if p.From != p.To {
			out = append(out, p)
		}
	}

	return out
}
