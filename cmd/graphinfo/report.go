// SPDX-License-Identifier: MIT
package main

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/graphlib/core"
	"github.com/katalvlaran/graphlib/matrix"
)

// report is the JSON document written by graphinfo.
type report struct {
	Nodes     int        `json:"nodes"`
	Directed  bool       `json:"directed"`
	Symmetric bool       `json:"symmetric"`
	Labels    []string   `json:"labels"`
	Neighbors [][]int    `json:"neighbors"`
	Edges     []edgeJSON `json:"edges"`
	Matrix    [][]int    `json:"matrix"`
	Degrees   []int      `json:"degrees"`
	Isolated  []int      `json:"isolated"`
}

type edgeJSON struct {
	From   int      `json:"from"`
	To     int      `json:"to"`
	Weight *float64 `json:"weight,omitempty"`
}

// newReport snapshots every representation of g.
func newReport(g *core.Graph[string, float64]) (*report, error) {
	r := &report{
		Nodes:     g.NumberOfNodes(),
		Directed:  g.Directed(),
		Symmetric: g.IsSymmetric(),
		Labels:    g.NodeLabels(),
		Neighbors: make([][]int, g.NumberOfNodes()),
		Edges:     make([]edgeJSON, 0),
		Matrix:    g.AdjacencyMatrix(),
		Degrees:   []int{},
		Isolated:  g.IsolatedNodes(),
	}
	if r.Labels == nil {
		r.Labels = []string{}
	}
	for i := range r.Neighbors {
		r.Neighbors[i] = g.Neighbors(i)
	}
	for _, p := range g.EdgeList() {
		e := edgeJSON{From: p.From, To: p.To}
		if w, err := g.EdgeWeight(p.From, p.To); err == nil {
			e.Weight = &w
		}
		r.Edges = append(r.Edges, e)
	}
	if g.NumberOfNodes() > 0 {
		deg, err := matrix.Degrees(g)
		if err != nil {
			return nil, err
		}
		r.Degrees = deg
	}

	return r, nil
}

// writeReport writes the indented JSON report of g to w.
func writeReport(w io.Writer, g *core.Graph[string, float64]) error {
	r, err := newReport(g)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}
