// SPDX-License-Identifier: MIT
package main

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphlib/core"
)

// build constructs the graph described by desc: from the matrix when given,
// otherwise from the edge list over desc.Nodes nodes.
func build(desc *description, logger zerolog.Logger) (*core.Graph[string, float64], error) {
	opt := core.WithDirected(desc.Directed)

	var g *core.Graph[string, float64]
	var err error
	if len(desc.Matrix) > 0 {
		if len(desc.Edges) > 0 {
			logger.Warn().Int("edges", len(desc.Edges)).Msg("matrix given; ignoring edge list")
		}
		g, err = core.FromAdjacencyMatrix[string, float64](desc.Matrix, opt)
		if err != nil {
			return nil, err
		}
		logger.Info().Int("nodes", g.NumberOfNodes()).Msg("built graph from adjacency matrix")
	} else {
		var pairs []core.Pair
		if pairs, err = desc.pairs(); err != nil {
			return nil, err
		}
		if g, err = core.FromEdgeList[string, float64](pairs, desc.Nodes, opt); err != nil {
			return nil, err
		}
		logger.Info().Int("nodes", g.NumberOfNodes()).Int("pairs", len(pairs)).Msg("built graph from edge list")
	}

	if len(desc.Labels) > 0 {
		if len(desc.Labels) != g.NumberOfNodes() {
			logger.Warn().Int("labels", len(desc.Labels)).Int("nodes", g.NumberOfNodes()).
				Msg("label count differs from node count")
		}
		g.AddNodeLabels(desc.Labels...)
	}

	for _, w := range desc.Weights {
		if !g.HasEdge(w.From, w.To) && !g.HasEdge(w.To, w.From) {
			logger.Warn().Int("from", w.From).Int("to", w.To).Msg("weight recorded for a pair with no arc")
		}
		g.AddEdgeWeight(core.Pair{From: w.From, To: w.To}, w.Weight)
	}
	logger.Debug().Int("arcs", g.EdgeCount()).Bool("symmetric", g.IsSymmetric()).Msg("graph ready")

	return g, nil
}
