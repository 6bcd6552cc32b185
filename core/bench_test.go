// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/graphlib/core"
)

// ringEdges returns the n-cycle 0–1–…–(n-1)–0.
func ringEdges(n int) []core.Pair {
	out := make([]core.Pair, n)
	for i := 0; i < n; i++ {
		out[i] = core.Pair{From: i, To: (i + 1) % n}
	}

	return out
}

// BenchmarkFromEdgeList measures mirrored construction of a 1000-node ring.
func BenchmarkFromEdgeList(b *testing.B) {
	edges := ringEdges(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.FromEdgeList[int, int](edges, 1000)
	}
}

// BenchmarkEdgeList measures undirected enumeration on a 1000-node ring.
func BenchmarkEdgeList(b *testing.B) {
	g, _ := core.FromEdgeList[int, int](ringEdges(1000), 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.EdgeList()
	}
}

// BenchmarkEdgeWeight measures the linear weight scan at its worst case (miss).
func BenchmarkEdgeWeight(b *testing.B) {
	g, _ := core.NewSized[int, int](1000)
	for _, p := range ringEdges(1000) {
		g.AddEdgeWeight(p, p.From)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.EdgeWeight(0, 500)
	}
}

// BenchmarkAdjacencyMatrix measures dense materialization of a 1000-node ring.
func BenchmarkAdjacencyMatrix(b *testing.B) {
	g, _ := core.FromEdgeList[int, int](ringEdges(1000), 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AdjacencyMatrix()
	}
}
