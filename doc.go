// Package graphlib is a generic, in-memory graph container and a building
// block for higher-level graph algorithms.
//
// What is graphlib?
//
//	A small, dependency-light library that brings together:
//		• Core container: index-addressed nodes, ordered neighbor sets,
//		  positional labels and mirrored edge-weight records
//		• Three representations: adjacency list, adjacency matrix, edge list
//		• Topology generators: path, cycle, complete, star, wheel, grid
//		• gonum interop: dense matrices and graph/simple exports
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — Graph[L, W], Edge[W], constructors, accessors, sentinel errors
//	matrix/  — ToDense / FromDense / Degrees / ToSimple over gonum
//	builder/ — deterministic Topology generators feeding core.FromEdgeList
//
// and one command:
//
//	cmd/graphinfo — build a graph from flags or TOML and print it as JSON
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	core.FromEdgeList[string, int]([]core.Pair{{0, 1}, {1, 3}, {3, 2}, {2, 0}}, 4)
//
// represents a square with four nodes and four undirected edges.
//
//	go get github.com/katalvlaran/graphlib
package graphlib
