// SPDX-License-Identifier: MIT
// File: edge.go
// Role: Edge record accessors.

package core

// NewEdge returns an Edge node1 → node2 with the given weight.
// Complexity: O(1).
func NewEdge[W any](node1, node2 int, weight W) Edge[W] {
	var e Edge[W]
	e.SetEndpointsAndWeight(node1, node2, weight)

	return e
}

// SetEndpointsAndWeight stores the triple verbatim, overwriting any previous state.
// No validation is performed.
func (e *Edge[W]) SetEndpointsAndWeight(node1, node2 int, weight W) {
	e.node1 = node1
	e.node2 = node2
	e.weight = weight
}

// Endpoints returns (node1, node2) in the order they were set.
func (e Edge[W]) Endpoints() (int, int) {
	return e.node1, e.node2
}

// Weight returns the stored weight.
func (e Edge[W]) Weight() W {
	return e.weight
}

// matches reports whether e connects a and b in either orientation.
func (e Edge[W]) matches(a, b int) bool {
	return (e.node1 == a && e.node2 == b) || (e.node1 == b && e.node2 == a)
}
