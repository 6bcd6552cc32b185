// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Keep the converters minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors so call sites can wrap uniformly.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphlib/core"
)

// validatorErrorf wraps an underlying error with the given call-site tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateGraph checks that g is non-nil and has at least one node.
func validateGraph[L, W any](g *core.Graph[L, W]) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.NumberOfNodes() == 0 {
		return ErrEmptyGraph
	}

	return nil
}

// validateSquare checks that m is non-nil and square, returning its order.
func validateSquare(m mat.Matrix) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return 0, ErrNonSquare
	}

	return r, nil
}
