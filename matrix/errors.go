// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All converters return these sentinels (possibly wrapped with call-site
// context); tests check them via errors.Is. No converter panics on
// user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into a converter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil mat.Matrix was passed into a converter.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrEmptyGraph signals a zero-node graph; gonum cannot allocate a 0×0 Dense.
	ErrEmptyGraph = errors.New("matrix: graph has no nodes")

	// ErrMissingWeight signals an arc without a weight record during a weighted export.
	ErrMissingWeight = errors.New("matrix: arc has no weight record")
)
