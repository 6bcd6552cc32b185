// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_grid.go — Grid(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1.
//   • Node (r, c) has index r·cols + c (row-major).
//   • For each node in row-major order, emits its right then its down neighbor.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns the rows×cols orthogonal grid graph.
func Grid(rows, cols int) Topology {
	return func() ([]core.Pair, int, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, 0, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		index := func(r, c int) int { return r*cols + c }

		pairs := make([]core.Pair, 0, rows*(cols-1)+cols*(rows-1))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					pairs = append(pairs, core.Pair{From: index(r, c), To: index(r, c+1)})
				}
				if r+1 < rows {
					pairs = append(pairs, core.Pair{From: index(r, c), To: index(r+1, c)})
				}
			}
		}

		return pairs, rows * cols, nil
	}
}
