// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_path.go — Path(n) and Cycle(n).
//
// Contract:
//   • Path: n ≥ 1; pairs (i, i+1) for i = 0..n-2.
//   • Cycle: n ≥ 3; Path(n) pairs followed by (n-1, 0).
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/graphlib/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns the simple path P_n on nodes 0..n-1.
func Path(n int) Topology {
	return func() ([]core.Pair, int, error) {
		if n < minPathNodes {
			return nil, 0, tooFew(methodPath, n, minPathNodes)
		}
		pairs := make([]core.Pair, 0, n-1)
		for i := 0; i+1 < n; i++ {
			pairs = append(pairs, core.Pair{From: i, To: i + 1})
		}

		return pairs, n, nil
	}
}

// Cycle returns the simple cycle C_n on nodes 0..n-1.
func Cycle(n int) Topology {
	return func() ([]core.Pair, int, error) {
		if n < minCycleNodes {
			return nil, 0, tooFew(methodCycle, n, minCycleNodes)
		}
		pairs, _, _ := Path(n)()
		pairs = append(pairs, core.Pair{From: n - 1, To: 0}) // close the ring

		return pairs, n, nil
	}
}
