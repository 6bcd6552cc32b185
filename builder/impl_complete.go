// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_complete.go — Complete(n), Star(n), Wheel(n).
//
// Contract:
//   • Complete: n ≥ 1; every unordered pair {i, j} with i < j, lexicographic.
//   • Star: n ≥ 2; hub 0 joined to leaves 1..n-1.
//   • Wheel: n ≥ 4; rim Cycle(n-1) on 0..n-2, then spokes (n-1, i).
//
// Complexity: Complete O(n²); Star, Wheel O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

const (
	methodComplete   = "Complete"
	methodStar       = "Star"
	methodWheel      = "Wheel"
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4 // rim has n-1 nodes and must be a cycle
)

// Complete returns the complete graph K_n.
func Complete(n int) Topology {
	return func() ([]core.Pair, int, error) {
		if n < minCompleteNodes {
			return nil, 0, tooFew(methodComplete, n, minCompleteNodes)
		}
		pairs := make([]core.Pair, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, core.Pair{From: i, To: j})
			}
		}

		return pairs, n, nil
	}
}

// Star returns the star S_n: hub 0 and n-1 leaves.
func Star(n int) Topology {
	return func() ([]core.Pair, int, error) {
		if n < minStarNodes {
			return nil, 0, tooFew(methodStar, n, minStarNodes)
		}
		pairs := make([]core.Pair, 0, n-1)
		for leaf := 1; leaf < n; leaf++ {
			pairs = append(pairs, core.Pair{From: 0, To: leaf})
		}

		return pairs, n, nil
	}
}

// Wheel returns the wheel W_n: a rim cycle on 0..n-2 and hub n-1.
func Wheel(n int) Topology {
	return func() ([]core.Pair, int, error) {
		if n < minWheelNodes {
			return nil, 0, tooFew(methodWheel, n, minWheelNodes)
		}
		pairs, _, err := Cycle(n - 1)()
		if err != nil {
			return nil, 0, fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := n - 1
		for i := 0; i < hub; i++ {
			pairs = append(pairs, core.Pair{From: hub, To: i})
		}

		return pairs, n, nil
	}
}
