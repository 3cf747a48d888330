// SPDX-License-Identifier: MIT
// Package: trajinfer/builder
//
// impl_map.go — hard-assignment aggregations: map and modified_map.
//
// Both use c = argmax(pc_x) per cell instead of the evidence threshold.

package builder

// mapWeight is #(c == (i,j)) / #(c ∈ {(i,i),(i,j),(j,j)}).
// A pair with no cell assigned to (i,j) gets weight 0.
// Complexity: O(cells).
func mapWeight(ev *evidence, i, j int) float64 {
	ii, ij, jj := ev.triple(i, j)
	var onEdge, related int
	for _, c := range ev.hard {
		switch c {
		case ij:
			onEdge++
			related++
		case ii, jj:
			related++
		}
	}
	if onEdge == 0 {
		return 0
	}

	return float64(onEdge) / float64(related)
}

// modifiedMapWeight is #(c == (i,j)) / (#(w̃_i > 0.5 or w̃_j > 0.5) + 1e-16).
// The ratio is not bounded by 1 when few cells are pure members of i or j.
// Complexity: O(cells).
func modifiedMapWeight(ev *evidence, i, j int) float64 {
	ij := ev.idx.State(i, j)
	var onEdge, pure int
	for r, c := range ev.hard {
		if c == ij {
			onEdge++
		}
		if ev.wt[r][i] > pureMembership || ev.wt[r][j] > pureMembership {
			pure++
		}
	}

	return float64(onEdge) / (float64(pure) + mapEpsilon)
}
