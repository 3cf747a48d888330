// SPDX-License-Identifier: MIT
// Package: trajinfer/builder
//
// impl_mean.go — threshold-based aggregations: mean and modified_mean.
//
// A cell qualifies for pair (i,j) when p(i,i)+p(i,j)+p(j,j) >= thres.
// Pairs without qualifying cells get weight 0 (no edge).

package builder

import (
	"gonum.org/v1/gonum/stat"
)

// meanWeight averages p(i,j)/sum3 over qualifying cells. Cells whose sum3
// is exactly zero carry no ratio and are skipped.
// Complexity: O(cells).
func meanWeight(ev *evidence, i, j int) float64 {
	ii, ij, jj := ev.triple(i, j)
	ratios := make([]float64, 0, len(ev.pc))
	for _, row := range ev.pc {
		sum3 := row[ii] + row[ij] + row[jj]
		if sum3 < ev.threshold || sum3 == 0 {
			continue
		}
		ratios = append(ratios, row[ij]/sum3)
	}
	if len(ratios) == 0 {
		return 0
	}

	return stat.Mean(ratios, nil)
}

// modifiedMeanWeight pools qualifying cells: Σ p(i,j) / Σ sum3.
// Complexity: O(cells).
func modifiedMeanWeight(ev *evidence, i, j int) float64 {
	ii, ij, jj := ev.triple(i, j)
	var num, den float64
	for _, row := range ev.pc {
		sum3 := row[ii] + row[ij] + row[jj]
		if sum3 < ev.threshold {
			continue
		}
		num += row[ij]
		den += sum3
	}
	if den == 0 {
		return 0
	}

	return num / den
}
