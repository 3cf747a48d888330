// SPDX-License-Identifier: MIT
// Package: trajinfer/builder
//
// evidence.go — per-cell inputs shared by every aggregation method.
//
// Design:
//   • Rows are copied out of the gonum matrices once (O(cells·states)).
//   • Hard assignments argmax(pc_x) are computed once and shared by the
//     map-family methods; the first maximum wins.

package builder

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/stateindex"
)

// evidence is the read-only view an aggregator works on.
type evidence struct {
	idx       *stateindex.Index
	threshold float64
	pc        [][]float64 // cells × states
	hard      []int       // argmax state per cell
	wt        [][]float64 // cells × K, nil unless supplied
}

// newEvidence validates shapes and values and snapshots the rows.
func newEvidence(idx *stateindex.Index, pcX mat.Matrix, cfg builderConfig) (*evidence, error) {
	if idx == nil || pcX == nil {
		return nil, ErrNilInput
	}
	if math.IsNaN(cfg.threshold) || math.IsInf(cfg.threshold, 0) {
		return nil, builderErrorf("newEvidence", ErrInvalidThreshold, "thres=%v", cfg.threshold)
	}
	cells, states := pcX.Dims()
	if states != idx.NumStates() {
		return nil, builderErrorf("newEvidence", ErrDimensionMismatch,
			"pc_x has %d columns, want %d states for K=%d", states, idx.NumStates(), idx.Clusters())
	}

	ev := &evidence{
		idx:       idx,
		threshold: cfg.threshold,
		pc:        make([][]float64, cells),
		hard:      make([]int, cells),
	}
	for r := 0; r < cells; r++ {
		row := mat.Row(nil, r, pcX)
		if hasNaNInf(row) {
			return nil, builderErrorf("newEvidence", ErrNaNInf, "pc_x row %d", r)
		}
		ev.pc[r] = row
		ev.hard[r] = floats.MaxIdx(row)
	}

	if cfg.wTilde != nil {
		wr, wc := cfg.wTilde.Dims()
		if wr != cells || wc != idx.Clusters() {
			return nil, builderErrorf("newEvidence", ErrDimensionMismatch,
				"w_tilde is %d×%d, want %d×%d", wr, wc, cells, idx.Clusters())
		}
		ev.wt = make([][]float64, cells)
		for r := 0; r < cells; r++ {
			row := mat.Row(nil, r, cfg.wTilde)
			if hasNaNInf(row) {
				return nil, builderErrorf("newEvidence", ErrNaNInf, "w_tilde row %d", r)
			}
			ev.wt[r] = row
		}
	}

	return ev, nil
}

// triple returns the state slots of (i,i), (i,j) and (j,j).
func (ev *evidence) triple(i, j int) (ii, ij, jj int) {
	return ev.idx.State(i, i), ev.idx.State(i, j), ev.idx.State(j, j)
}

// hasNaNInf reports whether any entry of row is NaN or ±Inf.
func hasNaNInf(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}

	return false
}
