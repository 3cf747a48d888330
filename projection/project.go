// File: project.go
// Role: Per-cell projection of soft cluster assignments onto the nearest
//       graph node or candidate edge.
// Determinism:
//   - argmax ties resolve to the lowest index (node) or earliest edge.
//   - An edge wins only with a strictly lower error.
// Concurrency:
//   - Rows are independent; Project itself is sequential and allocation-bounded.

package projection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Project maps every row w of wTilde (cells × K) to either
//
//	node: e_m with m = argmax w,           error Σw² − 2·w_m + 1
//	edge: w'_a = w_a + (1−w_a−w_b)/2,
//	      w'_b = w_b + (1−w_a−w_b)/2,      error Σw² − (w_a²+w_b²) + (1−w_a−w_b)²/2
//
// where (a,b) is the candidate maximizing (w_a+w_b)² − 4·w_a·w_b + 2·(w_a+w_b).
// The edge row is used only when its error is strictly lower. With no
// candidate edges every row is one-hot.
//
// Complexity: O(cells · (K + |edges|)).
func Project(wTilde mat.Matrix, edges []Edge) (*Result, error) {
	// 1) Validate inputs.
	if wTilde == nil {
		return nil, ErrNilInput
	}
	cells, k := wTilde.Dims()
	for _, e := range edges {
		if e.A < 0 || e.B < 0 || e.A >= k || e.B >= k || e.A == e.B {
			return nil, fmt.Errorf("%w: (%d,%d) with K=%d", ErrEdgeOutOfRange, e.A, e.B, k)
		}
	}

	out := &Result{
		W:    mat.NewDense(cells, k, nil),
		Rows: make([]Assignment, cells),
	}
	row := make([]float64, k)

	// 2) Project row by row.
	for r := 0; r < cells; r++ {
		mat.Row(row, r, wTilde)
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d", ErrNaNInf, r)
			}
		}
		a := projectRow(row, edges)
		out.Rows[r] = a
		if a.Kind == OnNode {
			out.W.Set(r, a.Node, 1)
			continue
		}
		shift := (1 - row[a.Edge.A] - row[a.Edge.B]) / 2
		out.W.Set(r, a.Edge.A, row[a.Edge.A]+shift)
		out.W.Set(r, a.Edge.B, row[a.Edge.B]+shift)
	}

	return out, nil
}

// projectRow decides node versus edge for a single row.
func projectRow(w []float64, edges []Edge) Assignment {
	sq := floats.Dot(w, w)
	m := floats.MaxIdx(w)
	best := Assignment{Kind: OnNode, Node: m, Error: sq - 2*w[m] + 1}
	if len(edges) == 0 {
		return best
	}

	// 1) Highest-scoring candidate, first one on ties.
	bi, bestScore := 0, math.Inf(-1)
	for i, e := range edges {
		s := w[e.A] + w[e.B]
		score := s*s - 4*w[e.A]*w[e.B] + 2*s
		if score > bestScore {
			bi, bestScore = i, score
		}
	}

	// 2) Its projection error.
	e := edges[bi]
	wa, wb := w[e.A], w[e.B]
	deficit := 1 - wa - wb
	edgeErr := sq - (wa*wa + wb*wb) + deficit*deficit/2
	if edgeErr < best.Error {
		return Assignment{Kind: OnEdge, Node: m, Edge: e, Error: edgeErr}
	}

	return best
}

// Summarize counts one-hot and two-valued rows of an already projected
// matrix w. Rows with more than two non-zero entries are reported as
// ErrNotProjected.
func Summarize(w mat.Matrix) (nodes, edges int, err error) {
	if w == nil {
		return 0, 0, ErrNilInput
	}
	cells, k := w.Dims()
	for r := 0; r < cells; r++ {
		nz := 0
		for c := 0; c < k; c++ {
			if w.At(r, c) != 0 {
				nz++
			}
		}
		switch nz {
		case 0, 1:
			nodes++
		case 2:
			edges++
		default:
			return 0, 0, fmt.Errorf("%w: row %d has %d non-zero entries", ErrNotProjected, r, nz)
		}
	}

	return nodes, edges, nil
}
