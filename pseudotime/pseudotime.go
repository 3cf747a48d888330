// Package pseudotime converts a milestone network and a projected weight
// matrix into one scalar per cell.
//
// Rules, applied in order:
//  1. every cell starts at Unassigned (-1);
//  2. cells one-hot at the root get 0;
//  3. for each milestone (from, to, hop) in network order, cells with
//     w[from] > 0 and w[to] > 0, or with w[to] == 1, get w[to] + hop − 1.
//
// Later milestones overwrite earlier ones, so the network must be given in
// the order the milestone builder produced it (root outward).
package pseudotime

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/trajinfer/dijkstra"
)

// Unassigned marks a cell not reachable from the root.
const Unassigned = -1.0

var (
	// ErrNilInput is returned for a nil weight matrix.
	ErrNilInput = errors.New("pseudotime: w is nil")

	// ErrRootOutOfRange is returned when root is not a column of w.
	ErrRootOutOfRange = errors.New("pseudotime: root out of range")

	// ErrMilestoneOutOfRange is returned when a milestone names a missing column.
	ErrMilestoneOutOfRange = errors.New("pseudotime: milestone out of range")
)

// Assign computes pseudotime for every row of w (cells × K).
// Complexity: O(cells · |milestones|).
func Assign(milestones []dijkstra.Milestone, root int, w mat.Matrix) ([]float64, error) {
	if w == nil {
		return nil, ErrNilInput
	}
	cells, k := w.Dims()
	if root < 0 || root >= k {
		return nil, fmt.Errorf("%w: %d with K=%d", ErrRootOutOfRange, root, k)
	}
	for _, m := range milestones {
		if m.From < 0 || m.From >= k || m.To < 0 || m.To >= k {
			return nil, fmt.Errorf("%w: %d->%d with K=%d", ErrMilestoneOutOfRange, m.From, m.To, k)
		}
	}

	pt := make([]float64, cells)
	for r := range pt {
		pt[r] = Unassigned
		if w.At(r, root) == 1 {
			pt[r] = 0
		}
	}
	for _, m := range milestones {
		for r := range pt {
			from, to := w.At(r, m.From), w.At(r, m.To)
			if (from > 0 && to > 0) || to == 1 {
				pt[r] = to + float64(m.Hop) - 1
			}
		}
	}

	return pt, nil
}

// Summary describes a pseudotime vector over its assigned cells.
type Summary struct {
	Assigned   int
	Unassigned int
	Min, Max   float64
	Mean       float64
}

// Summarize reports counts and the range and mean of assigned cells. Min,
// Max and Mean are zero when no cell is assigned.
func Summarize(pt []float64) Summary {
	var s Summary
	assigned := make([]float64, 0, len(pt))
	for _, v := range pt {
		if v == Unassigned {
			s.Unassigned++
			continue
		}
		assigned = append(assigned, v)
	}
	s.Assigned = len(assigned)
	if s.Assigned == 0 {
		return s
	}
	s.Min, s.Max = assigned[0], assigned[0]
	for _, v := range assigned[1:] {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = stat.Mean(assigned, nil)

	return s
}
