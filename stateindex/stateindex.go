// Package stateindex maps unordered cluster pairs (i,j), including i == j,
// to linear "state" slots.
//
// With K clusters there are K(K+1)/2 states. Slots are assigned in row-major
// order over the upper triangle:
//
//	(0,0) (0,1) ... (0,K-1) (1,1) (1,2) ... (K-1,K-1)
//	  0     1        K-1     K     K+1       K(K+1)/2-1
//
// so State(i,j) = i·K − i(i−1)/2 + (j−i) for i <= j. State is symmetric and
// a bijection onto [0, K(K+1)/2). A pure cluster i lives at State(i,i); an
// edge state (i,j), i != j, models cells in transition between i and j.
package stateindex

import (
	"errors"
	"fmt"
)

// ErrBadClusterCount is returned by New for K <= 0.
var ErrBadClusterCount = errors.New("stateindex: cluster count must be positive")

// ErrOutOfRange is returned by Pair for a slot outside [0, K(K+1)/2).
var ErrOutOfRange = errors.New("stateindex: index out of range")

// Pair is an unordered cluster pair stored with I <= J.
type Pair struct {
	I, J int
}

// IsEdge reports whether p is a transitional state between two clusters.
func (p Pair) IsEdge() bool { return p.I != p.J }

// Index is the immutable state bijection for a fixed cluster count.
type Index struct {
	k     int
	table [][]int // table[i][j] == table[j][i] == State(i,j)
	pairs []Pair  // pairs[s] is the inverse of table
}

// New builds the state index for k clusters.
// Complexity: O(K²) time and memory.
func New(k int) (*Index, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadClusterCount, k)
	}
	idx := &Index{
		k:     k,
		table: make([][]int, k),
		pairs: make([]Pair, 0, k*(k+1)/2),
	}
	for i := range idx.table {
		idx.table[i] = make([]int, k)
	}
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			s := len(idx.pairs)
			idx.table[i][j] = s
			idx.table[j][i] = s
			idx.pairs = append(idx.pairs, Pair{I: i, J: j})
		}
	}

	return idx, nil
}

// Clusters returns K.
func (x *Index) Clusters() int { return x.k }

// NumStates returns K(K+1)/2.
func (x *Index) NumStates() int { return len(x.pairs) }

// State returns the slot of the unordered pair (i,j). It panics when i or j
// is outside [0,K).
func (x *Index) State(i, j int) int { return x.table[i][j] }

// Pair returns the cluster pair stored at slot s.
func (x *Index) Pair(s int) (Pair, error) {
	if s < 0 || s >= len(x.pairs) {
		return Pair{}, fmt.Errorf("%w: state %d with %d states", ErrOutOfRange, s, len(x.pairs))
	}

	return x.pairs[s], nil
}

// EdgeStates returns the slots of every transitional state (i<j), in slot order.
func (x *Index) EdgeStates() []int {
	out := make([]int, 0, len(x.pairs)-x.k)
	for s, p := range x.pairs {
		if p.IsEdge() {
			out = append(out, s)
		}
	}

	return out
}
