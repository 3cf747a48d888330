package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/core"
)

// EdgeListItem is a flat representation of a single undirected edge.
type EdgeListItem struct {
	From, To int
	Weight   float64
}

// ToEdgeList returns all edges in g in Edge.ID order, one item per edge.
//
// Time Complexity: O(E log E)
func ToEdgeList(g *core.Graph) []EdgeListItem {
	edges := g.Edges()
	out := make([]EdgeListItem, 0, len(edges))
	for _, e := range edges {
		out = append(out, EdgeListItem{From: e.From, To: e.To, Weight: e.Weight})
	}

	return out
}

// FromGraph builds the n×n symmetric adjacency matrix of g.
// Entry (i,j) holds the weight of edge i—j, or zero if absent.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrUnknownVertex if g has a vertex >= n.
//
// Time Complexity: O(n² + E)
func FromGraph(g *core.Graph, n int) (*mat.SymDense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, v := range g.Vertices() {
		if v >= n {
			return nil, fmt.Errorf("%w: %d (n=%d)", ErrUnknownVertex, v, n)
		}
	}
	if n == 0 {
		return &mat.SymDense{}, nil
	}

	m := mat.NewSymDense(n, nil)
	for _, e := range g.Edges() {
		m.SetSym(e.From, e.To, e.Weight)
	}

	return m, nil
}

// ToGraph builds a graph with vertices 0..n-1 and one edge per non-zero
// entry of the strict upper triangle of m. Edges are inserted row by row,
// left to right.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrNaNInf if an off-diagonal entry is not finite.
//
// Time Complexity: O(n²)
func ToGraph(m mat.Symmetric) (*core.Graph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.SymmetricDim()
	g := core.NewGraph(core.WithVertices(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := m.At(i, j)
			if w == 0 {
				continue
			}
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: entry (%d,%d)", ErrNaNInf, i, j)
			}
			if _, err := g.AddEdge(i, j, w); err != nil {
				return nil, fmt.Errorf("matrix: add edge %d-%d: %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Threshold returns a copy of m with every entry <= cutoff set to zero.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrNegativeCutoff if cutoff < 0.
//
// Time Complexity: O(n²)
func Threshold(m mat.Symmetric, cutoff float64) (*mat.SymDense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if cutoff < 0 || math.IsNaN(cutoff) {
		return nil, ErrNegativeCutoff
	}
	n := m.SymmetricDim()
	if n == 0 {
		return &mat.SymDense{}, nil
	}
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if w := m.At(i, j); w > cutoff {
				out.SetSym(i, j, w)
			}
		}
	}

	return out, nil
}
