// Package projection defines the inputs, outputs and sentinel errors of the
// soft-assignment projector.
package projection

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilInput is returned when w_tilde is nil.
	ErrNilInput = errors.New("projection: w_tilde is nil")

	// ErrEdgeOutOfRange is returned when a candidate edge names a cluster
	// outside [0,K) or joins a cluster to itself.
	ErrEdgeOutOfRange = errors.New("projection: edge endpoint out of range")

	// ErrNaNInf is returned when w_tilde holds NaN or ±Inf.
	ErrNaNInf = errors.New("projection: NaN or Inf in w_tilde")

	// ErrNotProjected is returned by Summarize for a row with more than two
	// non-zero entries.
	ErrNotProjected = errors.New("projection: row is not a projection")
)

// Edge is a candidate transition between clusters A and B.
type Edge struct {
	A, B int
}

// Kind tells whether a cell was placed on a node or along an edge.
type Kind int

const (
	// OnNode marks a one-hot row.
	OnNode Kind = iota
	// OnEdge marks a row with two entries summing to 1.
	OnEdge
)

// String returns "node" or "edge".
func (k Kind) String() string {
	if k == OnEdge {
		return "edge"
	}

	return "node"
}

// Assignment records the projector's decision for one cell.
type Assignment struct {
	Kind Kind
	// Node is the argmax cluster; meaningful for both kinds.
	Node int
	// Edge is the best-scoring candidate; meaningful when Kind == OnEdge.
	Edge Edge
	// Error is the squared L2 distance from w̃ to the chosen projection.
	Error float64
}

// Result is the projected weight matrix plus per-cell decisions.
type Result struct {
	// W is cells × K. Each row is one-hot or has two entries summing to 1.
	W *mat.Dense
	// Rows[r] describes row r of W.
	Rows []Assignment
}
