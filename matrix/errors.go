// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so callers can match with
// errors.Is and logs stay greppable.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownVertex indicates a graph vertex outside the 0..n-1 index range.
	ErrUnknownVertex = errors.New("matrix: vertex outside matrix index range")

	// ErrNaNInf signals a NaN or ±Inf entry where finite weights are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeCutoff signals a cutoff below zero.
	ErrNegativeCutoff = errors.New("matrix: cutoff must be non-negative")
)
