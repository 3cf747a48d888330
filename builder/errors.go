// SPDX-License-Identifier: MIT
// Package: trajinfer/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w via builderErrorf.
//   • Build never returns a partial graph alongside an error.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidMethod indicates an aggregation method other than MethodMean,
// MethodModifiedMean, MethodMAP or MethodModifiedMAP.
// Classification: InvalidArgument.
var ErrInvalidMethod = errors.New("builder: invalid method, must be one of 'mean', 'modified_mean', 'map', and 'modified_map'")

// ErrMissingWTilde indicates MethodModifiedMAP was requested without WithWTilde.
var ErrMissingWTilde = errors.New("builder: modified_map requires w_tilde")

// ErrDimensionMismatch indicates pc_x or w_tilde does not match the state index.
var ErrDimensionMismatch = errors.New("builder: dimension mismatch")

// ErrNilInput indicates a nil index or matrix.
var ErrNilInput = errors.New("builder: nil input")

// ErrNaNInf indicates a NaN or ±Inf entry in an input matrix.
var ErrNaNInf = errors.New("builder: NaN or Inf in input")

// ErrInvalidThreshold indicates a NaN or infinite evidence threshold.
var ErrInvalidThreshold = errors.New("builder: invalid threshold")

// builderErrorf prefixes err with the method name while keeping errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...))
}
