// SPDX-License-Identifier: MIT
// Package: trajinfer/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Values that depend on user input (method, threshold) are validated by
//     Build and reported as errors; nil programmer inputs panic here.

package builder

import (
	"context"
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// BuilderOption customizes a builderConfig before aggregation begins.
type BuilderOption func(*builderConfig)

// WithThreshold sets the minimum evidence p(i,i)+p(i,j)+p(j,j) a cell needs
// to take part in the mean-family methods. Comparison is inclusive.
func WithThreshold(thres float64) BuilderOption {
	return func(c *builderConfig) {
		c.threshold = thres
	}
}

// WithMethod selects the aggregation method by name.
func WithMethod(method string) BuilderOption {
	return func(c *builderConfig) {
		c.method = method
	}
}

// WithNoLoop prunes a graph that is not a tree to its maximum spanning forest.
func WithNoLoop(noLoop bool) BuilderOption {
	return func(c *builderConfig) {
		c.noLoop = noLoop
	}
}

// WithWTilde supplies the cells × K soft cluster assignment used by
// MethodModifiedMAP. Panics on nil.
func WithWTilde(w mat.Matrix) BuilderOption {
	if w == nil {
		panic("builder: WithWTilde(nil)")
	}
	return func(c *builderConfig) {
		c.wTilde = w
	}
}

// WithSpanningMethod selects the algorithm used for loop pruning
// (prim_kruskal.MethodKruskal or prim_kruskal.MethodPrim).
func WithSpanningMethod(method string) BuilderOption {
	return func(c *builderConfig) {
		c.spanning = method
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithContext sets the parent context of the build span. A nil context is
// ignored.
func WithContext(ctx context.Context) BuilderOption {
	return func(c *builderConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
