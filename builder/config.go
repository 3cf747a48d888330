// SPDX-License-Identifier: MIT
// Package: trajinfer/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • threshold = DefaultThreshold (0.5)
//   • method    = DefaultMethod ("mean")
//   • noLoop    = false
//   • wTilde    = nil (required by modified_map only)
//   • spanning  = prim_kruskal.MethodKruskal
//   • logger    = discard
//   • ctx       = context.Background()

package builder

import (
	"context"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/prim_kruskal"
)

// builderConfig aggregates every builder knob. It is passed by value.
type builderConfig struct {
	threshold float64
	method    string
	noLoop    bool
	wTilde    mat.Matrix
	spanning  string
	logger    *slog.Logger
	ctx       context.Context
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		threshold: DefaultThreshold,
		method:    DefaultMethod,
		spanning:  prim_kruskal.MethodKruskal,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx:       context.Background(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
