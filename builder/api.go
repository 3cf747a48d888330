// SPDX-License-Identifier: MIT
// Package: trajinfer/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   • Weights aggregates per-cell evidence into a symmetric K×K matrix.
//   • Build turns that matrix into a *core.Graph and optionally prunes loops.
//   • Determinism: same inputs and options ⇒ identical weights, edge IDs
//     and pruning decisions.
//   • Safety: never panic on user data; return sentinel errors.

package builder

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/core"
	"github.com/katalvlaran/trajinfer/dfs"
	"github.com/katalvlaran/trajinfer/matrix"
	"github.com/katalvlaran/trajinfer/prim_kruskal"
	"github.com/katalvlaran/trajinfer/stateindex"
)

var tracer = otel.Tracer("trajinfer/builder")

// aggregator computes the weight of cluster pair (i,j), i < j.
type aggregator func(ev *evidence, i, j int) float64

// aggregators maps method names to implementations.
var aggregators = map[string]aggregator{
	MethodMean:         meanWeight,
	MethodModifiedMean: modifiedMeanWeight,
	MethodMAP:          mapWeight,
	MethodModifiedMAP:  modifiedMapWeight,
}

// Methods lists the accepted aggregation names.
func Methods() []string {
	return []string{MethodMean, MethodModifiedMean, MethodMAP, MethodModifiedMAP}
}

// Weights aggregates pc_x (cells × K(K+1)/2) into a symmetric K×K weight
// matrix with a zero diagonal.
//
// Errors:
//   - ErrNilInput, ErrDimensionMismatch, ErrNaNInf, ErrInvalidThreshold.
//   - ErrInvalidMethod for an unknown method.
//   - ErrMissingWTilde for modified_map without WithWTilde.
//
// Complexity: O(cells · K²).
func Weights(idx *stateindex.Index, pcX mat.Matrix, opts ...BuilderOption) (*mat.SymDense, error) {
	return weights(idx, pcX, newBuilderConfig(opts...))
}

func weights(idx *stateindex.Index, pcX mat.Matrix, cfg builderConfig) (*mat.SymDense, error) {
	// 1) Resolve the method before touching data.
	agg, ok := aggregators[cfg.method]
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMethod, cfg.method)
	}
	if cfg.method == MethodModifiedMAP && cfg.wTilde == nil {
		return nil, ErrMissingWTilde
	}

	// 2) Snapshot and validate the evidence.
	ev, err := newEvidence(idx, pcX, cfg)
	if err != nil {
		return nil, err
	}

	// 3) Aggregate every edge state (i,j), i < j, in slot order.
	out := mat.NewSymDense(idx.Clusters(), nil)
	for _, s := range idx.EdgeStates() {
		p, err := idx.Pair(s)
		if err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
		out.SetSym(p.I, p.J, agg(ev, p.I, p.J))
	}

	return out, nil
}

// Build aggregates pc_x into the transition graph over K clusters. Edges are
// inserted in row-major order over i < j, which fixes edge IDs and the
// spanning-tree tie-break. With WithNoLoop(true), a graph that is not a tree
// is replaced by its maximum spanning forest.
//
// No partial graph is returned on error.
func Build(idx *stateindex.Index, pcX mat.Matrix, opts ...BuilderOption) (_ *core.Graph, err error) {
	cfg := newBuilderConfig(opts...)
	_, span := tracer.Start(cfg.ctx, "builder.Build", trace.WithAttributes(
		attribute.String("method", cfg.method),
		attribute.String("spanning", cfg.spanning),
		attribute.Bool("no_loop", cfg.noLoop)))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if err = checkSpanning(cfg.spanning); err != nil {
		return nil, err
	}

	// 1) Aggregate.
	w, err := weights(idx, pcX, cfg)
	if err != nil {
		return nil, err
	}

	// 2) Materialize; zero weights are absent edges.
	g, err := matrix.ToGraph(w)
	if err != nil {
		return nil, fmt.Errorf("builder: Build: %w", err)
	}

	// 3) Optional loop pruning.
	forest, err := dfs.Walk(g)
	if err != nil {
		return nil, fmt.Errorf("builder: Build: %w", err)
	}
	pruned := cfg.noLoop && !forest.IsTree()
	if pruned {
		if g, err = spanningForest(g, cfg.spanning); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
		span.AddEvent("loops_pruned", trace.WithAttributes(
			attribute.Int("edges_kept", g.EdgeCount())))
	}
	span.SetAttributes(
		attribute.Int("clusters", idx.Clusters()),
		attribute.Int("edges", g.EdgeCount()),
		attribute.Int("components", len(forest.Components)))

	cfg.logger.Debug("transition graph built",
		slog.String("method", cfg.method),
		slog.Float64("thres", cfg.threshold),
		slog.Int("clusters", idx.Clusters()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("components", len(forest.Components)),
		slog.Bool("cyclic", forest.Cyclic()),
		slog.Bool("pruned", pruned))

	return g, nil
}

// MaximumSpanningForest returns g unchanged when it is already a tree and
// its maximum spanning forest otherwise.
func MaximumSpanningForest(g *core.Graph, spanning string) (*core.Graph, error) {
	if err := checkSpanning(spanning); err != nil {
		return nil, err
	}
	forest, err := dfs.Walk(g)
	if err != nil {
		return nil, err
	}
	if forest.IsTree() {
		return g, nil
	}

	return spanningForest(g, spanning)
}

// spanningForest keeps the maximum-weight spanning forest of g.
func spanningForest(g *core.Graph, spanning string) (*core.Graph, error) {
	return prim_kruskal.SpanningTree(g,
		prim_kruskal.WithMethod(spanning),
		prim_kruskal.WithMaximum(),
		prim_kruskal.WithForest())
}

// checkSpanning rejects spanning-forest algorithms prim_kruskal does not know.
func checkSpanning(spanning string) error {
	switch spanning {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
		return nil
	default:
		return fmt.Errorf("%w: %w: got %q", ErrInvalidMethod, prim_kruskal.ErrUnknownMethod, spanning)
	}
}
