package trajectory

import (
	"context"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/builder"
	"github.com/katalvlaran/trajinfer/core"
	"github.com/katalvlaran/trajinfer/stateindex"
)

// Session is an immutable transition graph together with the soft cluster
// assignment it was built from.
type Session struct {
	idx    *stateindex.Index
	wTilde *mat.Dense
	graph  *core.Graph
	cfg    sessionConfig
}

// NewSession validates the inputs and builds the transition graph.
//
// pcX is cells × K(K+1)/2 and wTilde is cells × K. Both are copied.
//
// Errors: stateindex.ErrBadClusterCount, ErrNilInput, ErrDimensionMismatch,
// and every builder error (builder.ErrInvalidMethod, ...).
func NewSession(k int, pcX, wTilde mat.Matrix, opts ...Option) (*Session, error) {
	return NewSessionContext(context.Background(), k, pcX, wTilde, opts...)
}

// NewSessionContext is NewSession with ctx as the parent of the graph
// build span.
func NewSessionContext(ctx context.Context, k int, pcX, wTilde mat.Matrix, opts ...Option) (*Session, error) {
	cfg := defaultSessionConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// 1) Shapes.
	idx, err := stateindex.New(k)
	if err != nil {
		return nil, err
	}
	if pcX == nil || wTilde == nil {
		return nil, ErrNilInput
	}
	cells, _ := pcX.Dims()
	wr, wc := wTilde.Dims()
	if wr != cells || wc != k {
		return nil, fmt.Errorf("%w: w_tilde is %d×%d, want %d×%d",
			ErrDimensionMismatch, wr, wc, cells, k)
	}

	// 2) Aggregate.
	g, err := builder.Build(idx, pcX,
		builder.WithMethod(cfg.method),
		builder.WithThreshold(cfg.thres),
		builder.WithNoLoop(cfg.noLoop),
		builder.WithSpanningMethod(cfg.spanning),
		builder.WithWTilde(wTilde),
		builder.WithLogger(cfg.logger),
		builder.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	stats := g.Stats()
	cfg.metrics.GraphBuilt(cfg.method, stats.EdgeCount)
	cfg.logger.Info("session ready",
		slog.Int("clusters", stats.VertexCount),
		slog.Int("cells", cells),
		slog.String("method", cfg.method),
		slog.Int("edges", stats.EdgeCount),
		slog.Float64("total_weight", stats.TotalWeight))

	return &Session{
		idx:    idx,
		wTilde: mat.DenseCopyOf(wTilde),
		graph:  g,
		cfg:    cfg,
	}, nil
}

// Clusters returns K.
func (s *Session) Clusters() int { return s.idx.Clusters() }

// Graph returns a copy of the transition graph.
func (s *Session) Graph() *core.Graph { return s.graph.Clone() }

// EdgeStates returns the state slot of every graph edge, in edge order.
func (s *Session) EdgeStates() []int {
	edges := s.graph.Edges()
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = s.idx.State(e.From, e.To)
	}

	return out
}
