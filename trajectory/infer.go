package trajectory

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/bfs"
	"github.com/katalvlaran/trajinfer/builder"
	"github.com/katalvlaran/trajinfer/core"
	"github.com/katalvlaran/trajinfer/dijkstra"
	"github.com/katalvlaran/trajinfer/matrix"
	"github.com/katalvlaran/trajinfer/metrics"
	"github.com/katalvlaran/trajinfer/projection"
	"github.com/katalvlaran/trajinfer/pseudotime"
)

// scoreSpan is the upper end of min-max scaled edge scores.
const scoreSpan = 3.0

var tracer = otel.Tracer("trajinfer/trajectory")

// Infer computes the trajectory rooted at cluster root.
//
// Errors: ErrNodeOutOfRange, ErrInvalidCutoff. A degenerate root is
// reported in Result.Warnings, not as an error.
func (s *Session) Infer(root int, opts ...QueryOption) (*Result, error) {
	return s.InferContext(context.Background(), root, opts...)
}

// InferContext is Infer under ctx. The query span is a child of any span in
// ctx, and a cancelled ctx aborts the milestone search.
func (s *Session) InferContext(ctx context.Context, root int, opts ...QueryOption) (res *Result, err error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "trajectory.Infer", trace.WithAttributes(
		attribute.Int("root", root),
		attribute.Int("clusters", s.idx.Clusters())))
	defer func() {
		outcome := metrics.OutcomeOK
		if err != nil {
			outcome = metrics.OutcomeError
			span.RecordError(err)
		}
		s.cfg.metrics.QueryDone(outcome, time.Since(start))
		span.End()
	}()

	qc := queryConfig{cutoff: DefaultCutoff}
	for _, opt := range opts {
		if opt != nil {
			opt(&qc)
		}
	}
	k := s.idx.Clusters()
	if root < 0 || root >= k {
		return nil, fmt.Errorf("%w: %d with K=%d", ErrNodeOutOfRange, root, k)
	}
	if math.IsNaN(qc.cutoff) || qc.cutoff < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCutoff, qc.cutoff)
	}

	res = &Result{
		Root:          root,
		Milestones:    []dijkstra.Milestone{},
		SelectedEdges: []projection.Edge{},
		EdgeScores:    []float64{},
	}

	// 1) Select edges.
	span.SetAttributes(attribute.Float64("cutoff", qc.cutoff))
	if err = s.selectEdges(ctx, res, root, qc.cutoff); err != nil {
		return nil, err
	}

	// 2) Project.
	proj, err := projection.Project(s.wTilde, res.SelectedEdges)
	if err != nil {
		return nil, fmt.Errorf("trajectory: project: %w", err)
	}
	res.W = proj.W
	res.Assignments = proj.Rows
	nodes, edges, err := projection.Summarize(proj.W)
	if err != nil {
		return nil, fmt.Errorf("trajectory: project: %w", err)
	}
	span.AddEvent("cells_projected", trace.WithAttributes(
		attribute.Int("on_node", nodes),
		attribute.Int("on_edge", edges)))

	// 3) Pseudotime.
	res.Pseudotime, err = pseudotime.Assign(res.Milestones, root, proj.W)
	if err != nil {
		return nil, fmt.Errorf("trajectory: pseudotime: %w", err)
	}

	sum := pseudotime.Summarize(res.Pseudotime)
	s.cfg.metrics.Projected(nodes, edges, sum.Unassigned)
	s.cfg.logger.Info("trajectory inferred",
		slog.Int("root", root),
		slog.Float64("cutoff", qc.cutoff),
		slog.Int("milestones", len(res.Milestones)),
		slog.Int("edge_cells", edges),
		slog.Int("unassigned", sum.Unassigned))

	return res, nil
}

// selectEdges fills Graph, Milestones, SelectedEdges and EdgeScores.
// An edgeless session graph is used as is: its root is always degenerate.
func (s *Session) selectEdges(ctx context.Context, res *Result, root int, cutoff float64) error {
	if s.graph.EdgeCount() == 0 {
		res.Graph = s.graph.CloneEmpty()
		return s.milestones(ctx, res, root, nil)
	}

	// 1) Acyclic view for no-loop sessions.
	g := s.graph
	if s.cfg.noLoop {
		var err error
		if g, err = builder.MaximumSpanningForest(g, s.cfg.spanning); err != nil {
			return fmt.Errorf("trajectory: spanning forest: %w", err)
		}
	}

	// 2) Drop weak edges through the adjacency matrix.
	adj, err := matrix.FromGraph(g, s.idx.Clusters())
	if err != nil {
		return fmt.Errorf("trajectory: adjacency: %w", err)
	}
	if adj, err = matrix.Threshold(adj, cutoff); err != nil {
		return fmt.Errorf("trajectory: threshold: %w", err)
	}
	if res.Graph, err = matrix.ToGraph(adj); err != nil {
		return fmt.Errorf("trajectory: rebuild graph: %w", err)
	}

	return s.milestones(ctx, res, root, adj)
}

// milestones runs Dijkstra on the root's component of res.Graph and scores
// the selected edges from adj.
func (s *Session) milestones(ctx context.Context, res *Result, root int, adj mat.Symmetric) error {
	// 1) Milestone network over the root's component.
	reach, err := bfs.Reach(res.Graph, root)
	if err != nil {
		return fmt.Errorf("trajectory: component: %w", err)
	}
	s.cfg.logger.Debug("root component",
		slog.Int("root", root),
		slog.Int("clusters", len(reach.Order)),
		slog.Int("depth", reach.Depth()))
	sub := core.InducedSubgraph(res.Graph, reach.Set())
	net, err := dijkstra.MilestoneNetwork(sub, root,
		dijkstra.WithContext(ctx),
		dijkstra.WithLogger(s.cfg.logger),
		dijkstra.WithOnDegenerate(func(int) { s.cfg.metrics.Degenerate() }))
	if err != nil {
		return fmt.Errorf("trajectory: milestone network: %w", err)
	}
	if net.Degenerate {
		res.Warnings = append(res.Warnings,
			fmt.Errorf("%w: root %d", dijkstra.ErrDegenerateInput, root))
		return nil
	}
	res.Milestones = net.Milestones

	// 2) Display scores.
	scores := make([]float64, len(net.Milestones))
	res.SelectedEdges = make([]projection.Edge, len(net.Milestones))
	for i, m := range net.Milestones {
		res.SelectedEdges[i] = projection.Edge{A: m.From, B: m.To}
		scores[i] = adj.At(m.From, m.To)
	}
	res.EdgeScores = scaleScores(scores)

	return nil
}

// scaleScores maps scores to [0,3] by min-max scaling, or divides by the
// common value when all scores are equal. scores is modified in place.
func scaleScores(scores []float64) []float64 {
	if len(scores) == 0 {
		return scores
	}
	lo, hi := floats.Min(scores), floats.Max(scores)
	if hi == lo {
		for i := range scores {
			scores[i] /= hi
		}
		return scores
	}
	floats.AddConst(-lo, scores)
	floats.Scale(scoreSpan/(hi-lo), scores)

	return scores
}
