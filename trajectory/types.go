package trajectory

import (
	"errors"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/builder"
	"github.com/katalvlaran/trajinfer/core"
	"github.com/katalvlaran/trajinfer/dijkstra"
	"github.com/katalvlaran/trajinfer/metrics"
	"github.com/katalvlaran/trajinfer/prim_kruskal"
	"github.com/katalvlaran/trajinfer/projection"
)

// DefaultCutoff is the edge weight at or below which Infer drops an edge.
const DefaultCutoff = 0.01

var (
	// ErrNilInput is returned when pc_x or w_tilde is nil.
	ErrNilInput = errors.New("trajectory: nil input matrix")

	// ErrDimensionMismatch is returned when w_tilde is not cells × K.
	ErrDimensionMismatch = errors.New("trajectory: dimension mismatch")

	// ErrNodeOutOfRange is returned when the root is not in [0,K).
	ErrNodeOutOfRange = errors.New("trajectory: root node out of range")

	// ErrInvalidCutoff is returned for a negative or NaN cutoff.
	ErrInvalidCutoff = errors.New("trajectory: invalid cutoff")
)

// sessionConfig holds the graph construction settings of a Session.
type sessionConfig struct {
	method   string
	thres    float64
	noLoop   bool
	spanning string
	logger   *slog.Logger
	metrics  *metrics.Collector
}

// Option configures NewSession.
type Option func(*sessionConfig)

func defaultSessionConfig() sessionConfig {
	return sessionConfig{
		method:   builder.DefaultMethod,
		thres:    builder.DefaultThreshold,
		spanning: prim_kruskal.MethodKruskal,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMethod selects the builder aggregation method.
func WithMethod(method string) Option {
	return func(c *sessionConfig) { c.method = method }
}

// WithThreshold sets the builder evidence threshold.
func WithThreshold(thres float64) Option {
	return func(c *sessionConfig) { c.thres = thres }
}

// WithNoLoop forces an acyclic trajectory graph.
func WithNoLoop(noLoop bool) Option {
	return func(c *sessionConfig) { c.noLoop = noLoop }
}

// WithSpanningMethod picks the spanning-forest algorithm used for no-loop pruning.
func WithSpanningMethod(method string) Option {
	return func(c *sessionConfig) { c.spanning = method }
}

// WithLogger sets the logger shared by the session and its stages. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *sessionConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records graph and query metrics on m.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *sessionConfig) { c.metrics = m }
}

// queryConfig holds per-Infer settings.
type queryConfig struct {
	cutoff float64
}

// QueryOption configures one Infer call.
type QueryOption func(*queryConfig)

// WithCutoff sets the edge weight at or below which edges are dropped.
func WithCutoff(cutoff float64) QueryOption {
	return func(c *queryConfig) { c.cutoff = cutoff }
}

// Result is the outcome of one Infer call.
type Result struct {
	// Root is the query's start cluster.
	Root int
	// Graph is the thresholded trajectory graph over all K clusters.
	Graph *core.Graph
	// W is the projected cells × K weight matrix.
	W *mat.Dense
	// Assignments describes the projection of every cell.
	Assignments []projection.Assignment
	// Pseudotime holds one value per cell; pseudotime.Unassigned if unreachable.
	Pseudotime []float64
	// Milestones is the network rooted at Root, in finalization order.
	Milestones []dijkstra.Milestone
	// SelectedEdges are the milestone pairs, in the same order.
	SelectedEdges []projection.Edge
	// EdgeScores[i] is the display score of SelectedEdges[i], in [0,3].
	EdgeScores []float64
	// Warnings lists non-fatal conditions such as dijkstra.ErrDegenerateInput.
	Warnings []error
}
