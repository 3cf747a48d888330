// Package dijkstra defines the types, options and sentinel errors for
// building a milestone network with Dijkstra's shortest-path search.
//
// Edge weights are non-negative costs. The search runs from a root and
// finalizes vertices in order of increasing cumulative cost; each
// finalized non-root vertex contributes one milestone
// (parent, vertex, hop distance).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrRootNotFound    if the root vertex is absent.
//	– ErrNegativeWeight  if any edge weight is negative.
//	– ErrDegenerateInput is never returned; it marks the singleton warning
//	  passed to loggers and hooks.
package dijkstra

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors returned by MilestoneNetwork.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrRootNotFound indicates that the root vertex does not exist in the graph.
	ErrRootNotFound = errors.New("dijkstra: root vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrDegenerateInput describes a root whose component is a single vertex.
	// It is a warning: MilestoneNetwork still succeeds with an empty network.
	ErrDegenerateInput = errors.New("dijkstra: root component is a single vertex")
)

// Milestone is one directed edge of the milestone network, oriented away
// from the root. Hop is the edge count from the root to To along the
// selected tree; Cost is the cumulative weight of that path.
type Milestone struct {
	From int
	To   int
	Hop  int
	Cost float64
}

// Result is the milestone network rooted at Root.
type Result struct {
	// Root is the start vertex.
	Root int
	// Milestones lists tree edges in finalization order (root outward).
	Milestones []Milestone
	// Degenerate is set when the root has no incident edges.
	Degenerate bool
}

// Pairs returns the (From, To) pair of every milestone, in order.
func (r *Result) Pairs() [][2]int {
	out := make([][2]int, len(r.Milestones))
	for i, m := range r.Milestones {
		out[i] = [2]int{m.From, m.To}
	}

	return out
}

// Options configures MilestoneNetwork.
//
// Ctx          – parent context for the trace span; cancellation stops the search.
// Logger       – receives a warning when the root component is degenerate.
// OnDegenerate – optional hook invoked with the root in the same situation.
type Options struct {
	Ctx          context.Context
	Logger       *slog.Logger
	OnDegenerate func(root int)
}

// Option represents a functional option for configuring MilestoneNetwork.
type Option func(*Options)

// WithContext sets the parent context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnDegenerate installs a hook for singleton root components.
func WithOnDegenerate(fn func(root int)) Option {
	return func(o *Options) {
		o.OnDegenerate = fn
	}
}

// DefaultOptions returns Options with a background context, a discarding
// logger and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
