// Package prim_kruskal defines configuration options and sentinel errors for
// spanning-tree computation. It supports selecting between Kruskal and Prim,
// minimum or maximum weight, and tree or forest output.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trajinfer/core"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph is not fully connected, so a
// spanning tree covering all vertices cannot be formed. It is never returned
// in forest mode.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// NoRoot lets Prim start from the smallest vertex ID.
const NoRoot = -1

// MSTOptions configures which spanning-tree algorithm to run and how.
//
// Fields:
//
//	Method  — MethodPrim or MethodKruskal.
//	Root    — start vertex for Prim; NoRoot means the smallest vertex. Ignored by Kruskal.
//	Maximum — maximise instead of minimise total weight.
//	Forest  — return a spanning forest on disconnected graphs instead of ErrDisconnected.
type MSTOptions struct {
	Method  string
	Root    int
	Maximum bool
	Forest  bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm. Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithMaximum selects a maximum-weight spanning tree.
func WithMaximum() Option {
	return func(opts *MSTOptions) {
		opts.Maximum = true
	}
}

// WithForest accepts disconnected graphs and returns one tree per component.
func WithForest() Option {
	return func(opts *MSTOptions) {
		opts.Forest = true
	}
}

// DefaultOptions returns MSTOptions for a minimum spanning tree via Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   NoRoot,
	}
}

// Compute selects and runs the spanning-tree algorithm described by opts.
//
// Returns:
//
//	[]core.Edge — edges of the tree (or forest) in selection order.
//	float64     — total weight of the selected edges.
//	error       — ErrUnknownMethod, or the algorithm's own error.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return kruskal(graph, cfg)
	case MethodPrim:
		return prim(graph, cfg)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// SpanningTree returns a new graph holding every vertex of graph and only
// the edges chosen by Compute. Edge weights are preserved.
//
// The maximum spanning forest of a transition graph is obtained with
// SpanningTree(g, WithMaximum(), WithForest()).
func SpanningTree(graph *core.Graph, opts ...Option) (*core.Graph, error) {
	edges, _, err := Compute(graph, opts...)
	if err != nil {
		return nil, err
	}
	out := graph.CloneEmpty()
	for _, e := range edges {
		if _, err = out.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("prim_kruskal: rebuild tree: %w", err)
		}
	}

	return out, nil
}

// better reports whether weight a ranks before weight b under cfg.
func better(cfg MSTOptions, a, b float64) bool {
	if cfg.Maximum {
		return a > b
	}

	return a < b
}
