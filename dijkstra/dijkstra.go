// Package dijkstra implements the milestone-network builder: a
// single-source Dijkstra search whose finalization order yields a
// directed spanning tree of the root's component.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), with O(E) heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges detects negative weights and fails fast.
//   - Relaxation requires a strict improvement, so the first parent to reach
//     a cost keeps it.
//   - The heap orders by cost, then by vertex ID, which fixes the tie-break
//     between equally distant vertices.
//   - Vertices unreachable from the root are never finalized and produce no
//     milestone.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/trajinfer/core"
)

var tracer = otel.Tracer("trajinfer/dijkstra")

// MilestoneNetwork runs Dijkstra's algorithm on g from root and returns the
// milestone network: one Milestone per finalized non-root vertex, appended
// when that vertex is finalized.
//
// A root with no incident edges yields an empty network with
// Result.Degenerate set; the condition is logged at warn level and passed to
// the OnDegenerate hook, and no error is returned.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain root (ErrRootNotFound).
//  3. no edge may carry a negative weight (ErrNegativeWeight).
//
// A cancelled Options.Ctx stops the search with the context's error.
func MilestoneNetwork(g *core.Graph, root int, opts ...Option) (res *Result, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := tracer.Start(cfg.Ctx, "dijkstra.MilestoneNetwork",
		trace.WithAttributes(attribute.Int("root", root)))
	defer func() {
		if err != nil {
			span.RecordError(err)
		} else {
			span.AddEvent("network_complete", trace.WithAttributes(
				attribute.Int("milestones", len(res.Milestones)),
				attribute.Bool("degenerate", res.Degenerate)))
		}
		span.End()
	}()

	// 1) Validate graph and root.
	if g == nil {
		return nil, ErrNilGraph
	}
	span.SetAttributes(
		attribute.Int("node_count", g.VertexCount()),
		attribute.Int("edge_count", g.EdgeCount()))
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}

	// 2) Pre-scan for negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d–%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Singleton component: warn and return an empty network.
	deg, err := g.Degree(root)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: degree of %d: %w", root, err)
	}
	if deg == 0 {
		span.AddEvent("degenerate_root")
		cfg.Logger.Warn("degenerate milestone network",
			slog.Int("root", root),
			slog.String("reason", ErrDegenerateInput.Error()))
		if cfg.OnDegenerate != nil {
			cfg.OnDegenerate(root)
		}

		return &Result{Root: root, Milestones: []Milestone{}, Degenerate: true}, nil
	}

	// 4) Run the search.
	r := newRunner(g, root)
	if err = r.process(ctx); err != nil {
		return nil, err
	}

	return &Result{Root: root, Milestones: r.milestones}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g          *core.Graph
	root       int
	cost       map[int]float64
	hop        map[int]int
	parent     map[int]int
	visited    map[int]bool
	pq         nodePQ
	milestones []Milestone
}

// newRunner seeds cost[root] = 0 and pushes the root.
func newRunner(g *core.Graph, root int) *runner {
	n := g.VertexCount()
	r := &runner{
		g:          g,
		root:       root,
		cost:       make(map[int]float64, n),
		hop:        make(map[int]int, n),
		parent:     make(map[int]int, n),
		visited:    make(map[int]bool, n),
		pq:         make(nodePQ, 0, n),
		milestones: make([]Milestone, 0, n-1),
	}
	r.cost[root] = 0
	r.hop[root] = 0
	heap.Push(&r.pq, &nodeItem{id: root, cost: 0})

	return r
}

// known returns the current best cost of v, +∞ if unseen.
func (r *runner) known(v int) float64 {
	if c, ok := r.cost[v]; ok {
		return c
	}

	return math.Inf(1)
}

// process pops vertices in (cost, id) order, finalizes them and relaxes
// their neighbors until the heap drains.
func (r *runner) process(ctx context.Context) error {
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		// stale entry
		if r.visited[u] || item.cost > r.cost[u] {
			continue
		}
		if err := r.relax(u); err != nil {
			return err
		}
		r.visited[u] = true
		if u != r.root {
			r.milestones = append(r.milestones, Milestone{
				From: r.parent[u],
				To:   u,
				Hop:  r.hop[u],
				Cost: r.cost[u],
			})
		}
	}

	return nil
}

// relax improves every unvisited neighbor of u reachable more cheaply through u.
func (r *runner) relax(u int) error {
	incident, err := r.g.IncidentEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	for _, e := range incident {
		v := e.Other(u)
		if r.visited[v] {
			continue
		}
		next := r.cost[u] + e.Weight
		if next < r.known(v) {
			r.cost[v] = next
			r.parent[v] = u
			r.hop[v] = r.hop[u] + 1
			heap.Push(&r.pq, &nodeItem{id: v, cost: next})
		}
	}

	return nil
}

// nodeItem is a heap entry for vertex id at a tentative cost.
type nodeItem struct {
	id   int
	cost float64
}

// nodePQ is a min-heap ordered by cost, then vertex ID.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
