// Package core defines the central Graph and Edge types and the sentinel
// errors shared by graph mutations and queries.
//
// Errors:
//
//	ErrBadVertexID         - vertex ID is negative.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - edge weight is NaN or infinite.
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates that a negative vertex ID was supplied.
	ErrBadVertexID = errors.New("core: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected, weighted connection between two vertices.
//
// From and To keep the orientation the edge was inserted with; for the
// transition graph From < To always holds. ID is unique within its Graph and
// grows with insertion order.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID int

	// From is the first endpoint as inserted.
	From int

	// To is the second endpoint as inserted.
	To int

	// Weight is the transition evidence (or traversal cost) of the edge.
	Weight float64
}

// Other returns the endpoint of e opposite to v.
func (e *Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithVertices pre-creates vertices 0..n-1, so that isolated clusters are
// present even when no edge touches them.
func WithVertices(n int) GraphOption {
	return func(g *Graph) {
		for v := 0; v < n; v++ {
			g.vertices[v] = struct{}{}
			g.adjacency[v] = make(map[int]int)
		}
	}
}

// Graph is an undirected weighted graph over non-negative integer vertices.
//
// muVert protects vertices; muEdgeAdj protects edges, adjacency and
// nextEdgeID.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	vertices map[int]struct{}
	edges    map[int]*Edge

	// adjacency[u][v] = edge ID; mirrored for both endpoints.
	adjacency map[int]map[int]int

	nextEdgeID int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(1) plus the cost of the options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		edges:     make(map[int]*Edge),
		adjacency: make(map[int]map[int]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	TotalWeight float64
}

// Stats returns a snapshot of vertex/edge counts and the total edge weight.
// Complexity: O(E).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
	}
	g.muEdgeAdj.RUnlock()

	return stats
}
