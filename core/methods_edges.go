// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
//       Graphs only grow; pruning builds a new graph.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc (insertion order).
//   - Edge IDs are monotonic and never reused within a Graph or its clones.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
)

// AddEdge creates a new undirected edge from—to with the given weight and
// returns its ID. Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a parallel edge.
//  4. Assign the next ID, store the edge and mirror adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) (int, error) {
	// 1) Input validation
	if from < 0 || to < 0 {
		return 0, ErrBadVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, ErrBadWeight
	}
	if from == to {
		return 0, ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return 0, err
	}
	if err := g.AddVertex(to); err != nil {
		return 0, err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, exists := g.adjacency[from][to]; exists {
		return 0, ErrMultiEdgeNotAllowed
	}

	// 4) Store and link adjacency on both endpoints
	g.nextEdgeID++
	eid := g.nextEdgeID
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether an edge between from and to exists, in either
// orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the edge between from and to.
// The second result is false if there is no such edge.
// Complexity: O(1).
func (g *Graph) Weight(from, to int) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return 0, false
	}

	return g.edges[eid].Weight, true
}

// Edges returns all edges sorted by Edge.ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
