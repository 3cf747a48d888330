// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-negative ID (ErrBadVertexID).
//   - Stage 2: Under muVert write lock, register the vertex if absent.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap its adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrBadVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]int)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (negative ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	if id < 0 {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrBadVertexID for negative id.
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	if id < 0 {
		return 0, ErrBadVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
