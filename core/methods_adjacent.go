// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, IncidentEdges) and adjacency helpers.
// Determinism:
//   - Neighbors() returns vertex IDs sorted asc.
//   - IncidentEdges() returns edges sorted by neighbor ID asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns the IDs of all vertices adjacent to id, sorted ascending.
//
// Errors:
//   - ErrBadVertexID: if id < 0.
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if id < 0 {
		return nil, ErrBadVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]int, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}

// IncidentEdges returns the edges touching id, ordered by the ID of the
// opposite endpoint. Returned pointers are read-only.
//
// Errors: same as Neighbors.
// Complexity: O(d log d).
func (g *Graph) IncidentEdges(id int) ([]*Edge, error) {
	if id < 0 {
		return nil, ErrBadVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// linkEdge stores e and mirrors its adjacency, creating buckets as needed.
// Caller must hold muEdgeAdj write lock on g.
func linkEdge(g *Graph, e *Edge) {
	g.edges[e.ID] = e
	if _, ok := g.adjacency[e.From]; !ok {
		g.adjacency[e.From] = make(map[int]int)
	}
	if _, ok := g.adjacency[e.To]; !ok {
		g.adjacency[e.To] = make(map[int]int)
	}
	g.adjacency[e.From][e.To] = e.ID
	g.adjacency[e.To][e.From] = e.ID
}
