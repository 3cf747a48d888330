// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex and edge IDs.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph induced by the vertex set keep: only
// vertices v with keep[v] == true, and every edge whose endpoints are both
// kept. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[int]bool) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	for id := range g.vertices {
		if keep[id] {
			out.vertices[id] = struct{}{}
			out.adjacency[id] = make(map[int]int)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carry the counter so AddEdge on the view never collides with copied IDs.
	out.nextEdgeID = g.nextEdgeID
	for _, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := *e
		linkEdge(out, &ne)
	}
	g.muEdgeAdj.RUnlock()

	return out
}
