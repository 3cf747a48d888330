// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID so IDs stay monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

// CloneEmpty returns a new Graph with the same vertices but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	clone.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacency[id] = make(map[int]int)
	}

	return clone
}

// Clone returns a deep copy of the Graph: vertices, edges and adjacency.
// Edge IDs are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		ne := *e
		linkEdge(clone, &ne)
	}

	return clone
}
