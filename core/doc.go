// Package core provides the thread-safe, in-memory undirected weighted Graph
// that every trajinfer stage passes around: the transition graph over
// clusters, its pruned spanning tree, the cutoff-thresholded trajectory graph
// and the connected component of the root.
//
// Vertices are non-negative integers (cluster indices 0..K-1). Edges are
// undirected, carry a float64 weight and an integer ID assigned in insertion
// order. Parallel edges and self-loops are rejected: a transition graph has
// at most one edge per unordered cluster pair.
//
// Determinism:
//
//   - Vertices() and Neighbors() return vertex IDs in ascending order.
//   - Edges() returns edges in ascending Edge.ID, i.e. discovery order.
//     Spanning-tree tie-breaking and milestone ordering rely on this.
//
// Concurrency:
//
//	Two sync.RWMutex guard the graph, muVert for the vertex catalog and
//	muEdgeAdj for edges and adjacency. Lock order is always muVert then
//	muEdgeAdj. Graphs handed out by trajectory sessions are treated as
//	immutable by convention; Clone before mutating.
//
// Core Methods:
//
//	AddVertex(id int) error                               // O(1)
//	AddEdge(from, to int, weight float64) (int, error)    // O(1)
//	Weight(from, to int) (float64, bool)                  // O(1)
//	Edges() []*Edge                                       // O(E log E)
//	Neighbors(id int) ([]int, error)                      // O(d log d)
//	Stats() GraphStats                                    // O(E)
//	Clone() *Graph, CloneEmpty() *Graph                   // O(V+E)
//	InducedSubgraph(g, keep) *Graph                       // O(V+E)
package core
