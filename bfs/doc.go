// Package bfs finds everything reachable from a root vertex of a
// core.Graph, layer by layer.
//
// Reach returns the visit order and the hop count of every reached vertex.
// Its vertex set is the connected component of the root, which the
// trajectory orchestrator hands to core.InducedSubgraph before building a
// milestone network; Depth gives the component's eccentricity from the root.
//
// Edge weights are ignored: every edge is one hop. Neighbours are expanded
// in ascending ID, so Order is reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
