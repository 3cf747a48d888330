// Package dijkstra turns a weighted, undirected cluster graph into a
// milestone network: the directed spanning tree produced by running
// Dijkstra's algorithm from a root cluster.
//
// Overview:
//
//   - Weights are costs. Vertices are finalized in order of increasing
//     cumulative cost from the root; ties go to the smaller vertex ID.
//   - Each finalized non-root vertex v appends Milestone{From: parent(v),
//     To: v, Hop: hops(v), Cost: cost(v)}. Hop counts edges along the
//     selected path, not weight, and increases by exactly one per tree edge.
//   - The result covers exactly the component reachable from the root.
//
// Degenerate input:
//
//   - When the root has no incident edges the network is empty,
//     Result.Degenerate is true and a warning is logged through the
//     configured *slog.Logger. Batch callers trying many roots keep going.
//
// Tracing:
//
//   - Each call opens a "dijkstra.MilestoneNetwork" span under the context
//     set with WithContext. The same context cancels the search.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra
