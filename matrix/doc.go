// Package matrix converts between core.Graph and dense symmetric adjacency
// matrices (gonum mat.SymDense), and applies weight cutoffs on the matrix
// form.
//
// The trajectory orchestrator round-trips the transition graph through this
// package: graph -> adjacency -> zero every entry at or below the cutoff ->
// graph. ToGraph inserts edges in row-major order over the upper triangle,
// which fixes the edge discovery order used by spanning-tree tie-breaking.
//
// Conventions:
//
//   - Vertex v maps to row/column v; a graph passed to FromGraph must only
//     contain vertices in 0..n-1.
//   - A zero entry means "no edge". The diagonal is ignored.
//
// Complexity: FromGraph O(n² + E), ToGraph O(n²), Threshold O(n²).
package matrix
