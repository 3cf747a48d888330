// Package builder aggregates per-cell soft state evidence into the weighted,
// undirected transition graph over K clusters.
//
// Input is pc_x, a cells × K(K+1)/2 matrix of state probabilities laid out
// by stateindex. For every pair i < j one of four methods yields a weight:
//
//	mean          mean over qualifying cells of p(i,j) / (p(i,i)+p(i,j)+p(j,j))
//	modified_mean Σ p(i,j) / Σ (p(i,i)+p(i,j)+p(j,j)) over qualifying cells
//	map           #(argmax = (i,j)) / #(argmax ∈ {(i,i),(i,j),(j,j)})
//	modified_map  #(argmax = (i,j)) / (#(w̃_i > 0.5 or w̃_j > 0.5) + 1e-16)
//
// A cell qualifies when its combined evidence reaches the threshold
// (WithThreshold, default 0.5, inclusive). Weight 0 means no edge.
// modified_map needs the cells × K soft assignment passed through
// WithWTilde; without it Build fails with ErrMissingWTilde rather than
// guessing.
//
// WithNoLoop(true) replaces a graph that is not a tree with its maximum
// spanning forest (prim_kruskal, Kruskal by default; ties keep edge
// discovery order).
//
// An unknown method fails with ErrInvalidMethod and no graph. So does an
// unknown spanning method, whether or not pruning would run; that error
// also matches prim_kruskal.ErrUnknownMethod.
package builder
