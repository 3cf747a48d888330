// Package dfs walks an undirected core.Graph depth-first and reports its
// spanning forest: discovery order, DFS parents and connected components.
//
// The forest answers the structural questions the trajectory builder asks
// before loop pruning: is the transition graph a single tree, and how many
// disconnected lineages does it carry.
//
// Determinism: roots are taken in ascending vertex ID and neighbours are
// explored in ascending ID, so Order, Parent and Components are identical
// across runs.
//
// Complexity: O(V + E) time, O(V) memory. The walk uses an explicit stack,
// so long chains do not grow the goroutine stack.
package dfs
