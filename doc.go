// Package trajinfer infers cell-differentiation trajectories from the soft
// cluster memberships of a mixture latent model.
//
// What is trajinfer?
//
//	A deterministic, thread-safe engine that brings together:
//		• State index: cluster pairs (i,j), i <= j, as linear state slots
//		• Graph builder: transition weights from per-cell pair evidence
//		  (mean, modified_mean, map, modified_map), optional loop pruning
//		• Milestone network: Dijkstra from a root cluster, hop-annotated
//		• Projector: each cell onto its nearest node or trajectory edge
//		• Pseudotime: hop distance plus position along the edge
//
// Packages:
//
//	core/         — thread-safe undirected weighted Graph over int vertex IDs
//	matrix/       — graph <-> gonum adjacency matrices, cutoff thresholding
//	stateindex/   — the (i,j) <-> state slot bijection
//	builder/      — transition graph aggregation
//	prim_kruskal/ — maximum spanning forests for loop pruning
//	dfs/, bfs/    — tree tests and connected components
//	dijkstra/     — milestone networks
//	projection/   — node-versus-edge projection of w_tilde
//	pseudotime/   — pseudotime assignment
//	trajectory/   — immutable Session and per-root Infer queries
//	metrics/      — Prometheus collectors
//	dataset/      — CSV/JSON matrix loading and result encoding
//	cmd/trajinfer — command-line front end
//
// Quick example:
//
//	    (0)──0.33──(1)      (2)
//
//	three clusters where only 0 and 1 share transitional cells; rooted at 0,
//	the milestone network is [0→1 hop 1] and cluster 2 stays unassigned.
//
//	go get github.com/katalvlaran/trajinfer
package trajinfer
