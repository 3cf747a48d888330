// Package prim_kruskal computes spanning trees and spanning forests on an
// undirected, weighted *core.Graph with Prim’s and Kruskal’s algorithms.
//
// What & Why
//
//   - A spanning tree T ⊆ E connects every vertex of a connected graph with
//     |V|−1 edges. The minimum (or maximum) spanning tree minimises (or
//     maximises) the total weight of T.
//
//   - On a disconnected graph the analogue is a spanning forest: one tree per
//     connected component, |V| − #components edges in total.
//
//   - Trajectory inference uses the maximum spanning forest to turn a loopy
//     cluster transition graph into a tree while keeping its strongest
//     transitions (see builder.WithNoLoop).
//
// Algorithms Provided
//
//   - Kruskal: stable-sort all edges by weight (descending for WithMaximum),
//     then merge components with a disjoint-set. Ties keep Edge.ID order.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim: grow a tree from a root with a heap of frontier edges ordered by
//     weight then Edge.ID. In forest mode Prim restarts from the smallest
//     unvisited vertex. Time O(E log V), space O(V + E).
//
// Both algorithms return the same total weight; edge order may differ.
//
// Error Conditions
//
//   - ErrInvalidGraph       : graph is nil.
//   - ErrUnknownMethod      : WithMethod got something other than MethodPrim/MethodKruskal.
//   - core.ErrVertexNotFound: Prim root is absent.
//   - ErrDisconnected       : empty or disconnected graph without WithForest.
//
// Determinism: Vertices() and Edges() are sorted by ID, so repeated calls on
// the same graph select identical edges in identical order.
package prim_kruskal
