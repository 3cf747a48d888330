// Package prim_kruskal provides an implementation of Kruskal’s spanning-tree algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/trajinfer/core"
)

// Kruskal computes the minimum spanning tree of graph. It is shorthand for
// Compute(graph, WithMethod(MethodKruskal), opts...).
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	return Compute(graph, append([]Option{WithMethod(MethodKruskal)}, opts...)...)
}

// kruskal uses a disjoint-set (union-find) with path compression and union by rank.
//
// Steps:
//  1. Validate graph != nil.
//  2. Retrieve sorted vertex IDs; |V| == 0 → ErrDisconnected unless forest mode.
//  3. Collect edges in Edge.ID order and stable-sort them by weight
//     (descending when Maximum), so ties keep discovery order.
//  4. Take every edge joining two different components.
//  5. Outside forest mode, fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func kruskal(graph *core.Graph, cfg MSTOptions) ([]core.Edge, float64, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Vertices in sorted order for determinism.
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		if cfg.Forest {
			return []core.Edge{}, 0, nil
		}
		return nil, 0, ErrDisconnected
	}

	// 3. Stable sort keeps Edge.ID order among equal weights.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return better(cfg, edges[i].Weight, edges[j].Weight)
	})

	// 4. Disjoint-set structures keyed by vertex ID.
	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(ru, rv int) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	var (
		tree        = make([]core.Edge, 0, len(vertices)-1)
		totalWeight float64
	)
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		tree = append(tree, *e)
		totalWeight += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	// 5. A spanning tree needs exactly |V|-1 edges.
	if !cfg.Forest && len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}
