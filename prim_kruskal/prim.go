// Package prim_kruskal provides an implementation of Prim’s spanning-tree algorithm.
// It grows the tree from a root vertex using a heap of candidate edges.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/trajinfer/core"
)

// Prim computes the minimum spanning tree of graph grown from root. It is
// shorthand for Compute(graph, WithMethod(MethodPrim), WithRoot(root), opts...).
func Prim(graph *core.Graph, root int, opts ...Option) ([]core.Edge, float64, error) {
	return Compute(graph, append([]Option{WithMethod(MethodPrim), WithRoot(root)}, opts...)...)
}

// prim grows a tree from cfg.Root (or the smallest vertex). In forest mode
// it restarts from the smallest unvisited vertex once a component is
// exhausted.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil.
//   - core.ErrVertexNotFound: cfg.Root is set but absent.
//   - ErrDisconnected       : |V| == 0, or the graph is disconnected outside forest mode.
//
// Complexity: O(E log V) time, O(V + E) memory.
func prim(graph *core.Graph, cfg MSTOptions) ([]core.Edge, float64, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		if cfg.Forest {
			return []core.Edge{}, 0, nil
		}
		return nil, 0, ErrDisconnected
	}
	root := cfg.Root
	if root == NoRoot {
		root = vertices[0]
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %d: %w", root, core.ErrVertexNotFound)
	}

	// 2. Initialize visited set, heap and result.
	n := len(vertices)
	visited := make(map[int]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var totalWeight float64
	pq := &edgePQ{cfg: cfg}

	// 3. Grow one component from start.
	grow := func(start int) error {
		visited[start] = true
		if err := pushFrontier(graph, pq, visited, start); err != nil {
			return err
		}
		for pq.Len() > 0 && len(tree) < n-1 {
			it := heap.Pop(pq).(frontierEdge)
			if visited[it.to] {
				continue // would close a cycle
			}
			visited[it.to] = true
			tree = append(tree, *it.edge)
			totalWeight += it.edge.Weight
			if err := pushFrontier(graph, pq, visited, it.to); err != nil {
				return err
			}
		}

		return nil
	}

	if err := grow(root); err != nil {
		return nil, 0, err
	}

	// 4. Forest mode: restart from every untouched vertex in ID order.
	if cfg.Forest {
		for _, v := range vertices {
			if visited[v] {
				continue
			}
			if err := grow(v); err != nil {
				return nil, 0, err
			}
		}
	}

	if !cfg.Forest && len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}

// pushFrontier pushes every edge from u to an unvisited vertex.
func pushFrontier(graph *core.Graph, pq *edgePQ, visited map[int]bool, u int) error {
	incident, err := graph.IncidentEdges(u)
	if err != nil {
		return fmt.Errorf("prim_kruskal: neighbors of %d: %w", u, err)
	}
	for _, e := range incident {
		if v := e.Other(u); !visited[v] {
			heap.Push(pq, frontierEdge{edge: e, to: v})
		}
	}

	return nil
}

// frontierEdge is a candidate edge leading to the unvisited vertex to.
type frontierEdge struct {
	edge *core.Edge
	to   int
}

// edgePQ implements heap.Interface ordered by weight (per cfg), then Edge.ID.
type edgePQ struct {
	cfg   MSTOptions
	items []frontierEdge
}

func (pq *edgePQ) Len() int { return len(pq.items) }

func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i].edge, pq.items[j].edge
	if a.Weight != b.Weight {
		return better(pq.cfg, a.Weight, b.Weight)
	}

	return a.ID < b.ID
}

func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(frontierEdge)) }

func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}
