package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trajinfer/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrRootNotFound is returned when the root is not a vertex of the graph.
	ErrRootNotFound = errors.New("bfs: root vertex not found")
)

// Reachable is the result of Reach.
type Reachable struct {
	// Root is the start vertex.
	Root int
	// Order lists reached vertices by hop layer, ascending ID within a parent.
	Order []int
	// Hops is the edge count from Root to every reached vertex.
	Hops map[int]int
}

// Reach expands g breadth-first from root.
func Reach(g *core.Graph, root int) (*Reachable, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}

	r := &Reachable{
		Root:  root,
		Order: []int{root},
		Hops:  map[int]int{root: 0},
	}
	// Order doubles as the queue; head is the next vertex to expand.
	for head := 0; head < len(r.Order); head++ {
		v := r.Order[head]
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbours of %d: %w", v, err)
		}
		for _, u := range nbrs {
			if _, ok := r.Hops[u]; ok {
				continue
			}
			r.Hops[u] = r.Hops[v] + 1
			r.Order = append(r.Order, u)
		}
	}

	return r, nil
}

// Set returns the reached vertices as a membership map, the form
// core.InducedSubgraph expects.
func (r *Reachable) Set() map[int]bool {
	out := make(map[int]bool, len(r.Order))
	for _, v := range r.Order {
		out[v] = true
	}

	return out
}

// Depth returns the largest hop count, 0 when only the root is reached.
func (r *Reachable) Depth() int {
	return r.Hops[r.Order[len(r.Order)-1]]
}
