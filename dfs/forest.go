package dfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/trajinfer/core"
)

// ErrGraphNil is returned when a nil *core.Graph is walked.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Forest is the depth-first spanning forest of a graph.
type Forest struct {
	// Order lists vertices in discovery (pre-)order.
	Order []int
	// Parent maps every non-root vertex to the vertex that discovered it.
	Parent map[int]int
	// Components lists connected components by their smallest vertex,
	// members ascending.
	Components [][]int

	// surplus is the number of edges beyond a spanning forest.
	surplus int
}

// frame is one stack entry: a vertex and the next neighbour to inspect.
type frame struct {
	v    int
	nbrs []int
	next int
}

// Walk builds the depth-first spanning forest of g.
func Walk(g *core.Graph) (*Forest, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	f := &Forest{
		Order:  make([]int, 0, len(vertices)),
		Parent: make(map[int]int, len(vertices)),
	}
	seen := make(map[int]bool, len(vertices))

	for _, root := range vertices {
		if seen[root] {
			continue
		}
		comp, err := f.tree(g, root, seen)
		if err != nil {
			return nil, err
		}
		sort.Ints(comp)
		f.Components = append(f.Components, comp)
	}
	// A spanning forest has |V| - #components edges; anything more closes a cycle.
	f.surplus = g.EdgeCount() - (len(vertices) - len(f.Components))

	return f, nil
}

// tree explores the component of root and returns its members.
func (f *Forest) tree(g *core.Graph, root int, seen map[int]bool) ([]int, error) {
	discover := func(v int) (*frame, error) {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbours of %d: %w", v, err)
		}
		seen[v] = true
		f.Order = append(f.Order, v)

		return &frame{v: v, nbrs: nbrs}, nil
	}

	top, err := discover(root)
	if err != nil {
		return nil, err
	}
	comp := []int{root}
	stack := []*frame{top}
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}
		u := top.nbrs[top.next]
		top.next++
		if seen[u] {
			continue
		}
		child, err := discover(u)
		if err != nil {
			return nil, err
		}
		f.Parent[u] = top.v
		comp = append(comp, u)
		stack = append(stack, child)
	}

	return comp, nil
}

// Cyclic reports whether the walked graph contains a cycle.
func (f *Forest) Cyclic() bool { return f.surplus > 0 }

// IsTree reports whether the walked graph is a tree: exactly one component
// and no cycle. An empty graph is not a tree; a single vertex is.
func (f *Forest) IsTree() bool {
	return len(f.Components) == 1 && !f.Cyclic()
}
