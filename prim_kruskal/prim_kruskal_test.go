package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajinfer/core"
	"github.com/katalvlaran/trajinfer/prim_kruskal"
)

// buildTriangle constructs 0—1 (1), 1—2 (2), 0—2 (3).
// Its MST is {0—1, 1—2} with total 3; its maximum tree is {0—2, 1—2} with total 5.
func buildTriangle() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(0, 2, 3)

	return g
}

// buildMediumGraph creates a connected graph with n vertices and edgesCount edges.
// A chain 0—1—...—(n-1) guarantees connectivity; extra random edges follow.
// The generator is seeded so the graph is identical on every run.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	g := core.NewGraph(core.WithVertices(n))
	r := rand.New(rand.NewSource(42))

	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(i-1, i, 1.0+r.Float64()+float64(r.Intn(10)))
	}

	extra := edgesCount - (n - 1)
	for i := 0; i < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		// duplicates fail with ErrMultiEdgeNotAllowed and are retried
		if _, err := g.AddEdge(u, v, 1.0+r.Float64()+float64(r.Intn(100))); err == nil {
			i++
		}
	}

	return g
}

// pairs renders tree edges as sorted "u-v" keys.
func pairs(edges []core.Edge) map[string]bool {
	out := make(map[string]bool, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out[fmt.Sprintf("%d-%d", u, v)] = true
	}

	return out
}

func TestValidation_NilGraph(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.SpanningTree(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestValidation_UnknownMethod(t *testing.T) {
	_, _, err := prim_kruskal.Compute(buildTriangle(), prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestValidation_EmptyOrDisconnected verifies ErrDisconnected on an empty graph
// and on two isolated vertices, unless forest mode is requested.
func TestValidation_EmptyOrDisconnected(t *testing.T) {
	empty := core.NewGraph()
	edges, total, err := prim_kruskal.Kruskal(empty)
	assert.Empty(t, edges)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, _, err = prim_kruskal.Prim(empty, prim_kruskal.NoRoot)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	isolated := core.NewGraph(core.WithVertices(2))
	_, _, err = prim_kruskal.Kruskal(isolated)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(isolated, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	for _, m := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		edges, _, err = prim_kruskal.Compute(isolated, prim_kruskal.WithMethod(m), prim_kruskal.WithForest())
		assert.NoError(t, err, m)
		assert.Empty(t, edges, m)
	}
}

func TestValidation_MissingRoot(t *testing.T) {
	_, _, err := prim_kruskal.Prim(buildTriangle(), 9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestPrim_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Prim(buildTriangle(), 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Len(t, mst, 2)
	assert.Equal(t, map[string]bool{"0-1": true, "1-2": true}, pairs(mst))
}

func TestKruskal_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, map[string]bool{"0-1": true, "1-2": true}, pairs(mst))
}

func TestMaximum_Triangle(t *testing.T) {
	for _, m := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		tree, total, err := prim_kruskal.Compute(buildTriangle(), prim_kruskal.WithMethod(m), prim_kruskal.WithMaximum())
		require.NoError(t, err, m)
		assert.Equal(t, 5.0, total, m)
		assert.Equal(t, map[string]bool{"0-2": true, "1-2": true}, pairs(tree), m)
	}
}

// TestKruskal_TieKeepsDiscoveryOrder checks that among equal weights the
// edge inserted first wins.
func TestKruskal_TieKeepsDiscoveryOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 0.5)
	_, _ = g.AddEdge(0, 2, 0.5)
	_, _ = g.AddEdge(0, 1, 0.5)

	tree, _, err := prim_kruskal.Kruskal(g, prim_kruskal.WithMaximum())
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, 1, tree[0].ID)
	assert.Equal(t, 2, tree[1].ID)
}

func TestSingleVertexGraph(t *testing.T) {
	g := core.NewGraph(core.WithVertices(1))

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.NoError(t, errK)
	assert.Empty(t, mstK)
	assert.Zero(t, totalK)

	mstP, totalP, errP := prim_kruskal.Prim(g, 0)
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

// TestForest_TwoComponents builds two triangles and checks one tree per component.
func TestForest_TwoComponents(t *testing.T) {
	g := core.NewGraph(core.WithVertices(7))
	_, _ = g.AddEdge(0, 1, 0.9)
	_, _ = g.AddEdge(1, 2, 0.1)
	_, _ = g.AddEdge(0, 2, 0.4)
	_, _ = g.AddEdge(3, 4, 0.3)
	_, _ = g.AddEdge(4, 5, 0.8)
	_, _ = g.AddEdge(3, 5, 0.7)

	for _, m := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		edges, total, err := prim_kruskal.Compute(g,
			prim_kruskal.WithMethod(m), prim_kruskal.WithMaximum(), prim_kruskal.WithForest())
		require.NoError(t, err, m)
		assert.Len(t, edges, 4, m)
		assert.InDelta(t, 0.9+0.4+0.8+0.7, total, 1e-12, m)
		assert.Equal(t, map[string]bool{"0-1": true, "0-2": true, "4-5": true, "3-5": true}, pairs(edges), m)
	}
}

func TestSpanningTree_KeepsVertices(t *testing.T) {
	g := core.NewGraph(core.WithVertices(5))
	_, _ = g.AddEdge(0, 1, 0.2)
	_, _ = g.AddEdge(1, 2, 0.6)
	_, _ = g.AddEdge(0, 2, 0.5)

	tree, err := prim_kruskal.SpanningTree(g, prim_kruskal.WithMaximum(), prim_kruskal.WithForest())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, tree.Vertices())
	assert.Equal(t, 2, tree.EdgeCount())
	assert.False(t, tree.HasEdge(0, 1))
	w, ok := tree.Weight(2, 1)
	assert.True(t, ok)
	assert.Equal(t, 0.6, w)

	// the input is untouched
	assert.Equal(t, 3, g.EdgeCount())
}

// TestComparison_MediumGraph checks that Prim and Kruskal agree on total
// weight for both minimum and maximum trees.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(10, 20)
	const tolerance = 1e-10

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	require.NoError(t, errK)
	assert.Len(t, mstK, len(g.Vertices())-1)

	mstP, totalP, errP := prim_kruskal.Prim(g, 0)
	require.NoError(t, errP)
	assert.Len(t, mstP, len(g.Vertices())-1)
	assert.InDelta(t, totalK, totalP, tolerance)

	_, maxK, err := prim_kruskal.Kruskal(g, prim_kruskal.WithMaximum())
	require.NoError(t, err)
	_, maxP, err := prim_kruskal.Prim(g, 3, prim_kruskal.WithMaximum())
	require.NoError(t, err)
	assert.InDelta(t, maxK, maxP, tolerance)
	assert.GreaterOrEqual(t, maxK, totalK)
}
