package trajectory_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/builder"
	"github.com/katalvlaran/trajinfer/dijkstra"
	"github.com/katalvlaran/trajinfer/metrics"
	"github.com/katalvlaran/trajinfer/prim_kruskal"
	"github.com/katalvlaran/trajinfer/projection"
	"github.com/katalvlaran/trajinfer/pseudotime"
	"github.com/katalvlaran/trajinfer/stateindex"
	"github.com/katalvlaran/trajinfer/trajectory"
)

// threeCells: cells on (0,0), (0,1) and (1,1) with K=3.
func threeCells() (pcX, wTilde *mat.Dense) {
	pcX = mat.NewDense(3, 6, []float64{
		0.9, 0.1, 0, 0, 0, 0,
		0.1, 0.8, 0, 0.1, 0, 0,
		0, 0.1, 0, 0.9, 0, 0,
	})
	wTilde = mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0.4, 0.6, 0,
		0, 1, 0,
	})

	return pcX, wTilde
}

// hardCells builds one-hot pc_x rows, one per listed state slot.
func hardCells(states int, slots ...int) *mat.Dense {
	m := mat.NewDense(len(slots), states, nil)
	for r, s := range slots {
		m.Set(r, s, 1)
	}

	return m
}

// chain is a MAP session over 0 -(0.5)- 1 -(1/3)- 2.
func chain(t *testing.T, opts ...trajectory.Option) *trajectory.Session {
	t.Helper()
	pcX := hardCells(6, 0, 1, 1, 3, 4, 5)
	wTilde := mat.NewDense(6, 3, []float64{
		1, 0, 0,
		0.5, 0.5, 0,
		0.5, 0.5, 0,
		0, 1, 0,
		0, 0.5, 0.5,
		0, 0, 1,
	})
	s, err := trajectory.NewSession(3, pcX, wTilde,
		append([]trajectory.Option{trajectory.WithMethod(builder.MethodMAP)}, opts...)...)
	require.NoError(t, err)

	return s
}

func TestInfer_ThreeCellScenario(t *testing.T) {
	pcX, wTilde := threeCells()
	s, err := trajectory.NewSession(3, pcX, wTilde, trajectory.WithThreshold(0.5))
	require.NoError(t, err)

	g := s.Graph()
	require.Equal(t, 1, g.EdgeCount())
	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Greater(t, w, 0.0)
	assert.LessOrEqual(t, w, 1.0)

	res, err := s.Infer(0)
	require.NoError(t, err)
	require.Len(t, res.Milestones, 1)
	m := res.Milestones[0]
	assert.Equal(t, [3]int{0, 1, 1}, [3]int{m.From, m.To, m.Hop})
	assert.Equal(t, []projection.Edge{{A: 0, B: 1}}, res.SelectedEdges)
	assert.Equal(t, []float64{1}, res.EdgeScores)
	assert.Empty(t, res.Warnings)

	require.Len(t, res.Pseudotime, 3)
	assert.Equal(t, 0.0, res.Pseudotime[0])
	assert.InDelta(t, 0.6, res.Pseudotime[1], 1e-12)
	assert.InDelta(t, res.W.At(1, 1), res.Pseudotime[1], 1e-12)
	assert.Equal(t, 1.0, res.Pseudotime[2])
	assert.Equal(t, projection.OnEdge, res.Assignments[1].Kind)
}

func TestInfer_SingleCluster(t *testing.T) {
	pcX := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	wTilde := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	var logs bytes.Buffer
	s, err := trajectory.NewSession(1, pcX, wTilde,
		trajectory.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, err)

	res, err := s.Infer(0)
	require.NoError(t, err)
	assert.Empty(t, res.Milestones)
	assert.Empty(t, res.SelectedEdges)
	assert.Equal(t, []float64{0, 0, 0, 0}, res.Pseudotime)
	require.Len(t, res.Warnings, 1)
	assert.ErrorIs(t, res.Warnings[0], dijkstra.ErrDegenerateInput)
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestNewSession_Errors(t *testing.T) {
	pcX, wTilde := threeCells()

	_, err := trajectory.NewSession(3, pcX, wTilde, trajectory.WithMethod("bogus"))
	assert.ErrorIs(t, err, builder.ErrInvalidMethod)

	// The spanning method is checked even when no pruning happens.
	for _, noLoop := range []bool{false, true} {
		_, err = trajectory.NewSession(3, pcX, wTilde,
			trajectory.WithNoLoop(noLoop), trajectory.WithSpanningMethod("bogus"))
		assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod, "noLoop=%v", noLoop)
	}

	_, err = trajectory.NewSession(0, pcX, wTilde)
	assert.ErrorIs(t, err, stateindex.ErrBadClusterCount)

	_, err = trajectory.NewSession(3, nil, wTilde)
	assert.ErrorIs(t, err, trajectory.ErrNilInput)
	_, err = trajectory.NewSession(3, pcX, nil)
	assert.ErrorIs(t, err, trajectory.ErrNilInput)

	_, err = trajectory.NewSession(3, pcX, mat.NewDense(3, 2, nil))
	assert.ErrorIs(t, err, trajectory.ErrDimensionMismatch)
	_, err = trajectory.NewSession(3, pcX, mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, trajectory.ErrDimensionMismatch)

	_, err = trajectory.NewSession(2, pcX, mat.NewDense(3, 2, nil))
	assert.ErrorIs(t, err, builder.ErrDimensionMismatch)
}

func TestInfer_Errors(t *testing.T) {
	pcX, wTilde := threeCells()
	s, err := trajectory.NewSession(3, pcX, wTilde)
	require.NoError(t, err)

	for _, root := range []int{-1, 3} {
		_, err = s.Infer(root)
		assert.ErrorIs(t, err, trajectory.ErrNodeOutOfRange, "root=%d", root)
	}
	for _, c := range []float64{-0.1, math.NaN()} {
		_, err = s.Infer(0, trajectory.WithCutoff(c))
		assert.ErrorIs(t, err, trajectory.ErrInvalidCutoff, "cutoff=%v", c)
	}
}

func TestInfer_Chain(t *testing.T) {
	s := chain(t)
	assert.Equal(t, 3, s.Clusters())
	assert.Equal(t, []int{1, 4}, s.EdgeStates())

	res, err := s.Infer(0)
	require.NoError(t, err)
	third := 1.0 / 3
	assert.Equal(t, []dijkstra.Milestone{
		{From: 0, To: 1, Hop: 1, Cost: 0.5},
		{From: 1, To: 2, Hop: 2, Cost: 0.5 + third},
	}, res.Milestones)
	assert.Equal(t, []projection.Edge{{A: 0, B: 1}, {A: 1, B: 2}}, res.SelectedEdges)
	assert.InDeltaSlice(t, []float64{3, 0}, res.EdgeScores, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0.5, 0.5, 1, 1.5, 2}, res.Pseudotime, 1e-12)
}

func TestInfer_UnreachableCells(t *testing.T) {
	pcX := mat.NewDense(4, 6, []float64{
		0.9, 0.1, 0, 0, 0, 0,
		0.1, 0.8, 0, 0.1, 0, 0,
		0, 0.1, 0, 0.9, 0, 0,
		0, 0, 0, 0, 0, 1,
	})
	wTilde := mat.NewDense(4, 3, []float64{
		1, 0, 0,
		0.4, 0.6, 0,
		0, 1, 0,
		0, 0, 1,
	})
	s, err := trajectory.NewSession(3, pcX, wTilde)
	require.NoError(t, err)

	res, err := s.Infer(0)
	require.NoError(t, err)
	assert.Equal(t, pseudotime.Unassigned, res.Pseudotime[3])
	assert.Equal(t, 0.0, res.Pseudotime[0])

	// Cluster 2 has no edges: only its own one-hot cell is timed.
	res, err = s.Infer(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1, 0}, res.Pseudotime)
	require.Len(t, res.Warnings, 1)
	assert.ErrorIs(t, res.Warnings[0], dijkstra.ErrDegenerateInput)
	assert.Equal(t, 1, res.Graph.EdgeCount())
}

func TestInfer_CutoffPrunes(t *testing.T) {
	pcX, wTilde := threeCells()
	s, err := trajectory.NewSession(3, pcX, wTilde)
	require.NoError(t, err)

	res, err := s.Infer(0, trajectory.WithCutoff(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Graph.EdgeCount())
	assert.Equal(t, []int{0, 1, 2}, res.Graph.Vertices())
	assert.Empty(t, res.Milestones)
	assert.Equal(t, []float64{0, -1, -1}, res.Pseudotime)
	assert.Len(t, res.Warnings, 1)

	// The session graph is untouched.
	assert.Equal(t, 1, s.Graph().EdgeCount())
}

func TestInfer_NoLoop(t *testing.T) {
	pcX := hardCells(6, 1, 2, 4)
	wTilde := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})

	loopy, err := trajectory.NewSession(3, pcX, wTilde, trajectory.WithMethod(builder.MethodMAP))
	require.NoError(t, err)
	assert.Equal(t, 3, loopy.Graph().EdgeCount())
	res, err := loopy.Infer(1)
	require.NoError(t, err)
	assert.Equal(t, []projection.Edge{{A: 1, B: 0}, {A: 1, B: 2}}, res.SelectedEdges)

	tree, err := trajectory.NewSession(3, pcX, wTilde,
		trajectory.WithMethod(builder.MethodMAP), trajectory.WithNoLoop(true))
	require.NoError(t, err)
	g := tree.Graph()
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(0, 2))
	res, err = tree.Infer(1)
	require.NoError(t, err)
	assert.Equal(t, []projection.Edge{{A: 1, B: 0}, {A: 0, B: 2}}, res.SelectedEdges)
	assert.Equal(t, []int{1, 2}, []int{res.Milestones[0].Hop, res.Milestones[1].Hop})
	assert.Equal(t, []float64{1, 1}, res.EdgeScores)
	assert.Equal(t, []float64{1, 0, 2}, res.Pseudotime)
}

func TestInfer_Idempotent(t *testing.T) {
	s := chain(t)
	a, err := s.Infer(0, trajectory.WithCutoff(0.01))
	require.NoError(t, err)
	b, err := s.Infer(0, trajectory.WithCutoff(0.01))
	require.NoError(t, err)

	assert.True(t, mat.Equal(a.W, b.W))
	assert.Equal(t, a.Pseudotime, b.Pseudotime)
	assert.Equal(t, a.Milestones, b.Milestones)
}

func TestInfer_Concurrent(t *testing.T) {
	s := chain(t)
	want, err := s.Infer(1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([][]float64, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := s.Infer(1)
			if err == nil {
				got[i] = res.Pseudotime
			}
		}(i)
	}
	wg.Wait()
	for i := range got {
		assert.Equal(t, want.Pseudotime, got[i], "goroutine %d", i)
	}
}

func TestSession_GraphIsCopy(t *testing.T) {
	s := chain(t)
	g := s.Graph()
	_, err := g.AddEdge(0, 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, s.Graph().EdgeCount())
	assert.False(t, s.Graph().HasEdge(0, 2))
}

func TestNewSession_LogsGraphStats(t *testing.T) {
	var logs bytes.Buffer
	chain(t, trajectory.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	out := logs.String()
	assert.Contains(t, out, "msg=\"session ready\" clusters=3 cells=6")
	assert.Contains(t, out, "edges=2 total_weight=0.833")
}

func TestSession_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	s := chain(t, trajectory.WithMetrics(m))
	_, err = s.Infer(0)
	require.NoError(t, err)
	_, err = s.Infer(7)
	require.Error(t, err)

	expected := `
# HELP trajinfer_graphs_built_total Total number of transition graphs built, by aggregation method.
# TYPE trajinfer_graphs_built_total counter
trajinfer_graphs_built_total{method="map"} 1
# HELP trajinfer_queries_total Total number of trajectory queries, by outcome.
# TYPE trajinfer_queries_total counter
trajinfer_queries_total{outcome="error"} 1
trajinfer_queries_total{outcome="ok"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"trajinfer_graphs_built_total", "trajinfer_queries_total"))
}
