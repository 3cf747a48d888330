// Package metrics exposes Prometheus collectors for graph construction and
// trajectory queries. A nil *Collector is valid and records nothing, so
// library callers that do not care about metrics pass nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector bundles the trajinfer metrics.
type Collector struct {
	graphsBuilt          *prometheus.CounterVec
	graphEdges           prometheus.Gauge
	queries              *prometheus.CounterVec
	degenerateComponents prometheus.Counter
	projectedCells       *prometheus.CounterVec
	unassignedCells      prometheus.Gauge
	queryDuration        prometheus.Histogram
}

// NewCollector creates the collectors and registers them with reg. A nil
// reg leaves them unregistered, which is convenient in tests.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		graphsBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trajinfer_graphs_built_total",
				Help: "Total number of transition graphs built, by aggregation method.",
			},
			[]string{"method"},
		),
		graphEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "trajinfer_graph_edges",
				Help: "Number of edges in the most recently built transition graph.",
			},
		),
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trajinfer_queries_total",
				Help: "Total number of trajectory queries, by outcome.",
			},
			[]string{"outcome"},
		),
		degenerateComponents: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "trajinfer_degenerate_components_total",
				Help: "Number of queries whose root component was a single cluster.",
			},
		),
		projectedCells: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trajinfer_projected_cells_total",
				Help: "Total number of projected cells, by projection kind (node or edge).",
			},
			[]string{"kind"},
		),
		unassignedCells: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "trajinfer_unassigned_cells",
				Help: "Number of cells without pseudotime in the most recent query.",
			},
		),
		queryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "trajinfer_query_duration_seconds",
				Help:    "Duration of trajectory queries.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	if reg == nil {
		return c, nil
	}
	for _, col := range c.collectors() {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// MustNewCollector is NewCollector that panics on registration errors.
func MustNewCollector(reg prometheus.Registerer) *Collector {
	c, err := NewCollector(reg)
	if err != nil {
		panic(err)
	}

	return c
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.graphsBuilt,
		c.graphEdges,
		c.queries,
		c.degenerateComponents,
		c.projectedCells,
		c.unassignedCells,
		c.queryDuration,
	}
}

// GraphBuilt records a built graph.
func (c *Collector) GraphBuilt(method string, edges int) {
	if c == nil {
		return
	}
	c.graphsBuilt.WithLabelValues(method).Inc()
	c.graphEdges.Set(float64(edges))
}

// QueryDone records one trajectory query.
func (c *Collector) QueryDone(outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.queries.WithLabelValues(outcome).Inc()
	c.queryDuration.Observe(elapsed.Seconds())
}

// Degenerate records a singleton root component.
func (c *Collector) Degenerate() {
	if c == nil {
		return
	}
	c.degenerateComponents.Inc()
}

// Projected records projection and pseudotime coverage of one query.
func (c *Collector) Projected(nodeCells, edgeCells, unassigned int) {
	if c == nil {
		return
	}
	c.projectedCells.WithLabelValues("node").Add(float64(nodeCells))
	c.projectedCells.WithLabelValues("edge").Add(float64(edgeCells))
	c.unassignedCells.Set(float64(unassigned))
}
