package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/core"
	"github.com/katalvlaran/trajinfer/matrix"
	"github.com/katalvlaran/trajinfer/trajectory"
)

// GraphEdge is the JSON form of one weighted graph edge.
type GraphEdge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
	State  *int    `json:"state,omitempty"`
}

// GraphDoc is the JSON form of a transition graph.
type GraphDoc struct {
	Vertices []int       `json:"vertices"`
	Edges    []GraphEdge `json:"edges"`
}

// MilestoneDoc is the JSON form of a dijkstra.Milestone.
type MilestoneDoc struct {
	From int     `json:"from"`
	To   int     `json:"to"`
	Hop  int     `json:"hop"`
	Cost float64 `json:"cost"`
}

// ResultDoc is the JSON form of a trajectory.Result.
type ResultDoc struct {
	Root       int            `json:"root"`
	Graph      GraphDoc       `json:"graph"`
	Milestones []MilestoneDoc `json:"milestones"`
	EdgeScores []float64      `json:"edge_scores"`
	W          [][]float64    `json:"w"`
	Pseudotime []float64      `json:"pseudotime"`
	Warnings   []string       `json:"warnings,omitempty"`
}

// NewGraphDoc converts g. When states is non-nil, states[i] is attached to
// the i-th edge in edge order.
func NewGraphDoc(g *core.Graph, states []int) GraphDoc {
	items := matrix.ToEdgeList(g)
	doc := GraphDoc{Vertices: g.Vertices(), Edges: make([]GraphEdge, len(items))}
	for i, it := range items {
		doc.Edges[i] = GraphEdge{From: it.From, To: it.To, Weight: it.Weight}
		if i < len(states) {
			s := states[i]
			doc.Edges[i].State = &s
		}
	}

	return doc
}

// NewResultDoc converts res.
func NewResultDoc(res *trajectory.Result) ResultDoc {
	doc := ResultDoc{
		Root:       res.Root,
		Graph:      NewGraphDoc(res.Graph, nil),
		Milestones: make([]MilestoneDoc, len(res.Milestones)),
		EdgeScores: res.EdgeScores,
		W:          denseRows(res.W),
		Pseudotime: res.Pseudotime,
	}
	for i, m := range res.Milestones {
		doc.Milestones[i] = MilestoneDoc{From: m.From, To: m.To, Hop: m.Hop, Cost: m.Cost}
	}
	for _, w := range res.Warnings {
		doc.Warnings = append(doc.Warnings, w.Error())
	}

	return doc
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("dataset: encoding JSON: %w", err)
	}

	return nil
}

// WriteResult encodes res as a JSON ResultDoc.
func WriteResult(w io.Writer, res *trajectory.Result) error {
	return WriteJSON(w, NewResultDoc(res))
}

// WriteCellTable writes one CSV row per cell: index, pseudotime and the
// projected weights.
func WriteCellTable(w io.Writer, res *trajectory.Result) error {
	writer := csv.NewWriter(w)
	_, k := res.W.Dims()
	header := make([]string, 0, k+2)
	header = append(header, "cell", "pseudotime")
	for j := 0; j < k; j++ {
		header = append(header, "w"+strconv.Itoa(j))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, k+2)
	for i, pt := range res.Pseudotime {
		record[0] = strconv.Itoa(i)
		record[1] = strconv.FormatFloat(pt, 'g', -1, 64)
		for j := 0; j < k; j++ {
			record[j+2] = strconv.FormatFloat(res.W.At(i, j), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}

func denseRows(m *mat.Dense) [][]float64 {
	if m == nil {
		return nil
	}
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}

	return out
}
