package builder_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/builder"
	"github.com/katalvlaran/trajinfer/stateindex"
)

// ExampleBuild aggregates three cells over K=3 clusters with the default
// mean method. Only the pair (0,1) has transitional evidence.
func ExampleBuild() {
	idx, _ := stateindex.New(3)
	pcX := mat.NewDense(3, idx.NumStates(), []float64{
		0.9, 0.1, 0, 0, 0, 0,
		0.1, 0.8, 0, 0.1, 0, 0,
		0, 0.1, 0, 0.9, 0, 0,
	})

	g, err := builder.Build(idx, pcX)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%d-%d %.4f\n", e.From, e.To, e.Weight)
	}
	// Output:
	// 0-1 0.3333
}
