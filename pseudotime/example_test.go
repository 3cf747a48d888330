package pseudotime_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trajinfer/dijkstra"
	"github.com/katalvlaran/trajinfer/pseudotime"
)

func ExampleAssign() {
	net := []dijkstra.Milestone{{From: 0, To: 1, Hop: 1}}
	w := mat.NewDense(3, 2, []float64{
		1, 0,
		0.25, 0.75,
		0, 1,
	})
	pt, _ := pseudotime.Assign(net, 0, w)
	fmt.Println(pt)
	// Output:
	// [0 0.75 1]
}
