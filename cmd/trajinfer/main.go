// Command trajinfer builds transition graphs and infers trajectories from
// soft cluster memberships stored as CSV or JSON matrices.
package main

import (
	"os"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
