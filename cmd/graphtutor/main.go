// Command graphtutor analyzes small undirected graphs and explains the
// verdicts: connectivity, trees, Eulerian and Hamiltonian walks.
//
// Usage:
//
//	graphtutor analyze --preset k5
//	graphtutor euler --file mygraph.yaml --format dot | dot -Tsvg > walk.svg
//	graphtutor lessons eulerian
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
