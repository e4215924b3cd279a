package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/bfs"
	"github.com/katalvlaran/graphtutor/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid (9 vertices).
func ExampleBFS() {
	var edges [][2]string
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				edges = append(edges, [2]string{fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1)})
			}
			if i+1 < 3 {
				edges = append(edges, [2]string{fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j)})
			}
		}
	}
	g, _ := core.FromEdges(nil, edges)

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}
