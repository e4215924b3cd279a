package dfs_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/dfs"
)

// BenchmarkLowLink_Ladder measures low-link numbering on a 1000-rung ladder.
func BenchmarkLowLink_Ladder(b *testing.B) {
	const rungs = 1000
	g := core.NewGraph()
	for i := 0; i < rungs; i++ {
		l, r := "L"+strconv.Itoa(i), "R"+strconv.Itoa(i)
		_ = g.AddVertex(l)
		_ = g.AddVertex(r)
		_ = g.AddEdge(l, r)
		if i > 0 {
			_ = g.AddEdge(l, "L"+strconv.Itoa(i-1))
			_ = g.AddEdge(r, "R"+strconv.Itoa(i-1))
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.LowLink(g)
	}
}
