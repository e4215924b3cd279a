package convert_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/graphtutor/convert"
	"github.com/katalvlaran/graphtutor/core"
)

func TestToGonum(t *testing.T) {
	g, err := core.FromEdges([]string{"E"}, [][2]string{{"A", "B"}, {"B", "C"}, {"D", "C"}})
	require.NoError(t, err)

	gg, ids, err := convert.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4}, ids)
	assert.Equal(t, 5, gg.Nodes().Len())
	assert.Equal(t, 3, gg.Edges().Len())
	assert.True(t, gg.HasEdgeBetween(ids["C"], ids["D"]))
	assert.Len(t, topo.ConnectedComponents(gg), 2)

	_, _, err = convert.ToGonum(nil)
	assert.ErrorIs(t, err, convert.ErrGraphNil)
}

func TestToGonum_SkipsLoops(t *testing.T) {
	g, err := core.FromEdges(nil, [][2]string{{"A", "A"}, {"A", "B"}}, core.WithLoops())
	require.NoError(t, err)
	gg, _, err := convert.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, 1, gg.Edges().Len())
}

func TestDOT(t *testing.T) {
	g, err := core.FromEdges(nil, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}})
	require.NoError(t, err)

	b, err := convert.DOT(g, "tri", []string{"A", "B", "C"}, true)
	require.NoError(t, err)
	out := string(b)

	assert.Contains(t, out, "graph tri {")
	assert.Contains(t, out, "A -- B")
	assert.Contains(t, out, "C -- D")
	// three witness edges and three witness vertices carry the color
	assert.Equal(t, 6, strings.Count(out, "color="+convert.HighlightColor))

	_, err = convert.DOT(nil, "x", nil, false)
	assert.ErrorIs(t, err, convert.ErrGraphNil)
}
