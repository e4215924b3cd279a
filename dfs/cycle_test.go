// SPDX-License-Identifier: MIT
package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/dfs"
)

func TestFindCycle(t *testing.T) {
	cases := []struct {
		name    string
		edges   [][2]string
		want    []string
		hasLoop bool
	}{
		{name: "path", edges: [][2]string{{"A", "B"}, {"B", "C"}}},
		{name: "star", edges: [][2]string{{"H", "A"}, {"H", "B"}, {"H", "C"}}},
		{name: "triangle", edges: [][2]string{{"C", "A"}, {"A", "B"}, {"B", "C"}}, want: []string{"A", "B", "C", "A"}},
		{name: "square", edges: [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}}, want: []string{"A", "B", "C", "D", "A"}},
		{name: "tail then cycle", edges: [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "B"}}, want: []string{"B", "C", "D", "B"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, nil, tc.edges)
			cyc, ok, err := dfs.FindCycle(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want != nil, ok)
			assert.Equal(t, tc.want, cyc)
		})
	}
}

func TestFindCycle_Loop(t *testing.T) {
	g := mustGraph(t, nil, [][2]string{{"A", "B"}, {"B", "B"}}, core.WithLoops())
	cyc, ok, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"B", "B"}, cyc)
}

func TestFindCycle_WitnessIsClosedWalk(t *testing.T) {
	g := mustGraph(t, nil, [][2]string{
		{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}, {"0", "4"}, {"1", "4"}, {"2", "4"}, {"3", "4"},
	})
	cyc, ok, err := dfs.FindCycle(g)
	require.NoError(t, err)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(cyc), 4)
	assert.Equal(t, cyc[0], cyc[len(cyc)-1])
	for i := 0; i+1 < len(cyc); i++ {
		assert.True(t, g.HasEdge(cyc[i], cyc[i+1]), "%s-%s", cyc[i], cyc[i+1])
	}
}

func TestFindCycle_Nil(t *testing.T) {
	_, _, err := dfs.FindCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dfs.MinimalRotation([]string{"b", "c", "a"}))
	assert.Nil(t, dfs.MinimalRotation(nil))
}
