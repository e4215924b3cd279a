// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/core"
)

// square builds the 4-cycle A-B-C-D-A.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))

	// duplicate is a no-op
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.RemoveVertex("X"), core.ErrUnknownVertex)

	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
	assert.Equal(t, 0, g.VertexCount())
}

func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	err := g.AddEdge("A", "B")
	require.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.Contains(t, err.Error(), `"B"`)
	assert.False(t, g.HasVertex("B"), "AddEdge must not create vertices")

	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"), "edges are stored symmetrically")

	// re-adding in either orientation is idempotent
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())

	assert.ErrorIs(t, g.AddEdge("", "A"), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "A"), core.ErrLoopNotAllowed)
}

func TestGraph_Loops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.True(t, g.Looped())
	require.NoError(t, g.AddVertex("X"))
	require.NoError(t, g.AddVertex("Y"))
	require.NoError(t, g.AddEdge("X", "X"))
	require.NoError(t, g.AddEdge("X", "Y"))

	d, err := g.Degree("X")
	require.NoError(t, err)
	assert.Equal(t, 3, d, "loop contributes 2, plain edge 1")
	assert.Equal(t, []core.Edge{{U: "X", V: "X"}, {U: "X", V: "Y"}}, g.Edges())
	assert.Equal(t, 2*g.EdgeCount(), g.DegreeSum())

	require.NoError(t, g.RemoveVertex("X"))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := square(t)

	assert.ErrorIs(t, g.RemoveEdge("A", "Z"), core.ErrUnknownVertex)
	assert.ErrorIs(t, g.RemoveEdge("A", "C"), core.ErrUnknownEdge)

	require.NoError(t, g.RemoveEdge("B", "A"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.Equal(t, 3, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge("A", "B"), core.ErrUnknownEdge)
}

func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := square(t)
	require.NoError(t, g.RemoveVertex("A"))

	assert.Equal(t, []string{"B", "C", "D"}, g.Vertices())
	assert.Equal(t, []core.Edge{{U: "B", V: "C"}, {U: "C", V: "D"}}, g.Edges())
	nbrs, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, nbrs)
}

func TestGraph_QueriesAreSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"d", "b", "a", "c"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("d", "a"))
	require.NoError(t, g.AddEdge("c", "a"))
	require.NoError(t, g.AddEdge("b", "a"))

	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())
	nbrs, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, nbrs)
	assert.Equal(t, []core.Edge{{U: "a", V: "b"}, {U: "a", V: "c"}, {U: "a", V: "d"}}, g.Edges())

	_, err = g.Neighbors("zz")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	_, err = g.Degree("zz")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

// TestGraph_Handshake checks Σdeg(v) == 2|E| across a sequence of mutations.
func TestGraph_Handshake(t *testing.T) {
	g := square(t)
	require.NoError(t, g.AddEdge("A", "C"))
	assert.Equal(t, 2*g.EdgeCount(), g.DegreeSum())

	require.NoError(t, g.AddVertex("E"))
	require.NoError(t, g.AddEdge("E", "B"))
	assert.Equal(t, 2*g.EdgeCount(), g.DegreeSum())

	require.NoError(t, g.RemoveVertex("C"))
	assert.Equal(t, 2*g.EdgeCount(), g.DegreeSum())

	require.NoError(t, g.RemoveEdge("E", "B"))
	assert.Equal(t, 2*g.EdgeCount(), g.DegreeSum())
}

func TestGraph_CloneAndInduced(t *testing.T) {
	g := square(t)
	c := g.Clone()
	require.NoError(t, c.RemoveVertex("A"))
	assert.True(t, g.HasVertex("A"), "clone must not alias the source")
	assert.Equal(t, 4, g.EdgeCount())

	sub := g.InducedSubgraph(func(id string) bool { return id != "C" })
	assert.Equal(t, []string{"A", "B", "D"}, sub.Vertices())
	assert.Equal(t, []core.Edge{{U: "A", V: "B"}, {U: "A", V: "D"}}, sub.Edges())
	assert.Equal(t, 2, sub.EdgeCount())

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestEdge_Normalization(t *testing.T) {
	e := core.NewEdge("Z", "A")
	assert.Equal(t, core.Edge{U: "A", V: "Z"}, e)
	assert.Equal(t, "Z", e.Other("A"))
	assert.Equal(t, "A", e.Other("Z"))
	assert.False(t, e.IsLoop())
	assert.True(t, core.NewEdge("Q", "Q").IsLoop())
}

func TestGraph_AdjacencyListSnapshot(t *testing.T) {
	g := square(t)
	adj := g.AdjacencyList()
	assert.Equal(t, []string{"B", "D"}, adj["A"])

	adj["A"][0] = "mutated"
	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, nbrs)
}

func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges([]string{"Z"}, [][2]string{{"A", "B"}, {"B", "C"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Z"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())

	_, err = core.FromEdges(nil, [][2]string{{"A", "A"}})
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = core.FromEdges([]string{""}, nil)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}
