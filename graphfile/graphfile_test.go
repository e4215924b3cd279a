// SPDX-License-Identifier: MIT
package graphfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/graphfile"
)

func TestPresetNames(t *testing.T) {
	assert.Equal(t,
		[]string{"disconnected", "eulerian", "hamiltonian", "k5", "simple_cycle", "tree"},
		graphfile.PresetNames())
}

func TestPresets_Build(t *testing.T) {
	want := map[string]struct{ v, e, stage int }{
		"simple_cycle": {4, 4, 1},
		"eulerian":     {5, 8, 4},
		"hamiltonian":  {4, 6, 5},
		"tree":         {5, 4, 3},
		"k5":           {5, 10, 6},
		"disconnected": {5, 3, 2},
	}
	for _, name := range graphfile.PresetNames() {
		doc, err := graphfile.Preset(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, doc.Name)
		assert.NotEmpty(t, doc.Insight)
		assert.Equal(t, want[name].stage, doc.Stage, name)

		g, err := doc.Build()
		require.NoError(t, err, name)
		assert.Equal(t, want[name].v, g.VertexCount(), name)
		assert.Equal(t, want[name].e, g.EdgeCount(), name)
	}

	_, err := graphfile.Preset("petersen")
	assert.ErrorIs(t, err, graphfile.ErrUnknownPreset)
}

func TestLoad_ScalarIDs(t *testing.T) {
	doc, err := graphfile.Load(strings.NewReader(`
name: mixed
vertices: [7]
edges:
  - [0, 1]
  - ["1", two]
`))
	require.NoError(t, err)
	g, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "7", "two"}, g.Vertices())
	assert.True(t, g.HasEdge("1", "two"))
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":        ``,
		"unknown key":  "name: x\ncolour: red\n",
		"short edge":   "edges:\n  - [A]\n",
		"nested id":    "vertices: [[A]]\n",
		"blank vertex": "vertices: [\"\"]\n",
	}
	for name, src := range cases {
		_, err := graphfile.Load(strings.NewReader(src))
		assert.Error(t, err, name)
	}

	_, err := graphfile.Load(strings.NewReader(""))
	assert.ErrorIs(t, err, graphfile.ErrInvalidDocument)
}

func TestBuild_Loops(t *testing.T) {
	doc, err := graphfile.Load(strings.NewReader("edges:\n  - [A, A]\n"))
	require.NoError(t, err)
	_, err = doc.Build()
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	doc.Loops = true
	g, err := doc.Build()
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "A"))
}

func TestRoundTripThroughFile(t *testing.T) {
	g, err := core.FromEdges([]string{"Z"}, [][2]string{{"A", "B"}, {"B", "C"}})
	require.NoError(t, err)

	data, err := graphfile.FromGraph(g, "").Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	doc, err := graphfile.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "chain", doc.Name, "name defaults to the file stem")

	back, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.Edges(), back.Edges())

	_, err = graphfile.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_Shape(t *testing.T) {
	doc := &graphfile.Document{Name: "pair", Vertices: []graphfile.ID{"A", "B"}, Edges: [][2]graphfile.ID{{"A", "B"}}}
	data, err := doc.Marshal()
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte("vertices: [A, B]")), string(data))
}
