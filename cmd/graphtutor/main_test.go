package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/config"
	"github.com/katalvlaran/graphtutor/graphfile"
	"github.com/katalvlaran/graphtutor/lesson"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestEulerText(t *testing.T) {
	out, _, err := run(t, "euler", "--preset", "simple_cycle")
	require.NoError(t, err)
	assert.Contains(t, out, "Eulerian\n========")
	assert.Contains(t, out, "0 -> 1 -> 2 -> 3 -> 0")
	assert.Contains(t, out, "all vertices have even degree")
}

func TestTreeJSON(t *testing.T) {
	out, _, err := run(t, "tree", "--preset", "tree", "-o", "json")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, true, res["IsTree"])
	assert.Equal(t, "tree", res["Reason"])
	assert.Equal(t, []any{"3", "4"}, res["Leaves"])
}

func TestHamiltonLimitFlag(t *testing.T) {
	out, _, err := run(t, "hamilton", "--preset", "k5", "--max-hamiltonian", "4", "--format", "json")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "unknown", res["Kind"])
	assert.Equal(t, "graph too large for exhaustive search", res["Reason"])
}

func TestHamiltonText(t *testing.T) {
	out, _, err := run(t, "hamiltonian", "-p", "hamiltonian")
	require.NoError(t, err)
	assert.Contains(t, out, "found a Hamiltonian cycle")
	assert.Contains(t, out, "0 -> 1 -> 2 -> 3 -> 0")
	assert.Contains(t, out, "Dirac")
}

func TestConnectivityDisconnected(t *testing.T) {
	out, _, err := run(t, "connectivity", "--preset", "disconnected", "--articulation", "lowlink")
	require.NoError(t, err)
	assert.Contains(t, out, "connected:")
	assert.Contains(t, out, "no")
	assert.Contains(t, out, "[0 1 2]")
	assert.Contains(t, out, "[3 4]")
	assert.NotContains(t, out, "articulation points:")
}

func TestDotWalk(t *testing.T) {
	out, _, err := run(t, "dot", "--preset", "simple_cycle", "--walk", "euler")
	require.NoError(t, err)
	assert.Contains(t, out, "graph")
	assert.Contains(t, out, "color=red")

	_, _, err = run(t, "dot", "--preset", "simple_cycle", "--walk", "sideways")
	assert.Error(t, err)
}

func TestAnalyzeFromFile(t *testing.T) {
	doc := []byte("name: bowtie\nvertices: [A, B, C, D, E]\nedges:\n" +
		"  - [A, B]\n  - [B, C]\n  - [C, A]\n  - [C, D]\n  - [D, E]\n  - [E, C]\n")
	path := filepath.Join(t.TempDir(), "bowtie.yaml")
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	out, _, err := run(t, "analyze", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Graph bowtie")
	assert.Contains(t, out, "[C]", "C joins the two triangles")
	assert.Contains(t, out, "contains a cycle")
	assert.Contains(t, out, "Eulerian")
	assert.Contains(t, out, "Hamiltonian")
}

func TestAnalyzeDOT(t *testing.T) {
	out, _, err := run(t, "analyze", "--preset", "k5", "-o", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "0 -- 1")
	assert.NotContains(t, out, "color=red")
}

func TestGraphSourceErrors(t *testing.T) {
	_, _, err := run(t, "euler")
	assert.ErrorIs(t, err, errNoSource)

	_, _, err = run(t, "euler", "--preset", "k5", "--file", "x.yaml")
	assert.ErrorIs(t, err, errTwoSources)

	_, _, err = run(t, "euler", "--preset", "petersen")
	assert.ErrorIs(t, err, graphfile.ErrUnknownPreset)

	_, _, err = run(t, "euler", "--preset", "k5", "--format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := run(t, "euler", "--preset", "k5", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "[DEBUG]")
	assert.Contains(t, errOut, "op=eulerian")
	assert.Contains(t, errOut, "kind=cycle")
}

func TestPresets(t *testing.T) {
	out, _, err := run(t, "presets")
	require.NoError(t, err)
	for _, name := range graphfile.PresetNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "DESCRIPTION")
}

func TestLessons(t *testing.T) {
	out, _, err := run(t, "lessons")
	require.NoError(t, err)
	for _, s := range lesson.Progression() {
		assert.Contains(t, out, s.Title)
	}

	out, _, err = run(t, "lessons", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Stage 4: Eulerian Paths")
	assert.NotContains(t, out, "Stage 5")

	out, _, err = run(t, "lessons", lesson.Eulerian)
	require.NoError(t, err)
	assert.Contains(t, out, "Eulerian Path/Cycle")

	_, _, err = run(t, "lessons", "9")
	assert.ErrorIs(t, err, lesson.ErrUnknownStage)
}
