package engine_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/builder"
	"github.com/katalvlaran/graphtutor/connectivity"
	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/engine"
	"github.com/katalvlaran/graphtutor/eulerian"
	"github.com/katalvlaran/graphtutor/hamiltonian"
	"github.com/katalvlaran/graphtutor/logging"
	"github.com/katalvlaran/graphtutor/tree"
)

func debugLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logging.New(&buf, slog.LevelDebug, logging.FormatCompact)
	require.NoError(t, err)

	return l, &buf
}

func TestNew_Defaults(t *testing.T) {
	e := engine.New()
	assert.Equal(t, hamiltonian.DefaultMaxVertices, e.HamiltonianLimit())
	assert.Equal(t, connectivity.BruteForce, e.ArticulationMethod())

	e = engine.New(engine.WithLogger(nil), engine.WithHamiltonianLimit(3),
		engine.WithArticulationMethod(connectivity.LowLink))
	assert.Equal(t, 3, e.HamiltonianLimit())
	assert.Equal(t, connectivity.LowLink, e.ArticulationMethod())
}

func TestEngine_NilGraph(t *testing.T) {
	e := engine.New()
	_, err := e.IsConnected(nil)
	assert.ErrorIs(t, err, engine.ErrGraphNil)
	_, err = e.Components(nil)
	assert.ErrorIs(t, err, engine.ErrGraphNil)
	_, err = e.ArticulationPoints(nil)
	assert.ErrorIs(t, err, engine.ErrGraphNil)
	_, err = e.AnalyzeTree(nil)
	assert.ErrorIs(t, err, engine.ErrGraphNil)
	_, err = e.FindEulerian(nil)
	assert.ErrorIs(t, err, engine.ErrGraphNil)
	_, err = e.FindHamiltonian(nil)
	assert.ErrorIs(t, err, engine.ErrGraphNil)
	_, err = e.Report(nil)
	assert.ErrorIs(t, err, engine.ErrGraphNil)
}

func TestEngine_Queries(t *testing.T) {
	log, buf := debugLogger(t)
	e := engine.New(engine.WithLogger(log))
	g := builder.MustBuild(builder.Path(4)) // 0-1-2-3

	ok, err := e.IsConnected(g)
	require.NoError(t, err)
	assert.True(t, ok)

	comps, err := e.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "1", "2", "3"}}, comps)

	cuts, err := e.ArticulationPoints(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, cuts)

	tr, err := e.AnalyzeTree(g)
	require.NoError(t, err)
	assert.True(t, tr.IsTree)
	assert.Equal(t, []string{"0", "3"}, tr.Leaves)

	eu, err := e.FindEulerian(g)
	require.NoError(t, err)
	assert.Equal(t, eulerian.Path, eu.Kind)
	assert.Equal(t, []string{"0", "1", "2", "3"}, eu.Sequence)

	ham, err := e.FindHamiltonian(g)
	require.NoError(t, err)
	assert.Equal(t, hamiltonian.Path, ham.Kind)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6, "one debug record per call")
	for _, op := range []string{"is_connected", "components", "articulation_points", "tree", "eulerian", "hamiltonian"} {
		assert.Contains(t, buf.String(), "op="+op)
	}
	assert.Contains(t, lines[0], "vertices=4 edges=3 connected=true")
	assert.Contains(t, lines[2], "method=bruteforce")
}

func TestEngine_HamiltonianLimit(t *testing.T) {
	g := builder.MustBuild(builder.Complete(5))

	res, err := engine.New(engine.WithHamiltonianLimit(4)).FindHamiltonian(g)
	require.NoError(t, err)
	assert.Equal(t, hamiltonian.Unknown, res.Kind)

	log, buf := debugLogger(t)
	_, err = engine.New(engine.WithLogger(log), engine.WithHamiltonianLimit(0)).FindHamiltonian(g)
	assert.ErrorIs(t, err, hamiltonian.ErrOptionViolation)
	assert.Contains(t, buf.String(), "[WARN]")
}

func TestEngine_MethodsAgree(t *testing.T) {
	// two triangles sharing C, plus a pendant E on D
	g, err := core.FromEdges(nil, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"C", "D"}, {"D", "F"}, {"F", "C"},
		{"D", "E"},
	})
	require.NoError(t, err)

	brute, err := engine.New().ArticulationPoints(g)
	require.NoError(t, err)
	low, err := engine.New(engine.WithArticulationMethod(connectivity.LowLink)).ArticulationPoints(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, brute)
	assert.Equal(t, brute, low)
}

func TestEngine_Report(t *testing.T) {
	e := engine.New()
	g := builder.MustBuild(builder.Cycle(5))

	rep, err := e.Report(g)
	require.NoError(t, err)
	assert.Len(t, rep.Vertices, 5)
	assert.Len(t, rep.Edges, 5)
	assert.True(t, rep.Connectivity.Connected)
	assert.Empty(t, rep.Connectivity.ArticulationPoints)
	assert.Equal(t, tree.ReasonCycle, rep.Tree.Reason)
	assert.Equal(t, eulerian.Cycle, rep.Eulerian.Kind)
	assert.Equal(t, hamiltonian.Cycle, rep.Hamiltonian.Kind)

	again, err := e.Report(g)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(rep, again), "repeated reports must be identical")
	assert.Equal(t, 5, g.EdgeCount(), "graph must not be mutated")
}

func TestDegrees(t *testing.T) {
	assert.Equal(t, engine.DegreeStats{}, engine.Degrees(core.NewGraph()))

	ds := engine.Degrees(builder.MustBuild(builder.Star(5)))
	assert.Equal(t, []int{4, 1, 1, 1, 1}, ds.Sequence)
	assert.Equal(t, 4, ds.Max)
	assert.Equal(t, 1, ds.Min)
	assert.InDelta(t, 1.6, ds.Mean, 1e-9)
}
