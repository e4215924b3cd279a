// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/graphtutor/connectivity"
	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/eulerian"
	"github.com/katalvlaran/graphtutor/hamiltonian"
	"github.com/katalvlaran/graphtutor/logging"
	"github.com/katalvlaran/graphtutor/tree"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("engine: graph is nil")

// Engine dispatches analysis queries. The zero value is not usable; call New.
type Engine struct {
	log      *slog.Logger
	hamLimit int
	method   connectivity.Method
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithHamiltonianLimit sets the vertex ceiling for exhaustive search.
// Non-positive values are rejected by FindHamiltonian.
func WithHamiltonianLimit(n int) Option {
	return func(e *Engine) { e.hamLimit = n }
}

// WithArticulationMethod selects the articulation point algorithm.
func WithArticulationMethod(m connectivity.Method) Option {
	return func(e *Engine) { e.method = m }
}

// New returns an Engine with the given options applied over the defaults:
// discard logger, ceiling hamiltonian.DefaultMaxVertices, brute force cuts.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:      logging.Discard(),
		hamLimit: hamiltonian.DefaultMaxVertices,
		method:   connectivity.BruteForce,
	}
	for _, fn := range opts {
		fn(e)
	}

	return e
}

// HamiltonianLimit returns the configured search ceiling.
func (e *Engine) HamiltonianLimit() int { return e.hamLimit }

// ArticulationMethod returns the configured articulation point algorithm.
func (e *Engine) ArticulationMethod() connectivity.Method { return e.method }

// IsConnected reports whether g is connected.
func (e *Engine) IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	ok, err := connectivity.IsConnected(g)
	if err != nil {
		return false, e.fail("is_connected", g, err)
	}
	e.trace("is_connected", g, slog.Bool("connected", ok))

	return ok, nil
}

// Components returns the connected components of g.
func (e *Engine) Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	comps, err := connectivity.Components(g)
	if err != nil {
		return nil, e.fail("components", g, err)
	}
	e.trace("components", g, slog.Int("count", len(comps)))

	return comps, nil
}

// ArticulationPoints returns the cut vertices of g using the configured method.
func (e *Engine) ArticulationPoints(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cuts, err := connectivity.ArticulationPoints(g, connectivity.WithMethod(e.method))
	if err != nil {
		return nil, e.fail("articulation_points", g, err)
	}
	e.trace("articulation_points", g,
		slog.String("method", e.method.String()), slog.Int("count", len(cuts)))

	return cuts, nil
}

// AnalyzeConnectivity returns the combined connectivity report.
func (e *Engine) AnalyzeConnectivity(g *core.Graph) (connectivity.Result, error) {
	if g == nil {
		return connectivity.Result{}, ErrGraphNil
	}
	res, err := connectivity.Analyze(g, connectivity.WithMethod(e.method))
	if err != nil {
		return connectivity.Result{}, e.fail("connectivity", g, err)
	}
	e.trace("connectivity", g,
		slog.Bool("connected", res.Connected), slog.Int("components", res.ComponentCount))

	return res, nil
}

// AnalyzeTree classifies g as a tree, forest or neither.
func (e *Engine) AnalyzeTree(g *core.Graph) (tree.Result, error) {
	if g == nil {
		return tree.Result{}, ErrGraphNil
	}
	res, err := tree.Analyze(g)
	if err != nil {
		return tree.Result{}, e.fail("tree", g, err)
	}
	e.trace("tree", g, slog.Bool("is_tree", res.IsTree), slog.String("reason", res.Reason.String()))

	return res, nil
}

// FindEulerian looks for an Eulerian path or cycle.
func (e *Engine) FindEulerian(g *core.Graph) (eulerian.Result, error) {
	if g == nil {
		return eulerian.Result{}, ErrGraphNil
	}
	res, err := eulerian.Find(g)
	if err != nil {
		return eulerian.Result{}, e.fail("eulerian", g, err)
	}
	e.trace("eulerian", g, slog.String("kind", res.Kind.String()), slog.Int("odd", len(res.OddVertices)))

	return res, nil
}

// FindHamiltonian looks for a Hamiltonian cycle or path within the ceiling.
func (e *Engine) FindHamiltonian(g *core.Graph) (hamiltonian.Result, error) {
	if g == nil {
		return hamiltonian.Result{}, ErrGraphNil
	}
	res, err := hamiltonian.Find(g, hamiltonian.WithMaxVertices(e.hamLimit))
	if err != nil {
		return hamiltonian.Result{}, e.fail("hamiltonian", g, err)
	}
	e.trace("hamiltonian", g, slog.String("kind", res.Kind.String()), slog.Int("explored", res.Explored))

	return res, nil
}

func (e *Engine) trace(op string, g *core.Graph, attrs ...slog.Attr) {
	base := []slog.Attr{
		slog.String("op", op),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
	}
	e.log.LogAttrs(context.Background(), slog.LevelDebug, "analyzed", append(base, attrs...)...)
}

func (e *Engine) fail(op string, g *core.Graph, err error) error {
	e.log.Warn("analysis failed", "op", op, "vertices", g.VertexCount(), "error", err)

	return fmt.Errorf("engine.%s: %w", op, err)
}
