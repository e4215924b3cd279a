// SPDX-License-Identifier: MIT

package tree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtutor/connectivity"
	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/dfs"
	"github.com/katalvlaran/graphtutor/lesson"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("tree: graph is nil")

// Reason classifies the tree verdict.
type Reason int

const (
	// ReasonTree means the graph is a tree.
	ReasonTree Reason = iota
	// ReasonEmpty means the graph has no vertices.
	ReasonEmpty
	// ReasonDisconnected means the graph has more than one component.
	ReasonDisconnected
	// ReasonCycle means the graph is connected but has a cycle.
	ReasonCycle
)

// String returns the reason text shown to learners.
func (r Reason) String() string {
	switch r {
	case ReasonTree:
		return "tree"
	case ReasonEmpty:
		return "graph is empty"
	case ReasonDisconnected:
		return "disconnected"
	case ReasonCycle:
		return "contains a cycle"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// MarshalText encodes r by name for JSON reports.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Result is the tree report for one graph.
type Result struct {
	IsTree      bool
	IsForest    bool
	Leaves      []string
	VertexCount int
	EdgeCount   int
	Components  int
	Reason      Reason
	// Cycle is a closed witness [v0 ... v0] when the graph is not acyclic.
	Cycle []string
	// Surplus lists edges whose removal leaves a spanning forest.
	Surplus     []core.Edge
	Explanation string
	Insight     string
}

// Analyze classifies g. It never mutates g.
func Analyze(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}

	res := Result{
		VertexCount: g.VertexCount(),
		EdgeCount:   g.EdgeCount(),
		Insight:     lesson.Insight(lesson.Trees),
	}
	if res.VertexCount == 0 {
		res.Reason = ReasonEmpty
		res.Explanation = "An empty graph has no vertices, so it is not a tree."

		return res, nil
	}

	comps, err := connectivity.Components(g)
	if err != nil {
		return Result{}, fmt.Errorf("tree.Analyze: %w", err)
	}
	res.Components = len(comps)

	cycle, cyclic, err := dfs.FindCycle(g)
	if err != nil {
		return Result{}, fmt.Errorf("tree.Analyze: %w", err)
	}
	res.Cycle = cycle
	res.IsForest = !cyclic

	_, surplus, err := SpanningForest(g)
	if err != nil {
		return Result{}, fmt.Errorf("tree.Analyze: %w", err)
	}
	res.Surplus = surplus

	connected := res.Components == 1
	res.IsTree = connected && res.EdgeCount == res.VertexCount-1
	res.Leaves = leaves(g)

	switch {
	case res.IsTree:
		res.Reason = ReasonTree
		res.Explanation = fmt.Sprintf(
			"This is a tree: connected with no cycles. n = %d, m = %d, so m = n-1 as in every tree.",
			res.VertexCount, res.EdgeCount)
		if len(res.Leaves) > 0 {
			res.Explanation += fmt.Sprintf(" Vertices %v are leaves (degree 1).", res.Leaves)
		}
	case !connected:
		res.Reason = ReasonDisconnected
		res.Explanation = fmt.Sprintf(
			"A tree must be connected, but this graph has %d components.", res.Components)
		if res.IsForest {
			res.Explanation += " It has no cycles, so it is a forest."
		}
	default:
		res.Reason = ReasonCycle
		res.Explanation = fmt.Sprintf(
			"A tree cannot contain a cycle, but %v is one. With n = %d it would need exactly %d edges, not %d.",
			res.Cycle, res.VertexCount, res.VertexCount-1, res.EdgeCount)
		res.Explanation += fmt.Sprintf(" Removing %d edge(s) such as %v leaves a spanning tree.",
			len(res.Surplus), res.Surplus[0])
	}

	return res, nil
}

// leaves returns the degree-1 vertices in ascending order.
func leaves(g *core.Graph) []string {
	out := make([]string, 0)
	for _, v := range g.Vertices() {
		if d, err := g.Degree(v); err == nil && d == 1 {
			out = append(out, v)
		}
	}

	return out
}
