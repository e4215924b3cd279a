// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphtutor/bfs"
	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/dfs"
	"github.com/katalvlaran/graphtutor/lesson"
)

// IsConnected reports whether every vertex is reachable from the smallest
// one. The empty graph is connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return true, nil
	}

	res, err := bfs.BFS(g, vs[0])
	if err != nil {
		return false, fmt.Errorf("IsConnected: %w", err)
	}

	return len(res.Order) == len(vs), nil
}

// Components partitions the vertices into maximal connected sets.
// Each set is sorted; sets are ordered by their smallest vertex.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	comps, err := components(g, "")
	if err != nil {
		return nil, fmt.Errorf("Components: %w", err)
	}

	return comps, nil
}

// ArticulationPoints returns the sorted vertices whose removal increases the
// number of components. Isolated vertices and leaves are never cut vertices.
func ArticulationPoints(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{method: BruteForce}
	for _, fn := range opts {
		fn(&o)
	}

	switch o.method {
	case LowLink:
		res, err := dfs.LowLink(g)
		if err != nil {
			return nil, fmt.Errorf("ArticulationPoints: %w", err)
		}

		return res.Articulation, nil
	case BruteForce:
		return bruteForceCuts(g)
	default:
		return nil, fmt.Errorf("ArticulationPoints: %w: %s", ErrUnknownMethod, o.method)
	}
}

// Analyze bundles IsConnected, Components and (for connected graphs)
// ArticulationPoints with explanatory text.
func Analyze(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}

	comps, err := Components(g)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Connected:      len(comps) <= 1,
		Components:     comps,
		ComponentCount: len(comps),
		Insight:        lesson.Insight(lesson.Connectivity),
	}
	if !res.Connected {
		res.Explanation = fmt.Sprintf(
			"The graph has %d separate components. Some vertices cannot be reached from others.", len(comps))

		return res, nil
	}

	res.Explanation = "The graph is connected: any vertex can be reached from any other by following edges."
	if res.ArticulationPoints, err = ArticulationPoints(g, opts...); err != nil {
		return Result{}, err
	}
	if len(res.ArticulationPoints) > 0 {
		res.ArticulationExplanation = fmt.Sprintf(
			"Vertices %v are articulation points: removing any one of them disconnects the graph.", res.ArticulationPoints)
	} else {
		res.ArticulationExplanation = "The graph has no articulation points: it stays connected when any single vertex is removed."
	}

	return res, nil
}

// components runs one BFS per uncovered vertex in ascending order.
// A non-empty skip is treated as deleted from the graph.
func components(g *core.Graph, skip string) ([][]string, error) {
	var opts []bfs.Option
	if skip != "" {
		opts = append(opts, bfs.WithSkipVertex(skip))
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, v := range g.Vertices() {
		if seen[v] || v == skip {
			continue
		}
		res, err := bfs.BFS(g, v, opts...)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}

func bruteForceCuts(g *core.Graph) ([]string, error) {
	base, err := components(g, "")
	if err != nil {
		return nil, fmt.Errorf("ArticulationPoints: %w", err)
	}

	cuts := make([]string, 0)
	for _, v := range g.Vertices() {
		rest, err := components(g, v)
		if err != nil {
			return nil, fmt.Errorf("ArticulationPoints: removing %q: %w", v, err)
		}
		if len(rest) > len(base) {
			cuts = append(cuts, v)
		}
	}

	return cuts, nil
}
