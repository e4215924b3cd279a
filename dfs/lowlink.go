// SPDX-License-Identifier: MIT
// Package dfs - discovery/low-link numbering and articulation points.

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphtutor/core"
)

type lowLinker struct {
	graph    *core.Graph
	res      *LowLinkResult
	timer    int
	cut      map[string]struct{}
	children map[string]int
}

// LowLink runs Hopcroft–Tarjan over every component of g and returns the
// discovery times, low-link values and articulation points.
//
// A root is an articulation point iff it has at least two DFS children; any
// other vertex u is one iff it has a child c with Low[c] >= Disc[u].
// Loops are ignored. Complexity: O(V+E).
func LowLink(g *core.Graph) (*LowLinkResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	ll := &lowLinker{
		graph: g,
		res: &LowLinkResult{
			Disc:   make(map[string]int, n),
			Low:    make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
		cut:      make(map[string]struct{}),
		children: make(map[string]int, n),
	}

	for _, v := range g.Vertices() {
		if _, seen := ll.res.Disc[v]; seen {
			continue
		}
		if err := ll.visit(v, "", false); err != nil {
			return nil, err
		}
		if ll.children[v] > 1 {
			ll.cut[v] = struct{}{}
		}
	}

	ll.res.Articulation = make([]string, 0, len(ll.cut))
	for v := range ll.cut {
		ll.res.Articulation = append(ll.res.Articulation, v)
	}
	sort.Strings(ll.res.Articulation)

	return ll.res, nil
}

func (ll *lowLinker) visit(u, parent string, hasParent bool) error {
	ll.timer++
	ll.res.Disc[u] = ll.timer
	ll.res.Low[u] = ll.timer

	nbs, err := ll.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dfs: LowLink: %w", err)
	}
	for _, w := range nbs {
		if w == u || (hasParent && w == parent) {
			continue
		}
		if d, seen := ll.res.Disc[w]; seen {
			ll.res.Low[u] = min(ll.res.Low[u], d)

			continue
		}

		ll.res.Parent[w] = u
		ll.children[u]++
		if err = ll.visit(w, u, true); err != nil {
			return err
		}
		ll.res.Low[u] = min(ll.res.Low[u], ll.res.Low[w])
		if hasParent && ll.res.Low[w] >= ll.res.Disc[u] {
			ll.cut[u] = struct{}{}
		}
	}

	return nil
}
