// SPDX-License-Identifier: MIT

package tree

import (
	"github.com/katalvlaran/graphtutor/core"
)

// SpanningForest splits the edges of g into a spanning forest and the
// surplus edges that close cycles. Edges are scanned in ascending order,
// so the split is deterministic. Loops always land in surplus.
//
// len(forest) == |V| - components; g is a forest iff surplus is empty.
//
// Complexity: O(E·α(V)). Memory: O(V + E).
func SpanningForest(g *core.Graph) (forest, surplus []core.Edge, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	vertices := g.Vertices()
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// iterative find with path halving
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(ru, rv string) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	forest = make([]core.Edge, 0, len(vertices))
	surplus = make([]core.Edge, 0)
	for _, e := range g.Edges() {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			surplus = append(surplus, e)
			continue
		}
		union(ru, rv)
		forest = append(forest, e)
	}

	return forest, surplus, nil
}
