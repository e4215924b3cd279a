// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphtutor/core"
)

const minTheoremVertices = 3

// Dirac tests whether every vertex has degree at least n/2 (n ≥ 3).
// Both theorems count distinct neighbors; self-loops are ignored.
func Dirac(g *core.Graph) (Condition, error) {
	if g == nil {
		return Condition{}, ErrGraphNil
	}
	n := g.VertexCount()
	if n < minTheoremVertices {
		return Condition{Explanation: "Dirac's theorem needs at least 3 vertices."}, nil
	}

	minDeg := -1
	for _, d := range neighborCounts(g) {
		if minDeg < 0 || d < minDeg {
			minDeg = d
		}
	}
	half := half(n)
	if 2*minDeg >= n {
		return Condition{
			Applies:     true,
			Holds:       true,
			Explanation: fmt.Sprintf("Every vertex has degree ≥ %s, so a Hamiltonian cycle exists (Dirac's theorem).", half),
		}, nil
	}

	return Condition{
		Applies:     true,
		Explanation: fmt.Sprintf("Minimum degree %d < %s, so Dirac's theorem does not apply.", minDeg, half),
	}, nil
}

// Ore tests whether deg(u)+deg(v) ≥ n for every non-adjacent pair (n ≥ 3).
// The first violating pair, in ascending order, is named in the explanation.
func Ore(g *core.Graph) (Condition, error) {
	if g == nil {
		return Condition{}, ErrGraphNil
	}
	n := g.VertexCount()
	if n < minTheoremVertices {
		return Condition{Explanation: "Ore's theorem needs at least 3 vertices."}, nil
	}

	vs := g.Vertices()
	deg := neighborCounts(g)
	for i, u := range vs {
		for _, v := range vs[i+1:] {
			if g.HasEdge(u, v) {
				continue
			}
			if sum := deg[u] + deg[v]; sum < n {
				return Condition{
					Applies: true,
					Explanation: fmt.Sprintf(
						"Non-adjacent vertices %s and %s have degree sum %d < %d, so Ore's theorem does not apply.",
						u, v, sum, n),
				}, nil
			}
		}
	}

	return Condition{
		Applies:     true,
		Holds:       true,
		Explanation: fmt.Sprintf("Every non-adjacent pair has degree sum ≥ %d, so a Hamiltonian cycle exists (Ore's theorem).", n),
	}, nil
}

// half renders n/2 without a trailing ".0".
func half(n int) string {
	return strconv.FormatFloat(float64(n)/2, 'f', -1, 64)
}

// neighborCounts returns, per vertex, the number of adjacent vertices other
// than itself.
func neighborCounts(g *core.Graph) map[string]int {
	adj := g.AdjacencyList()
	out := make(map[string]int, len(adj))
	for v, nbrs := range adj {
		n := len(nbrs)
		for _, u := range nbrs {
			if u == v {
				n--
			}
		}
		out[v] = n
	}

	return out
}
