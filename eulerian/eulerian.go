// SPDX-License-Identifier: MIT

package eulerian

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/connectivity"
	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/lesson"
)

// Find classifies g and, when an Eulerian walk exists, returns one.
// Negative verdicts are results, not errors.
func Find(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}

	res := Result{Kind: None, Insight: lesson.Insight(lesson.Eulerian)}
	vs := g.Vertices()
	if len(vs) == 0 {
		res.Reason = "graph is empty"
		res.Explanation = "There are no vertices, so there is nothing to walk."

		return res, nil
	}

	degrees := g.Degrees()
	for _, v := range vs {
		if degrees[v]%2 == 1 {
			res.OddVertices = append(res.OddVertices, v)
		}
	}

	if g.EdgeCount() == 0 {
		res.Kind = Cycle
		res.Sequence = []string{vs[0]}
		res.Reason = "graph has no edges"
		res.Explanation = "With no edges to traverse, staying at a single vertex is a trivial closed walk."

		return res, nil
	}

	active := g.InducedSubgraph(func(id string) bool { return degrees[id] > 0 })
	connected, err := connectivity.IsConnected(active)
	if err != nil {
		return Result{}, fmt.Errorf("eulerian.Find: %w", err)
	}
	if !connected {
		res.Reason = "graph is disconnected"
		res.Explanation = "An Eulerian walk must reach every edge, but the edges fall into separate components."

		return res, nil
	}

	var start string
	switch len(res.OddVertices) {
	case 0:
		res.Kind = Cycle
		res.Reason = "all vertices have even degree"
		res.Explanation = "Every vertex has even degree, so each visit can enter and leave on fresh edges and the walk returns to its start."
		for _, v := range vs {
			if degrees[v] > 0 {
				start = v
				break
			}
		}
	case 2:
		res.Kind = Path
		res.Reason = fmt.Sprintf("exactly two vertices (%s, %s) have odd degree", res.OddVertices[0], res.OddVertices[1])
		res.Explanation = "The walk must start at one odd-degree vertex and end at the other; it cannot close because the endpoints have odd degree."
		start = res.OddVertices[0]
	default:
		res.Reason = fmt.Sprintf("found %d vertices of odd degree; an Eulerian path needs 0 or 2", len(res.OddVertices))
		res.Explanation = "Every vertex inside a walk is entered and left the same number of times, so at most two vertices (the ends) may have odd degree."

		return res, nil
	}

	seq, err := hierholzer(g, start)
	if err != nil {
		return Result{}, fmt.Errorf("eulerian.Find: %w", err)
	}
	if err = VerifyTrail(g, seq, res.Kind == Cycle); err != nil {
		return Result{}, fmt.Errorf("eulerian.Find: %w", err)
	}
	res.Sequence = seq

	return res, nil
}

// hierholzer walks from start with an explicit stack, consuming each
// vertex's neighbors in ascending order. Every edge is used once.
func hierholzer(g *core.Graph, start string) ([]string, error) {
	adj := g.AdjacencyList()
	next := make(map[string]int, len(adj))
	used := make(map[core.Edge]bool, g.EdgeCount())

	circuit := make([]string, 0, g.EdgeCount()+1)
	stack := []string{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]

		// skip neighbors whose edge was consumed from the other side
		nbrs := adj[u]
		for next[u] < len(nbrs) && used[core.NewEdge(u, nbrs[next[u]])] {
			next[u]++
		}
		if next[u] == len(nbrs) {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]

			continue
		}

		v := nbrs[next[u]]
		used[core.NewEdge(u, v)] = true
		next[u]++
		stack = append(stack, v)
	}

	if len(used) != g.EdgeCount() {
		return nil, fmt.Errorf("%w: walk used %d of %d edges", ErrPostcondition, len(used), g.EdgeCount())
	}
	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit, nil
}

// VerifyTrail checks that seq uses every edge of g exactly once along
// consecutive vertices, and that it is closed when closed is true.
// For an edgeless graph a single existing vertex is the only valid trail.
// Violations wrap ErrPostcondition.
func VerifyTrail(g *core.Graph, seq []string, closed bool) error {
	if g == nil {
		return ErrGraphNil
	}
	m := g.EdgeCount()
	if len(seq) != m+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrPostcondition, len(seq), m+1)
	}
	if !g.HasVertex(seq[0]) {
		return fmt.Errorf("%w: unknown vertex %q", ErrPostcondition, seq[0])
	}

	used := make(map[core.Edge]bool, m)
	for i := 1; i < len(seq); i++ {
		e := core.NewEdge(seq[i-1], seq[i])
		if !g.HasEdge(e.U, e.V) {
			return fmt.Errorf("%w: step %d: %s-%s is not an edge", ErrPostcondition, i, e.U, e.V)
		}
		if used[e] {
			return fmt.Errorf("%w: step %d: edge %s-%s used twice", ErrPostcondition, i, e.U, e.V)
		}
		used[e] = true
	}
	if closed && seq[0] != seq[len(seq)-1] {
		return fmt.Errorf("%w: walk %s..%s is not closed", ErrPostcondition, seq[0], seq[len(seq)-1])
	}

	return nil
}
