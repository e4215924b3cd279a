// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/lesson"
)

// searcher holds the backtracking state.
// Vertices are indexed in ascending ID order; adj is a dense n×n buffer.
type searcher struct {
	n      int
	ids    []string
	adj    []bool
	order  [][]int // for each u: adjacent v in ascending index order
	onPath []bool
	path   []int

	// explored counts vertices pushed onto the path.
	explored int
}

// Find decides whether g has a Hamiltonian cycle or path and returns the
// first witness in search order. Graphs above the vertex ceiling get Unknown.
func Find(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := options{maxVertices: DefaultMaxVertices}
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	res := Result{Kind: None, Insight: lesson.Insight(lesson.Hamiltonian)}
	var err error
	if res.Dirac, err = Dirac(g); err != nil {
		return Result{}, err
	}
	if res.Ore, err = Ore(g); err != nil {
		return Result{}, err
	}

	n := g.VertexCount()
	switch {
	case n == 0:
		res.Reason = "graph is empty"
		res.Explanation = "There are no vertices to visit."

		return res, nil
	case n == 1:
		res.Kind = Cycle
		res.Sequence = g.Vertices()
		res.Reason = "single vertex"
		res.Explanation = "A single vertex is trivially visited by the walk that stays put."

		return res, nil
	case n > o.maxVertices:
		res.Kind = Unknown
		res.Reason = "graph too large for exhaustive search"
		res.Explanation = fmt.Sprintf(
			"The graph has %d vertices; exhaustive search is limited to %d.", n, o.maxVertices)
		if res.Dirac.Holds || res.Ore.Holds {
			res.Explanation += " The degree conditions still guarantee a Hamiltonian cycle, but none was constructed."
		}

		return res, nil
	}

	s := newSearcher(g)
	if n >= minTheoremVertices && s.searchCycle() {
		res.Kind = Cycle
		res.Reason = "found a Hamiltonian cycle"
	} else if s.searchPath() {
		res.Kind = Path
		res.Reason = "found a Hamiltonian path but no Hamiltonian cycle"
	} else {
		res.Reason = "no ordering visits every vertex exactly once"
	}
	res.Explored = s.explored
	if res.Kind != None {
		res.Sequence = s.witness()
		if err = VerifyOrdering(g, res.Sequence, res.Kind == Cycle); err != nil {
			return Result{}, fmt.Errorf("hamiltonian.Find: %w", err)
		}
	}
	res.Explanation = explain(res)

	return res, nil
}

func newSearcher(g *core.Graph) *searcher {
	ids := g.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	s := &searcher{
		n:      n,
		ids:    ids,
		adj:    make([]bool, n*n),
		order:  make([][]int, n),
		onPath: make([]bool, n),
		path:   make([]int, 0, n),
	}
	adjList := g.AdjacencyList()
	for u, id := range ids {
		for _, nb := range adjList[id] {
			v := index[nb]
			if v == u {
				continue // loops never help
			}
			s.adj[u*n+v] = true
			s.order[u] = append(s.order[u], v)
		}
	}

	return s
}

// searchCycle fixes vertex 0 as the start; every Hamiltonian cycle passes
// through it, so no other start needs trying.
func (s *searcher) searchCycle() bool {
	return s.from(0, true)
}

// searchPath tries every start in ascending order.
func (s *searcher) searchPath() bool {
	for start := 0; start < s.n; start++ {
		if s.from(start, false) {
			return true
		}
	}

	return false
}

func (s *searcher) from(start int, closed bool) bool {
	s.path = s.path[:0]
	for i := range s.onPath {
		s.onPath[i] = false
	}
	s.push(start)

	return s.extend(closed)
}

func (s *searcher) push(v int) {
	s.explored++
	s.onPath[v] = true
	s.path = append(s.path, v)
}

func (s *searcher) pop() {
	last := s.path[len(s.path)-1]
	s.onPath[last] = false
	s.path = s.path[:len(s.path)-1]
}

// extend grows the current path depth-first; on success the path is left
// in place as the witness.
func (s *searcher) extend(closed bool) bool {
	last := s.path[len(s.path)-1]
	if len(s.path) == s.n {
		return !closed || s.adj[last*s.n+s.path[0]]
	}
	for _, v := range s.order[last] {
		if s.onPath[v] {
			continue
		}
		s.push(v)
		if s.extend(closed) {
			return true
		}
		s.pop()
	}

	return false
}

func (s *searcher) witness() []string {
	out := make([]string, len(s.path))
	for i, v := range s.path {
		out[i] = s.ids[v]
	}

	return out
}

func explain(res Result) string {
	var text string
	switch res.Kind {
	case Cycle:
		text = fmt.Sprintf("The ordering %v visits every vertex once and returns to %s.", res.Sequence, res.Sequence[0])
	case Path:
		text = fmt.Sprintf("The ordering %v visits every vertex once, but no ordering can close into a cycle.", res.Sequence)
	default:
		text = "Every candidate ordering got stuck before visiting all vertices."
	}
	text += fmt.Sprintf(" The search expanded %d partial orderings.", res.Explored)

	return text
}

// VerifyOrdering checks that seq lists every vertex of g exactly once with
// consecutive vertices adjacent, and, if closed, that the last vertex is
// adjacent to the first. Violations wrap ErrInvalidOrdering.
func VerifyOrdering(g *core.Graph, seq []string, closed bool) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(seq) != g.VertexCount() {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidOrdering, len(seq), g.VertexCount())
	}

	seen := make(map[string]bool, len(seq))
	for i, v := range seq {
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: unknown vertex %q", ErrInvalidOrdering, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %q repeated", ErrInvalidOrdering, v)
		}
		seen[v] = true
		if i > 0 && !g.HasEdge(seq[i-1], v) {
			return fmt.Errorf("%w: %s-%s is not an edge", ErrInvalidOrdering, seq[i-1], v)
		}
	}
	if closed && len(seq) >= minTheoremVertices && !g.HasEdge(seq[len(seq)-1], seq[0]) {
		return fmt.Errorf("%w: %s-%s does not close the cycle", ErrInvalidOrdering, seq[len(seq)-1], seq[0])
	}

	return nil
}
