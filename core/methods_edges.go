// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns normalized pairs sorted by (U, V) ascending.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v.
//
// Implementation:
//   - Stage 1: Validate IDs and loop policy.
//   - Stage 2: Both endpoints must already exist (ErrUnknownVertex).
//   - Stage 3: Insert symmetric adjacency entries unless the edge exists.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing edge is a no-op.
//   - Never creates vertices implicitly.
//
// Errors:
//   - ErrEmptyVertexID, ErrUnknownVertex, ErrLoopNotAllowed.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrLoopNotAllowed)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.requireVertices(u, v); err != nil {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, err)
	}
	if _, exists := g.adjacency[u][v]; exists {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{} // same entry for a loop
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge {u,v}.
//
// Errors:
//   - ErrUnknownVertex if either endpoint is missing.
//   - ErrUnknownEdge if u and v are not adjacent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.requireVertices(u, v); err != nil {
		return fmt.Errorf("RemoveEdge(%q,%q): %w", u, v, err)
	}
	if _, exists := g.adjacency[u][v]; !exists {
		return fmt.Errorf("RemoveEdge(%q,%q): %w", u, v, ErrUnknownEdge)
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u,v} is an edge. Unknown vertices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Edges returns every edge exactly once, normalized and sorted.
// Complexity: O(E·logE)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u <= v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// requireVertices must be called with g.mu held.
func (g *Graph) requireVertices(ids ...string) error {
	for _, id := range ids {
		if _, ok := g.adjacency[id]; !ok {
			return fmt.Errorf("vertex %q: %w", id, ErrUnknownVertex)
		}
	}

	return nil
}
