// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, AdjacencyList).
// Determinism:
//   - Neighbors() returns unique IDs sorted lex asc.
//   - AdjacencyList() returns independent, sorted slices per vertex.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the IDs adjacent to id, sorted ascending.
// A loop lists id itself once.
//
// Errors:
//   - ErrUnknownVertex if id is not in the graph.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrUnknownVertex)
	}

	return sortedKeys(nbrs), nil
}

// AdjacencyList returns a snapshot map from vertex to its sorted neighbor IDs.
// The returned slices do not share storage with the graph.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string][]string, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = sortedKeys(nbrs)
	}

	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
