// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - All maps are protected by g.mu.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		return nil // no-op for existing vertex
	}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrUnknownVertex: if the vertex does not exist.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, exists := g.adjacency[id]
	if !exists {
		return fmt.Errorf("RemoveVertex(%q): %w", id, ErrUnknownVertex)
	}
	// Drop the mirrored entries first; each neighbor accounts for one edge.
	for nbr := range nbrs {
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
		g.edgeCount--
	}
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of edge endpoints at id. A loop counts twice.
//
// Errors:
//   - ErrUnknownVertex if id is not in the graph.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrUnknownVertex)
	}

	return degreeOf(id, nbrs), nil
}

// Degrees returns a snapshot of every vertex degree.
// Complexity: O(V).
func (g *Graph) Degrees() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]int, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = degreeOf(id, nbrs)
	}

	return out
}

// DegreeSum returns Σ deg(v). For any graph it equals 2·EdgeCount().
func (g *Graph) DegreeSum() int {
	sum := 0
	for _, d := range g.Degrees() {
		sum += d
	}

	return sum
}

// degreeOf counts neighbors of id, with a loop contributing 2.
func degreeOf(id string, nbrs map[string]struct{}) int {
	d := len(nbrs)
	if _, loop := nbrs[id]; loop {
		d++
	}

	return d
}
