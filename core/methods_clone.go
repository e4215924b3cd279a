// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning, clearing and non-mutating views.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the Graph: options, vertices and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.InducedSubgraph(func(string) bool { return true })
}

// InducedSubgraph returns a new Graph holding the vertices for which keep
// returns true and every edge whose endpoints are both kept.
// The input graph is not mutated.
//
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(keep func(id string) bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		allowLoops: g.allowLoops,
		adjacency:  make(map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id := range g.adjacency {
		if keep(id) {
			out.adjacency[id] = make(map[string]struct{})
		}
	}
	for u, nbrs := range g.adjacency {
		if _, kept := out.adjacency[u]; !kept {
			continue
		}
		for v := range nbrs {
			if _, kept := out.adjacency[v]; !kept {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			if u <= v {
				out.edgeCount++
			}
		}
	}

	return out
}

// Clear resets the graph to the empty state but preserves options.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adjacency = make(map[string]map[string]struct{})
	g.edgeCount = 0
}
