// SPDX-License-Identifier: MIT

package core

import "fmt"

// FromEdges builds a graph from an explicit vertex list plus an edge list.
// Endpoints named only by an edge are registered as vertices first, so the
// result is always consistent. Vertices listed without edges stay isolated.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed from the underlying mutations.
//
// Complexity: O(V + E).
func FromEdges(vertices []string, edges [][2]string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for _, id := range vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}
	for _, e := range edges {
		for _, id := range e {
			if err := g.AddVertex(id); err != nil {
				return nil, fmt.Errorf("FromEdges: %w", err)
			}
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}

	return g, nil
}
