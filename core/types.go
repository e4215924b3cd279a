// SPDX-License-Identifier: MIT

// This file declares Edge, Graph, GraphOption, the sentinel errors and the
// NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrUnknownVertex indicates an operation referenced a non-existent vertex.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrUnknownEdge indicates an operation referenced a non-existent edge.
	ErrUnknownEdge = errors.New("core: unknown edge")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an unordered pair of vertex IDs, normalized so that U <= V.
type Edge struct {
	U string `json:"u"`
	V string `json:"v"`
}

// NewEdge returns the normalized Edge for the pair {u,v}.
func NewEdge(u, v string) Edge {
	if v < u {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Other returns the endpoint of e opposite to id. For a loop it returns id.
func (e Edge) Other(id string) string {
	if e.U == id {
		return e.V
	}

	return e.U
}

// IsLoop reports whether both endpoints coincide.
func (e Edge) IsLoop() bool { return e.U == e.V }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the undirected simple graph container.
//
// adjacency[u][v] exists iff the edge {u,v} exists; for undirected storage
// adjacency[v][u] exists as well. A loop is a single entry adjacency[u][u].
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	allowLoops bool

	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether the graph accepts self-loops.
func (g *Graph) Looped() bool {
	return g.allowLoops
}
