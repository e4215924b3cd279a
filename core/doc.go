// SPDX-License-Identifier: MIT

// Package core provides the undirected simple Graph shared by every analyzer
// in graphtutor.
//
// The Graph G = (V,E) stores, for each vertex ID, the set of adjacent vertex
// IDs. Every edge {u,v} is stored symmetrically: u lists v and v lists u.
//
// Invariants:
//
//   - Simple graph: at most one edge per unordered pair. Re-adding is a no-op.
//   - Self-loops are rejected (ErrLoopNotAllowed) unless the graph is created
//     WithLoops(). An allowed loop counts 2 toward the degree of its vertex and
//     appears once in Edges().
//   - Consistency: every adjacency entry refers to an existing vertex.
//     AddEdge never creates vertices implicitly (ErrUnknownVertex).
//
// Determinism:
//
//	Vertices(), Edges() and Neighbors() return results sorted ascending, so
//	algorithms that iterate them are reproducible across runs.
//
// Core methods:
//
//	AddVertex(id string) error        // O(1), idempotent
//	RemoveVertex(id string) error     // O(deg(v))
//	AddEdge(u, v string) error        // O(1), idempotent
//	RemoveEdge(u, v string) error     // O(1)
//	Neighbors(id string) ([]string, error)  // O(d log d)
//	Degree(id string) (int, error)    // O(1)
//	Vertices() []string               // O(V log V)
//	Edges() []Edge                    // O(E log E)
//
// Errors:
//
//	ErrEmptyVertexID    - zero-length vertex ID
//	ErrUnknownVertex    - operation referenced a vertex that does not exist
//	ErrUnknownEdge      - RemoveEdge on a pair that is not adjacent
//	ErrLoopNotAllowed   - self-loop when loops are disabled
//
// Ownership: analyzers borrow a *Graph for the duration of one call and never
// mutate it. A single RWMutex keeps the maps consistent if a caller shares a
// graph across goroutines, but queries assume no writer runs concurrently.
package core
