// Package dfs implements depth‑first search on an undirected core.Graph and
// two analyses built on it: a cycle witness and discovery/low-link numbering.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre‑order and post‑order hooks, depth limiting,
//     neighbor filtering and full (forest) traversal.
//   - FindCycle: returns one simple cycle, canonicalized by minimal rotation,
//     or reports that the graph is acyclic. Uses White/Gray/Black coloring and
//     back-edge detection, skipping the trivial edge back to the parent.
//   - LowLink: computes discovery times, low-link values and the articulation
//     points of every component in O(V+E) (Hopcroft–Tarjan).
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option / DFSOptions: hooks, MaxDepth, FilterNeighbor, FullTraversal
//   - DFSResult: post‑order, Depth, Parent, Visited
//   - LowLinkResult: Disc, Low, Parent, Articulation
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - FindCycle:  Time O(V+E + L log L), Memory O(V)
//   - LowLink:    Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - hook errors             propagated from OnVisit or OnExit
//
// Determinism: vertices and neighbors are visited in ascending ID order.
package dfs
