// Package connectivity answers reachability questions on an undirected
// core.Graph: whether it is connected, its connected components, and its
// articulation (cut) vertices.
//
// Conventions:
//
//   - A graph with zero vertices is connected (vacuously).
//   - Components are emitted in traversal order: each component is rooted at
//     the smallest vertex not yet covered, and its members are sorted.
//   - An articulation point is a vertex whose removal strictly increases the
//     number of components. Two methods are available and always agree:
//     BruteForce (remove-and-recount, O(V·(V+E)), the default) and LowLink
//     (Hopcroft–Tarjan via package dfs, O(V+E)).
//
// Every function is a pure query: the graph is read, never mutated, and no
// state survives the call.
package connectivity
