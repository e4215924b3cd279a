// Package eulerian decides whether an undirected graph has an Eulerian cycle
// (a closed walk using every edge exactly once) or an Eulerian path, and
// constructs one with Hierholzer's algorithm.
//
// Decision procedure:
//
//  1. Restrict attention to vertices of positive degree. If they do not form
//     a single connected component, no Eulerian walk exists.
//  2. Count odd-degree vertices: 0 admits a cycle, 2 admit a path between
//     them, anything else admits neither.
//  3. Build the walk with an explicit stack: from the current vertex follow
//     the smallest unused incident edge; when a vertex has no unused edges,
//     pop it onto the output. The reversed output is the walk.
//  4. Check the walk with VerifyTrail before returning it.
//
// Determinism: the walk starts at the smallest odd vertex (path) or the
// smallest vertex of positive degree (cycle) and consumes neighbors in
// ascending order, so the same graph always yields the same sequence.
//
// Complexity: O(V + E log E) time (neighbor sorting), O(V + E) memory.
package eulerian
