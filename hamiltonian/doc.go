// Package hamiltonian decides whether an undirected graph has a Hamiltonian
// cycle or path (visiting every vertex exactly once) by bounded exhaustive
// search, and reports the classic degree-based sufficiency tests.
//
// What:
//
//   - Dirac: n ≥ 3 and every vertex has degree ≥ n/2 ⇒ a Hamiltonian cycle exists.
//   - Ore:   n ≥ 3 and deg(u)+deg(v) ≥ n for every non-adjacent pair ⇒ a
//     Hamiltonian cycle exists.
//     Both are sufficient, not necessary; they are reported as notes and do
//     not replace the search.
//   - Find: depth-first backtracking over a dense adjacency buffer. Cycles
//     are tried first with the start fixed at the smallest vertex; then open
//     paths from every start in ascending order. Candidates are extended in
//     ascending vertex order and pruned as soon as the next vertex is not
//     adjacent to the last. The first complete ordering wins.
//
// Scale:
//
// The problem is NP-complete, so Find refuses graphs with more than
// DefaultMaxVertices vertices (configurable with WithMaxVertices) and
// answers Unknown. That refusal is a result, not an error.
//
// Degenerate graphs: zero vertices give None; one vertex gives Cycle [v];
// a cycle needs at least three vertices, so two adjacent vertices give Path.
//
// Complexity: O(n!) worst case per search phase, O(n²) memory.
package hamiltonian
