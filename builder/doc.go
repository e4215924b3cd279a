// Package builder provides deterministic constructors for classic graph
// families, used as fixtures for the analyzers and as teaching examples.
//
// Every constructor has the signature Constructor and is composed through a
// single orchestrator:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()},
//		builder.Cycle(5))
//
// Families and the property each one illustrates:
//
//   - Cycle(n):     C_n, every vertex even; Eulerian and Hamiltonian cycle.
//   - Path(n):      P_n, a tree; Eulerian and Hamiltonian path.
//   - Star(n):      one hub "Center" and n-1 leaves; the hub is a cut vertex.
//   - Wheel(n):     C_{n-1} plus hub "Center"; Hamiltonian, not Eulerian for n ≥ 5.
//   - Complete(n):  K_n; Dirac and Ore hold for n ≥ 3.
//   - CompleteBipartite(n1, n2): K_{n1,n2}; Hamiltonian cycle iff n1 == n2 ≥ 2.
//   - Grid(r, c):   4-neighborhood lattice with IDs "r,c".
//   - RandomSparse(n, p): Erdős–Rényi G(n,p), seeded for reproducibility.
//
// Vertex ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
// ExcelColumnIDFn ("A","Z","AA",…), AlphanumericIDFn and HexIDFn.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order give an
//     identical graph.
//   - Option constructors panic on meaningless input (nil ID scheme, nil RNG);
//     constructors themselves return sentinel errors and never panic.
//   - Re-running a constructor on the same graph is a no-op because core
//     ignores duplicate vertices and edges.
package builder
