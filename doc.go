// Package graphtutor is a teaching engine for small undirected graphs: it
// answers the classic structural questions and explains every verdict.
//
// 🚀 What does graphtutor answer?
//
//	Given a simple undirected graph:
//		• Connectivity: is it connected, what are its components, which
//		  vertices are articulation points?
//		• Trees: is it a tree or a forest, which vertices are leaves, and
//		  if not, why (empty, disconnected, or which cycle)?
//		• Eulerian: is there a walk using every edge once? The walk itself
//		  is built with a stack-based Hierholzer traversal.
//		• Hamiltonian: is there a walk visiting every vertex once? Small
//		  graphs are searched exhaustively; Dirac and Ore notes are attached.
//
// ✨ Why graphtutor?
//
//   - Every result carries a reason, an explanation and a teaching insight
//   - Deterministic – vertices, edges and witnesses come out in sorted order
//   - Analyzers are pure functions over a borrowed *core.Graph
//   - Honest limits – graphs above the search ceiling get Unknown, not a guess
//
// Packages:
//
//	core/           Graph, Edge and the sentinel errors
//	bfs/, dfs/      traversals, cycle witnesses, low-link numbering
//	connectivity/   IsConnected, Components, ArticulationPoints
//	tree/           tree and forest classification
//	eulerian/       Eulerian path/cycle search and trail verification
//	hamiltonian/    backtracking search, Dirac and Ore conditions
//	lesson/         concept cards and the six-stage progression
//	engine/         one entry point with logging and limits
//	builder/        cycles, paths, stars, wheels, complete graphs
//	graphfile/      YAML graph documents and the built-in presets
//	convert/        gonum adapter and Graphviz DOT export
//	config/, logging/  koanf settings and slog handlers for the CLI
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    D───C
//
//	A and C have degree 3, B and D degree 2: an Eulerian path runs from A
//	to C, and A→B→C→D→A is a Hamiltonian cycle.
//
//	go install github.com/katalvlaran/graphtutor/cmd/graphtutor@latest
package graphtutor
