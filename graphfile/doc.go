// Package graphfile reads and writes graphs as small YAML documents and
// ships the named example graphs used in the lessons.
//
// Document format:
//
//	name: Tree
//	description: A connected acyclic graph
//	insight: ...
//	stage: 3
//	loops: false
//	vertices: [A, B, C]
//	edges:
//	  - [A, B]
//	  - [B, C]
//
// Vertex IDs may be written as any YAML scalar; 0 and "0" name the same
// vertex. Edge endpoints missing from vertices are added automatically.
//
// The presets (simple_cycle, eulerian, hamiltonian, tree, k5, disconnected)
// are embedded in the binary. The analysis packages never see preset names;
// callers turn a Document into a *core.Graph with Build.
package graphfile
