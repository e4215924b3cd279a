// SPDX-License-Identifier: MIT

// Package engine is the single entry point used by presentation layers.
//
// An Engine holds settings only: the Hamiltonian search ceiling, the
// articulation point method and a logger. Every method receives the graph
// for that one call, never mutates it and never keeps a reference to it, so
// one Engine can serve any number of graphs:
//
//	eng := engine.New(engine.WithLogger(log))
//	res, err := eng.FindEulerian(g)
//
// Each call writes one debug record naming the operation, the graph size and
// the verdict. The default logger discards everything.
package engine
