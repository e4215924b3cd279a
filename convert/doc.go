// Package convert provides adapters between core.Graph and the gonum graph
// ecosystem:
//   - ToGonum builds a gonum simple.UndirectedGraph plus the name→ID map.
//   - DOT renders a Graphviz document through gonum's encoding/dot, with an
//     optional witness walk (Eulerian trail, Hamiltonian ordering, cycle)
//     highlighted in color.
//
// gonum node IDs are assigned in ascending vertex-name order, so both
// outputs are deterministic.
package convert
