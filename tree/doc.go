// Package tree decides whether an undirected graph is a tree or a forest and
// reports the supporting evidence: vertex and edge counts, leaves, the
// component count and, when the graph is not acyclic, one witness cycle.
//
// A graph is a tree iff it is connected and |E| == |V|-1. It is a forest iff
// it is acyclic, which for a simple graph means |E| == |V| - components.
// The empty graph is neither: Analyze reports ReasonEmpty.
//
// When a graph fails both the connectivity and the edge-count tests the
// reported Reason is ReasonDisconnected; Cycle is still filled whenever a
// cycle exists.
package tree
