// SPDX-License-Identifier: MIT

package convert

import (
	"errors"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/graphtutor/core"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("convert: graph is nil")

// Node is a gonum node that carries the core vertex name.
// It satisfies dot.Node and encoding.Attributer.
type Node struct {
	id    int64
	Name  string
	Attrs []encoding.Attribute
}

// ID implements graph.Node.
func (n Node) ID() int64 { return n.id }

// DOTID implements dot.Node.
func (n Node) DOTID() string { return n.Name }

// Attributes implements encoding.Attributer.
func (n Node) Attributes() []encoding.Attribute { return n.Attrs }

// Edge is an undirected gonum edge with DOT attributes.
type Edge struct {
	F, T  graph.Node
	Attrs []encoding.Attribute
}

// From implements graph.Edge.
func (e Edge) From() graph.Node { return e.F }

// To implements graph.Edge.
func (e Edge) To() graph.Node { return e.T }

// ReversedEdge implements graph.Edge, keeping the attributes.
func (e Edge) ReversedEdge() graph.Edge { return Edge{F: e.T, T: e.F, Attrs: e.Attrs} }

// Attributes implements encoding.Attributer.
func (e Edge) Attributes() []encoding.Attribute { return e.Attrs }

// ToGonum copies g into a gonum simple.UndirectedGraph. The returned map
// gives the gonum ID of every vertex. Loops are skipped because gonum's
// simple graphs reject self edges.
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, map[string]int64, error) {
	return toGonum(g, nil, nil)
}

// toGonum builds the gonum graph, letting nodeAttrs and edgeAttrs decorate
// nodes and edges when non-nil.
func toGonum(
	g *core.Graph,
	nodeAttrs func(name string) []encoding.Attribute,
	edgeAttrs func(e core.Edge) []encoding.Attribute,
) (*simple.UndirectedGraph, map[string]int64, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	out := simple.NewUndirectedGraph()
	ids := make(map[string]int64, g.VertexCount())
	nodes := make(map[string]Node, g.VertexCount())
	for i, v := range g.Vertices() {
		n := Node{id: int64(i), Name: v}
		if nodeAttrs != nil {
			n.Attrs = nodeAttrs(v)
		}
		out.AddNode(n)
		ids[v] = n.id
		nodes[v] = n
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		ge := Edge{F: nodes[e.U], T: nodes[e.V]}
		if edgeAttrs != nil {
			ge.Attrs = edgeAttrs(e)
		}
		out.SetEdge(ge)
	}

	return out, ids, nil
}
