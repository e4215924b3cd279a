// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/katalvlaran/graphtutor/core"
)

// HighlightColor is the Graphviz color applied to witness vertices and edges.
const HighlightColor = "red"

// DOT renders g as an undirected Graphviz graph called name.
//
// highlight is an optional walk; each consecutive pair is drawn in
// HighlightColor, as is every vertex on it. If closed is true, the edge from
// the last vertex back to the first is highlighted too.
func DOT(g *core.Graph, name string, highlight []string, closed bool) ([]byte, error) {
	onWalk := make(map[string]bool, len(highlight))
	walkEdges := make(map[core.Edge]bool, len(highlight))
	for i, v := range highlight {
		onWalk[v] = true
		if i > 0 {
			walkEdges[core.NewEdge(highlight[i-1], v)] = true
		}
	}
	if closed && len(highlight) > 2 {
		walkEdges[core.NewEdge(highlight[len(highlight)-1], highlight[0])] = true
	}

	color := []encoding.Attribute{{Key: "color", Value: HighlightColor}}
	gg, _, err := toGonum(g,
		func(v string) []encoding.Attribute {
			if onWalk[v] {
				return color
			}
			return nil
		},
		func(e core.Edge) []encoding.Attribute {
			if walkEdges[e] {
				return append(color, encoding.Attribute{Key: "penwidth", Value: "2"})
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	b, err := dot.Marshal(gg, name, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("DOT(%q): %w", name, err)
	}

	return b, nil
}
