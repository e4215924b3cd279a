// SPDX-License-Identifier: MIT
// Package dfs - cycle witness for undirected graphs.
//
// Overview:
//   - Runs DFS from every vertex in ascending order with White/Gray/Black colors.
//   - In an undirected DFS every non-tree edge joins a vertex to one of its
//     ancestors, so the first Gray neighbor other than the tree parent closes
//     a cycle.
//   - The witness is canonicalized: minimal rotation over both directions,
//     then closed by repeating its first vertex.
//
// Complexity: O(V+E) time, O(V) memory.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
)

// cycleFinder holds the state of a single witness search.
type cycleFinder struct {
	graph  *core.Graph
	state  map[string]int
	parent map[string]string
	stack  []string
	cycle  []string
}

// FindCycle reports whether g contains a cycle and, if so, returns one
// witness as a closed vertex sequence [v0, v1, ..., vk, v0].
// A loop on v yields the witness [v, v].
//
// The witness is deterministic: it is the first cycle met by a DFS that visits
// roots and neighbors in ascending order, rotated to start at its smallest
// vertex and oriented toward the smaller of its two neighbors on the cycle.
func FindCycle(g *core.Graph) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}

	cf := &cycleFinder{
		graph:  g,
		state:  make(map[string]int, g.VertexCount()),
		parent: make(map[string]string, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if cf.state[v] != White {
			continue
		}
		found, err := cf.visit(v, "", false)
		if err != nil {
			return nil, false, err
		}
		if found {
			return canonical(cf.cycle), true, nil
		}
	}

	return nil, false, nil
}

// visit explores id; hasParent distinguishes roots from a vertex whose parent is "".
func (cf *cycleFinder) visit(id, parent string, hasParent bool) (bool, error) {
	cf.state[id] = Gray
	cf.stack = append(cf.stack, id)

	nbs, err := cf.graph.Neighbors(id)
	if err != nil {
		return false, fmt.Errorf("dfs: FindCycle: %w", err)
	}
	for _, nid := range nbs {
		if nid == id {
			cf.cycle = []string{id}

			return true, nil
		}
		if hasParent && nid == parent {
			continue // tree edge back to parent
		}
		switch cf.state[nid] {
		case White:
			found, err := cf.visit(nid, id, true)
			if err != nil || found {
				return found, err
			}
		case Gray:
			idx := IndexOf(cf.stack, nid)
			cf.cycle = append([]string(nil), cf.stack[idx:]...)

			return true, nil
		}
	}

	cf.stack = cf.stack[:len(cf.stack)-1]
	cf.state[id] = Black

	return false, nil
}

// canonical returns the closed form of an open cycle, choosing the
// lexicographically smaller of its forward and reversed minimal rotations.
func canonical(open []string) []string {
	best := MinimalRotation(open)
	if len(open) > 2 {
		if rev := MinimalRotation(Reverse(open)); compare(rev, best) < 0 {
			best = rev
		}
	}

	return append(best, best[0])
}
