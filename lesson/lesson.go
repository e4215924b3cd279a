// SPDX-License-Identifier: MIT

package lesson

import (
	"errors"
	"fmt"
	"sort"
)

// Concept keys understood by Lookup.
const (
	Eulerian     = "eulerian"
	Hamiltonian  = "hamiltonian"
	Connectivity = "connectivity"
	Trees        = "trees"
)

// ErrUnknownStage is returned by StageByNumber for numbers outside 1..6.
var ErrUnknownStage = errors.New("lesson: unknown stage")

// Condition names one verdict of a concept and the rule that decides it.
type Condition struct {
	Verdict string
	Rule    string
}

// Concept is the teaching card for one analysis.
type Concept struct {
	Key         string
	Name        string
	Description string
	Conditions  []Condition
	Insight     string
}

// Stage is one step of the learning progression.
type Stage struct {
	Number      int
	Title       string
	Concepts    []string
	Description string
	Insight     string
}

var concepts = map[string]Concept{
	Eulerian: {
		Key:         Eulerian,
		Name:        "Eulerian Path/Cycle",
		Description: "A walk that traverses every edge exactly once",
		Conditions: []Condition{
			{Verdict: "cycle", Rule: "All vertices have even degree"},
			{Verdict: "path", Rule: "Exactly two vertices have odd degree"},
		},
		Insight: "Euler settled the Königsberg bridge problem by noticing that only the number of edges meeting at each landmass matters.",
	},
	Hamiltonian: {
		Key:         Hamiltonian,
		Name:        "Hamiltonian Path/Cycle",
		Description: "A walk that visits every vertex exactly once",
		Conditions: []Condition{
			{Verdict: "cycle", Rule: "Visits all vertices and returns to the start"},
			{Verdict: "path", Rule: "Visits all vertices exactly once"},
		},
		Insight: "Unlike the Eulerian case there is no simple test for a Hamiltonian path; the problem is NP-complete.",
	},
	Connectivity: {
		Key:         Connectivity,
		Name:        "Connectivity",
		Description: "How well-connected a graph is",
		Conditions: []Condition{
			{Verdict: "connected", Rule: "Every vertex can reach every other vertex"},
			{Verdict: "disconnected", Rule: "Some vertices cannot be reached from others"},
		},
		Insight: "Connectivity tells us whether a graph is in one piece or falls apart into separate components.",
	},
	Trees: {
		Key:         Trees,
		Name:        "Trees",
		Description: "Connected graphs with no cycles",
		Conditions: []Condition{
			{Verdict: "tree", Rule: "Connected and acyclic"},
			{Verdict: "forest", Rule: "A collection of trees"},
		},
		Insight: "Trees are the skeleton of connected graphs: keep deleting cycle edges from any connected graph and a spanning tree remains.",
	},
}

var unknown = Concept{
	Name:        "Unknown Concept",
	Description: "This concept is not covered yet.",
	Insight:     "Check back later for more material.",
}

var progression = []Stage{
	{Number: 1, Title: "Graph Basics", Concepts: []string{"vertices", "edges", "degree", "adjacency"},
		Description: "Start with the fundamental building blocks of graphs.",
		Insight:     "Vertices are points and edges are the lines joining them; every later idea builds on these two."},
	{Number: 2, Title: "Connectivity", Concepts: []string{"connected", "components", "articulation_points"},
		Description: "Understand how graphs can be connected or disconnected.",
		Insight:     "Ask whether every vertex can reach every other one; many properties depend on the answer."},
	{Number: 3, Title: "Special Structures", Concepts: []string{"trees", "cycles", "paths"},
		Description: "Explore fundamental structures such as trees and cycles.",
		Insight:     "Trees are connected graphs with no cycles, the skeleton inside every connected graph."},
	{Number: 4, Title: "Eulerian Paths", Concepts: []string{"eulerian_path", "eulerian_cycle", "degree_conditions"},
		Description: "Learn about walks that traverse every edge exactly once.",
		Insight:     "An Eulerian walk uses every edge once; the whole question comes down to counting edges at each vertex."},
	{Number: 5, Title: "Hamiltonian Paths", Concepts: []string{"hamiltonian_path", "hamiltonian_cycle", "np_complete"},
		Description: "Explore the harder problem of visiting every vertex exactly once.",
		Insight:     "A Hamiltonian walk visits every vertex once, and unlike the Eulerian case no simple test decides it."},
	{Number: 6, Title: "Advanced Concepts", Concepts: []string{"planarity", "coloring", "matching"},
		Description: "Dive into more advanced graph theory.",
		Insight:     "Planarity, coloring and matching all build on the fundamentals of the earlier stages."},
}

// Lookup returns the concept registered under key. Unknown keys yield a
// placeholder concept carrying key and ok == false.
func Lookup(key string) (Concept, bool) {
	c, ok := concepts[key]
	if !ok {
		c = unknown
		c.Key = key
	}

	return c.clone(), ok
}

// Insight returns the insight sentence for key, or the placeholder's.
func Insight(key string) string {
	c, _ := Lookup(key)

	return c.Insight
}

// Concepts returns every known concept sorted by key.
func Concepts() []Concept {
	keys := make([]string, 0, len(concepts))
	for k := range concepts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Concept, 0, len(keys))
	for _, k := range keys {
		out = append(out, concepts[k].clone())
	}

	return out
}

// Progression returns the six learning stages in order.
func Progression() []Stage {
	out := make([]Stage, len(progression))
	for i, s := range progression {
		out[i] = s.clone()
	}

	return out
}

// StageByNumber returns stage n (1-based).
func StageByNumber(n int) (Stage, error) {
	if n < 1 || n > len(progression) {
		return Stage{}, fmt.Errorf("StageByNumber(%d): %w", n, ErrUnknownStage)
	}

	return progression[n-1].clone(), nil
}

func (c Concept) clone() Concept {
	c.Conditions = append([]Condition(nil), c.Conditions...)

	return c
}

func (s Stage) clone() Stage {
	s.Concepts = append([]string(nil), s.Concepts...)

	return s
}
