// SPDX-License-Identifier: MIT

package engine

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphtutor/connectivity"
	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/eulerian"
	"github.com/katalvlaran/graphtutor/hamiltonian"
	"github.com/katalvlaran/graphtutor/tree"
)

// Report gathers every analysis of one graph.
type Report struct {
	Vertices     []string            `json:"vertices"`
	Edges        []core.Edge         `json:"edges"`
	Degrees      DegreeStats         `json:"degrees"`
	Connectivity connectivity.Result `json:"connectivity"`
	Tree         tree.Result         `json:"tree"`
	Eulerian     eulerian.Result     `json:"eulerian"`
	Hamiltonian  hamiltonian.Result  `json:"hamiltonian"`
}

// Report runs every analyzer on g. The first error aborts the report.
func (e *Engine) Report(g *core.Graph) (Report, error) {
	if g == nil {
		return Report{}, ErrGraphNil
	}
	var (
		rep = Report{Vertices: g.Vertices(), Edges: g.Edges(), Degrees: Degrees(g)}
		err error
	)
	if rep.Connectivity, err = e.AnalyzeConnectivity(g); err != nil {
		return Report{}, err
	}
	if rep.Tree, err = e.AnalyzeTree(g); err != nil {
		return Report{}, err
	}
	if rep.Eulerian, err = e.FindEulerian(g); err != nil {
		return Report{}, err
	}
	if rep.Hamiltonian, err = e.FindHamiltonian(g); err != nil {
		return Report{}, err
	}

	return rep, nil
}

// DegreeStats summarizes the degree sequence.
type DegreeStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
	// Sequence is sorted in descending order.
	Sequence []int `json:"sequence"`
}

// Degrees computes DegreeStats for g. The empty graph yields zero values.
func Degrees(g *core.Graph) DegreeStats {
	var ds DegreeStats
	if g == nil || g.VertexCount() == 0 {
		return ds
	}

	degrees := g.Degrees()
	ds.Sequence = make([]int, 0, len(degrees))
	xs := make([]float64, 0, len(degrees))
	for _, d := range degrees {
		ds.Sequence = append(ds.Sequence, d)
		xs = append(xs, float64(d))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ds.Sequence)))
	ds.Max = ds.Sequence[0]
	ds.Min = ds.Sequence[len(ds.Sequence)-1]
	ds.Mean = stat.Mean(xs, nil)

	return ds
}
