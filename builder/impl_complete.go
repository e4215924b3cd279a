// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
)

const (
	methodComplete          = "Complete"
	minCompleteNodes        = 1
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// Complete returns a Constructor for K_n; edges are emitted for i<j in
// ascending (i, j) order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodComplete, g, n, cfg.idFn)
		if err != nil {
			return err
		}

		return addCompleteEdges(methodComplete, g, ids, ids, true)
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2} with sides labelled
// cfg.leftPrefix+i and cfg.rightPrefix+j.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left, err := addVertices(methodCompleteBipartite, g, n1, PrefixIDFn(cfg.leftPrefix))
		if err != nil {
			return err
		}
		right, err := addVertices(methodCompleteBipartite, g, n2, PrefixIDFn(cfg.rightPrefix))
		if err != nil {
			return err
		}

		return addCompleteEdges(methodCompleteBipartite, g, left, right, false)
	}
}

// addCompleteEdges joins every u in us to every v in vs. With upper set, us
// and vs are the same slice and only pairs i<j are joined.
func addCompleteEdges(method string, g *core.Graph, us, vs []string, upper bool) error {
	for i, u := range us {
		start := 0
		if upper {
			start = i + 1
		}
		for _, v := range vs[start:] {
			if err := addEdge(method, g, u, v); err != nil {
				return err
			}
		}
	}

	return nil
}
