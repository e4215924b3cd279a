// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p).
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - p == 0 and p == 1 need no RNG; any other p requires cfg.rng.
//   - Pairs (i,j), i<j, are drawn in ascending order, so a fixed seed gives
//     a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes each unordered pair
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(methodRandomSparse, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				take := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err = addEdge(methodRandomSparse, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
