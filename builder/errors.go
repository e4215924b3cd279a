// SPDX-License-Identifier: MIT
// Package: graphtutor/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w; option constructors panic instead.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols,
// partition) is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed, such
// as a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
