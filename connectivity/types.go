// SPDX-License-Identifier: MIT

package connectivity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
	ErrUnknownMethod = errors.New("connectivity: unknown articulation method")
)

// Method selects the articulation point algorithm.
type Method int

const (
	// BruteForce removes each vertex in turn and recounts components.
	BruteForce Method = iota
	// LowLink uses DFS discovery/low-link numbering.
	LowLink
)

// String returns the configuration name of m.
func (m Method) String() string {
	switch m {
	case BruteForce:
		return "bruteforce"
	case LowLink:
		return "lowlink"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "bruteforce" or "lowlink" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bruteforce", "brute-force", "":
		return BruteForce, nil
	case "lowlink", "low-link":
		return LowLink, nil
	}

	return BruteForce, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// Option configures ArticulationPoints and Analyze.
type Option func(*options)

type options struct {
	method Method
}

// WithMethod selects the articulation point algorithm.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// Result is the full connectivity report for one graph.
type Result struct {
	// Connected is true for zero or one components.
	Connected bool

	// Components lists every component, sorted, in traversal order.
	Components [][]string

	// ComponentCount equals len(Components).
	ComponentCount int

	// ArticulationPoints is filled only when the graph is connected.
	ArticulationPoints []string

	// Explanation describes the connectivity verdict.
	Explanation string

	// ArticulationExplanation describes the cut vertices; empty when the
	// graph is disconnected.
	ArticulationExplanation string

	// Insight is the teaching note for connectivity.
	Insight string
}
