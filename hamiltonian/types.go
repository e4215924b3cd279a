// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"errors"
	"fmt"
)

// DefaultMaxVertices is the largest graph Find will search exhaustively.
const DefaultMaxVertices = 8

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("hamiltonian: graph is nil")

	// ErrOptionViolation is returned for a non-positive vertex ceiling.
	ErrOptionViolation = errors.New("hamiltonian: invalid option supplied")

	// ErrInvalidOrdering is returned by VerifyOrdering for a bad witness.
	ErrInvalidOrdering = errors.New("hamiltonian: invalid ordering")
)

// Kind is the Hamiltonian verdict.
type Kind int

const (
	// None means no Hamiltonian path exists.
	None Kind = iota
	// Path means a Hamiltonian path exists but no Hamiltonian cycle.
	Path
	// Cycle means a Hamiltonian cycle exists.
	Cycle
	// Unknown means the graph exceeded the search ceiling.
	Unknown
)

// String returns "none", "path", "cycle" or "unknown".
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Path:
		return "path"
	case Cycle:
		return "cycle"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes k by name for JSON reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Condition is the outcome of one sufficiency test.
type Condition struct {
	// Applies is false when the theorem has no meaning for the graph (n < 3).
	Applies bool
	// Holds is true when the hypothesis is met; a Hamiltonian cycle then exists.
	Holds       bool
	Explanation string
}

// Result is the Hamiltonian report for one graph.
type Result struct {
	Kind Kind
	// Sequence visits every vertex once. For a cycle the return to
	// Sequence[0] is implied and not repeated.
	Sequence    []string
	Reason      string
	Dirac       Condition
	Ore         Condition
	Explored    int
	Explanation string
	Insight     string
}

// Option configures Find.
type Option func(*options)

type options struct {
	maxVertices int
	err         error
}

// WithMaxVertices sets the search ceiling. n must be positive.
func WithMaxVertices(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max vertices must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.maxVertices = n
	}
}
