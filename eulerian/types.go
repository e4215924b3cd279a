// SPDX-License-Identifier: MIT

package eulerian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtutor/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("eulerian: graph is nil")

	// ErrPostcondition means a constructed walk failed verification.
	ErrPostcondition = errors.New("eulerian: trail postcondition violated")
)

// Kind is the Eulerian verdict.
type Kind int

const (
	// None means no Eulerian walk exists.
	None Kind = iota
	// Path means an open walk exists between the two odd vertices.
	Path
	// Cycle means a closed walk exists.
	Cycle
)

// String returns "none", "path" or "cycle".
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Path:
		return "path"
	case Cycle:
		return "cycle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes k by name for JSON reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Result is the Eulerian report for one graph.
type Result struct {
	Kind Kind
	// Sequence is the walk; for a cycle the first vertex is repeated at the end.
	Sequence []string
	// OddVertices lists odd-degree vertices in ascending order.
	OddVertices []string
	Reason      string
	Explanation string
	Insight     string
}

// Edges returns the walk as a list of normalized edges, in walk order.
func (r Result) Edges() []core.Edge {
	if len(r.Sequence) < 2 {
		return nil
	}
	out := make([]core.Edge, 0, len(r.Sequence)-1)
	for i := 1; i < len(r.Sequence); i++ {
		out = append(out, core.NewEdge(r.Sequence[i-1], r.Sequence[i]))
	}

	return out
}
