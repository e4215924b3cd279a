package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtutor/config"
	"github.com/katalvlaran/graphtutor/connectivity"
	"github.com/katalvlaran/graphtutor/engine"
	"github.com/katalvlaran/graphtutor/eulerian"
	"github.com/katalvlaran/graphtutor/graphfile"
	"github.com/katalvlaran/graphtutor/hamiltonian"
	"github.com/katalvlaran/graphtutor/lesson"
	"github.com/katalvlaran/graphtutor/tree"
)

// emit writes v in the configured format.
func (a *app) emit(cmd *cobra.Command, v any, text func(*printer), dot func() ([]byte, error)) error {
	out := cmd.OutOrStdout()
	switch a.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case config.FormatDOT:
		b, err := dot()
		if err != nil {
			return err
		}
		_, err = out.Write(append(b, '\n'))

		return err
	default:
		p := &printer{w: out}
		text(p)

		return p.err
	}
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) heading(title string) {
	p.printf("%s\n%s\n", title, strings.Repeat("=", len(title)))
}

func (p *printer) field(label string, v any) {
	p.printf("  %-20s %v\n", label+":", v)
}

func (p *printer) note(text string) {
	if text != "" {
		p.printf("  %s\n", text)
	}
}

func (p *printer) report(doc *graphfile.Document, rep engine.Report) {
	p.heading("Graph " + doc.Name)
	p.note(doc.Description)
	p.field("vertices", rep.Vertices)
	p.field("edges", len(rep.Edges))
	p.field("degrees", fmt.Sprintf("min %d, max %d, average %.2f",
		rep.Degrees.Min, rep.Degrees.Max, rep.Degrees.Mean))
	p.printf("\n")
	p.connectivity(rep.Connectivity)
	p.printf("\n")
	p.tree(rep.Tree)
	p.printf("\n")
	p.eulerian(rep.Eulerian)
	p.printf("\n")
	p.hamiltonian(rep.Hamiltonian)
	if doc.Insight != "" {
		p.printf("\n")
		p.heading("About this graph")
		p.note(doc.Insight)
	}
}

func (p *printer) connectivity(res connectivity.Result) {
	p.heading("Connectivity")
	p.field("connected", yesNo(res.Connected))
	p.field("components", res.ComponentCount)
	for i, c := range res.Components {
		p.field(fmt.Sprintf("  #%d", i+1), c)
	}
	if res.Connected {
		p.field("articulation points", res.ArticulationPoints)
	}
	p.note(res.Explanation)
	p.note(res.ArticulationExplanation)
	p.note(res.Insight)
}

func (p *printer) tree(res tree.Result) {
	p.heading("Tree")
	p.field("tree", yesNo(res.IsTree))
	p.field("forest", yesNo(res.IsForest))
	p.field("reason", res.Reason)
	if len(res.Leaves) > 0 {
		p.field("leaves", res.Leaves)
	}
	if len(res.Cycle) > 0 {
		p.field("cycle", res.Cycle)
	}
	if len(res.Surplus) > 0 {
		p.field("surplus edges", res.Surplus)
	}
	p.note(res.Explanation)
	p.note(res.Insight)
}

func (p *printer) eulerian(res eulerian.Result) {
	p.heading("Eulerian")
	p.field("verdict", res.Kind)
	p.field("reason", res.Reason)
	if len(res.OddVertices) > 0 {
		p.field("odd vertices", res.OddVertices)
	}
	if len(res.Sequence) > 0 {
		p.field("walk", strings.Join(res.Sequence, " -> "))
	}
	p.note(res.Explanation)
	p.note(res.Insight)
}

func (p *printer) hamiltonian(res hamiltonian.Result) {
	p.heading("Hamiltonian")
	p.field("verdict", res.Kind)
	p.field("reason", res.Reason)
	if len(res.Sequence) > 0 {
		walk := strings.Join(res.Sequence, " -> ")
		if res.Kind == hamiltonian.Cycle && len(res.Sequence) > 1 {
			walk += " -> " + res.Sequence[0]
		}
		p.field("walk", walk)
	}
	if res.Explored > 0 {
		p.field("search steps", res.Explored)
	}
	if res.Dirac.Applies {
		p.note(res.Dirac.Explanation)
	}
	if res.Ore.Applies {
		p.note(res.Ore.Explanation)
	}
	p.note(res.Explanation)
	p.note(res.Insight)
}

func (p *printer) stage(s lesson.Stage) {
	p.heading(fmt.Sprintf("Stage %d: %s", s.Number, s.Title))
	p.note(s.Description)
	p.field("concepts", strings.Join(s.Concepts, ", "))
	p.note(s.Insight)
	p.printf("\n")
}

func (p *printer) concept(c lesson.Concept) {
	p.heading(c.Name)
	p.note(c.Description)
	for _, cond := range c.Conditions {
		p.field(cond.Verdict, cond.Rule)
	}
	p.note(c.Insight)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
