package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtutor/convert"
	"github.com/katalvlaran/graphtutor/graphfile"
	"github.com/katalvlaran/graphtutor/hamiltonian"
	"github.com/katalvlaran/graphtutor/lesson"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Run every analysis on the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, g, err := a.graph()
			if err != nil {
				return err
			}
			rep, err := a.eng.Report(g)
			if err != nil {
				return err
			}

			return a.emit(cmd, rep, func(w *printer) { w.report(doc, rep) },
				func() ([]byte, error) { return convert.DOT(g, doc.Name, nil, false) })
		},
	}
}

func newConnectivityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "connectivity",
		Aliases: []string{"conn"},
		Short:   "Report components and articulation points",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, g, err := a.graph()
			if err != nil {
				return err
			}
			res, err := a.eng.AnalyzeConnectivity(g)
			if err != nil {
				return err
			}

			return a.emit(cmd, res, func(w *printer) { w.connectivity(res) },
				func() ([]byte, error) { return convert.DOT(g, doc.Name, res.ArticulationPoints, false) })
		},
	}
}

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Decide whether the graph is a tree or a forest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, g, err := a.graph()
			if err != nil {
				return err
			}
			res, err := a.eng.AnalyzeTree(g)
			if err != nil {
				return err
			}

			return a.emit(cmd, res, func(w *printer) { w.tree(res) },
				func() ([]byte, error) { return convert.DOT(g, doc.Name, res.Cycle, false) })
		},
	}
}

func newEulerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "euler",
		Aliases: []string{"eulerian"},
		Short:   "Find an Eulerian path or cycle",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, g, err := a.graph()
			if err != nil {
				return err
			}
			res, err := a.eng.FindEulerian(g)
			if err != nil {
				return err
			}

			return a.emit(cmd, res, func(w *printer) { w.eulerian(res) },
				func() ([]byte, error) { return convert.DOT(g, doc.Name, res.Sequence, false) })
		},
	}
}

func newHamiltonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "hamilton",
		Aliases: []string{"hamiltonian"},
		Short:   "Search for a Hamiltonian path or cycle",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, g, err := a.graph()
			if err != nil {
				return err
			}
			res, err := a.eng.FindHamiltonian(g)
			if err != nil {
				return err
			}

			return a.emit(cmd, res, func(w *printer) { w.hamiltonian(res) },
				func() ([]byte, error) {
					return convert.DOT(g, doc.Name, res.Sequence, res.Kind == hamiltonian.Cycle)
				})
		},
	}
}

// newDotCmd always writes DOT, optionally highlighting a witness walk.
func newDotCmd(a *app) *cobra.Command {
	var walk string
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the graph as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, g, err := a.graph()
			if err != nil {
				return err
			}

			var (
				seq    []string
				closed bool
			)
			switch walk {
			case "", "none":
			case "euler":
				res, err := a.eng.FindEulerian(g)
				if err != nil {
					return err
				}
				seq = res.Sequence
			case "hamilton":
				res, err := a.eng.FindHamiltonian(g)
				if err != nil {
					return err
				}
				seq, closed = res.Sequence, res.Kind == hamiltonian.Cycle
			default:
				return fmt.Errorf("--walk %q: want none, euler or hamilton", walk)
			}

			b, err := convert.DOT(g, doc.Name, seq, closed)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(b, '\n'))

			return err
		},
	}
	cmd.Flags().StringVar(&walk, "walk", "none", "highlight a witness walk: none, euler or hamilton")

	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in example graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSTAGE\tVERTICES\tEDGES\tDESCRIPTION")
			for _, name := range graphfile.PresetNames() {
				doc, err := graphfile.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n",
					name, doc.Stage, len(doc.Vertices), len(doc.Edges), doc.Description)
			}

			return tw.Flush()
		},
	}
}

// newLessonsCmd prints the progression, one stage, or one concept card.
func newLessonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lessons [stage-number | concept]",
		Short: "Show the learning progression or a concept explanation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &printer{w: cmd.OutOrStdout()}
			if len(args) == 0 {
				for _, s := range lesson.Progression() {
					w.stage(s)
				}

				return w.err
			}
			if n, err := strconv.Atoi(args[0]); err == nil {
				s, err := lesson.StageByNumber(n)
				if err != nil {
					return err
				}
				w.stage(s)

				return w.err
			}
			c, _ := lesson.Lookup(args[0])
			w.concept(c)

			return w.err
		},
	}
}
