package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtutor/config"
	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/engine"
	"github.com/katalvlaran/graphtutor/graphfile"
	"github.com/katalvlaran/graphtutor/logging"
)

var (
	errNoSource   = errors.New("one of --file or --preset is required")
	errTwoSources = errors.New("--file and --preset are mutually exclusive")
)

// app carries the per-invocation state shared by subcommands.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	eng    *engine.Engine
	file   string
	preset string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	d := config.Defaults()

	root := &cobra.Command{
		Use:   "graphtutor",
		Short: "Explain connectivity, tree, Eulerian and Hamiltonian properties of small graphs",
		Long: `graphtutor loads an undirected graph from a YAML file or a built-in preset,
runs the requested analysis and prints each verdict with the reasoning behind it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(config.FlagConfig, "", "config file (default ./"+config.DefaultFile+" when present)")
	pf.Int("max-hamiltonian", d["max-hamiltonian"].(int), "largest vertex count for exhaustive Hamiltonian search")
	pf.String("articulation", d["articulation"].(string), "articulation point method: bruteforce or lowlink")
	pf.StringP("format", "o", d["format"].(string), "output format: text, json or dot")
	pf.String("log-level", d["log-level"].(string), "log level: debug, info, warn or error")
	pf.String("log-format", d["log-format"].(string), "log format: compact or json")
	pf.StringVarP(&a.file, "file", "f", "", "graph YAML file")
	pf.StringVarP(&a.preset, "preset", "p", "", "built-in graph preset (see 'graphtutor presets')")

	root.AddCommand(
		newAnalyzeCmd(a),
		newConnectivityCmd(a),
		newTreeCmd(a),
		newEulerCmd(a),
		newHamiltonCmd(a),
		newDotCmd(a),
		newPresetsCmd(),
		newLessonsCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	log, err := logging.New(cmd.ErrOrStderr(), level, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.eng = engine.New(
		engine.WithLogger(log),
		engine.WithHamiltonianLimit(cfg.MaxHamiltonian),
		engine.WithArticulationMethod(cfg.Method()),
	)
	log.Debug("config loaded", "format", cfg.Format, "articulation", cfg.Articulation,
		"max_hamiltonian", cfg.MaxHamiltonian)

	return nil
}

// graph resolves --file or --preset into a document and its graph.
func (a *app) graph() (*graphfile.Document, *core.Graph, error) {
	var (
		doc *graphfile.Document
		err error
	)
	switch {
	case a.file != "" && a.preset != "":
		return nil, nil, errTwoSources
	case a.file != "":
		doc, err = graphfile.LoadFile(a.file)
	case a.preset != "":
		doc, err = graphfile.Preset(a.preset)
	default:
		return nil, nil, errNoSource
	}
	if err != nil {
		return nil, nil, err
	}

	g, err := doc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("graph %q: %w", doc.Name, err)
	}
	a.log.Debug("graph loaded", "name", doc.Name, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return doc, g, nil
}
