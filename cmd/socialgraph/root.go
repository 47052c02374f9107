// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/dijkstra"
	"github.com/katalvlaran/socialgraph/loader"
	"github.com/katalvlaran/socialgraph/metrics"
	"github.com/katalvlaran/socialgraph/render"
)

// rootFlags are the persistent flags shared by every subcommand. Each one
// overrides the matching config value only when set explicitly.
type rootFlags struct {
	configPath string
	input      string
	logLevel   string
	output     string
	strategy   string
	maxPaths   int
	workers    int
}

// app is everything a subcommand needs, built once per invocation.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	analyzer *analysis.Analyzer
	out      *render.Renderer
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "socialgraph",
		Short: "Centrality and reachability analysis of edge-list graphs",
		Long: `Load an undirected edge list ("u v" per line) and compute degree,
closeness and betweenness centrality, all shortest paths between two nodes,
single-source hop distances and a reachability search.

Configuration is read from --config (YAML), then .env and SOCIALGRAPH_*
environment variables, then command-line flags.

Examples:
  socialgraph degree --input facebook_combined.txt
  socialgraph betweenness --start 0 --end 5 --via 3
  socialgraph paths 0 348 --output json
  socialgraph search 1912 --trace
  socialgraph serve --config socialgraph.yaml
  socialgraph generate grid 10 10 > grid.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&flags.input, "input", "", "edge-list file (.gz is decompressed)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.output, "output", "", "output format: table, json")
	pf.StringVar(&flags.strategy, "strategy", "", "shortest-path selection: linear, heap")
	pf.IntVar(&flags.maxPaths, "max-paths", 0, "cap on shortest paths enumerated per pair (0 = unlimited)")
	pf.IntVar(&flags.workers, "workers", 0, "parallel workers for betweenness (0 = all CPUs)")

	root.AddCommand(
		newRankingCmd(flags, analysis.MetricDegree, "Rank nodes by degree centrality"),
		newRankingCmd(flags, analysis.MetricCloseness, "Rank nodes by closeness centrality"),
		newBetweennessCmd(flags),
		newPathsCmd(flags),
		newDistancesCmd(flags),
		newSearchCmd(flags),
		newMenuCmd(flags),
		newServeCmd(flags),
		newGenerateCmd(),
	)

	return root
}

// loadConfig merges config file, environment and explicitly set flags.
func (f *rootFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.Input = f.input
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if changed("max-paths") {
		cfg.MaxPaths = f.maxPaths
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newApp loads configuration and the graph and builds the analyzer.
func (f *rootFlags) newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := cfg.Log.NewLogger(os.Stderr)

	strategy, err := dijkstra.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g, err := loader.LoadFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	logger.Info("graph loaded",
		"input", cfg.Input,
		"nodes", g.NodeCount,
		"edges", len(g.Edges),
		"took", time.Since(start),
	)

	reg := prometheus.NewRegistry()
	a, err := analysis.New(g,
		analysis.WithMaxPaths(cfg.MaxPaths),
		analysis.WithWorkers(cfg.Workers),
		analysis.WithStrategy(strategy),
		analysis.WithSearchRoot(cfg.SearchRoot),
		analysis.WithLogger(logger),
		analysis.WithRecorder(metrics.New(reg)),
	)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      logger,
		registry: reg,
		analyzer: a,
		out:      render.New(cmd.OutOrStdout(), format),
	}, nil
}
