// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/analysis"
)

// parseLabels converts positional arguments into node labels.
func parseLabels(args []string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a node label", a)
		}
		out[i] = v
	}

	return out, nil
}

// newRankingCmd builds the degree and closeness commands.
func newRankingCmd(flags *rootFlags, metric, short string) *cobra.Command {
	return &cobra.Command{
		Use:   metric,
		Short: short,
		Long: short + `, lowest value first.

Examples:
  socialgraph ` + metric + `
  socialgraph ` + metric + ` --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := flags.newApp(cmd)
			if err != nil {
				return err
			}
			var rk *analysis.Ranking
			if metric == analysis.MetricDegree {
				rk, err = a.analyzer.Degree(cmd.Context())
			} else {
				rk, err = a.analyzer.Closeness(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.out.Ranking(rk)
		},
	}
}

func newBetweennessCmd(flags *rootFlags) *cobra.Command {
	var start, end, via int64

	cmd := &cobra.Command{
		Use:   "betweenness",
		Short: "Rank nodes by betweenness centrality",
		Long: `Rank every node by the sum, over ordered pairs of other nodes, of the
fraction of shortest paths passing through it. With --start, --end and --via
only that single fraction is computed.

The whole-graph ranking enumerates every shortest path of every pair and is
expensive on large graphs; use --workers and --max-paths to bound it.

Examples:
  socialgraph betweenness --workers 8
  socialgraph betweenness --start 0 --end 5 --via 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			triple := 0
			for _, name := range []string{"start", "end", "via"} {
				if cmd.Flags().Changed(name) {
					triple++
				}
			}
			if triple != 0 && triple != 3 {
				return fmt.Errorf("--start, --end and --via must be given together")
			}

			a, err := flags.newApp(cmd)
			if err != nil {
				return err
			}
			if triple == 3 {
				rep, err := a.analyzer.Triple(start, end, via)
				if err != nil {
					return err
				}
				return a.out.Triple(rep)
			}
			rk, err := a.analyzer.Betweenness(cmd.Context())
			if err != nil {
				return err
			}
			return a.out.Ranking(rk)
		},
	}
	cmd.Flags().Int64Var(&start, "start", 0, "start node label")
	cmd.Flags().Int64Var(&end, "end", 0, "end node label")
	cmd.Flags().Int64Var(&via, "via", 0, "intermediate node label")

	return cmd
}

func newPathsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "paths START END",
		Short: "List every shortest path between two nodes",
		Long: `List every minimum-hop path between two nodes in lexicographic order.

Examples:
  socialgraph paths 0 348
  socialgraph paths 0 348 --max-paths 10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := parseLabels(args)
			if err != nil {
				return err
			}
			a, err := flags.newApp(cmd)
			if err != nil {
				return err
			}
			rep, err := a.analyzer.Paths(labels[0], labels[1])
			if err != nil {
				return err
			}
			return a.out.Paths(rep)
		},
	}
}

func newDistancesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "distances SOURCE",
		Short: "Show hop distances from one node",
		Long: `Show the hop distance from SOURCE to every reachable node, the unreachable
nodes and the closeness of SOURCE.

Examples:
  socialgraph distances 107`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := parseLabels(args)
			if err != nil {
				return err
			}
			a, err := flags.newApp(cmd)
			if err != nil {
				return err
			}
			rep, err := a.analyzer.Distances(labels[0])
			if err != nil {
				return err
			}
			return a.out.Distances(rep)
		},
	}
}

func newSearchCmd(flags *rootFlags) *cobra.Command {
	var (
		root  int64
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "search TARGET",
		Short: "Check whether TARGET is reachable from the search root",
		Long: `Search for TARGET starting at the configured root (107 unless
search_root or --root says otherwise). The frontier is last-in first-out.

Examples:
  socialgraph search 1912
  socialgraph search 1912 --root 0 --trace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := parseLabels(args)
			if err != nil {
				return err
			}
			a, err := flags.newApp(cmd)
			if err != nil {
				return err
			}
			from := a.cfg.SearchRoot
			if cmd.Flags().Changed("root") {
				from = root
			}
			rep, err := a.analyzer.SearchFrom(from, labels[0])
			if err != nil {
				return err
			}
			return a.out.Search(rep, trace)
		},
	}
	cmd.Flags().Int64Var(&root, "root", 0, "root node label (overrides search_root)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the visit order")

	return cmd
}
