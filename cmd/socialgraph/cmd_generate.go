// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/builder"
)

// topologyArgs maps a topology name onto its constructor and arity.
var topologyArgs = map[string]struct {
	arity int
	make  func(ints []int, p float64) builder.Constructor
}{
	"path":     {1, func(v []int, _ float64) builder.Constructor { return builder.Path(v[0]) }},
	"cycle":    {1, func(v []int, _ float64) builder.Constructor { return builder.Cycle(v[0]) }},
	"star":     {1, func(v []int, _ float64) builder.Constructor { return builder.Star(v[0]) }},
	"wheel":    {1, func(v []int, _ float64) builder.Constructor { return builder.Wheel(v[0]) }},
	"complete": {1, func(v []int, _ float64) builder.Constructor { return builder.Complete(v[0]) }},
	"grid":     {2, func(v []int, _ float64) builder.Constructor { return builder.Grid(v[0], v[1]) }},
	"random":   {1, func(v []int, p float64) builder.Constructor { return builder.RandomSparse(v[0], p) }},
}

func newGenerateCmd() *cobra.Command {
	var (
		base int64
		seed int64
		prob float64
	)

	cmd := &cobra.Command{
		Use:   "generate TOPOLOGY SIZE [SIZE]",
		Short: "Write a synthetic edge list to stdout",
		Long: `Write an edge list for a canonical topology. Useful for trying the other
commands without a dataset.

Topologies: path N, cycle N, star N, wheel N, complete N, grid ROWS COLS,
random N (with --p and --seed).

Examples:
  socialgraph generate star 200 > star.txt
  socialgraph generate random 500 --p 0.02 --seed 7 --base 1000`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			topo, ok := topologyArgs[args[0]]
			if !ok {
				return fmt.Errorf("unknown topology %q", args[0])
			}
			if len(args)-1 != topo.arity {
				return fmt.Errorf("%s takes %d size argument(s)", args[0], topo.arity)
			}
			ints := make([]int, topo.arity)
			for i, raw := range args[1:] {
				v, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("size %q: %w", raw, err)
				}
				ints[i] = v
			}

			out, err := builder.Build([]builder.Option{builder.WithSeed(seed)}, topo.make(ints, prob))
			if err != nil {
				return err
			}
			return out.WriteEdgeList(cmd.OutOrStdout(), base)
		},
	}
	cmd.Flags().Int64Var(&base, "base", 0, "label of the first node")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for random topologies")
	cmd.Flags().Float64Var(&prob, "p", 0.05, "edge probability for random topologies")

	return cmd
}
