// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/menu"
	"github.com/katalvlaran/socialgraph/server"
)

func newMenuCmd(flags *rootFlags) *cobra.Command {
	var accessible bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Pick operations interactively",
		Long: `Load the graph once and choose Degree, Closeness, Betweenness or Search
from a menu until Quit.

Examples:
  socialgraph menu
  socialgraph menu --accessible`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := flags.newApp(cmd)
			if err != nil {
				return err
			}
			return menu.Run(cmd.Context(), a.analyzer, a.out, menu.HuhPrompter{Accessible: accessible}, a.log)
		},
	}
	cmd.Flags().BoolVar(&accessible, "accessible", false, "plain line prompts for screen readers")

	return cmd
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Long: `Load the graph once and answer queries over a JSON HTTP API. Prometheus
metrics are exposed at /metrics.

Examples:
  socialgraph serve
  socialgraph serve --addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := flags.newApp(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if a.cfg.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			return server.New(a.analyzer, a.cfg.Server, a.registry, a.log).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
