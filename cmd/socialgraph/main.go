// SPDX-License-Identifier: MIT

// Command socialgraph computes centrality metrics, geodesics and
// reachability over an undirected edge-list graph such as the SNAP
// facebook_combined dataset.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
