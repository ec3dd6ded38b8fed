// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/petenewcomb/cpusched-go/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var flagAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the schedulers over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				cfg.Addr = flagAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.New(cfg, baseLogger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}
