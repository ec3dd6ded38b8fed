// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"github.com/petenewcomb/cpusched-go"
	"github.com/petenewcomb/cpusched-go/internal/report"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		wf      workloadFlags
		flagCSV bool
	)

	cmd := &cobra.Command{
		Use:   "compare [workload]",
		Short: "Simulate every policy and compare their metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, opts, err := wf.resolve(cmd, args)
			if err != nil {
				return err
			}
			opts.Concurrent = true
			c, err := cpusched.Compare(ps, opts)
			if err != nil {
				return err
			}
			logger.Info("compared", "policies", len(c.Results), "processes", ps.Len())

			if flagCSV {
				return cpusched.WriteComparisonCSV(cmd.OutOrStdout(), c)
			}
			report.Comparison(cmd.OutOrStdout(), c)
			return nil
		},
	}

	wf.register(cmd)
	cmd.Flags().BoolVar(&flagCSV, "csv", false, "Write CSV instead of a table")

	return cmd
}
