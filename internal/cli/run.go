// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"fmt"

	"github.com/petenewcomb/cpusched-go"
	"github.com/petenewcomb/cpusched-go/internal/report"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		wf         workloadFlags
		flagPolicy string
		flagCSV    bool
	)

	cmd := &cobra.Command{
		Use:   "run [workload]",
		Short: "Simulate one policy",
		Long: "Simulate one policy over a workload read from a .csv or .yaml file, or over\n" +
			"the built-in convoy workload with --example.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := cpusched.ParsePolicy(flagPolicy)
			if err != nil {
				return err
			}
			ps, opts, err := wf.resolve(cmd, args)
			if err != nil {
				return err
			}
			res, err := cpusched.Simulate(ps, p, opts)
			if err != nil {
				return err
			}
			logger.Info("simulated", "policy", p, "processes", ps.Len(), "segments", len(res.Timeline))

			out := cmd.OutOrStdout()
			if flagCSV {
				return cpusched.WriteCSV(out, res)
			}
			title := p.String()
			if p == cpusched.RoundRobin {
				title = fmt.Sprintf("%s (quantum %d)", p, opts.Quantum)
			}
			report.Result(out, title, res)
			return nil
		},
	}

	wf.register(cmd)
	cmd.Flags().StringVarP(&flagPolicy, "policy", "p", string(cpusched.FCFS), "Scheduling policy (see 'cpusched policies')")
	cmd.Flags().BoolVar(&flagCSV, "csv", false, "Write CSV instead of tables")

	return cmd
}
