// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"github.com/petenewcomb/cpusched-go/internal/workload"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	var flagCount int

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a convoy workload as YAML",
		Long: "Print a workload of one long process followed by short ones, in the YAML\n" +
			"form accepted by run and compare.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := workload.Generate(flagCount)
			if err != nil {
				return err
			}
			f := &workload.File{Quantum: cfg.Quantum, Processes: ps}
			return f.Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&flagCount, "count", "n", 3, "Number of processes")

	return cmd
}
