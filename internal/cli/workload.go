// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"errors"

	"github.com/petenewcomb/cpusched-go"
	"github.com/petenewcomb/cpusched-go/internal/workload"
	"github.com/spf13/cobra"
)

// workloadFlags are shared by the commands that simulate a workload.
type workloadFlags struct {
	example  bool
	quantum  int
	coalesce bool
}

func (f *workloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.example, "example", false, "Use the built-in convoy workload instead of a file")
	cmd.Flags().IntVar(&f.quantum, "quantum", 0, "Round Robin time quantum (overrides the file and config)")
	cmd.Flags().BoolVar(&f.coalesce, "coalesce", false, "Merge consecutive unit segments of preemptive policies")
}

// resolve loads the workload named by args and settles the options from the
// flags, the workload file, and the configuration, in that order.
func (f *workloadFlags) resolve(cmd *cobra.Command, args []string) (cpusched.ProcessSet, cpusched.Options, error) {
	opts := cfg.Options()
	var ps cpusched.ProcessSet
	switch {
	case len(args) == 1:
		wl, err := workload.Load(args[0])
		if err != nil {
			return ps, opts, err
		}
		ps = wl.Processes
		if wl.Quantum > 0 {
			opts.Quantum = wl.Quantum
		}
		logger.Debug("loaded workload", "path", args[0], "processes", ps.Len())
	case f.example:
		ps = workload.LongFirstProcess()
	default:
		return ps, opts, errors.New("no workload: give a file or --example")
	}
	if cmd.Flags().Changed("quantum") {
		opts.Quantum = f.quantum
	}
	if cmd.Flags().Changed("coalesce") {
		opts.Coalesce = f.coalesce
	}
	return ps, opts, nil
}
