// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"fmt"

	"github.com/petenewcomb/cpusched-go"
	"github.com/spf13/cobra"
)

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the scheduling policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range cpusched.Policies {
				kind := "non-preemptive"
				if p.Preemptive() {
					kind = "preemptive"
				}
				if _, err := fmt.Fprintf(out, "%-20s  %s\n", p, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
