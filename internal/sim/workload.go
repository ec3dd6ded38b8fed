// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"fmt"

	"github.com/petenewcomb/cpusched-go"
	"pgregory.net/rapid"
)

// NewProcessSet draws a valid process set shaped by config.
func NewProcessSet(t *rapid.T, config *Config) cpusched.ProcessSet {
	count := config.Count.Draw(t, "Count")
	procs := make([]cpusched.Process, count)
	arrival := 0
	for i := range procs {
		name := fmt.Sprintf("P%d", i+1)
		if i > 0 {
			arrival += config.Gap.Draw(t, name+".Gap")
		}
		procs[i] = cpusched.Process{
			ID:       name,
			Arrival:  arrival,
			Burst:    config.Burst.Draw(t, name+".Burst"),
			Priority: config.Priority.Draw(t, name+".Priority"),
		}
	}
	if BiasedBool(config.ShuffleProbability).Draw(t, "Shuffle") {
		procs = rapid.Permutation(procs).Draw(t, "Order")
	}
	ps, err := cpusched.NewProcessSet(procs...)
	if err != nil {
		t.Fatalf("generated an invalid process set: %v", err)
	}
	t.Logf("processes: %v", procs)
	return ps
}

// Options draws scheduling options shaped by config.
func Options(t *rapid.T, config *Config) cpusched.Options {
	return cpusched.Options{
		Quantum:  config.Quantum.Draw(t, "Quantum"),
		Coalesce: rapid.Bool().Draw(t, "Coalesce"),
	}
}
