// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package workload

import (
	"fmt"

	"github.com/petenewcomb/cpusched-go"
)

// LongFirstProcess returns the classic convoy workload: a 24 unit process at
// time zero followed by two 3 unit processes arriving one unit apart.
func LongFirstProcess() cpusched.ProcessSet {
	ps, err := Generate(3)
	if err != nil {
		panic(err)
	}
	return ps
}

// Generate returns n processes named P1 through Pn arriving one unit apart
// from time zero. The first has a burst of 24 and the rest a burst of 3, all
// at priority 1.
func Generate(n int) (cpusched.ProcessSet, error) {
	if n < 1 {
		return cpusched.ProcessSet{}, fmt.Errorf("%w: cannot generate %d processes", cpusched.ErrInvalidProcessSet, n)
	}
	procs := make([]cpusched.Process, n)
	for i := range procs {
		burst := 3
		if i == 0 {
			burst = 24
		}
		procs[i] = cpusched.Process{ID: fmt.Sprintf("P%d", i+1), Arrival: i, Burst: burst, Priority: 1}
	}
	return cpusched.NewProcessSet(procs...)
}
