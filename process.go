// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

import (
	"fmt"
	"slices"
)

// Process describes one unit of work: when it arrives, how much CPU time it
// needs, and its priority. Lower priority values rank higher.
type Process struct {
	ID       string
	Arrival  int
	Burst    int
	Priority int
}

// ProcessSet is an immutable, validated collection of processes in caller
// order. The zero value is an empty set.
type ProcessSet struct {
	procs []Process
}

// NewProcessSet validates the given processes and returns them as a set. The
// input slice is copied, so later modifications by the caller have no effect.
func NewProcessSet(procs ...Process) (ProcessSet, error) {
	if len(procs) == 0 {
		return ProcessSet{}, fmt.Errorf("%w: no processes", ErrInvalidProcessSet)
	}
	seen := make(map[string]struct{}, len(procs))
	for i, p := range procs {
		if p.ID == "" {
			return ProcessSet{}, fmt.Errorf("%w: process %d has an empty id", ErrInvalidProcessSet, i)
		}
		if _, dup := seen[p.ID]; dup {
			return ProcessSet{}, fmt.Errorf("%w: duplicate id %q", ErrInvalidProcessSet, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Arrival < 0 {
			return ProcessSet{}, fmt.Errorf("%w: %s has negative arrival %d", ErrInvalidProcessSet, p.ID, p.Arrival)
		}
		if p.Burst < 1 {
			return ProcessSet{}, fmt.Errorf("%w: %s has non-positive burst %d", ErrInvalidProcessSet, p.ID, p.Burst)
		}
		if p.Priority < 1 {
			return ProcessSet{}, fmt.Errorf("%w: %s has non-positive priority %d", ErrInvalidProcessSet, p.ID, p.Priority)
		}
	}
	return ProcessSet{procs: slices.Clone(procs)}, nil
}

// Len returns the number of processes in the set.
func (ps ProcessSet) Len() int {
	return len(ps.procs)
}

// At returns the i'th process in caller order.
func (ps ProcessSet) At(i int) Process {
	return ps.procs[i]
}

// Processes returns a copy of the processes in caller order.
func (ps ProcessSet) Processes() []Process {
	return slices.Clone(ps.procs)
}

// Lookup returns the process with the given id.
func (ps ProcessSet) Lookup(id string) (Process, bool) {
	for _, p := range ps.procs {
		if p.ID == id {
			return p, true
		}
	}
	return Process{}, false
}

// TotalBurst returns the sum of all bursts, i.e. the CPU time needed to run
// every process to completion.
func (ps ProcessSet) TotalBurst() int {
	total := 0
	for _, p := range ps.procs {
		total += p.Burst
	}
	return total
}

// FirstArrival returns the earliest arrival time in the set, or zero for an
// empty set.
func (ps ProcessSet) FirstArrival() int {
	if len(ps.procs) == 0 {
		return 0
	}
	first := ps.procs[0].Arrival
	for _, p := range ps.procs[1:] {
		first = min(first, p.Arrival)
	}
	return first
}

// job is the mutable working state the schedulers keep for each process.
type job struct {
	Process
	remaining int
}

// jobs returns fresh working state for every process, in caller order.
func (ps ProcessSet) jobs() []*job {
	js := make([]*job, len(ps.procs))
	for i, p := range ps.procs {
		js[i] = &job{Process: p, remaining: p.Burst}
	}
	return js
}
