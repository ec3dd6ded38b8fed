// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"github.com/petenewcomb/cpusched-go"
	"github.com/stretchr/testify/require"
)

// CheckTimeline asserts the invariants that hold for every policy: segments
// are non-empty, ordered and non-overlapping, no process runs before it
// arrives, and every process runs for exactly its burst.
func CheckTimeline(t require.TestingT, ps cpusched.ProcessSet, tl cpusched.Timeline) {
	chk := require.New(t)
	executed := make(map[string]int, ps.Len())
	for i, s := range tl {
		p, ok := ps.Lookup(s.ProcessID)
		chk.True(ok, "segment %d (%v) names an unknown process", i, s)
		chk.Less(s.Start, s.End, "segment %d (%v) is empty", i, s)
		chk.GreaterOrEqual(s.Start, p.Arrival, "segment %d (%v) starts before arrival", i, s)
		if i > 0 {
			chk.GreaterOrEqual(s.Start, tl[i-1].End, "segment %d (%v) overlaps %v", i, s, tl[i-1])
		}
		executed[s.ProcessID] += s.Duration()
	}
	for i := range ps.Len() {
		p := ps.At(i)
		chk.Equal(p.Burst, executed[p.ID], "%s executed for the wrong amount of time", p.ID)
	}
	chk.NoError(tl.Check(ps))
}

// CheckRanking asserts that whenever the CPU runs a process, no other arrived
// and unfinished process had a strictly better rank at the start of that unit
// of time. It applies to the unit-stepped preemptive policies, whose decisions
// are made at unit boundaries, and expects a timeline of unit segments.
//
// The rank of a process is computed by rank from the process and the amount
// of its burst that remains at that instant.
func CheckRanking(t require.TestingT, ps cpusched.ProcessSet, tl cpusched.Timeline, rank func(p cpusched.Process, remaining int) int) {
	chk := require.New(t)
	remaining := make(map[string]int, ps.Len())
	for i := range ps.Len() {
		p := ps.At(i)
		remaining[p.ID] = p.Burst
	}
	for i, s := range tl {
		chk.Equal(1, s.Duration(), "segment %d (%v) is not a unit segment", i, s)
		running, _ := ps.Lookup(s.ProcessID)
		runningRank := rank(running, remaining[running.ID])
		for j := range ps.Len() {
			other := ps.At(j)
			if other.ID == running.ID || other.Arrival > s.Start || remaining[other.ID] == 0 {
				continue
			}
			otherRank := rank(other, remaining[other.ID])
			chk.LessOrEqual(runningRank, otherRank,
				"at %d %s (rank %d) runs while %s (rank %d) waits", s.Start, running.ID, runningRank, other.ID, otherRank)
		}
		remaining[running.ID]--
	}
}
