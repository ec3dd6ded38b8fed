// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

import (
	"cmp"
	"slices"
)

// ScheduleFCFS runs every process to completion in order of arrival, ties
// broken by caller order. A process starts when both it has arrived and the
// CPU is free, leaving the CPU idle in between if necessary.
func ScheduleFCFS(ps ProcessSet) Timeline {
	js := ps.jobs()
	slices.SortStableFunc(js, func(a, b *job) int {
		return cmp.Compare(a.Arrival, b.Arrival)
	})
	return runToCompletion(js)
}

// SchedulePriority runs every process to completion in order of priority,
// then arrival, then caller order. The order is fixed up front, so a high
// priority process that arrives late still runs before lower priority
// processes that are already waiting, with the CPU idle until it arrives.
func SchedulePriority(ps ProcessSet) Timeline {
	js := ps.jobs()
	slices.SortStableFunc(js, func(a, b *job) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Arrival, b.Arrival)
	})
	return runToCompletion(js)
}

func runToCompletion(js []*job) Timeline {
	tl := make(Timeline, 0, len(js))
	now := 0
	for _, j := range js {
		start := max(now, j.Arrival)
		now = start + j.Burst
		tl = append(tl, Segment{ProcessID: j.ID, Start: start, End: now})
	}
	return tl
}

// ScheduleSJN repeatedly dispatches the arrived process with the shortest
// burst and runs it to completion. Equal bursts are dispatched in arrival
// order. When nothing has arrived the CPU idles until the next arrival.
func ScheduleSJN(ps ProcessSet) Timeline {
	tl := make(Timeline, 0, ps.Len())
	pending := arrivalQueue(ps)
	var ready readyQueue
	burst := func(j *job) int { return j.Burst }
	now := 0
	for pending.Len() > 0 || ready.Len() > 0 {
		admit(now, pending, &ready, burst)
		j, ok := ready.Pop()
		if !ok {
			now = pending.Front().Arrival
			continue
		}
		tl = append(tl, Segment{ProcessID: j.ID, Start: now, End: now + j.Burst})
		now += j.Burst
	}
	return tl
}
