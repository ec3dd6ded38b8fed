// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

// ScheduleSRTF simulates shortest-remaining-time-first scheduling, the
// preemptive form of shortest-job-next. Time advances one unit at a time; after
// each unit newly arrived processes join the ready queue, and the running
// process yields only to one with strictly less remaining time.
//
// Each executed unit becomes its own segment unless coalesce is set, in which
// case consecutive units of the same process are merged.
func ScheduleSRTF(ps ProcessSet, coalesce bool) Timeline {
	return runPreemptive(ps, func(j *job) int { return j.remaining }, coalesce)
}

// SchedulePriorityPreemptive simulates preemptive priority scheduling with the
// same unit stepping as [ScheduleSRTF]. The running process yields only to one
// with a strictly lower priority value; equal priorities never preempt.
func SchedulePriorityPreemptive(ps ProcessSet, coalesce bool) Timeline {
	return runPreemptive(ps, func(j *job) int { return j.Priority }, coalesce)
}

// runPreemptive steps simulated time one unit at a time from the first
// arrival, always running the best ranked ready job. Ranks are compared only
// at unit boundaries, and a running job is displaced only by a strictly better
// rank. When the CPU would otherwise idle, time jumps to the next arrival.
func runPreemptive(ps ProcessSet, rank func(*job) int, coalesce bool) Timeline {
	pending := arrivalQueue(ps)
	if pending.Len() == 0 {
		return nil
	}
	// Unmerged timelines hold exactly one segment per unit of burst.
	var tl Timeline
	if !coalesce {
		tl = make(Timeline, 0, ps.TotalBurst())
	}
	var ready readyQueue
	var active *job
	now := pending.Front().Arrival
	for active != nil || ready.Len() > 0 || pending.Len() > 0 {
		admit(now, pending, &ready, rank)
		if active == nil {
			j, ok := ready.Pop()
			if !ok {
				now = pending.Front().Arrival
				continue
			}
			active = j
		}

		tl = tl.extend(active.ID, now, now+1, coalesce)
		now++
		active.remaining--

		admit(now, pending, &ready, rank)
		if active.remaining == 0 {
			active = nil
		} else if ready.Outranks(rank(active)) {
			ready.Push(active, rank(active))
			active, _ = ready.Pop()
		}
	}
	return tl
}
