// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

import (
	"fmt"

	"github.com/gammazero/deque"
)

// ScheduleRoundRobin dispatches processes from a FIFO queue for at most
// quantum time units each, returning unfinished processes to the tail.
//
// The queue is seeded with every process in caller order when the simulation
// starts, whether or not it has arrived yet. Arrival only delays a dispatch:
// a process never starts before it arrives, and the CPU idles until it does.
// Each dispatch produces exactly one segment.
func ScheduleRoundRobin(ps ProcessSet, quantum int) (Timeline, error) {
	if quantum < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
	}
	js := ps.jobs()
	var queue deque.Deque[*job]
	queue.Grow(len(js))
	for _, j := range js {
		queue.PushBack(j)
	}

	var tl Timeline
	now := 0
	for queue.Len() > 0 {
		j := queue.PopFront()
		start := max(now, j.Arrival)
		slice := min(quantum, j.remaining)
		now = start + slice
		j.remaining -= slice
		tl = append(tl, Segment{ProcessID: j.ID, Start: start, End: now})
		if j.remaining > 0 {
			queue.PushBack(j)
		}
	}
	return tl, nil
}
