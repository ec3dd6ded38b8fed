// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched_test

import (
	"runtime"
	"testing"

	"github.com/petenewcomb/cpusched-go"
	"github.com/stretchr/testify/require"
)

func seg(id string, start, end int) cpusched.Segment {
	return cpusched.Segment{ProcessID: id, Start: start, End: end}
}

// units expands [start, end) into one segment per time unit.
func units(id string, start, end int) cpusched.Timeline {
	var tl cpusched.Timeline
	for t := start; t < end; t++ {
		tl = append(tl, seg(id, t, t+1))
	}
	return tl
}

func concat(parts ...cpusched.Timeline) cpusched.Timeline {
	var tl cpusched.Timeline
	for _, p := range parts {
		tl = append(tl, p...)
	}
	return tl
}

func TestReferenceWorkload(t *testing.T) {
	ps := longFirstProcess(t)
	runToCompletion := cpusched.Timeline{seg("P1", 0, 24), seg("P2", 24, 27), seg("P3", 27, 30)}

	t.Run("FCFS", func(t *testing.T) {
		require.Equal(t, runToCompletion, cpusched.ScheduleFCFS(ps))
	})

	t.Run("SJN", func(t *testing.T) {
		// P1 is the only arrival at time zero and cannot be preempted.
		require.Equal(t, runToCompletion, cpusched.ScheduleSJN(ps))
	})

	t.Run("Priority", func(t *testing.T) {
		require.Equal(t, runToCompletion, cpusched.SchedulePriority(ps))
	})

	t.Run("SRTF", func(t *testing.T) {
		chk := require.New(t)
		tl := cpusched.ScheduleSRTF(ps, false)
		chk.Equal(concat(units("P1", 0, 1), units("P2", 1, 4), units("P3", 4, 7), units("P1", 7, 30)), tl)
		chk.Equal(cpusched.Timeline{seg("P1", 0, 1), seg("P2", 1, 4), seg("P3", 4, 7), seg("P1", 7, 30)},
			cpusched.ScheduleSRTF(ps, true))
	})

	t.Run("RoundRobin", func(t *testing.T) {
		chk := require.New(t)
		tl, err := cpusched.ScheduleRoundRobin(ps, 2)
		chk.NoError(err)
		expected := cpusched.Timeline{
			seg("P1", 0, 2), seg("P2", 2, 4), seg("P3", 4, 6),
			seg("P1", 6, 8), seg("P2", 8, 9), seg("P3", 9, 10),
		}
		for start := 10; start < 30; start += 2 {
			expected = append(expected, seg("P1", start, start+2))
		}
		chk.Equal(expected, tl)
	})

	t.Run("PriorityPreemptive", func(t *testing.T) {
		chk := require.New(t)
		// Equal priorities never preempt, so P1 keeps the CPU.
		tl := cpusched.SchedulePriorityPreemptive(ps, false)
		chk.Len(tl, 30)
		chk.Equal(runToCompletion, tl.Coalesce())
		chk.Equal(runToCompletion, cpusched.SchedulePriorityPreemptive(ps, true))
	})
}

func TestShortestJobVariants(t *testing.T) {
	ps := mustProcessSet(t,
		cpusched.Process{ID: "P1", Arrival: 0, Burst: 8, Priority: 1},
		cpusched.Process{ID: "P2", Arrival: 1, Burst: 4, Priority: 1},
		cpusched.Process{ID: "P3", Arrival: 2, Burst: 9, Priority: 1},
		cpusched.Process{ID: "P4", Arrival: 3, Burst: 5, Priority: 1},
	)

	t.Run("SJN", func(t *testing.T) {
		require.Equal(t, cpusched.Timeline{
			seg("P1", 0, 8), seg("P2", 8, 12), seg("P4", 12, 17), seg("P3", 17, 26),
		}, cpusched.ScheduleSJN(ps))
	})

	t.Run("SRTF", func(t *testing.T) {
		chk := require.New(t)
		tl := cpusched.ScheduleSRTF(ps, true)
		chk.Equal(cpusched.Timeline{
			seg("P1", 0, 1), seg("P2", 1, 5), seg("P4", 5, 10), seg("P1", 10, 17), seg("P3", 17, 26),
		}, tl)

		r, err := cpusched.Fragmented.Measure(ps, tl)
		chk.NoError(err)
		chk.InDelta(6.5, r.AvgWaiting, 1e-9)
	})
}

func TestSJNTiesFollowArrival(t *testing.T) {
	ps := mustProcessSet(t,
		cpusched.Process{ID: "A", Arrival: 0, Burst: 2, Priority: 1},
		cpusched.Process{ID: "C", Arrival: 1, Burst: 3, Priority: 1},
		cpusched.Process{ID: "B", Arrival: 0, Burst: 3, Priority: 1},
	)
	require.Equal(t, cpusched.Timeline{
		seg("A", 0, 2), seg("B", 2, 5), seg("C", 5, 8),
	}, cpusched.ScheduleSJN(ps))
}

func TestIdleGaps(t *testing.T) {
	t.Run("FCFS", func(t *testing.T) {
		ps := mustProcessSet(t,
			cpusched.Process{ID: "P1", Arrival: 0, Burst: 2, Priority: 1},
			cpusched.Process{ID: "P2", Arrival: 5, Burst: 3, Priority: 1},
		)
		require.Equal(t, cpusched.Timeline{seg("P1", 0, 2), seg("P2", 5, 8)}, cpusched.ScheduleFCFS(ps))
	})

	t.Run("SJN", func(t *testing.T) {
		ps := mustProcessSet(t,
			cpusched.Process{ID: "P1", Arrival: 3, Burst: 2, Priority: 1},
			cpusched.Process{ID: "P2", Arrival: 0, Burst: 1, Priority: 1},
		)
		require.Equal(t, cpusched.Timeline{seg("P2", 0, 1), seg("P1", 3, 5)}, cpusched.ScheduleSJN(ps))
	})

	t.Run("SRTF", func(t *testing.T) {
		ps := mustProcessSet(t,
			cpusched.Process{ID: "P1", Arrival: 2, Burst: 2, Priority: 1},
			cpusched.Process{ID: "P2", Arrival: 10, Burst: 1, Priority: 1},
		)
		require.Equal(t, concat(units("P1", 2, 4), units("P2", 10, 11)), cpusched.ScheduleSRTF(ps, false))
	})

	t.Run("Priority", func(t *testing.T) {
		// The dispatch order is fixed by priority up front, so the CPU idles
		// waiting for P2 even though P1 is ready.
		ps := mustProcessSet(t,
			cpusched.Process{ID: "P1", Arrival: 0, Burst: 2, Priority: 2},
			cpusched.Process{ID: "P2", Arrival: 5, Burst: 1, Priority: 1},
		)
		require.Equal(t, cpusched.Timeline{seg("P2", 5, 6), seg("P1", 6, 8)}, cpusched.SchedulePriority(ps))
	})
}

func TestRoundRobinSeedsQueueInCallerOrder(t *testing.T) {
	chk := require.New(t)
	ps := mustProcessSet(t,
		cpusched.Process{ID: "P1", Arrival: 4, Burst: 2, Priority: 1},
		cpusched.Process{ID: "P2", Arrival: 0, Burst: 2, Priority: 1},
	)
	tl, err := cpusched.ScheduleRoundRobin(ps, 2)
	chk.NoError(err)
	chk.Equal(cpusched.Timeline{seg("P1", 4, 6), seg("P2", 6, 8)}, tl)

	_, err = cpusched.ScheduleRoundRobin(ps, 0)
	chk.ErrorIs(err, cpusched.ErrInvalidQuantum)
}

func TestPriorityPreemption(t *testing.T) {
	t.Run("strictly lower value preempts", func(t *testing.T) {
		ps := mustProcessSet(t,
			cpusched.Process{ID: "P1", Arrival: 0, Burst: 5, Priority: 3},
			cpusched.Process{ID: "P2", Arrival: 2, Burst: 2, Priority: 1},
		)
		require.Equal(t, concat(units("P1", 0, 2), units("P2", 2, 4), units("P1", 4, 7)),
			cpusched.SchedulePriorityPreemptive(ps, false))
	})

	t.Run("equal priority waits", func(t *testing.T) {
		ps := mustProcessSet(t,
			cpusched.Process{ID: "P1", Arrival: 0, Burst: 3, Priority: 2},
			cpusched.Process{ID: "P2", Arrival: 1, Burst: 1, Priority: 2},
		)
		require.Equal(t, cpusched.Timeline{seg("P1", 0, 3), seg("P2", 3, 4)},
			cpusched.SchedulePriorityPreemptive(ps, true))
	})

	t.Run("preempted process queues behind equal ranks", func(t *testing.T) {
		ps := mustProcessSet(t,
			cpusched.Process{ID: "P1", Arrival: 0, Burst: 3, Priority: 2},
			cpusched.Process{ID: "P2", Arrival: 1, Burst: 1, Priority: 2},
			cpusched.Process{ID: "P3", Arrival: 2, Burst: 1, Priority: 1},
		)
		require.Equal(t, cpusched.Timeline{
			seg("P1", 0, 2), seg("P3", 2, 3), seg("P2", 3, 4), seg("P1", 4, 5),
		}, cpusched.SchedulePriorityPreemptive(ps, true))
	})
}

func TestSRTFTiesDoNotPreempt(t *testing.T) {
	ps := mustProcessSet(t,
		cpusched.Process{ID: "P1", Arrival: 0, Burst: 3, Priority: 1},
		cpusched.Process{ID: "P2", Arrival: 1, Burst: 2, Priority: 1},
	)
	require.Equal(t, cpusched.Timeline{seg("P1", 0, 3), seg("P2", 3, 5)}, cpusched.ScheduleSRTF(ps, true))
}

func TestSingleProcess(t *testing.T) {
	ps := mustProcessSet(t, cpusched.Process{ID: "solo", Arrival: 4, Burst: 3, Priority: 2})
	expected := cpusched.Timeline{seg("solo", 4, 7)}
	for _, p := range cpusched.Policies {
		t.Run(p.String(), func(t *testing.T) {
			chk := require.New(t)
			res, err := cpusched.Simulate(ps, p, cpusched.DefaultOptions())
			chk.NoError(err)
			if p == cpusched.SJNPreemptive || p == cpusched.PriorityPreemptive {
				chk.Len(res.Timeline, 3)
			} else {
				chk.Equal(expected, res.Timeline)
			}
			chk.Equal(expected, res.Timeline.Coalesce())
			chk.InDelta(100.0, res.Report.CPUUtilization, 1e-9)
			chk.InDelta(1.0/3, res.Report.Throughput, 1e-9)
			chk.Equal(cpusched.ProcessMetrics{ID: "solo", Waiting: 0, Turnaround: 3, Response: 0}, res.Report.Processes[0])
		})
	}
}

func TestCoalescedLongBurstAllocatesLittle(t *testing.T) {
	const burst = 10_000_000
	ps := mustProcessSet(t, cpusched.Process{ID: "long", Arrival: 0, Burst: burst, Priority: 1})
	for name, schedule := range map[string]func(cpusched.ProcessSet, bool) cpusched.Timeline{
		"SRTF":               cpusched.ScheduleSRTF,
		"PriorityPreemptive": cpusched.SchedulePriorityPreemptive,
	} {
		t.Run(name, func(t *testing.T) {
			chk := require.New(t)
			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			tl := schedule(ps, true)
			runtime.ReadMemStats(&after)
			chk.Equal(cpusched.Timeline{seg("long", 0, burst)}, tl)
			chk.Less(after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
		})
	}
}

func TestNewScheduler(t *testing.T) {
	chk := require.New(t)
	for _, p := range cpusched.Policies {
		s, err := cpusched.NewScheduler(p, cpusched.DefaultOptions())
		chk.NoError(err)
		chk.Equal(p, s.Policy())
	}

	_, err := cpusched.NewScheduler("Lottery", cpusched.DefaultOptions())
	chk.ErrorIs(err, cpusched.ErrUnknownPolicy)

	_, err = cpusched.NewScheduler(cpusched.RoundRobin, cpusched.Options{})
	chk.ErrorIs(err, cpusched.ErrInvalidQuantum)

	// Only Round Robin needs a quantum.
	_, err = cpusched.NewScheduler(cpusched.FCFS, cpusched.Options{})
	chk.NoError(err)
}

func TestParsePolicy(t *testing.T) {
	chk := require.New(t)
	for name, expected := range map[string]cpusched.Policy{
		"FCFS":                     cpusched.FCFS,
		"sjn":                      cpusched.SJN,
		"SJN-Preemptive":           cpusched.SJNPreemptive,
		"SJN with Preemption":      cpusched.SJNPreemptive,
		"roundrobin":               cpusched.RoundRobin,
		"Round Robin":              cpusched.RoundRobin,
		" priority ":               cpusched.Priority,
		"Priority with Preemption": cpusched.PriorityPreemptive,
		"priority-preemptive":      cpusched.PriorityPreemptive,
	} {
		p, err := cpusched.ParsePolicy(name)
		chk.NoError(err, name)
		chk.Equal(expected, p, name)
	}

	_, err := cpusched.ParsePolicy("MLFQ")
	chk.ErrorIs(err, cpusched.ErrUnknownPolicy)

	chk.False(cpusched.FCFS.Preemptive())
	chk.True(cpusched.RoundRobin.Preemptive())
	chk.Equal(cpusched.Contiguous, cpusched.Priority.Accounting())
	chk.Equal(cpusched.Fragmented, cpusched.PriorityPreemptive.Accounting())
}
