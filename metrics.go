// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

import (
	"fmt"
)

// ProcessMetrics holds the timing of one process within a timeline.
type ProcessMetrics struct {
	ID         string
	Waiting    int
	Turnaround int
	Response   int
}

// Aggregate summarises a whole run. CPUUtilization is a percentage of the
// span from the first arrival to the last completion; Throughput is completed
// processes per unit of that span.
type Aggregate struct {
	AvgWaiting     float64
	AvgTurnaround  float64
	AvgResponse    float64
	CPUUtilization float64
	Throughput     float64
}

// Report is the full set of metrics derived from a timeline.
type Report struct {
	// Processes holds one entry per process, in process set order.
	Processes []ProcessMetrics
	Aggregate
}

// Lookup returns the metrics of the process with the given id.
func (r *Report) Lookup(id string) (ProcessMetrics, bool) {
	for _, pm := range r.Processes {
		if pm.ID == id {
			return pm, true
		}
	}
	return ProcessMetrics{}, false
}

// ByID returns the per-process metrics keyed by process id.
func (r *Report) ByID() map[string]ProcessMetrics {
	m := make(map[string]ProcessMetrics, len(r.Processes))
	for _, pm := range r.Processes {
		m[pm.ID] = pm
	}
	return m
}

// Accounting derives a Report from a timeline. An empty process set or an
// empty timeline yields an all-zero report. A timeline that names an unknown
// process, or that never runs one of the processes, is rejected with
// [ErrInvalidTimeline].
type Accounting interface {
	Measure(ps ProcessSet, tl Timeline) (*Report, error)
}

var (
	// Contiguous measures timelines in which each process runs at most once,
	// as produced by the non-preemptive policies. Waiting time is the delay
	// before the first (and only) dispatch.
	Contiguous Accounting = contiguousAccounting{}

	// Fragmented measures timelines in which a process may be interrupted.
	// Waiting time is the delay before the first dispatch plus every gap
	// between consecutive segments of the same process.
	Fragmented Accounting = fragmentedAccounting{}
)

type contiguousAccounting struct{}

func (contiguousAccounting) Measure(ps ProcessSet, tl Timeline) (*Report, error) {
	return measure(ps, tl, func(tr *trace, s Segment) {
		if !tr.started {
			tr.waiting = max(0, s.Start-tr.arrival)
		}
	})
}

type fragmentedAccounting struct{}

func (fragmentedAccounting) Measure(ps ProcessSet, tl Timeline) (*Report, error) {
	return measure(ps, tl, func(tr *trace, s Segment) {
		if !tr.started {
			tr.waiting = max(0, s.Start-tr.arrival)
		} else {
			tr.waiting += s.Start - tr.lastEnd
		}
	})
}

// trace accumulates what measure has seen of one process so far.
type trace struct {
	arrival    int
	started    bool
	firstStart int
	lastEnd    int
	waiting    int
}

func measure(ps ProcessSet, tl Timeline, wait func(*trace, Segment)) (*Report, error) {
	if ps.Len() == 0 || len(tl) == 0 {
		return &Report{}, nil
	}

	traces := make(map[string]*trace, ps.Len())
	for _, p := range ps.procs {
		traces[p.ID] = &trace{arrival: p.Arrival}
	}
	completion := 0
	for i, s := range tl {
		tr := traces[s.ProcessID]
		if tr == nil {
			return nil, fmt.Errorf("%w: segment %d (%v) names an unknown process", ErrInvalidTimeline, i, s)
		}
		wait(tr, s)
		if !tr.started {
			tr.started = true
			tr.firstStart = s.Start
		}
		tr.lastEnd = s.End
		completion = max(completion, s.End)
	}

	r := &Report{Processes: make([]ProcessMetrics, 0, ps.Len())}
	var totalWaiting, totalTurnaround, totalResponse int
	for _, p := range ps.procs {
		tr := traces[p.ID]
		if !tr.started {
			return nil, fmt.Errorf("%w: %s never runs", ErrInvalidTimeline, p.ID)
		}
		pm := ProcessMetrics{
			ID:         p.ID,
			Waiting:    tr.waiting,
			Turnaround: tr.lastEnd - p.Arrival,
			Response:   tr.firstStart - p.Arrival,
		}
		r.Processes = append(r.Processes, pm)
		totalWaiting += pm.Waiting
		totalTurnaround += pm.Turnaround
		totalResponse += pm.Response
	}

	n := float64(ps.Len())
	r.AvgWaiting = float64(totalWaiting) / n
	r.AvgTurnaround = float64(totalTurnaround) / n
	r.AvgResponse = float64(totalResponse) / n
	if span := completion - ps.FirstArrival(); span > 0 {
		r.CPUUtilization = float64(ps.TotalBurst()) / float64(span) * 100
		r.Throughput = n / float64(span)
	}
	return r, nil
}
