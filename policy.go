// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

import (
	"fmt"
	"strings"
)

// Policy names a scheduling discipline.
type Policy string

const (
	FCFS               Policy = "FCFS"
	SJN                Policy = "SJN"
	SJNPreemptive      Policy = "SJN-Preemptive"
	RoundRobin         Policy = "RoundRobin"
	Priority           Policy = "Priority"
	PriorityPreemptive Policy = "Priority-Preemptive"
)

// Policies lists every supported policy in canonical order.
var Policies = []Policy{
	FCFS,
	SJN,
	SJNPreemptive,
	RoundRobin,
	Priority,
	PriorityPreemptive,
}

var policyAliases = map[string]Policy{
	"sjn with preemption":      SJNPreemptive,
	"srtf":                     SJNPreemptive,
	"round robin":              RoundRobin,
	"rr":                       RoundRobin,
	"priority with preemption": PriorityPreemptive,
}

// ParsePolicy maps a policy name to a Policy. Canonical names are matched
// case-insensitively, as are the longer display names used by earlier
// versions of the tool ("SJN with Preemption", "Round Robin", "Priority with
// Preemption").
func ParsePolicy(name string) (Policy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Policies {
		if strings.ToLower(string(p)) == key {
			return p, nil
		}
	}
	if p, ok := policyAliases[key]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

func (p Policy) String() string {
	return string(p)
}

// Preemptive reports whether the policy may interrupt a running process, and
// hence whether its timelines may hold several segments per process.
func (p Policy) Preemptive() bool {
	switch p {
	case SJNPreemptive, RoundRobin, PriorityPreemptive:
		return true
	default:
		return false
	}
}

// Accounting returns the metrics strategy suited to the policy's timelines.
func (p Policy) Accounting() Accounting {
	if p.Preemptive() {
		return Fragmented
	}
	return Contiguous
}

// DefaultQuantum is the Round Robin time slice used when none is configured.
const DefaultQuantum = 2

// Options tune how a policy is simulated.
type Options struct {
	// Quantum is the Round Robin time slice. Other policies ignore it.
	Quantum int

	// Coalesce merges consecutive unit segments of the same process produced
	// by the unit-stepped preemptive policies.
	Coalesce bool

	// Concurrent lets [Compare] run the policies in parallel. The results are
	// identical either way.
	Concurrent bool
}

// DefaultOptions returns the options used when the caller has no preference.
func DefaultOptions() Options {
	return Options{Quantum: DefaultQuantum}
}

// Scheduler turns a process set into a timeline under one policy.
type Scheduler interface {
	Policy() Policy
	Schedule(ps ProcessSet) Timeline
}

// NewScheduler returns the Scheduler implementing the given policy. It fails
// with [ErrUnknownPolicy] for a policy outside [Policies] and with
// [ErrInvalidQuantum] when Round Robin is requested with a quantum below one.
func NewScheduler(p Policy, opts Options) (Scheduler, error) {
	switch p {
	case FCFS:
		return fcfsScheduler{}, nil
	case SJN:
		return sjnScheduler{}, nil
	case SJNPreemptive:
		return srtfScheduler{coalesce: opts.Coalesce}, nil
	case RoundRobin:
		if opts.Quantum < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, opts.Quantum)
		}
		return roundRobinScheduler{quantum: opts.Quantum}, nil
	case Priority:
		return priorityScheduler{}, nil
	case PriorityPreemptive:
		return priorityPreemptiveScheduler{coalesce: opts.Coalesce}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(p))
	}
}

type fcfsScheduler struct{}

func (fcfsScheduler) Policy() Policy                  { return FCFS }
func (fcfsScheduler) Schedule(ps ProcessSet) Timeline { return ScheduleFCFS(ps) }

type sjnScheduler struct{}

func (sjnScheduler) Policy() Policy                  { return SJN }
func (sjnScheduler) Schedule(ps ProcessSet) Timeline { return ScheduleSJN(ps) }

type srtfScheduler struct {
	coalesce bool
}

func (srtfScheduler) Policy() Policy { return SJNPreemptive }
func (s srtfScheduler) Schedule(ps ProcessSet) Timeline {
	return ScheduleSRTF(ps, s.coalesce)
}

type roundRobinScheduler struct {
	quantum int
}

func (roundRobinScheduler) Policy() Policy { return RoundRobin }
func (s roundRobinScheduler) Schedule(ps ProcessSet) Timeline {
	// The quantum was validated by NewScheduler.
	tl, _ := ScheduleRoundRobin(ps, s.quantum)
	return tl
}

type priorityScheduler struct{}

func (priorityScheduler) Policy() Policy                  { return Priority }
func (priorityScheduler) Schedule(ps ProcessSet) Timeline { return SchedulePriority(ps) }

type priorityPreemptiveScheduler struct {
	coalesce bool
}

func (priorityPreemptiveScheduler) Policy() Policy { return PriorityPreemptive }
func (s priorityPreemptiveScheduler) Schedule(ps ProcessSet) Timeline {
	return SchedulePriorityPreemptive(ps, s.coalesce)
}
