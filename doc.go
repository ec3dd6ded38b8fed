// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package cpusched simulates single-CPU process scheduling. Given a validated
// [ProcessSet] and a [Policy], it produces a [Timeline] describing which
// process runs during which interval of simulated time, and a [Report] of the
// waiting, turnaround and response times that follow from it.
//
// Six policies are provided. First-come-first-served, shortest-job-next and
// priority scheduling run each process to completion once dispatched. Their
// preemptive counterparts, shortest-remaining-time-first and preemptive
// priority, step the simulation one time unit at a time and emit one segment
// per executed unit unless asked to coalesce them. Round robin dispatches
// processes from a FIFO queue for at most one quantum at a time.
//
// Timelines in which a process runs at most once are measured with
// [Contiguous] accounting; timelines in which a process may be interrupted are
// measured with [Fragmented] accounting, which sums the gaps between a
// process's own segments. [Compare] runs every policy over the same set so the
// aggregates can be read side by side.
//
// All functions are deterministic and never modify their inputs, so a
// ProcessSet may be reused across any number of runs.
package cpusched
