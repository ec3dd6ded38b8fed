// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package api

import (
	"github.com/petenewcomb/cpusched-go"
)

type Process struct {
	ID       string `json:"id"`
	Arrival  int    `json:"arrival"`
	Burst    int    `json:"burst"`
	Priority int    `json:"priority"`
}

// ScheduleRequest is the body of the schedule and compare endpoints. Quantum
// and Coalesce fall back to the server configuration when omitted.
type ScheduleRequest struct {
	Processes []Process `json:"processes"`
	Quantum   *int      `json:"quantum,omitempty"`
	Coalesce  *bool     `json:"coalesce,omitempty"`
}

type Segment struct {
	ProcessID string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type ProcessResponse struct {
	ProcessID      string `json:"process_id"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	ResponseTime   int    `json:"response_time"`
}

type Summary struct {
	Policy                string  `json:"policy"`
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnAroundTime float64 `json:"average_turn_around_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	CpuUtilization        float64 `json:"cpu_utilization"`
	CpuThroughput         float64 `json:"cpu_throughput"`
}

type ScheduleResponse struct {
	RunID string `json:"run_id"`
	Summary
	TotalTime int               `json:"total_time"`
	Timeline  []Segment         `json:"timeline"`
	Details   []ProcessResponse `json:"details"`
}

type CompareResponse struct {
	RunID   string    `json:"run_id"`
	Results []Summary `json:"results"`
}

type PolicyInfo struct {
	Name       string `json:"name"`
	Preemptive bool   `json:"preemptive"`
}

type PoliciesResponse struct {
	Policies []PolicyInfo `json:"policies"`
}

func toProcessSet(procs []Process) (cpusched.ProcessSet, error) {
	ps := make([]cpusched.Process, len(procs))
	for i, p := range procs {
		ps[i] = cpusched.Process(p)
	}
	return cpusched.NewProcessSet(ps...)
}

func fromProcessSet(ps cpusched.ProcessSet) []Process {
	procs := make([]Process, ps.Len())
	for i := range procs {
		procs[i] = Process(ps.At(i))
	}
	return procs
}

func summarize(p cpusched.Policy, a cpusched.Aggregate) Summary {
	return Summary{
		Policy:                p.String(),
		AverageWaitingTime:    a.AvgWaiting,
		AverageTurnAroundTime: a.AvgTurnaround,
		AverageResponseTime:   a.AvgResponse,
		CpuUtilization:        a.CPUUtilization,
		CpuThroughput:         a.Throughput,
	}
}

func newScheduleResponse(runID string, res *cpusched.Result) *ScheduleResponse {
	resp := &ScheduleResponse{
		RunID:     runID,
		Summary:   summarize(res.Policy, res.Report.Aggregate),
		TotalTime: res.Timeline.Completion(),
		Timeline:  make([]Segment, len(res.Timeline)),
		Details:   make([]ProcessResponse, len(res.Report.Processes)),
	}
	for i, s := range res.Timeline {
		resp.Timeline[i] = Segment(s)
	}
	for i, pm := range res.Report.Processes {
		resp.Details[i] = ProcessResponse{
			ProcessID:      pm.ID,
			WaitingTime:    pm.Waiting,
			TurnAroundTime: pm.Turnaround,
			ResponseTime:   pm.Response,
		}
	}
	return resp
}
