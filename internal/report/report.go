// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package report renders timelines, metrics, and policy comparisons as text
// tables for terminal output.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/petenewcomb/cpusched-go"
)

// GanttWidth is the most bars Gantt draws on one line before wrapping.
const GanttWidth = 12

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	return table
}

func formatMetric(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Timeline writes one row per segment.
func Timeline(w io.Writer, tl cpusched.Timeline) {
	table := newTable(w)
	table.SetHeader([]string{"Process", "Start", "End", "Duration"})
	for _, s := range tl {
		table.Append([]string{s.ProcessID, strconv.Itoa(s.Start), strconv.Itoa(s.End), strconv.Itoa(s.Duration())})
	}
	table.Render()
}

// Gantt draws the timeline as a chart of bars labelled with process ids over
// their start and end times. Consecutive segments of the same process are
// drawn as a single bar. Idle time, including any before the first segment
// from time zero, appears as "-" bars.
func Gantt(w io.Writer, tl cpusched.Timeline) {
	type bar struct {
		label      string
		start, end int
	}
	var bars []bar
	idleFrom := 0
	for _, s := range tl.Coalesce() {
		if idleFrom < s.Start {
			bars = append(bars, bar{"-", idleFrom, s.Start})
		}
		bars = append(bars, bar{s.ProcessID, s.Start, s.End})
		idleFrom = s.End
	}

	for len(bars) > 0 {
		line := bars[:min(GanttWidth, len(bars))]
		bars = bars[len(line):]

		labels := make([]string, len(line))
		times := make([]string, len(line))
		for i, b := range line {
			labels[i] = b.label
			times[i] = fmt.Sprintf("%d-%d", b.start, b.end)
		}
		table := newTable(w)
		table.SetAlignment(tablewriter.ALIGN_CENTER)
		table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
		table.SetHeader(labels)
		table.Append(times)
		table.Render()
	}
}

// Metrics writes the per-process metrics with their averages as a footer,
// followed by a line giving the utilization and throughput.
func Metrics(w io.Writer, r *cpusched.Report) {
	table := newTable(w)
	table.SetHeader([]string{"Process", "Waiting", "Turnaround", "Response"})
	for _, pm := range r.Processes {
		table.Append([]string{pm.ID, strconv.Itoa(pm.Waiting), strconv.Itoa(pm.Turnaround), strconv.Itoa(pm.Response)})
	}
	table.SetFooter([]string{"Average", formatMetric(r.AvgWaiting), formatMetric(r.AvgTurnaround), formatMetric(r.AvgResponse)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %s%%, throughput %s per unit\n",
		formatMetric(r.CPUUtilization), formatMetric(r.Throughput))
}

// Comparison writes one row of aggregate metrics per policy.
func Comparison(w io.Writer, c *cpusched.Comparison) {
	table := newTable(w)
	table.SetHeader([]string{"Policy", "Avg Wait", "Avg Turnaround", "Avg Response", "CPU Util (%)", "Throughput"})
	for _, res := range c.Results {
		a := res.Report.Aggregate
		table.Append([]string{
			res.Policy.String(),
			formatMetric(a.AvgWaiting),
			formatMetric(a.AvgTurnaround),
			formatMetric(a.AvgResponse),
			formatMetric(a.CPUUtilization),
			formatMetric(a.Throughput),
		})
	}
	table.Render()
}

// Result writes a titled report of one simulation: its Gantt chart, its
// timeline, and its metrics.
func Result(w io.Writer, title string, res *cpusched.Result) {
	rule := strings.Repeat("=", max(len(title), 20))
	_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n\n", rule, title, rule)
	_, _ = fmt.Fprintln(w, "Gantt chart")
	Gantt(w, res.Timeline)
	_, _ = fmt.Fprintln(w, "\nTimeline")
	Timeline(w, res.Timeline)
	_, _ = fmt.Fprintln(w, "\nMetrics")
	Metrics(w, res.Report)
}
