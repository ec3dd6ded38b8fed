// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteCSV writes a result in the export layout shared with earlier versions
// of the tool: a "Process,Start Time,End Time" header, one row per segment, a
// blank line, and one "name,value" trailer row per aggregate metric with two
// decimal places. As in those exports, the final trailer row is not followed
// by a newline.
func WriteCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Process", "Start Time", "End Time"})
	for _, s := range res.Timeline {
		_ = cw.Write([]string{s.ProcessID, strconv.Itoa(s.Start), strconv.Itoa(s.End)})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	a := res.Report.Aggregate
	trailers := []string{
		"Avg Waiting Time," + formatMetric(a.AvgWaiting),
		"Avg Turnaround Time," + formatMetric(a.AvgTurnaround),
		"Avg Response Time," + formatMetric(a.AvgResponse),
		"CPU Utilization," + formatMetric(a.CPUUtilization),
		"Throughput," + formatMetric(a.Throughput),
	}
	_, err := io.WriteString(w, "\n"+strings.Join(trailers, "\n"))
	return err
}

// WriteComparisonCSV writes one row of aggregate metrics per policy.
func WriteComparisonCSV(w io.Writer, c *Comparison) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Policy", "Avg Wait", "Avg Turnaround", "Avg Response", "CPU Util (%)", "Throughput"})
	for _, r := range c.Results {
		a := r.Report.Aggregate
		_ = cw.Write([]string{
			r.Policy.String(),
			formatMetric(a.AvgWaiting),
			formatMetric(a.AvgTurnaround),
			formatMetric(a.AvgResponse),
			formatMetric(a.CPUUtilization),
			formatMetric(a.Throughput),
		})
	}
	cw.Flush()
	return cw.Error()
}

func formatMetric(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
