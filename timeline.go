// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

import (
	"fmt"
)

// Segment records that a process held the CPU during [Start, End).
type Segment struct {
	ProcessID string
	Start     int
	End       int
}

// Duration returns the length of the segment.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// Format implements fmt.Formatter, printing the segment as "P1[0,24)".
func (s Segment) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, "%s[%d,%d)", s.ProcessID, s.Start, s.End)
}

// Timeline is an ordered sequence of non-overlapping segments. Time not
// covered by any segment is time the CPU spent idle.
type Timeline []Segment

// Completion returns the end of the last segment, or zero if the timeline is
// empty.
func (tl Timeline) Completion() int {
	if len(tl) == 0 {
		return 0
	}
	return tl[len(tl)-1].End
}

// Coalesce returns a copy of the timeline in which every run of abutting
// segments belonging to the same process is merged into one segment. The
// receiver is not modified.
func (tl Timeline) Coalesce() Timeline {
	var out Timeline
	for _, s := range tl {
		out = out.extend(s.ProcessID, s.Start, s.End, true)
	}
	return out
}

// extend appends [start, end) for id, merging it into the last segment when
// merge is set and the two abut.
func (tl Timeline) extend(id string, start, end int, merge bool) Timeline {
	if merge && len(tl) > 0 {
		last := &tl[len(tl)-1]
		if last.ProcessID == id && last.End == start {
			last.End = end
			return tl
		}
	}
	return append(tl, Segment{ProcessID: id, Start: start, End: end})
}

// Check verifies that the timeline is a complete and well-formed execution of
// ps: every segment is non-empty, belongs to a known process, starts no
// earlier than that process arrives and no earlier than the previous segment
// ends, and every process receives exactly its burst. Violations are reported
// as errors wrapping [ErrInvalidTimeline].
func (tl Timeline) Check(ps ProcessSet) error {
	executed := make(map[string]int, ps.Len())
	for i, s := range tl {
		p, ok := ps.Lookup(s.ProcessID)
		if !ok {
			return fmt.Errorf("%w: segment %d (%v) names an unknown process", ErrInvalidTimeline, i, s)
		}
		if s.End <= s.Start {
			return fmt.Errorf("%w: segment %d (%v) is empty", ErrInvalidTimeline, i, s)
		}
		if s.Start < p.Arrival {
			return fmt.Errorf("%w: segment %d (%v) starts before arrival %d", ErrInvalidTimeline, i, s, p.Arrival)
		}
		if i > 0 && s.Start < tl[i-1].End {
			return fmt.Errorf("%w: segment %d (%v) overlaps %v", ErrInvalidTimeline, i, s, tl[i-1])
		}
		executed[s.ProcessID] += s.Duration()
	}
	for _, p := range ps.procs {
		if executed[p.ID] != p.Burst {
			return fmt.Errorf("%w: %s executed for %d of %d units", ErrInvalidTimeline, p.ID, executed[p.ID], p.Burst)
		}
	}
	return nil
}

// Format implements fmt.Formatter. The plain verbs print the segments on one
// line separated by spaces; %+v and %#v print one segment per line.
func (tl Timeline) Format(f fmt.State, verb rune) {
	sep := " "
	if f.Flag('#') || f.Flag('+') {
		sep = "\n"
	}
	for i, s := range tl {
		if i > 0 {
			_, _ = fmt.Fprint(f, sep)
		}
		s.Format(f, verb)
	}
}
