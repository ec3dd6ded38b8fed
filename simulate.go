// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

import (
	"fmt"
	"sync"
)

// Result is the outcome of simulating one policy over one process set.
type Result struct {
	Policy   Policy
	Timeline Timeline
	Report   *Report
}

// Simulate schedules ps under the given policy and measures the resulting
// timeline with the policy's accounting. The timeline is checked against ps
// before it is measured, so a Result never carries a partially correct
// schedule.
func Simulate(ps ProcessSet, p Policy, opts Options) (*Result, error) {
	if ps.Len() == 0 {
		return nil, fmt.Errorf("%w: no processes", ErrInvalidProcessSet)
	}
	s, err := NewScheduler(p, opts)
	if err != nil {
		return nil, err
	}
	tl := s.Schedule(ps)
	if err := tl.Check(ps); err != nil {
		return nil, fmt.Errorf("%v: %w", p, err)
	}
	r, err := p.Accounting().Measure(ps, tl)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", p, err)
	}
	return &Result{Policy: p, Timeline: tl, Report: r}, nil
}

// Comparison holds the result of every policy over the same process set.
type Comparison struct {
	// Results holds one entry per policy, in the order of [Policies].
	Results []*Result
}

// Aggregates returns the aggregate metrics of each policy.
func (c *Comparison) Aggregates() map[Policy]Aggregate {
	m := make(map[Policy]Aggregate, len(c.Results))
	for _, r := range c.Results {
		m[r.Policy] = r.Report.Aggregate
	}
	return m
}

// Result returns the result for the given policy.
func (c *Comparison) Result(p Policy) (*Result, bool) {
	for _, r := range c.Results {
		if r.Policy == p {
			return r, true
		}
	}
	return nil, false
}

// Compare simulates every policy in [Policies] over ps. Each run works on its
// own copy of the processes, so no run can observe another's state. With
// opts.Concurrent set the runs proceed in parallel. The first error in policy
// order is returned.
func Compare(ps ProcessSet, opts Options) (*Comparison, error) {
	results := make([]*Result, len(Policies))
	errs := make([]error, len(Policies))
	if opts.Concurrent {
		var wg sync.WaitGroup
		wg.Add(len(Policies))
		for i, p := range Policies {
			go func() {
				defer wg.Done()
				results[i], errs[i] = Simulate(ps, p, opts)
			}()
		}
		wg.Wait()
	} else {
		for i, p := range Policies {
			results[i], errs[i] = Simulate(ps, p, opts)
		}
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &Comparison{Results: results}, nil
}
