// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package cpusched

import (
	"cmp"
	"slices"

	"github.com/addrummond/heap"
	"github.com/gammazero/deque"
)

// readyQueue orders admitted jobs by rank, breaking ties by admission order.
// A job that is readmitted after preemption therefore queues behind every
// equally ranked job already waiting.
type readyQueue struct {
	entries heap.Heap[readyEntry, heap.Min]
	len     int
	nextSeq int
}

type readyEntry struct {
	Job  *job
	Rank int
	Seq  int
}

func (a *readyEntry) Cmp(b *readyEntry) int {
	if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
		return c
	}
	return cmp.Compare(a.Seq, b.Seq)
}

func (q *readyQueue) Len() int {
	return q.len
}

func (q *readyQueue) Push(j *job, rank int) {
	heap.PushOrderable(&q.entries, readyEntry{
		Job:  j,
		Rank: rank,
		Seq:  q.nextSeq,
	})
	q.nextSeq++
	q.len++
}

// Pop removes and returns the best ranked job, or false if the queue is empty.
func (q *readyQueue) Pop() (*job, bool) {
	e, ok := heap.PopOrderable(&q.entries)
	if !ok {
		return nil, false
	}
	q.len--
	return e.Job, true
}

// Outranks reports whether the best ranked waiting job has a strictly better
// rank than the given one.
func (q *readyQueue) Outranks(rank int) bool {
	e, ok := heap.Peek(&q.entries)
	return ok && e.Rank < rank
}

// arrivalQueue returns the jobs of ps in arrival order, ties kept in caller
// order, ready to be admitted from the front as simulated time advances.
func arrivalQueue(ps ProcessSet) *deque.Deque[*job] {
	js := ps.jobs()
	slices.SortStableFunc(js, func(a, b *job) int {
		return cmp.Compare(a.Arrival, b.Arrival)
	})
	var q deque.Deque[*job]
	q.Grow(len(js))
	for _, j := range js {
		q.PushBack(j)
	}
	return &q
}

// admit moves every job that has arrived by now from pending to ready.
func admit(now int, pending *deque.Deque[*job], ready *readyQueue, rank func(*job) int) {
	for pending.Len() > 0 && pending.Front().Arrival <= now {
		j := pending.PopFront()
		ready.Push(j, rank(j))
	}
}
