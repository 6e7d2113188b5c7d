package frame

import "sync"

// Queue is a Scheduler flushed explicitly by Tick.
// Callbacks requested while a frame is running wait for the next Tick.
type Queue struct {
	mu      sync.Mutex
	next    Handle
	pending []queued
}

type queued struct {
	handle Handle
	fn     func()
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Request schedules fn for the next Tick.
func (q *Queue) Request(fn func()) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.next++
	q.pending = append(q.pending, queued{handle: q.next, fn: fn})
	return q.next
}

// Cancel drops the callback identified by h if it has not run yet.
func (q *Queue) Cancel(h Handle) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, item := range q.pending {
		if item.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns how many callbacks wait for the next Tick.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Tick runs one frame: every callback pending at the time of the call, in request
// order. It returns the number of callbacks run.
func (q *Queue) Tick() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, item := range batch {
		item.fn()
	}
	return len(batch)
}
