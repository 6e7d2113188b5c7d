package frame

import "sync"

// Slot holds at most one pending callback on a Scheduler.
// Scheduling a new callback cancels the one already waiting.
type Slot struct {
	sched Scheduler

	mu      sync.Mutex
	handle  Handle
	pending bool
	gen     uint64
}

// NewSlot creates a Slot that schedules on sched.
func NewSlot(sched Scheduler) *Slot {
	return &Slot{sched: sched}
}

// Schedule replaces any pending callback with fn.
func (s *Slot) Schedule(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		s.sched.Cancel(s.handle)
	}

	s.gen++
	gen := s.gen
	s.pending = true
	s.handle = s.sched.Request(func() {
		s.mu.Lock()
		current := s.pending && s.gen == gen
		if current {
			s.pending = false
		}
		s.mu.Unlock()

		if current {
			fn()
		}
	})
}

// Cancel drops the pending callback, if any.
func (s *Slot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		s.sched.Cancel(s.handle)
		s.pending = false
	}
}

// Pending reports whether a callback is waiting to run.
func (s *Slot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
