package frame

import (
	"sync"
	"time"
)

// DefaultInterval is one frame at 60Hz.
const DefaultInterval = 16 * time.Millisecond

// Timer is a Scheduler that runs each callback one interval after it was requested,
// on its own goroutine.
type Timer struct {
	interval time.Duration

	mu     sync.Mutex
	next   Handle
	timers map[Handle]*time.Timer
}

// NewTimer creates a Timer. A non-positive interval selects DefaultInterval.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Timer{
		interval: interval,
		timers:   make(map[Handle]*time.Timer),
	}
}

// Request schedules fn to run after one interval.
func (t *Timer) Request(fn func()) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	h := t.next
	t.timers[h] = time.AfterFunc(t.interval, func() {
		t.mu.Lock()
		_, live := t.timers[h]
		delete(t.timers, h)
		t.mu.Unlock()

		if live {
			fn()
		}
	})
	return h
}

// Cancel stops the callback identified by h if it has not started.
func (t *Timer) Cancel(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[h]; ok {
		timer.Stop()
		delete(t.timers, h)
	}
}
