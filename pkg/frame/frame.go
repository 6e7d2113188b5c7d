// Package frame schedules work for the next display frame.
//
// A Scheduler runs callbacks once per frame. Queue is a deterministic scheduler whose
// frames are driven by the owner calling Tick. Timer drives frames from a wall clock.
// Slot keeps at most one pending callback on any Scheduler.
package frame

// Handle identifies a requested callback so it can be cancelled.
type Handle uint64

// Scheduler runs callbacks on the next frame.
type Scheduler interface {
	// Request schedules fn for the next frame.
	Request(fn func()) Handle

	// Cancel drops a pending callback. Cancelling a callback that already ran,
	// or an unknown handle, does nothing.
	Cancel(h Handle)
}
