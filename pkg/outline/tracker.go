package outline

import (
	"sync"

	"github.com/yaklabco/proofline/pkg/frame"
)

// Scroller is implemented by surfaces whose geometry follows a scroll offset.
type Scroller interface {
	ScrollTo(y float64)
}

// Tracker keeps the markers of an outline in step with the rendered document.
//
// Segment and content changes recompute immediately. Scrolling hides the markers and
// recomputes once on the next frame; further scrolls before that frame replace the
// pending recompute.
type Tracker struct {
	slot *frame.Slot

	mu       sync.Mutex
	surface  Surface
	overlay  Rect
	segments []Segment
	markers  []Marker
	scrollY  float64
	onChange func([]Marker)
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithOverlay sets the overlay box markers are positioned against.
func WithOverlay(overlay Rect) TrackerOption {
	return func(t *Tracker) {
		t.overlay = overlay
	}
}

// WithOnChange registers fn to receive the markers after every change.
func WithOnChange(fn func([]Marker)) TrackerOption {
	return func(t *Tracker) {
		t.onChange = fn
	}
}

// NewTracker creates a Tracker for surface that schedules scroll recomputes on sched.
func NewTracker(surface Surface, sched frame.Scheduler, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		slot:    frame.NewSlot(sched),
		surface: surface,
		markers: []Marker{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetSegments replaces the segments and recomputes.
func (t *Tracker) SetSegments(segments []Segment) {
	t.mu.Lock()
	t.segments = append([]Segment(nil), segments...)
	t.recomputeLocked()
	markers := t.markersLocked()
	t.mu.Unlock()

	t.notify(markers)
}

// ContentChanged swaps in the surface rendered for new content and recomputes.
// A nil surface keeps the current one.
func (t *Tracker) ContentChanged(surface Surface) {
	t.mu.Lock()
	if surface != nil {
		t.surface = surface
		t.applyScrollLocked()
	}
	t.recomputeLocked()
	markers := t.markersLocked()
	t.mu.Unlock()

	t.notify(markers)
}

// Scroll hides the markers and schedules one recompute at scroll offset y.
func (t *Tracker) Scroll(y float64) {
	t.mu.Lock()
	t.scrollY = y
	t.markers = []Marker{}
	t.mu.Unlock()

	t.notify([]Marker{})
	t.slot.Schedule(t.frame)
}

// Pending reports whether a scroll recompute is waiting for its frame.
func (t *Tracker) Pending() bool {
	return t.slot.Pending()
}

// Markers returns the current markers.
func (t *Tracker) Markers() []Marker {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.markersLocked()
}

// Close drops any pending recompute.
func (t *Tracker) Close() {
	t.slot.Cancel()
}

func (t *Tracker) frame() {
	t.mu.Lock()
	t.applyScrollLocked()
	t.recomputeLocked()
	markers := t.markersLocked()
	t.mu.Unlock()

	t.notify(markers)
}

func (t *Tracker) applyScrollLocked() {
	if s, ok := t.surface.(Scroller); ok {
		s.ScrollTo(t.scrollY)
	}
}

func (t *Tracker) recomputeLocked() {
	t.markers = MapSegments(t.surface, t.overlay, t.segments)
}

func (t *Tracker) markersLocked() []Marker {
	out := make([]Marker, len(t.markers))
	copy(out, t.markers)
	return out
}

func (t *Tracker) notify(markers []Marker) {
	if t.onChange != nil {
		t.onChange(markers)
	}
}
