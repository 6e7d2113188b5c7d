package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/proofline/pkg/frame"
	"github.com/yaklabco/proofline/pkg/fsutil"
	"github.com/yaklabco/proofline/pkg/outline"
	"github.com/yaklabco/proofline/pkg/render"
)

// OutlineOptions controls Outline.
type OutlineOptions struct {
	// SegmentsPath is the outline payload. Empty means SegmentsPathFor(path).
	SegmentsPath string

	// Scroll is the viewport offset the markers are computed at.
	Scroll float64

	// Width overrides the configured layout width when positive.
	Width int
}

// OutlineResult places an outline next to a rendered essay.
type OutlineResult struct {
	Path     string
	View     *render.View
	Segments []outline.Segment
	Markers  []outline.Marker

	// Overlay is the box marker tops are relative to.
	Overlay outline.Rect

	// Unplaced are segments whose passage is not visible in one text run.
	Unplaced []outline.Segment
}

// LoadSegments reads and decodes an outline payload.
func LoadSegments(ctx context.Context, path string) ([]outline.Segment, error) {
	data, _, err := fsutil.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}
	segments, err := outline.DecodeSegments(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return segments, nil
}

// LayoutOptions converts the configured layout into render options.
func (r *Runner) LayoutOptions(width int) render.Options {
	layout := r.cfg.Layout
	opts := render.DefaultOptions()
	switch {
	case width > 0:
		opts.Width = width
	case layout.Width > 0:
		opts.Width = layout.Width
	}
	if layout.LineHeight > 0 {
		opts.LineHeight = float64(layout.LineHeight)
	}
	if layout.CellWidth > 0 {
		opts.CellWidth = float64(layout.CellWidth)
	}
	opts.BlockGap = layout.BlockGap
	return opts
}

// Outline lays the essay out and positions its outline markers. A scroll offset is
// applied the way an editor applies it: markers are hidden and recomputed on the
// next frame.
func (r *Runner) Outline(ctx context.Context, path string, opts OutlineOptions) (*OutlineResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	segmentsPath := opts.SegmentsPath
	if segmentsPath == "" {
		segmentsPath = SegmentsPathFor(path)
	}

	doc, err := r.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	segments, err := LoadSegments(ctx, segmentsPath)
	if err != nil {
		return nil, err
	}

	view := render.Layout(doc.Session.Document(), r.LayoutOptions(opts.Width))

	overlay := outline.Rect{Top: float64(r.cfg.Layout.OverlayTop)}
	frames := frame.NewQueue()
	tracker := outline.NewTracker(view, frames, outline.WithOverlay(overlay))
	defer tracker.Close()

	tracker.SetSegments(segments)
	if opts.Scroll != 0 {
		tracker.Scroll(opts.Scroll)
		frames.Tick()
	}

	result := &OutlineResult{
		Path:     path,
		View:     view,
		Segments: segments,
		Markers:  tracker.Markers(),
		Overlay:  overlay,
	}
	for _, seg := range segments {
		if _, ok := outline.FindParagraphRect(view, seg.Paragraph); !ok {
			result.Unplaced = append(result.Unplaced, seg)
		}
	}
	return result, nil
}
