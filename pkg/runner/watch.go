package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/proofline/pkg/fsutil"
)

// DefaultDebounce is how long Watch waits for a burst of file events to settle.
const DefaultDebounce = 100 * time.Millisecond

// What a WatchEvent reports as changed.
const (
	ChangedEssay  = "essay"
	ChangedIssues = "issues"
)

// WatchOptions controls Watch.
type WatchOptions struct {
	// IssuesPath is the issue list. Empty means IssuesPathFor(path).
	IssuesPath string

	// Debounce is the settle time after a file event. Zero means DefaultDebounce.
	Debounce time.Duration
}

// WatchEvent is the state of a watched essay after a change.
type WatchEvent struct {
	// Changed lists what was reloaded; empty for the initial event.
	Changed []string

	// Version is the session version the outcome was taken at.
	Version int

	Outcome FileOutcome
}

// Watch keeps one essay in a session and calls fn with its highlights: once at the
// start and again after the essay or its issue list changes on disk. Essay edits
// are applied as text changes, so highlights of untouched passages carry over.
// A missing issue list counts as empty. Watch returns nil when ctx is done.
func (r *Runner) Watch(ctx context.Context, path string, opts WatchOptions, fn func(WatchEvent)) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	issuesPath := opts.IssuesPath
	if issuesPath == "" {
		issuesPath = IssuesPathFor(path)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	essayAbs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve essay path: %w", err)
	}
	issuesAbs, err := filepath.Abs(issuesPath)
	if err != nil {
		return fmt.Errorf("resolve issues path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Directories are watched so that editors that save by rename are seen.
	for _, dir := range slices.Compact([]string{filepath.Dir(essayAbs), filepath.Dir(issuesAbs)}) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	doc, err := r.Open(ctx, path)
	if err != nil {
		return err
	}

	w := &watched{doc: doc, issuesPath: issuesPath}
	fn(w.reloadIssues(ctx, nil))

	timer := time.NewTimer(debounce)
	timer.Stop()
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			switch filepath.Clean(event.Name) {
			case essayAbs:
				pending[ChangedEssay] = true
			case issuesAbs:
				pending[ChangedIssues] = true
			default:
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)

		case <-timer.C:
			if event, ok := w.reload(ctx, pending); ok {
				fn(event)
			}
			clear(pending)
		}
	}
}

// watched is the session state of a running Watch.
type watched struct {
	doc        *Document
	issuesPath string
}

// reload applies the pending changes. It reports false when nothing could be
// reloaded, which happens while a file is briefly missing during a save.
func (w *watched) reload(ctx context.Context, pending map[string]bool) (WatchEvent, bool) {
	var changed []string
	var loadErr error

	if pending[ChangedEssay] {
		data, stamp, err := fsutil.Read(ctx, w.doc.Path)
		switch {
		case errors.Is(err, fsutil.ErrNotFound):
		case err != nil:
			loadErr = err
		default:
			if err := w.doc.Session.SetText(string(data)); err != nil {
				loadErr = err
			} else {
				w.doc.Stamp = stamp
				changed = append(changed, ChangedEssay)
			}
		}
	}

	if pending[ChangedIssues] {
		event := w.reloadIssues(ctx, append(changed, ChangedIssues))
		if event.Outcome.Error == nil {
			event.Outcome.Error = loadErr
		}
		return event, true
	}

	if len(changed) == 0 && loadErr == nil {
		return WatchEvent{}, false
	}

	event := w.event(changed)
	event.Outcome.Error = loadErr
	return event, true
}

// reloadIssues reads the issue list into the session.
func (w *watched) reloadIssues(ctx context.Context, changed []string) WatchEvent {
	issues, err := LoadIssues(ctx, w.issuesPath)
	if errors.Is(err, fsutil.ErrNotFound) {
		issues, err = nil, nil
	}
	if err != nil {
		event := w.event(changed)
		event.Outcome.Error = err
		return event
	}

	w.doc.Session.SetIssues(issues)
	return w.event(changed)
}

func (w *watched) event(changed []string) WatchEvent {
	return WatchEvent{
		Changed: changed,
		Version: w.doc.Session.Version(),
		Outcome: w.doc.Outcome(w.issuesPath),
	}
}
