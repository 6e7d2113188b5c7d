package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/proofline/pkg/fsutil"
	"github.com/yaklabco/proofline/pkg/proof"
	"github.com/yaklabco/proofline/pkg/session"
)

// ApplyOptions controls Apply.
type ApplyOptions struct {
	// IssuesPath is the issue list. Empty means IssuesPathFor(path).
	IssuesPath string

	// ID selects the issue to accept.
	ID string

	// Write rewrites the essay and its issue list on disk.
	Write bool
}

// ApplyResult describes one accepted suggestion.
type ApplyResult struct {
	Path       string
	IssuesPath string

	Outcome session.Outcome

	// Before and After are the plain text around the edit.
	Before string
	After  string

	// Original and Source are the essay source before and after the edit.
	Original string
	Source   string

	// Remaining are the issues still found in After.
	Remaining []Located

	// Unlocated are pending issues whose text no longer occurs.
	Unlocated []proof.Issue

	// Written reports whether the essay and issue list were rewritten.
	Written bool

	// BackupPath is the backup written before the essay was rewritten, if any.
	BackupPath string
}

// Apply accepts one issue of the essay at path. An unknown id returns
// ErrUnknownIssue. When the suggestion cannot be applied the result is returned
// with Outcome.Applied false and nothing is written.
func (r *Runner) Apply(ctx context.Context, path string, opts ApplyOptions) (*ApplyResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	issuesPath := opts.IssuesPath
	if issuesPath == "" {
		issuesPath = IssuesPathFor(path)
	}

	doc, err := r.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	issues, err := LoadIssues(ctx, issuesPath)
	if err != nil {
		return nil, err
	}

	s := doc.Session
	s.SetIssues(issues)
	before := s.Text()
	original := s.Source()

	outcome, ok := s.Accept(opts.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownIssue, opts.ID, issuesPath)
	}

	result := &ApplyResult{
		Path:       path,
		IssuesPath: issuesPath,
		Outcome:    outcome,
		Before:     before,
		After:      s.Text(),
		Original:   original,
		Source:     s.Source(),
	}
	result.Remaining, result.Unlocated = locate(s.Text(), s.Issues(), s.Highlights())

	if !outcome.Applied || !opts.Write {
		return result, nil
	}

	backup, err := r.Save(ctx, doc, issuesPath)
	result.BackupPath = backup
	if err != nil {
		return result, err
	}
	result.Written = true
	return result, nil
}

// Save writes the session's source over the essay and its pending issues over
// issuesPath, then re-stamps the document. The essay must be unchanged on disk
// since it was opened or last saved. It returns the backup path, if one was made.
func (r *Runner) Save(ctx context.Context, doc *Document, issuesPath string) (string, error) {
	stale, err := doc.Stamp.Stale(ctx)
	if err != nil {
		return "", err
	}
	if stale {
		return "", fmt.Errorf("%w: %s", fsutil.ErrStale, doc.Path)
	}

	var backup string
	if r.cfg.Backups.Enabled {
		backup, err = fsutil.Backup(ctx, doc.Path, fsutil.BackupMode(r.cfg.Backups.Mode))
		if err != nil {
			return "", err
		}
	}

	if err := fsutil.Replace(ctx, doc.Stamp, []byte(doc.Session.Source())); err != nil {
		return backup, err
	}

	data, err := proof.EncodeIssues(doc.Session.Issues())
	if err != nil {
		return backup, err
	}
	if err := fsutil.WriteAtomic(ctx, issuesPath, data, fileMode(issuesPath)); err != nil {
		return backup, fmt.Errorf("update issues: %w", err)
	}

	_, stamp, err := fsutil.Read(ctx, doc.Path)
	if err != nil {
		return backup, err
	}
	doc.Stamp = stamp
	return backup, nil
}
