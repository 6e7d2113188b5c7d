package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/fsutil"
	"github.com/yaklabco/proofline/pkg/parser"
	"github.com/yaklabco/proofline/pkg/proof"
	"github.com/yaklabco/proofline/pkg/session"
)

// ErrUnknownIssue is returned when an issue id is not in the issue list.
var ErrUnknownIssue = errors.New("unknown issue")

// Runner checks and edits essays with one configuration.
type Runner struct {
	cfg *config.Config
}

// New creates a Runner. A nil cfg selects the defaults.
func New(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Runner{cfg: cfg}
}

// Document is an essay loaded into a session.
type Document struct {
	Path    string
	Flavor  string
	Stamp   fsutil.Stamp
	Session *session.Session
}

// Open reads the essay at path and loads it into a session.
func (r *Runner) Open(ctx context.Context, path string) (*Document, error) {
	content, stamp, err := fsutil.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	p, flavor, err := parser.ForContent(string(r.cfg.Flavor), path, content,
		parser.WithDialect(string(r.cfg.Dialect)))
	if err != nil {
		return nil, err
	}

	s, err := session.New(p, session.WithPath(path), session.WithClass(r.cfg.Highlight.Class))
	if err != nil {
		return nil, err
	}
	if err := s.SetText(string(content)); err != nil {
		return nil, err
	}

	return &Document{Path: path, Flavor: flavor, Stamp: stamp, Session: s}, nil
}

// LoadIssues reads and decodes an issue list.
func LoadIssues(ctx context.Context, path string) ([]proof.Issue, error) {
	data, _, err := fsutil.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read issues: %w", err)
	}
	issues, err := proof.DecodeIssues(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return issues, nil
}

// CheckEssay checks one essay against its issue list.
func (r *Runner) CheckEssay(ctx context.Context, essay Essay) FileOutcome {
	outcome := FileOutcome{Path: essay.Path, IssuesPath: essay.IssuesPath}

	doc, err := r.Open(ctx, essay.Path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	issues, err := LoadIssues(ctx, essay.IssuesPath)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	doc.Session.SetIssues(issues)
	return doc.Outcome(essay.IssuesPath)
}

// Outcome reports the current highlights of the document.
func (d *Document) Outcome(issuesPath string) FileOutcome {
	s := d.Session
	outcome := FileOutcome{
		Path:        d.Path,
		IssuesPath:  issuesPath,
		Flavor:      d.Flavor,
		Text:        s.Text(),
		Issues:      s.Issues(),
		Decorations: s.Decorations(),
	}
	outcome.Highlights, outcome.Unlocated = locate(outcome.Text, outcome.Issues, s.Highlights())
	return outcome
}

// Check discovers essays and checks them concurrently. Essays that fail are
// reported in their FileOutcome; the returned error covers discovery and
// cancellation only.
func (r *Runner) Check(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Config == nil {
		opts.Config = r.cfg
	}

	essays, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(essays))}
	if len(essays) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(essays))

	work := make(chan Essay)
	out := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for essay := range work {
				if ctx.Err() != nil {
					return
				}
				out <- r.CheckEssay(ctx, essay)
			}
		}()
	}

	go func() {
		defer close(work)
		for _, essay := range essays {
			select {
			case <-ctx.Done():
				return
			case work <- essay:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	byPath := make(map[string]FileOutcome, len(essays))
	for outcome := range out {
		byPath[outcome.Path] = outcome
	}
	for _, essay := range essays {
		if outcome, ok := byPath[essay.Path]; ok {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("check cancelled: %w", err)
	}
	return result, nil
}

func fileMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0
}
