package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Essay is one discovered essay and the issue list it is checked against.
type Essay struct {
	Path       string
	IssuesPath string
}

// Discover resolves opts.Paths into essays, sorted by path.
//
// A named file is always included. Directory walks skip hidden entries, files whose
// extension is not listed, files matching an ignore pattern and essays without an
// issue list beside them.
func Discover(ctx context.Context, opts Options) ([]Essay, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	seen := make(map[string]struct{})
	var essays []Essay
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		essays = append(essays, Essay{Path: path, IssuesPath: IssuesPathFor(path)})
	}

	for _, input := range opts.paths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		path = filepath.Clean(path)

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}

		found, err := walk(ctx, path, workDir, opts)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	sort.Slice(essays, func(i, j int) bool { return essays[i].Path < essays[j].Path })

	if opts.IssuesPath != "" && len(essays) == 1 {
		essays[0].IssuesPath = opts.IssuesPath
	}
	return essays, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}

func walk(ctx context.Context, root, workDir string, opts Options) ([]string, error) {
	extensions := opts.extensions()
	ignore := opts.ignore()
	var found []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		rel, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || ignored(rel, ignore) {
				return filepath.SkipDir
			}
			return nil
		}

		switch {
		case hidden, !entry.Type().IsRegular(), isSidecar(path), ignored(rel, ignore):
			return nil
		case !slices.Contains(extensions, strings.ToLower(filepath.Ext(path))):
			return nil
		case !exists(IssuesPathFor(path)):
			return nil
		}

		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}
	return found, nil
}

// ignored matches rel against the patterns and against its base name.
func ignored(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, pathBase(rel)); ok {
			return true
		}
	}
	return false
}

func pathBase(rel string) string {
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		return rel[i+1:]
	}
	return rel
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
