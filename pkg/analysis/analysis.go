// Package analysis aggregates check results by issue category.
package analysis

import (
	"cmp"
	"slices"

	"github.com/yaklabco/proofline/pkg/proof"
	"github.com/yaklabco/proofline/pkg/runner"
)

// SortField specifies how categories are ordered.
type SortField string

const (
	// SortByCount orders by issue count, then name.
	SortByCount SortField = "count"
	// SortByAlpha orders by category name.
	SortByAlpha SortField = "alpha"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	return s == SortByCount || s == SortByAlpha
}

// Options configures Analyze.
type Options struct {
	SortBy SortField

	// SortDesc sorts counts highest first. Names are always ascending on ties.
	SortDesc bool
}

// DefaultOptions orders categories by count, highest first.
func DefaultOptions() Options {
	return Options{SortBy: SortByCount, SortDesc: true}
}

// Category is the issue totals of one category across all checked essays.
type Category struct {
	Name       string   `json:"name"`
	Issues     int      `json:"issues"`
	Highlights int      `json:"highlights"`
	Unlocated  int      `json:"unlocated"`
	Essays     []string `json:"essays"`
}

// Analyze groups the issues of result by category. Essays that failed are skipped.
func Analyze(result *runner.Result, opts Options) []Category {
	if result == nil {
		return nil
	}

	byName := make(map[string]*Category)
	essays := make(map[string]map[string]struct{})

	get := func(issue proof.Issue) *Category {
		name := cmp.Or(issue.Category, proof.DefaultCategory)
		c, ok := byName[name]
		if !ok {
			c = &Category{Name: name}
			byName[name] = c
			essays[name] = make(map[string]struct{})
		}
		return c
	}

	for _, file := range result.Files {
		if file.Error != nil {
			continue
		}
		for _, issue := range file.Issues {
			c := get(issue)
			c.Issues++
			essays[c.Name][file.Path] = struct{}{}
		}
		for _, h := range file.Highlights {
			get(h.Issue).Highlights++
		}
		for _, issue := range file.Unlocated {
			get(issue).Unlocated++
		}
	}

	categories := make([]Category, 0, len(byName))
	for name, c := range byName {
		for path := range essays[name] {
			c.Essays = append(c.Essays, path)
		}
		slices.Sort(c.Essays)
		categories = append(categories, *c)
	}
	sortCategories(categories, opts)
	return categories
}

func sortCategories(categories []Category, opts Options) {
	slices.SortFunc(categories, func(a, b Category) int {
		if opts.SortBy != SortByAlpha {
			byCount := cmp.Compare(a.Issues, b.Issues)
			if opts.SortDesc {
				byCount = -byCount
			}
			if byCount != 0 {
				return byCount
			}
			return cmp.Compare(a.Name, b.Name)
		}
		byName := cmp.Compare(a.Name, b.Name)
		if opts.SortDesc {
			return -byName
		}
		return byName
	})
}
