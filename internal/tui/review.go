// Package tui implements the interactive review of an essay's pending issues.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/proofline/internal/ui/pretty"
	"github.com/yaklabco/proofline/pkg/proof"
	"github.com/yaklabco/proofline/pkg/runner"
)

// SaveFunc writes the reviewed essay and its issue list. It returns the backup
// path, if one was made.
type SaveFunc func() (string, error)

// ReviewOptions configures the review TUI.
type ReviewOptions struct {
	Document   *runner.Document
	IssuesPath string
	Save       SaveFunc
	Styles     *pretty.Styles

	// DisplayPath is shown in the header. Empty means the document path.
	DisplayPath string
}

// item is one pending issue, with its position when it was found.
type item struct {
	issue   proof.Issue
	located *runner.Located
}

// ReviewModel steps through the pending issues of one essay.
type ReviewModel struct {
	doc        *runner.Document
	issuesPath string
	save       SaveFunc
	styles     *pretty.Styles
	path       string

	keys keyMap
	help help.Model

	outcome runner.FileOutcome
	items   []item
	cursor  int

	status      string
	dirty       bool
	confirmQuit bool
	quitting    bool
}

// NewReview creates a review model over opts.Document.
func NewReview(opts ReviewOptions) ReviewModel {
	styles := opts.Styles
	if styles == nil {
		styles = pretty.NewStyles(false)
	}
	path := opts.DisplayPath
	if path == "" {
		path = opts.Document.Path
	}

	m := ReviewModel{
		doc:        opts.Document,
		issuesPath: opts.IssuesPath,
		save:       opts.Save,
		styles:     styles,
		path:       path,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ReviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Quit) {
		m.confirmQuit = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty && !m.confirmQuit {
			m.confirmQuit = true
			m.status = "unsaved changes: press q again to discard, s to save"
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Accept):
		m.accept()

	case key.Matches(msg, m.keys.Dismiss):
		m.dismiss()

	case key.Matches(msg, m.keys.Save):
		m.write()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *ReviewModel) accept() {
	it, ok := m.selected()
	if !ok {
		return
	}

	outcome, ok := m.doc.Session.Accept(it.issue.ID)
	switch {
	case !ok:
		m.status = fmt.Sprintf("unknown issue #%s", it.issue.ID)
	case outcome.Applied:
		m.dirty = true
		m.status = fmt.Sprintf("applied #%s", it.issue.ID)
	default:
		m.status = fmt.Sprintf("not applied #%s: %s", it.issue.ID, outcome.Status)
	}
	m.refresh()
}

func (m *ReviewModel) dismiss() {
	it, ok := m.selected()
	if !ok {
		return
	}

	if m.doc.Session.Dismiss(it.issue.ID) {
		m.dirty = true
		m.status = fmt.Sprintf("dismissed #%s", it.issue.ID)
	}
	m.refresh()
}

func (m *ReviewModel) write() {
	switch {
	case !m.dirty:
		m.status = "no changes to save"
		return
	case m.save == nil:
		m.status = "saving is disabled"
		return
	}

	backup, err := m.save()
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}

	m.dirty = false
	m.status = "saved"
	if backup != "" {
		m.status += " (backup " + backup + ")"
	}
}

func (m *ReviewModel) refresh() {
	m.outcome = m.doc.Outcome(m.issuesPath)

	items := make([]item, 0, len(m.outcome.Issues))
	for i := range m.outcome.Highlights {
		items = append(items, item{issue: m.outcome.Highlights[i].Issue, located: &m.outcome.Highlights[i]})
	}
	for _, issue := range m.outcome.Unlocated {
		items = append(items, item{issue: issue})
	}
	m.items = items

	m.cursor = min(m.cursor, max(len(m.items)-1, 0))
}

func (m ReviewModel) selected() (item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return item{}, false
	}
	return m.items[m.cursor], true
}

// Dirty reports whether the essay has changes that were not saved.
func (m ReviewModel) Dirty() bool {
	return m.dirty
}

// Pending returns the number of issues left to review.
func (m ReviewModel) Pending() int {
	return len(m.items)
}

// Status returns the last status message.
func (m ReviewModel) Status() string {
	return m.status
}

// View implements tea.Model.
func (m ReviewModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	m.writeHeader(&b)

	if len(m.items) == 0 {
		b.WriteString(m.styles.Success.Render("No pending issues"))
		b.WriteString("\n")
	}

	for i, it := range m.items {
		m.writeItem(&b, i, it)
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Dim.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m ReviewModel) writeHeader(b *strings.Builder) {
	b.WriteString(m.styles.Path.Render(m.path))
	fmt.Fprintf(b, "  %d pending", len(m.items))
	if m.dirty {
		b.WriteString(m.styles.Warning.Render("  modified"))
	}
	b.WriteString("\n\n")
}

func (m ReviewModel) writeItem(b *strings.Builder, i int, it item) {
	cursor := "  "
	if i == m.cursor {
		cursor = m.styles.Marker.Render("> ")
	}

	where := m.styles.Warning.Render("not found")
	if it.located != nil {
		where = m.styles.Location.Render(fmt.Sprintf("%d:%d", it.located.Line, it.located.Column))
	}

	fmt.Fprintf(b, "%s%s  %s  %s", cursor, where, m.styles.Dim.Render("#"+it.issue.ID), m.styles.Category.Render(it.issue.Category))
	fmt.Fprintf(b, "  %s\n", m.styles.Change(it.issue.Original, it.issue.Suggestion))

	if i != m.cursor {
		return
	}
	if it.issue.Description != "" {
		fmt.Fprintf(b, "      %s\n", m.styles.Description.Render(it.issue.Description))
	}
	if it.located != nil {
		lines := strings.Split(m.outcome.Text, "\n")
		if n := it.located.Line - 1; n >= 0 && n < len(lines) {
			start := it.located.Column - 1
			b.WriteString(m.styles.Excerpt(lines[n], start, start+it.located.Range.Len()))
		}
	}
}
