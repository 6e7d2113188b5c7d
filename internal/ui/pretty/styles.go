// Package pretty renders proofline output with lipgloss styles.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the styles used for terminal output.
type Styles struct {
	// Issue components
	Path        lipgloss.Style
	Location    lipgloss.Style
	Category    lipgloss.Style
	Description lipgloss.Style
	Original    lipgloss.Style
	Suggestion  lipgloss.Style

	// Highlighted text
	Mark        lipgloss.Style
	Caret       lipgloss.Style
	ExcerptText lipgloss.Style

	// Outline markers
	Marker lipgloss.Style
	Gutter lipgloss.Style

	// Status
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when colorEnabled is false.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		Path:        lipgloss.NewStyle().Bold(true),
		Location:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Category:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Description: lipgloss.NewStyle(),
		Original:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true),
		Suggestion:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),

		Mark:        lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")),
		Caret:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		ExcerptText: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Gutter: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Path:        plain,
		Location:    plain,
		Category:    plain,
		Description: plain,
		Original:    plain,
		Suggestion:  plain,
		Mark:        plain,
		Caret:       plain,
		ExcerptText: plain,
		Marker:      plain,
		Gutter:      plain,
		Success:     plain,
		Failure:     plain,
		Warning:     plain,
		Dim:         plain,
		Bold:        plain,
	}
}

// IsColorEnabled resolves a color mode ("auto", "always" or "never") for writer.
// In auto mode color needs a terminal and an unset NO_COLOR.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
