package configloader

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/fsutil"
)

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	// Field is the dotted path of the invalid field, e.g. "layout.width".
	Field string

	// Value is the rejected value.
	Value any

	Message string

	// FilePath is the config file the error came from, when known.
	FilePath string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// Validate checks cfg and returns the first problem as a *ValidationError.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	checks := []struct {
		ok    bool
		field string
		value any
		msg   string
	}{
		{cfg.Flavor.IsValid(), "flavor", cfg.Flavor, "must be one of: auto, markdown, plain"},
		{cfg.Dialect.IsValid(), "dialect", cfg.Dialect, "must be one of: commonmark, gfm"},
		{cfg.Format == "" || cfg.Format.IsValid(), "format", cfg.Format, "must be one of: text, json"},
		{cfg.Highlight.Class != "", "highlight.class", cfg.Highlight.Class, "must not be empty"},
		{cfg.Layout.Width >= 0, "layout.width", cfg.Layout.Width, "must be >= 0 (0 means terminal width)"},
		{cfg.Layout.LineHeight > 0, "layout.line_height", cfg.Layout.LineHeight, "must be > 0"},
		{cfg.Layout.CellWidth > 0, "layout.cell_width", cfg.Layout.CellWidth, "must be > 0"},
		{cfg.Layout.BlockGap >= 0, "layout.block_gap", cfg.Layout.BlockGap, "must be >= 0"},
		{fsutil.BackupMode(cfg.Backups.Mode).Valid(), "backups.mode", cfg.Backups.Mode, "must be one of: sidecar, none"},
		{cfg.Scroll >= 0, "scroll", cfg.Scroll, "must be >= 0"},
	}

	for i, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return &ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern %q", pattern),
			}
		}
	}

	for _, check := range checks {
		if !check.ok {
			return &ValidationError{
				Field:   check.field,
				Value:   check.value,
				Message: fmt.Sprintf("invalid value %v; %s", check.value, check.msg),
			}
		}
	}
	return nil
}
