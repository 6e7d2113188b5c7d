package configloader

import (
	"slices"

	"github.com/yaklabco/proofline/pkg/config"
)

// merge layers override onto base. Non-zero fields of override win and a
// non-nil Ignore replaces the base list. Booleans can
// only be switched on this way; files are layered with applyFile instead.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := *base

	setIf(&result.Flavor, override.Flavor)
	setIf(&result.Dialect, override.Dialect)
	setIf(&result.Format, override.Format)
	setIf(&result.Highlight.Class, override.Highlight.Class)

	setIf(&result.Layout.Width, override.Layout.Width)
	setIf(&result.Layout.LineHeight, override.Layout.LineHeight)
	setIf(&result.Layout.CellWidth, override.Layout.CellWidth)
	setIf(&result.Layout.BlockGap, override.Layout.BlockGap)
	setIf(&result.Layout.OverlayTop, override.Layout.OverlayTop)

	setIf(&result.Backups.Mode, override.Backups.Mode)
	setIf(&result.Backups.Enabled, override.Backups.Enabled)

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	setIf(&result.Write, override.Write)
	setIf(&result.Scroll, override.Scroll)

	return &result
}

func setIf[T comparable](dst *T, value T) {
	var zero T
	if value != zero {
		*dst = value
	}
}
