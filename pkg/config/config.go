// Package config defines the configuration types for proofline.
// These are plain data; loading and merging live in internal/configloader.
package config

// Flavor selects how an essay is parsed.
type Flavor string

const (
	// FlavorAuto detects the flavor from the file name and content.
	FlavorAuto Flavor = "auto"

	// FlavorMarkdown parses the essay as Markdown.
	FlavorMarkdown Flavor = "markdown"

	// FlavorPlain treats every line as a paragraph.
	FlavorPlain Flavor = "plain"
)

// IsValid reports whether f is a known flavor.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorAuto, FlavorMarkdown, FlavorPlain:
		return true
	default:
		return false
	}
}

// Dialect selects the Markdown extensions the parser enables.
type Dialect string

const (
	DialectCommonMark Dialect = "commonmark"
	DialectGFM        Dialect = "gfm"
)

// IsValid reports whether d is a known dialect.
func (d Dialect) IsValid() bool {
	return d == DialectCommonMark || d == DialectGFM
}

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid reports whether f is a known format.
func (f OutputFormat) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// HighlightConfig controls highlight decorations.
type HighlightConfig struct {
	// Class is the style class attached to every highlight.
	Class string `yaml:"class"`
}

// LayoutConfig controls the monospace layout used for outline markers.
type LayoutConfig struct {
	// Width is the wrap width in cells. Zero means the terminal width.
	Width int `yaml:"width"`

	// LineHeight is the height of one visual line.
	LineHeight int `yaml:"line_height"`

	// CellWidth is the width of one terminal cell.
	CellWidth int `yaml:"cell_width"`

	// BlockGap is the number of blank lines between blocks.
	BlockGap int `yaml:"block_gap"`

	// OverlayTop is the top of the marker overlay in layout coordinates.
	OverlayTop int `yaml:"overlay_top"`
}

// BackupsConfig controls backups taken before an essay is rewritten.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration.
type Config struct {
	// Flavor selects the parser: auto, markdown or plain.
	Flavor Flavor `yaml:"flavor"`

	// Dialect selects Markdown extensions: commonmark or gfm.
	Dialect Dialect `yaml:"dialect"`

	// Ignore holds doublestar patterns for essays that directory walks skip.
	Ignore []string `yaml:"ignore"`

	Highlight HighlightConfig `yaml:"highlight"`
	Layout    LayoutConfig    `yaml:"layout"`
	Backups   BackupsConfig   `yaml:"backups"`

	// CLI-level options, never read from files.

	// Format selects the output format.
	Format OutputFormat `yaml:"-"`

	// Write makes apply rewrite the essay on disk.
	Write bool `yaml:"-"`

	// Scroll is the viewport offset used by outline.
	Scroll int `yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Flavor:  FlavorAuto,
		Dialect: DialectGFM,
		Highlight: HighlightConfig{
			Class: "proofread-highlight",
		},
		Layout: LayoutConfig{
			Width:      0,
			LineHeight: 20,
			CellWidth:  8,
			BlockGap:   1,
			OverlayTop: 0,
		},
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format: FormatText,
	}
}
