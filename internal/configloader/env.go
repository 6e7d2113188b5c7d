package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/proofline/pkg/config"
)

// envVarPrefix prefixes every proofline environment variable.
const envVarPrefix = "PROOFLINE_"

// envSetting binds one environment variable to a config field.
type envSetting struct {
	help  string
	apply func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // Read-only lookup table.
var envSettings = map[string]envSetting{
	"FLAVOR": {"Parser flavor: auto, markdown or plain", func(cfg *config.Config, v string) error {
		cfg.Flavor = config.Flavor(v)
		return nil
	}},
	"DIALECT": {"Markdown dialect: commonmark or gfm", func(cfg *config.Config, v string) error {
		cfg.Dialect = config.Dialect(v)
		return nil
	}},
	"FORMAT": {"Output format: text or json", func(cfg *config.Config, v string) error {
		cfg.Format = config.OutputFormat(v)
		return nil
	}},
	"HIGHLIGHT_CLASS": {"Style class of highlight decorations", func(cfg *config.Config, v string) error {
		cfg.Highlight.Class = v
		return nil
	}},
	"LAYOUT_WIDTH":       {"Wrap width in cells (0 = terminal width)", intSetter(func(c *config.Config) *int { return &c.Layout.Width })},
	"LAYOUT_LINE_HEIGHT": {"Height of one visual line", intSetter(func(c *config.Config) *int { return &c.Layout.LineHeight })},
	"LAYOUT_CELL_WIDTH":  {"Width of one cell", intSetter(func(c *config.Config) *int { return &c.Layout.CellWidth })},
	"LAYOUT_BLOCK_GAP":   {"Blank lines between blocks", intSetter(func(c *config.Config) *int { return &c.Layout.BlockGap })},
	"LAYOUT_OVERLAY_TOP": {"Top of the marker overlay", intSetter(func(c *config.Config) *int { return &c.Layout.OverlayTop })},
	"BACKUPS_ENABLED": {"Back up essays before rewriting: true or false", func(cfg *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("expected true/false/1/0, got %q", v)
		}
		cfg.Backups.Enabled = b
		return nil
	}},
	"IGNORE": {"Comma-separated doublestar patterns skipped in directory walks", func(cfg *config.Config, v string) error {
		cfg.Ignore = splitList(v)
		return nil
	}},
	"BACKUPS_MODE": {"Backup mode: sidecar or none", func(cfg *config.Config, v string) error {
		cfg.Backups.Mode = v
		return nil
	}},
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func intSetter(field func(*config.Config) *int) func(*config.Config, string) error {
	return func(cfg *config.Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", v)
		}
		*field(cfg) = n
		return nil
	}
}

// LoadFromEnv applies PROOFLINE_* overrides to cfg. Empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, name := range envNames() {
		value := os.Getenv(envVarPrefix + name)
		if value == "" {
			continue
		}
		if err := envSettings[name].apply(cfg, value); err != nil {
			return fmt.Errorf("invalid %s%s: %w", envVarPrefix, name, err)
		}
	}
	return nil
}

// ListEnvVars returns every supported variable with a short description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envSettings))
	for name, setting := range envSettings {
		vars[envVarPrefix+name] = setting.help
	}
	return vars
}

func envNames() []string {
	names := make([]string, 0, len(envSettings))
	for name := range envSettings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
