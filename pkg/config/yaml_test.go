package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.FlavorAuto, cfg.Flavor)
	assert.Equal(t, config.DialectGFM, cfg.Dialect)
	assert.Equal(t, "proofread-highlight", cfg.Highlight.Class)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.True(t, cfg.Backups.Enabled)
	assert.Equal(t, "sidecar", cfg.Backups.Mode)
}

func TestValidity(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FlavorPlain.IsValid())
	assert.False(t, config.Flavor("rst").IsValid())
	assert.True(t, config.DialectCommonMark.IsValid())
	assert.False(t, config.Dialect("mdx").IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Flavor = config.FlavorPlain
	cfg.Layout.Width = 60
	cfg.Write = true

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "line_height: 20")
	assert.NotContains(t, string(data), "write")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.FlavorPlain, parsed.Flavor)
	assert.Equal(t, 60, parsed.Layout.Width)
	assert.False(t, parsed.Write)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("layout: [unclosed"))
	require.Error(t, err)
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	data, err := config.NewConfig().ToJSON()
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal(data, &tree))
	assert.Equal(t, "auto", tree["flavor"])
	layout, ok := tree["layout"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 20, layout["line_height"], 0)
}

func TestClone(t *testing.T) {
	t.Parallel()

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())

	cfg := config.NewConfig()
	cfg.Scroll = 40
	cfg.Ignore = []string{"drafts/**"}
	clone := cfg.Clone()
	require.NotSame(t, cfg, clone)
	assert.Equal(t, cfg, clone)

	clone.Highlight.Class = "other"
	clone.Ignore[0] = "notes/**"
	assert.Equal(t, "proofread-highlight", cfg.Highlight.Class)
	assert.Equal(t, []string{"drafts/**"}, cfg.Ignore)
}

func TestTemplateParses(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(config.Template())
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig().Highlight, cfg.Highlight)
	assert.Equal(t, config.NewConfig().Layout, cfg.Layout)
	assert.Equal(t, config.NewConfig().Backups, cfg.Backups)
}
