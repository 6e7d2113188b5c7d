package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the indentation of generated YAML.
const yamlIndent = 2

// ToYAML serializes the file-backed fields of the configuration.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToJSON serializes the file-backed fields of the configuration as JSON, keyed
// the same way as the YAML form.
func (c *Config) ToJSON() ([]byte, error) {
	raw, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("reparse config: %w", err)
	}

	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(out, '\n'), nil
}

// FromYAML parses a configuration from YAML bytes. Absent keys stay at their zero value.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Ignore = slices.Clone(c.Ignore)
	return &clone
}

// Template returns a commented starter configuration.
func Template() []byte {
	return []byte(`# proofline configuration

# How essays are parsed: auto, markdown or plain
flavor: auto

# Markdown extensions: commonmark or gfm
dialect: gfm

# Essays skipped when checking a directory (doublestar patterns)
# ignore:
#   - "drafts/**"
#   - "**/*.notes.md"

highlight:
  # Style class attached to every highlight decoration
  class: proofread-highlight

layout:
  # Wrap width in cells (0 = terminal width)
  width: 0
  line_height: 20
  cell_width: 8
  # Blank lines between blocks
  block_gap: 1
  overlay_top: 0

# Backups written before apply --write rewrites an essay
backups:
  enabled: true
  mode: sidecar
`)
}
