// Package configloader resolves the proofline configuration. It discovers user and
// project files, layers them over the defaults, applies environment variables and
// CLI flags, and validates the result.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/proofline/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where the project config search starts. Defaults to the
	// current directory.
	WorkingDir string

	// ExplicitPath is a config file named with --config. It is layered above the
	// discovered files.
	ExplicitPath string

	// IgnoreUserConfig skips $XDG_CONFIG_HOME/proofline/config.yaml.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips the upward .proofline.yml search.
	IgnoreProjectConfig bool

	// IgnoreEnv skips PROOFLINE_* environment variables.
	IgnoreEnv bool

	// CLIConfig holds values from flags. Its non-zero fields win over every other source.
	CLIConfig *config.Config
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config *config.Config

	// Paths are the discovered configuration files.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were applied, lowest precedence first.
	LoadedFrom []string
}

// Load resolves the final configuration.
// Precedence, highest first:
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (PROOFLINE_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.proofline.yml, searched upward)
//  5. User config ($XDG_CONFIG_HOME/proofline/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		if workDir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		path string
		skip bool
		name string
	}{
		{paths.User, opts.IgnoreUserConfig, "user"},
		{paths.Project, opts.IgnoreProjectConfig, "project"},
		{paths.Explicit, false, "explicit"},
	}
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		if err := applyFile(cfg, layer.path); err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	cfg = merge(cfg, opts.CLIConfig)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

// applyFile decodes a YAML file over cfg. Keys absent from the file keep their
// current value, so a file can set a boolean back to false.
func applyFile(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{FilePath: path, Message: typeErr.Error()}
		}
		return fmt.Errorf("parse YAML: %w", err)
	}
	return nil
}
