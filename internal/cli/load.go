package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/proofline/internal/configloader"
	"github.com/yaklabco/proofline/internal/logging"
	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/reporter"
)

// ErrConfig marks configuration failures.
var ErrConfig = errors.New("failed to load configuration")

// environment is what every command needs before it runs.
type environment struct {
	ctx     context.Context
	workDir string
	cfg     *config.Config
}

// loadEnvironment resolves the working directory and configuration, with flags
// held in cli taking precedence.
func loadEnvironment(cmd *cobra.Command, cli *config.Config) (*environment, error) {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	noConfig, err := cmd.Flags().GetBool("no-config")
	if err != nil {
		return nil, fmt.Errorf("get no-config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        configPath,
		IgnoreUserConfig:    noConfig,
		IgnoreProjectConfig: noConfig,
		CLIConfig:           cli,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}
	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldFlavor, cfg.Flavor,
		"dialect", cfg.Dialect,
		"format", cfg.Format,
	)

	return &environment{ctx: ctx, workDir: workDir, cfg: cfg}, nil
}

// newReporter creates the reporter selected by the configuration and --color.
func (e *environment) newReporter(cmd *cobra.Command, adjust ...func(*reporter.Options)) (reporter.Reporter, error) {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	opts := reporter.DefaultOptions()
	opts.Writer = cmd.OutOrStdout()
	opts.Format = e.cfg.Format
	opts.Color = colorMode
	opts.WorkingDir = e.workDir
	for _, fn := range adjust {
		fn(&opts)
	}

	rep, err := reporter.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create reporter: %w", err)
	}
	return rep, nil
}

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
