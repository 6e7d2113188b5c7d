package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/yaklabco/proofline/internal/logging"
	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/fsutil"
)

// defaultConfigName is the file init writes.
const defaultConfigName = ".proofline.yml"

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a proofline configuration file",
		Long: `Create a commented .proofline.yml in the current directory with the
default settings.

Examples:
  proofline init
  proofline init --output docs/.proofline.yml
  proofline init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigName, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	_, _, err = fsutil.Read(ctx, absPath)
	switch {
	case err == nil && !flags.force:
		if !isTerminal(cmd.InOrStdin()) {
			return fmt.Errorf("%w: %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		overwrite, err := confirmOverwrite(flags.output)
		if err != nil {
			return err
		}
		if !overwrite {
			logger.Info("init cancelled")
			return nil
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	case err == nil:
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	case !errors.Is(err, fsutil.ErrNotFound):
		return err
	}

	if err := fsutil.WriteAtomic(ctx, absPath, config.Template(), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Configuration file already exists").
		Description(path + "\nOverwrite it with the defaults?").
		Affirmative("Overwrite").
		Negative("Keep").
		Value(&overwrite).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirm overwrite: %w", err)
	}
	return overwrite, nil
}
