package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaklabco/proofline/internal/logging"
	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/runner"
)

type watchFlags struct {
	issues   string
	format   string
	flavor   string
	debounce int
}

func newWatchCommand() *cobra.Command {
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch <essay>",
		Short: "Re-check an essay whenever it or its issue list changes",
		Long: `Keep an essay open and print its highlights again after every save.

Edits to the essay are applied to the open session, so highlights follow the
text they mark. A missing issue list counts as empty until it appears.
Stop with Ctrl-C.

Examples:
  proofline watch essay.md
  proofline watch essay.md --issues review.json --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.issues, "issues", "", "issue list (default: <essay>.issues.json)")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "essay flavor: auto, markdown, plain")
	cmd.Flags().IntVar(&flags.debounce, "debounce", int(runner.DefaultDebounce.Milliseconds()),
		"milliseconds to wait for a save to settle")

	return cmd
}

func runWatch(cmd *cobra.Command, path string, flags *watchFlags) error {
	cli := &config.Config{
		Format: config.OutputFormat(flags.format),
		Flavor: config.Flavor(flags.flavor),
	}

	env, err := loadEnvironment(cmd, cli)
	if err != nil {
		return err
	}
	logger := logging.FromContext(env.ctx)

	rep, err := env.newReporter(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(env.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching", logging.FieldPath, path)

	var reportErr error
	err = runner.New(env.cfg).Watch(ctx, path, runner.WatchOptions{
		IssuesPath: flags.issues,
		Debounce:   msDuration(flags.debounce),
	}, func(event runner.WatchEvent) {
		logger.Debug("reloaded",
			"changed", event.Changed,
			logging.FieldVersion, event.Version,
		)
		if err := rep.Check(ctx, runner.NewResult(event.Outcome)); err != nil && reportErr == nil {
			reportErr = err
			stop()
		}
	})
	if err != nil {
		return err
	}
	if reportErr != nil {
		return fmt.Errorf("report results: %w", reportErr)
	}
	return nil
}
