package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/proofline/internal/logging"
	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/reporter"
	"github.com/yaklabco/proofline/pkg/runner"
)

type applyFlags struct {
	id        string
	issues    string
	format    string
	flavor    string
	dialect   string
	write     bool
	noBackups bool
	diff      bool
}

func newApplyCommand() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply <essay>",
		Short: "Accept one suggestion",
		Long: `Accept the suggestion of one issue.

The first occurrence of the issue's original text is replaced by its suggestion
and the issue is removed from the list. Without --write the edited text is only
shown. With --write the essay is backed up, rewritten in place, and the issue
list is updated.

A suggestion is not applied when its original text is no longer in the essay,
or when the text spans formatting (for example part emphasis, part plain).

Examples:
  proofline apply essay.md --id 3            # Preview
  proofline apply essay.md --id 3 --diff     # Preview as a diff
  proofline apply essay.md --id 3 --write    # Rewrite essay.md
  proofline apply essay.md --id 3 --write --no-backups`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.id, "id", "", "issue to accept (required)")
	cmd.Flags().StringVar(&flags.issues, "issues", "", "issue list (default: <essay>.issues.json)")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "essay flavor: auto, markdown, plain")
	cmd.Flags().StringVar(&flags.dialect, "dialect", "", "Markdown dialect: commonmark, gfm")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite the essay and issue list")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a unified diff of the essay")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "do not back up the essay before rewriting")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runApply(cmd *cobra.Command, path string, flags *applyFlags) error {
	cli := &config.Config{
		Format:  config.OutputFormat(flags.format),
		Flavor:  config.Flavor(flags.flavor),
		Dialect: config.Dialect(flags.dialect),
		Write:   flags.write,
	}

	env, err := loadEnvironment(cmd, cli)
	if err != nil {
		return err
	}
	if flags.noBackups {
		env.cfg.Backups.Enabled = false
	}
	logger := logging.FromContext(env.ctx)

	result, err := runner.New(env.cfg).Apply(env.ctx, path, runner.ApplyOptions{
		IssuesPath: flags.issues,
		ID:         flags.id,
		Write:      env.cfg.Write,
	})
	if err != nil {
		return err
	}

	logger.Debug("apply finished",
		logging.FieldPath, result.Path,
		logging.FieldIssueID, flags.id,
		logging.FieldStatus, result.Outcome.Status,
		logging.FieldBackup, result.BackupPath,
	)

	rep, err := env.newReporter(cmd, func(o *reporter.Options) { o.ShowDiff = flags.diff })
	if err != nil {
		return err
	}
	if err := rep.Apply(env.ctx, result); err != nil {
		return fmt.Errorf("report result: %w", err)
	}

	if !result.Outcome.Applied {
		return fmt.Errorf("%w: %s", ErrNotApplied, result.Outcome.Status)
	}
	return nil
}
