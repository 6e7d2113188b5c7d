package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/proofline/internal/logging"
	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/reporter"
	"github.com/yaklabco/proofline/pkg/runner"
)

type checkFlags struct {
	format  string
	flavor  string
	dialect string
	issues  string
	ignore  []string
	jobs    int
	strict  bool
	byCat   bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Show where each issue occurs in its essay",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "essay flavor: auto, markdown, plain")
	cmd.Flags().StringVar(&flags.dialect, "dialect", "", "Markdown dialect: commonmark, gfm")
	cmd.Flags().StringVar(&flags.issues, "issues", "", "issue list for a single essay (default: <essay>.issues.json)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "doublestar patterns to skip in directories")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.byCat, "by-category", false, "print issue totals per category")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero when any issue is found")

	return cmd
}

const checkLongDescription = `Locate every issue of an issue list in its essay.

Each essay is read together with <essay>.issues.json. Directories are walked
for .md, .markdown and .txt essays that have an issue list. Issues whose
original text is no longer in the essay are reported as not found.

Examples:
  proofline check                         # Check essays under the current directory
  proofline check essay.md                # Check one essay
  proofline check essay.md --issues x.json
  proofline check drafts/ --format json   # Machine-readable output
  proofline check --by-category           # Totals per issue category
  proofline check --strict                # Exit 1 when issues remain`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	cli := &config.Config{
		Format:  config.OutputFormat(flags.format),
		Flavor:  config.Flavor(flags.flavor),
		Dialect: config.Dialect(flags.dialect),
		Ignore:  flags.ignore,
	}

	env, err := loadEnvironment(cmd, cli)
	if err != nil {
		return err
	}
	logger := logging.FromContext(env.ctx)

	opts := runner.Options{
		Paths:      args,
		WorkingDir: env.workDir,
		IssuesPath: flags.issues,
		Jobs:       flags.jobs,
		Config:     env.cfg,
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	logger.Debug("starting check",
		"paths", opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		"jobs", opts.Jobs,
	)

	result, err := runner.New(env.cfg).Check(env.ctx, opts)
	if err != nil {
		return errors.Join(errors.New("check failed"), err)
	}

	logger.Debug("check finished",
		logging.FieldIssues, result.Stats.Issues,
		logging.FieldHighlights, result.Stats.Highlights,
	)

	rep, err := env.newReporter(cmd, func(o *reporter.Options) { o.ShowCategories = flags.byCat })
	if err != nil {
		return err
	}
	if err := rep.Check(env.ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return checkError(result, flags.strict)
}
