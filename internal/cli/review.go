package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/proofline/internal/logging"
	"github.com/yaklabco/proofline/internal/tui"
	"github.com/yaklabco/proofline/internal/ui/pretty"
	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/runner"
)

type reviewFlags struct {
	issues    string
	flavor    string
	dialect   string
	noBackups bool
}

func newReviewCommand() *cobra.Command {
	flags := &reviewFlags{}

	cmd := &cobra.Command{
		Use:   "review <essay>",
		Short: "Accept or dismiss suggestions interactively",
		Long: `Step through the pending issues of an essay in the terminal.

Accepting an issue applies its suggestion to the essay; dismissing it drops the
issue without touching the text. Nothing is written until you save, which backs
up the essay, rewrites it in place and updates the issue list.

Keys:
  ↑/k ↓/j   move
  a, enter  accept the selected suggestion
  d, x      dismiss the selected issue
  s         save
  q         quit (twice to discard unsaved changes)

Examples:
  proofline review essay.md
  proofline review essay.md --issues review/essay.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.issues, "issues", "", "issue list (default: <essay>.issues.json)")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "essay flavor: auto, markdown, plain")
	cmd.Flags().StringVar(&flags.dialect, "dialect", "", "Markdown dialect: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "do not back up the essay before rewriting")

	return cmd
}

func runReview(cmd *cobra.Command, path string, flags *reviewFlags) error {
	if !isTerminal(cmd.InOrStdin()) {
		return fmt.Errorf("%w: review needs an interactive terminal; use apply instead", ErrUsage)
	}

	cli := &config.Config{
		Flavor:  config.Flavor(flags.flavor),
		Dialect: config.Dialect(flags.dialect),
	}
	env, err := loadEnvironment(cmd, cli)
	if err != nil {
		return err
	}
	if flags.noBackups {
		env.cfg.Backups.Enabled = false
	}
	logger := logging.FromContext(env.ctx)

	issuesPath := flags.issues
	if issuesPath == "" {
		issuesPath = runner.IssuesPathFor(path)
	}

	r := runner.New(env.cfg)
	doc, err := r.Open(env.ctx, path)
	if err != nil {
		return err
	}
	issues, err := runner.LoadIssues(env.ctx, issuesPath)
	if err != nil {
		return err
	}
	doc.Session.SetIssues(issues)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	model := tui.NewReview(tui.ReviewOptions{
		Document:    doc,
		IssuesPath:  issuesPath,
		Styles:      pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout())),
		DisplayPath: relativePath(env.workDir, path),
		Save: func() (string, error) {
			return r.Save(env.ctx, doc, issuesPath)
		},
	})

	program := tea.NewProgram(model,
		tea.WithContext(env.ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run review: %w", err)
	}

	if m, ok := final.(tui.ReviewModel); ok && m.Dirty() {
		logger.Warn("discarded unsaved changes", logging.FieldPath, path)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func relativePath(workDir, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(workDir, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
