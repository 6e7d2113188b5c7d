// Package cli provides the Cobra command structure for proofline.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/proofline/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root proofline command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "proofline",
		Short: "Review proofreading suggestions against an essay",
		Long: `proofline lines proofreading suggestions up with the essay they were made for.

An issue list sits next to each essay as <essay>.issues.json. proofline finds
every issue's original text in the essay, shows where it is, and accepts
suggestions one at a time, rewriting only the matched text in the source.
An outline (<essay>.outline.json) can be placed beside the rendered essay,
an essay can be watched so its highlights follow every save, and its issues
can be reviewed one by one in the terminal.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), "info")
			if debug {
				logger.SetLevel(logging.ParseLevel("debug"))
			}
			logging.SetDefault(logger)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().Bool("no-config", false, "ignore user and project config files")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newOutlineCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newReviewCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	applyHelp(rootCmd, color, os.Stdout)

	return rootCmd
}
