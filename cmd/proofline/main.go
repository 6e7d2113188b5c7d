// Package main is the entry point for the proofline CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/proofline/internal/cli"
	"github.com/yaklabco/proofline/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	// Issues found and unapplied suggestions have already been reported.
	if err != nil && !errors.Is(err, cli.ErrIssuesFound) && !errors.Is(err, cli.ErrNotApplied) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
