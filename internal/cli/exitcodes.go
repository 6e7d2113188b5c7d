package cli

import (
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/yaklabco/proofline/internal/configloader"
	"github.com/yaklabco/proofline/pkg/fsutil"
	"github.com/yaklabco/proofline/pkg/runner"
)

// Exit codes for proofline.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitIssues indicates issues were found (check --strict) or a suggestion
	// could not be applied.
	ExitIssues = 1

	// ExitEssayErrors indicates some essays could not be checked.
	ExitEssayErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrIssuesFound is returned by check --strict when issues were located.
	ErrIssuesFound = errors.New("issues found")

	// ErrEssaysFailed is returned when some essays could not be checked.
	ErrEssaysFailed = errors.New("some essays could not be checked")

	// ErrNotApplied is returned when a suggestion could not be applied.
	ErrNotApplied = errors.New("suggestion not applied")

	// ErrUsage marks invalid flag combinations.
	ErrUsage = errors.New("invalid usage")
)

// checkError converts a check result into the command error.
func checkError(result *runner.Result, strict bool) error {
	switch {
	case result.HasErrors():
		return ErrEssaysFailed
	case strict && result.HasHighlights():
		return ErrIssuesFound
	default:
		return nil
	}
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	var validation *configloader.ValidationError
	var fieldErrs criterio.FieldErrors

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound), errors.Is(err, ErrNotApplied):
		return ExitIssues
	case errors.Is(err, ErrEssaysFailed):
		return ExitEssayErrors
	case errors.Is(err, ErrUsage), errors.Is(err, runner.ErrUnknownIssue), errors.As(err, &fieldErrs):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validation):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory), errors.Is(err, fsutil.ErrStale):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
