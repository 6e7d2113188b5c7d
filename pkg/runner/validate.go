package runner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// Validate checks the options of a multi-essay check. Problems are returned as
// criterio.FieldErrors.
func (o Options) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if o.Jobs < 0 {
		errs = errs.Append("jobs", fmt.Errorf("must be >= 0, got %d", o.Jobs))
	}
	if o.IssuesPath != "" && len(o.Paths) != 1 {
		errs = errs.Append("issues_path", errors.New("needs exactly one essay"))
	}
	for i, ext := range o.Extensions {
		if !strings.HasPrefix(ext, ".") || ext != strings.ToLower(ext) {
			errs = errs.Append(fmt.Sprintf("extensions[%d]", i),
				fmt.Errorf("must be lowercase with a leading dot, got %q", ext))
		}
	}

	return errs.ToError()
}

// Validate checks the options of Apply.
func (o ApplyOptions) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("id", o.ID, notBlank),
	)
}

// Validate checks the options of Outline.
func (o OutlineOptions) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("scroll", o.Scroll, nonNegative[float64]),
		criterio.Run("width", o.Width, nonNegative[int]),
	)
}

// Validate checks the options of Watch.
func (o WatchOptions) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("debounce", o.Debounce, nonNegative[time.Duration]),
	)
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

func nonNegative[T int | float64 | time.Duration](v T) error {
	if v < 0 {
		return fmt.Errorf("must be >= 0, got %v", v)
	}
	return nil
}
