package cli

import (
	"errors"

	"github.com/yaklabco/ruleslint/pkg/runner"
)

// ErrValidationFailed is returned when at least one document failed validation.
// The report has already been printed, so callers only map it to an exit code.
var ErrValidationFailed = errors.New("validation failed")

// Exit codes for ruleslint.
const (
	// ExitSuccess indicates every document passed.
	ExitSuccess = 0

	// ExitFailure indicates a failed document, a missing target, or a usage error.
	ExitFailure = 1
)

// ExitCodeFromResult determines the exit code for a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil || !result.OK() {
		return ExitFailure
	}
	return ExitSuccess
}

// ExitCodeFromError maps an error returned by a command to an exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
