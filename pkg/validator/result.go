package validator

import "github.com/yaklabco/ruleslint/pkg/config"

// Check identifiers carried by each Result.
const (
	CheckRequiredSection    = "required-section"
	CheckRecommendedSection = "recommended-section"
	CheckCommitFormat       = "commit-format"
	CheckVersionFormat      = "version-format"
	CheckFileLength         = "file-length"
	CheckHeadingCount       = "heading-count"
	CheckWorkflow           = "workflow"
	CheckRead               = "read"
	CheckDiscovery          = "discovery"
)

// Result is the outcome of a single check invocation. Results are values
// and are never modified after creation.
type Result struct {
	// Check identifies the check that produced this result.
	Check string

	// Success reports whether the check passed.
	Success bool

	// Message is the human-readable outcome.
	Message string

	// Severity is info for passes and warning or error for failures.
	Severity config.Severity
}

func pass(check, message string) Result {
	return Result{Check: check, Success: true, Message: message, Severity: config.SeverityInfo}
}

func warn(check, message string) Result {
	return Result{Check: check, Success: false, Message: message, Severity: config.SeverityWarning}
}

func fail(check, message string) Result {
	return Result{Check: check, Success: false, Message: message, Severity: config.SeverityError}
}

// Report is the ordered list of results from one validation run.
type Report struct {
	Results []Result
}

// OK reports whether no result has error severity.
func (r Report) OK() bool {
	for _, result := range r.Results {
		if result.Severity == config.SeverityError {
			return false
		}
	}
	return true
}

// Count returns the number of results with the given severity.
func (r Report) Count(severity config.Severity) int {
	var n int
	for _, result := range r.Results {
		if result.Severity == severity {
			n++
		}
	}
	return n
}

// ReadFailure returns the single-result report for a document that could not be read.
func ReadFailure(err error) Report {
	return Report{Results: []Result{fail(CheckRead, "Could not read file: "+err.Error())}}
}

// NoFilesFound returns the single-result report for a directory with nothing to validate.
func NoFilesFound() Report {
	return Report{Results: []Result{fail(CheckDiscovery, "No rules files or template files found")}}
}
