// Package validator implements the rules-document checks.
//
// A Validator runs a fixed sequence of independent text checks against one
// document and returns every result as a value. It holds only compiled,
// immutable patterns, so one instance may be shared across goroutines.
package validator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/ruleslint/internal/logging"
	"github.com/yaklabco/ruleslint/pkg/config"
	"github.com/yaklabco/ruleslint/pkg/document"
	"github.com/yaklabco/ruleslint/pkg/mdscan"
)

var (
	commitExample  = regexp.MustCompile(`^(feat|fix|docs|style|refactor|test|chore):\s+.+`)
	versionExample = regexp.MustCompile(`v?\d+\.\d+\.\d+\+\d+`)
)

// Validator checks rules documents.
type Validator struct {
	required    []SectionPattern
	recommended []SectionPattern
	workflows   []workflowPattern
	thresholds  config.Thresholds
	scanner     *mdscan.Scanner
}

// New creates a Validator. Zero thresholds fall back to the defaults.
func New(thresholds config.Thresholds) *Validator {
	if thresholds.MinLines <= 0 {
		thresholds.MinLines = config.DefaultMinLines
	}
	if thresholds.MinHeadings <= 0 {
		thresholds.MinHeadings = config.DefaultMinHeadings
	}

	return &Validator{
		required:    requiredSections(),
		recommended: recommendedSections(),
		workflows:   workflowPatterns(),
		thresholds:  thresholds,
		scanner:     mdscan.New(),
	}
}

// RequiredSections returns the required section catalog.
func (v *Validator) RequiredSections() []SectionPattern {
	return v.required
}

// RecommendedSections returns the recommended section catalog.
func (v *Validator) RecommendedSections() []SectionPattern {
	return v.recommended
}

// WorkflowNames returns the names of the recognized workflows.
func (v *Validator) WorkflowNames() []string {
	names := make([]string, 0, len(v.workflows))
	for _, workflow := range v.workflows {
		names = append(names, workflow.name)
	}
	return names
}

// ValidateDocument runs every check against text, in order.
func (v *Validator) ValidateDocument(text string) Report {
	results := make([]Result, 0, len(v.required)+len(v.recommended)+5)

	results = append(results, v.checkRequiredSections(text)...)
	results = append(results, v.checkRecommendedSections(text)...)
	results = append(results, v.checkCommitFormat(text))
	results = append(results, checkVersionFormat(text))
	results = append(results, v.checkFileStructure(text)...)
	results = append(results, v.checkWorkflow(text))

	return Report{Results: results}
}

// ValidateFile reads path and validates its content. A file that cannot be
// read produces a single error result instead of the check results.
func (v *Validator) ValidateFile(ctx context.Context, path string) Report {
	logger := logging.FromContext(ctx)

	text, err := document.Read(path)
	if err != nil {
		logger.Debug("read failed", logging.FieldPath, path, logging.FieldError, err)
		return ReadFailure(err)
	}

	report := v.ValidateDocument(text)
	logger.Debug("validated",
		logging.FieldPath, path,
		logging.FieldErrors, report.Count(config.SeverityError),
		logging.FieldWarnings, report.Count(config.SeverityWarning),
	)
	return report
}

func (v *Validator) checkRequiredSections(text string) []Result {
	results := make([]Result, 0, len(v.required))
	for _, pattern := range v.required {
		if pattern.Matcher.MatchString(text) {
			results = append(results, pass(CheckRequiredSection, "Found required section: "+pattern.Name))
		} else {
			results = append(results, fail(CheckRequiredSection, "Missing required section: "+pattern.Name))
		}
	}
	return results
}

func (v *Validator) checkRecommendedSections(text string) []Result {
	results := make([]Result, 0, len(v.recommended))
	for _, pattern := range v.recommended {
		if pattern.Matcher.MatchString(text) {
			results = append(results, pass(CheckRecommendedSection, "Found recommended section: "+pattern.Name))
		} else {
			results = append(results, warn(CheckRecommendedSection, "Missing recommended section: "+pattern.Name))
		}
	}
	return results
}

// checkCommitFormat counts inline code spans written as conventional commits.
func (v *Validator) checkCommitFormat(text string) Result {
	var count int
	for _, span := range v.scanner.CodeSpans(text) {
		if commitExample.MatchString(span) {
			count++
		}
	}

	if count == 0 {
		return warn(CheckCommitFormat, "No valid commit message examples found")
	}
	return pass(CheckCommitFormat, fmt.Sprintf("Found %d valid commit message examples", count))
}

func checkVersionFormat(text string) Result {
	count := len(versionExample.FindAllString(text, -1))
	if count == 0 {
		return warn(CheckVersionFormat, "No version format examples found (expected e.g. v1.2.3+4)")
	}
	return pass(CheckVersionFormat, fmt.Sprintf("Found %d version format examples", count))
}

func (v *Validator) checkFileStructure(text string) []Result {
	lines := splitLines(text)

	var headings int
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			headings++
		}
	}

	results := make([]Result, 0, 2)
	if len(lines) < v.thresholds.MinLines {
		results = append(results, warn(CheckFileLength,
			fmt.Sprintf("File is short (%d lines, expected at least %d)", len(lines), v.thresholds.MinLines)))
	} else {
		results = append(results, pass(CheckFileLength, fmt.Sprintf("File has %d lines", len(lines))))
	}

	if headings < v.thresholds.MinHeadings {
		results = append(results, warn(CheckHeadingCount,
			fmt.Sprintf("Too few headings (%d, expected at least %d)", headings, v.thresholds.MinHeadings)))
	} else {
		results = append(results, pass(CheckHeadingCount, fmt.Sprintf("Found %d headings", headings)))
	}

	return results
}

func (v *Validator) checkWorkflow(text string) Result {
	var matched []string
	for _, workflow := range v.workflows {
		if workflow.matcher.MatchString(text) {
			matched = append(matched, workflow.name)
		}
	}

	switch len(matched) {
	case 0:
		return warn(CheckWorkflow, "No workflow configured")
	case 1:
		return pass(CheckWorkflow, "Workflow configured: "+matched[0])
	default:
		return warn(CheckWorkflow, "Multiple workflows configured: "+strings.Join(matched, ", "))
	}
}

// splitLines splits text on every newline. A trailing newline yields a
// final empty line and empty text is one line.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
