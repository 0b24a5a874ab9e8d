package configloader

import (
	"fmt"
	"path"
	"strings"

	"github.com/yaklabco/ruleslint/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "thresholds.min_lines").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownColorModes lists valid color mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColorModes = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// maxJobsWarning is the worker count above which a warning is emitted.
const maxJobsWarning = 64

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	if cfg.Color != "" && !knownColorModes[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 and 1 mean sequential)",
		})
	} else if cfg.Jobs > maxJobsWarning {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: fmt.Sprintf("%d jobs is unusually high", cfg.Jobs),
		})
	}

	if cfg.Thresholds.MinLines < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "thresholds.min_lines",
			Value:   cfg.Thresholds.MinLines,
			Message: "min_lines must be >= 0",
		})
	}
	if cfg.Thresholds.MinHeadings < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "thresholds.min_headings",
			Value:   cfg.Thresholds.MinHeadings,
			Message: "min_headings must be >= 0",
		})
	}

	validateIgnorePatterns(cfg, result)

	return result
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// Match returns an error only for malformed patterns.
		if _, err := path.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidColorMode returns true if the color mode is valid.
func IsValidColorMode(mode string) bool {
	return knownColorModes[mode]
}
