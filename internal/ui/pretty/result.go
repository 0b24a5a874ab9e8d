package pretty

import (
	"github.com/yaklabco/ruleslint/pkg/config"
	"github.com/yaklabco/ruleslint/pkg/validator"
)

// FormatFileHeader formats the line introducing a file's results.
func (s *Styles) FormatFileHeader(path string) string {
	return s.Bold.Render("Validating") + " " + s.FilePath.Render(path) + "\n"
}

// FormatMarker returns the styled marker for a result.
func (s *Styles) FormatMarker(result validator.Result) string {
	switch {
	case result.Severity == config.SeverityError:
		return s.Error.Render(MarkerError)
	case result.Severity == config.SeverityWarning:
		return s.Warning.Render(MarkerWarning)
	default:
		return s.Success.Render(MarkerSuccess)
	}
}

// FormatResult formats one check result as an indented line.
// Example: "  ✓ Found required section: Git Workflow".
func (s *Styles) FormatResult(result validator.Result) string {
	message := s.Message.Render(result.Message)
	switch result.Severity {
	case config.SeverityError:
		message = s.Error.Render(result.Message)
	case config.SeverityWarning:
		message = s.Warning.Render(result.Message)
	}
	return "  " + s.FormatMarker(result) + " " + message + "\n"
}

// FormatVerdict formats the pass/fail line closing a file's results.
func (s *Styles) FormatVerdict(ok bool) string {
	if ok {
		return "  " + s.Success.Render("Validation passed") + "\n"
	}
	return "  " + s.Failure.Render("Validation failed") + "\n"
}
