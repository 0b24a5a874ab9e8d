package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/ruleslint/pkg/config"
	"github.com/yaklabco/ruleslint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func pluralFiles(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 of 3 files failed (5 errors, 4 warnings)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	errs := stats.ResultsBySeverity[config.SeverityError]
	warnings := stats.ResultsBySeverity[config.SeverityWarning]

	var counts []string
	if errs > 0 {
		counts = append(counts, s.Error.Render(fmt.Sprintf("%d errors", errs)))
	}
	if warnings > 0 {
		counts = append(counts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	breakdown := ""
	if len(counts) > 0 {
		breakdown = " (" + strings.Join(counts, ", ") + ")"
	}

	if stats.FilesFailed == 0 {
		return s.Success.Render("All checks passed") +
			s.Dim.Render(fmt.Sprintf(" (%d %s validated)", stats.FilesPassed, pluralFiles(stats.FilesPassed))) +
			breakdown + "\n"
	}

	total := stats.FilesPassed + stats.FilesFailed
	return s.Failure.Render(fmt.Sprintf("%d of %d %s failed", stats.FilesFailed, total, pluralFiles(total))) +
		breakdown + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files validated:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")

	if stats.FilesFailed > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Checks run:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.ResultsTotal)) + "\n")

	if errs := stats.ResultsBySeverity[config.SeverityError]; errs > 0 {
		builder.WriteString("    Errors:          " + s.Error.Render(strconv.Itoa(errs)) + "\n")
	}
	if warnings := stats.ResultsBySeverity[config.SeverityWarning]; warnings > 0 {
		builder.WriteString("    Warnings:        " + s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if passed := stats.ResultsBySeverity[config.SeverityInfo]; passed > 0 {
		builder.WriteString("    Passed:          " + s.Success.Render(strconv.Itoa(passed)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesFailed > 0:
		builder.WriteString(s.Failure.Render("Validation failed"))
	case stats.ResultsBySeverity[config.SeverityWarning] > 0:
		builder.WriteString(s.Warning.Render("Validation passed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Validation passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
