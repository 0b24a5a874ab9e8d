package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/ruleslint/pkg/runner"
)

// schemaVersion identifies the layout of JSONOutput.
const schemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Target  string           `json:"target"`
	Mode    string           `json:"mode"`
	Source  string           `json:"source,omitempty"`
	Success bool             `json:"success"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path    string       `json:"path"`
	Success bool         `json:"success"`
	Results []JSONResult `json:"results"`
}

// JSONResult represents one check result.
type JSONResult struct {
	Check    string `json:"check"`
	Success  bool   `json:"success"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int            `json:"filesDiscovered"`
	FilesPassed     int            `json:"filesPassed"`
	FilesFailed     int            `json:"filesFailed"`
	TotalResults    int            `json:"totalResults"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesFailed, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: schemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	output.Target = displayPath(result.Target, r.opts.WorkingDir)
	output.Mode = string(result.Mode)
	output.Source = string(result.Source)
	output.Success = result.OK()
	output.Files = make([]JSONFileResult, 0, len(result.Files))

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:    displayPath(file.Path, r.opts.WorkingDir),
			Success: file.OK(),
			Results: make([]JSONResult, 0, len(file.Report.Results)),
		}
		for _, res := range file.Report.Results {
			fileResult.Results = append(fileResult.Results, JSONResult{
				Check:    res.Check,
				Success:  res.Success,
				Severity: string(res.Severity),
				Message:  res.Message,
			})
		}
		output.Files = append(output.Files, fileResult)
	}

	output.Summary.FilesDiscovered = result.Stats.FilesDiscovered
	output.Summary.FilesPassed = result.Stats.FilesPassed
	output.Summary.FilesFailed = result.Stats.FilesFailed
	output.Summary.TotalResults = result.Stats.ResultsTotal
	for severity, count := range result.Stats.ResultsBySeverity {
		output.Summary.BySeverity[string(severity)] = count
	}

	return output
}
