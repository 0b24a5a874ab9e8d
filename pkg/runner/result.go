package runner

import (
	"github.com/yaklabco/ruleslint/pkg/config"
	"github.com/yaklabco/ruleslint/pkg/discovery"
	"github.com/yaklabco/ruleslint/pkg/validator"
)

// Mode records whether the target was a single file or a directory.
type Mode string

const (
	ModeFile      Mode = "file"
	ModeDirectory Mode = "directory"
)

// FileOutcome is the validation report for one path.
type FileOutcome struct {
	// Path is the file that was validated, or the directory itself when
	// discovery found nothing.
	Path string

	// Report holds the ordered check results.
	Report validator.Report
}

// OK reports whether the file passed.
func (o FileOutcome) OK() bool {
	return o.Report.OK()
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of documents selected for validation.
	FilesDiscovered int

	// FilesPassed is the number of documents without error results.
	FilesPassed int

	// FilesFailed is the number of outcomes with at least one error result.
	FilesFailed int

	// ResultsTotal is the total number of check results.
	ResultsTotal int

	// ResultsBySeverity maps severity levels to counts.
	ResultsBySeverity map[config.Severity]int
}

// Result is the overall runner result.
type Result struct {
	// Target is the path the run was started with.
	Target string

	// Mode records whether Target was a file or a directory.
	Mode Mode

	// Source records which discovery step selected the files.
	// Empty for file targets and for directories where nothing was found.
	Source discovery.Source

	// Files contains one outcome per validated path, in discovery order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// OK reports whether every outcome passed.
func (r *Result) OK() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed == 0
}

func newStats() Stats {
	return Stats{ResultsBySeverity: make(map[config.Severity]int)}
}

// accumulate appends an outcome and updates the statistics.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.OK() {
		r.Stats.FilesPassed++
	} else {
		r.Stats.FilesFailed++
	}

	for _, result := range outcome.Report.Results {
		r.Stats.ResultsTotal++
		r.Stats.ResultsBySeverity[result.Severity]++
	}
}
