// Package runner orchestrates validation of a file or directory target.
package runner

// Options controls a validation run.
type Options struct {
	// Target is the file or directory to validate.
	Target string

	// Recursive enables recursive discovery when Target is a directory.
	Recursive bool

	// Ignore contains glob patterns skipped during discovery.
	Ignore []string

	// SkipVendored skips vendored directories during recursive discovery.
	SkipVendored bool

	// Jobs is the maximum number of files validated concurrently.
	// 0 or negative means sequential.
	Jobs int
}

// effectiveJobs returns the worker limit, never less than one.
func (o Options) effectiveJobs() int {
	if o.Jobs <= 0 {
		return 1
	}
	return o.Jobs
}
