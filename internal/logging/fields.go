// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldTarget = "target"

	// Configuration fields.
	FieldConfigFiles = "config_files"
	FieldRecursive   = "recursive"
	FieldFormat      = "format"
	FieldJobs        = "jobs"

	// Discovery and result fields.
	FieldSource          = "source"
	FieldErrors          = "errors"
	FieldWarnings        = "warnings"
	FieldFilesDiscovered = "files_discovered"
	FieldFilesFailed     = "files_failed"
	FieldWorkflow        = "workflow"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
