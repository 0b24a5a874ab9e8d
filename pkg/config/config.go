// Package config defines core configuration types for ruleslint.
// These types are pure data structures with no dependency on the loader.
package config

// Severity represents the severity level of a validation result.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is a known output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Default structural thresholds for the file-structure check.
const (
	DefaultMinLines    = 50
	DefaultMinHeadings = 5
)

// Thresholds controls the file-structure check.
type Thresholds struct {
	// MinLines is the line count below which a document is reported as short.
	MinLines int `yaml:"min_lines,omitempty"`

	// MinHeadings is the heading count below which a document is reported as sparse.
	MinHeadings int `yaml:"min_headings,omitempty"`
}

// Config is the root configuration structure for ruleslint.
type Config struct {
	// Recursive enables recursive discovery when the target is a directory.
	Recursive bool `yaml:"recursive,omitempty"`

	// Format is the report format ("text" or "json").
	Format OutputFormat `yaml:"format,omitempty"`

	// Color controls colorized output: auto, always, never.
	Color string `yaml:"color,omitempty"`

	// Thresholds tunes the file-structure check.
	Thresholds Thresholds `yaml:"thresholds,omitempty"`

	// Ignore contains glob patterns for paths skipped during discovery.
	Ignore []string `yaml:"ignore,omitempty"`

	// SkipVendored skips vendored and dependency directories during
	// recursive discovery.
	SkipVendored bool `yaml:"skip_vendored,omitempty"`

	// CLI-level options (not persisted to config files).

	// Jobs is the number of files validated concurrently. 0 or 1 is sequential.
	Jobs int `yaml:"-"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Recursive: false,
		Format:    FormatText,
		Color:     "auto",
		Thresholds: Thresholds{
			MinLines:    DefaultMinLines,
			MinHeadings: DefaultMinHeadings,
		},
		Jobs: 1,
	}
}
