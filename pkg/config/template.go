package config

import (
	"bytes"
	"fmt"
)

// GenerateTemplate creates a commented starter configuration file.
func GenerateTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# ruleslint configuration
# Place this file at the repository root as .ruleslint.yml.

# Search directories recursively for rules files.
# recursive: false

# Report format: text or json
# format: text

# Colorize output: auto, always, never
# color: auto

# File-structure check thresholds.
thresholds:
`)
	fmt.Fprintf(&buf, "  min_lines: %d\n", DefaultMinLines)
	fmt.Fprintf(&buf, "  min_headings: %d\n", DefaultMinHeadings)
	buf.WriteString(`
# Skip vendored and dependency directories (vendor/, node_modules/, ...)
# during recursive discovery.
# skip_vendored: false

# Glob patterns skipped during discovery.
# ignore:
#   - "node_modules/**"
#   - "vendor/**"
`)

	return buf.Bytes()
}
