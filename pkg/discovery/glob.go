package discovery

import (
	"path"
	"strings"
)

// matchesAny checks if a slash-separated relative path matches any pattern.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern.
// It supports patterns like "*.md", "docs/**" and "**/node_modules".
func matchGlob(relPath, pattern string) bool {
	pattern = strings.ReplaceAll(pattern, "\\", "/")

	if strings.Contains(pattern, "**") {
		return matchDoubleStarPattern(relPath, pattern)
	}

	if matched, err := path.Match(pattern, relPath); err == nil && matched {
		return true
	}

	// Also try matching against just the final element.
	matched, err := path.Match(pattern, path.Base(relPath))
	return err == nil && matched
}

// matchDoubleStarPattern handles ** glob patterns.
func matchDoubleStarPattern(relPath, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	switch {
	case prefix == "" && suffix == "":
		return true
	case prefix == "":
		// "**/foo": foo as any path component or trailing subpath.
		if relPath == suffix || strings.HasSuffix(relPath, "/"+suffix) {
			return true
		}
		for _, component := range strings.Split(relPath, "/") {
			if matched, err := path.Match(suffix, component); err == nil && matched {
				return true
			}
		}
		return false
	case suffix == "":
		// "foo/**": anything under foo, and foo itself.
		return relPath == prefix || strings.HasPrefix(relPath, prefix+"/")
	default:
		if !strings.HasPrefix(relPath, prefix+"/") {
			return false
		}
		if strings.HasSuffix(relPath, suffix) {
			return true
		}
		matched, err := path.Match(suffix, path.Base(relPath))
		return err == nil && matched
	}
}
