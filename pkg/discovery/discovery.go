// Package discovery locates rules documents under a directory.
//
// Discovery runs in priority order: exactly-named rules files at the fixed
// locations used by AI coding tools first, then Markdown files whose names
// mark them as rules or workflow templates.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// ErrNoRulesFiles is returned when neither discovery step finds a file.
var ErrNoRulesFiles = errors.New("no rules files or template files found")

// Source identifies which discovery step produced the files.
type Source string

const (
	// SourceConvention means files were found at fixed tool locations.
	SourceConvention Source = "convention"

	// SourceFallback means files were found by the Markdown name search.
	SourceFallback Source = "fallback"
)

// RulesPaths returns the fixed sub-paths of the recognized tool conventions.
func RulesPaths() []string {
	return []string{
		".ai-ide/rules",
		".cursor/rules",
		".github/rules",
		".code-whisperer/rules",
		".tabnine/rules",
	}
}

// FallbackKeywords returns the case-insensitive filename substrings that
// mark a Markdown file as a rules candidate.
func FallbackKeywords() []string {
	return []string{"template", "workflow", "solo", "rules"}
}

// Options controls discovery.
type Options struct {
	// Root is the directory to search.
	Root string

	// Recursive searches descendant directories as well as Root.
	Recursive bool

	// Ignore contains glob patterns, relative to Root, for paths to skip.
	Ignore []string

	// SkipVendored skips directories go-enry classifies as vendored
	// (vendor/, node_modules/, third_party/, ...) during recursive walks.
	SkipVendored bool
}

// Result is the outcome of a successful discovery.
type Result struct {
	// Files are absolute paths in sorted order.
	Files []string

	// Source records which step found the files.
	Source Source
}

// Discover finds rules documents under opts.Root.
// It returns ErrNoRulesFiles when nothing is found.
func Discover(ctx context.Context, opts Options) (*Result, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve absolute path: %w", err)
	}

	var files []string
	if opts.Recursive {
		files, err = walkConventionFiles(ctx, root, opts)
	} else {
		files = conventionFilesIn(root)
	}
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		sort.Strings(files)
		return &Result{Files: files, Source: SourceConvention}, nil
	}

	if opts.Recursive {
		files, err = walkFallbackFiles(ctx, root, opts)
	} else {
		files, err = fallbackFilesIn(root)
	}
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		sort.Strings(files)
		return &Result{Files: files, Source: SourceFallback}, nil
	}

	return nil, ErrNoRulesFiles
}

// conventionFilesIn returns the fixed rules files present directly under dir.
func conventionFilesIn(dir string) []string {
	var files []string
	for _, rel := range RulesPaths() {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if isRegularFile(path) {
			files = append(files, path)
		}
	}
	return files
}

// walkConventionFiles returns every fixed rules file at or below root.
// Hidden directories are traversed because the conventions live in them.
func walkConventionFiles(ctx context.Context, root string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := relativeTo(root, path)

		if entry.IsDir() {
			if path != root && skipDir(entry.Name(), relPath, opts) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isConventionPath(relPath) || matchesAny(relPath, opts.Ignore) {
			return nil
		}
		if isRegularFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// fallbackFilesIn returns the Markdown rules candidates directly under dir.
func fallbackFilesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() || !isFallbackName(entry.Name()) || !isRegularFile(path) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// walkFallbackFiles returns every Markdown rules candidate at or below root.
// Hidden directories are searched, since templates often live in .github.
func walkFallbackFiles(ctx context.Context, root string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := relativeTo(root, path)

		if entry.IsDir() {
			if path != root && skipDir(entry.Name(), relPath, opts) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isFallbackName(entry.Name()) || matchesAny(relPath, opts.Ignore) {
			return nil
		}
		if isRegularFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// skipDir reports whether a walk should not descend into a directory.
// The .git directory holds no user documents and is always skipped.
func skipDir(name, relPath string, opts Options) bool {
	if name == ".git" || matchesAny(relPath, opts.Ignore) {
		return true
	}
	return opts.SkipVendored && isVendored(relPath)
}

// isVendored reports whether go-enry classifies a directory as vendored.
// Tool directories such as .github hold rules files and never count, even
// though enry lists some of them.
func isVendored(relPath string) bool {
	segments := strings.Split(relPath, "/")
	kept := segments[:0]
	for _, segment := range segments {
		if !isToolDir(segment) {
			kept = append(kept, segment)
		}
	}
	if len(kept) == 0 {
		return false
	}
	return enry.IsVendor(strings.Join(kept, "/") + "/")
}

// isToolDir reports whether name is the top directory of a rules path.
func isToolDir(name string) bool {
	for _, rel := range RulesPaths() {
		if dir, _, _ := strings.Cut(rel, "/"); dir == name {
			return true
		}
	}
	return false
}

// isConventionPath reports whether a slash-separated relative path ends in
// one of the fixed rules locations.
func isConventionPath(relPath string) bool {
	for _, rel := range RulesPaths() {
		if relPath == rel || strings.HasSuffix(relPath, "/"+rel) {
			return true
		}
	}
	return false
}

// isFallbackName reports whether name is a Markdown file whose name contains
// one of the fallback keywords.
func isFallbackName(name string) bool {
	lower := strings.ToLower(name)
	if filepath.Ext(lower) != ".md" {
		return false
	}
	for _, keyword := range FallbackKeywords() {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// isRegularFile reports whether path resolves to a regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}
